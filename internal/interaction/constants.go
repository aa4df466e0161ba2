package interaction

// Log messages
const (
	LogMsgCallbackFailed   = "Interaction callback failed"
	LogMsgCallbackPanicked = "Interaction callback panicked"
)
