package protection

// Log messages
const (
	LogMsgMutationBlocked = "Container mutation blocked by item policy"
)
