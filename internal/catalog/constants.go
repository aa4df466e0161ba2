package catalog

// Log messages
const (
	LogMsgUnknownItem = "Unknown item identity"
)
