package registry

// Log messages
const (
	LogMsgOverwritingDefinition = "Overwriting existing definition"
	LogMsgUnregisterUnknown     = "Attempted to unregister unknown definition"
)
