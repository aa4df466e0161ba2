package server

// HTTP error messages
const (
	ErrMsgItemNotFound = "item not found"
	ErrMsgInvalidBody  = "invalid request body"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)
