package item

// Error message constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgBlankIdentity  = "identity cannot be blank"
	ErrMsgBlankBaseKind  = "baseKind cannot be blank"
	ErrMsgSlotOutOfRange = "defaultSlot must be -1 or a slot index"
)
