package builder

import "github.com/pharogames/itemforge/internal/host"

// Metadata block written onto every compiled stack. The namespace is
// private to this catalog; other subsystems keep their own namespaces.
const (
	MetaNamespace = "itemforge"

	MetaKeyIdentity  = "identity"
	MetaKeyLocked    = "locked"
	MetaKeyDroppable = "droppable"
	MetaKeyMovable   = "movable"
)

func flagByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// writePolicy stamps the four-entry self-describing block onto the stack.
func writePolicy(stack *host.Stack, identity string, locked, droppable, movable bool) {
	stack.SetMetaString(MetaNamespace, MetaKeyIdentity, identity)
	stack.SetMetaByte(MetaNamespace, MetaKeyLocked, flagByte(locked))
	stack.SetMetaByte(MetaNamespace, MetaKeyDroppable, flagByte(droppable))
	stack.SetMetaByte(MetaNamespace, MetaKeyMovable, flagByte(movable))
}

// IdentityOf reads the identity burned into a stack's metadata. The second
// return is false for stacks this catalog never produced, including nil and
// empty stacks.
func IdentityOf(stack *host.Stack) (string, bool) {
	return stack.MetaString(MetaNamespace, MetaKeyIdentity)
}

// IsRecognized reports whether the stack carries a catalog identity.
func IsRecognized(stack *host.Stack) bool {
	_, ok := IdentityOf(stack)
	return ok
}

// IsLocked reports the locked flag. Default false when absent. Only
// meaningful when the stack is recognized.
func IsLocked(stack *host.Stack) bool {
	return stack.MetaByte(MetaNamespace, MetaKeyLocked, 0) == 1
}

// IsDroppable reports the droppable flag. Default true when absent.
func IsDroppable(stack *host.Stack) bool {
	return stack.MetaByte(MetaNamespace, MetaKeyDroppable, 1) == 1
}

// IsMovable reports the movable flag. Default true when absent.
func IsMovable(stack *host.Stack) bool {
	return stack.MetaByte(MetaNamespace, MetaKeyMovable, 1) == 1
}
