package host

import "github.com/pharogames/itemforge/internal/profile"

// Stack is the host's generic stacked object. All attribute components are
// optional; a zero Stack of a known kind is a plain, unstyled object.
//
// The metadata container is namespaced: unrelated subsystems write under
// their own namespace and never collide. Entries travel with the stack
// wherever it goes, which is what makes self-describing policy possible.
type Stack struct {
	Kind  Kind
	Count int

	Name *Text
	Lore []Text

	Model     *ModelRef
	ModelData *ModelData

	Glint        *bool
	Rarity       *Rarity
	MaxStackSize *int
	Unbreakable  bool

	Modifiers map[Modifier]int

	Tooltip *TooltipRule

	OwnerProfile *profile.Profile

	meta map[string]any
}

// NewStack creates a single-count stack of the given kind.
func NewStack(kind Kind) *Stack {
	return &Stack{Kind: kind, Count: 1}
}

// Empty reports whether the stack is absent or has no kind ("air"). Empty
// stacks carry no metadata.
func (s *Stack) Empty() bool {
	return s == nil || s.Kind == "" || s.Count <= 0
}

func metaKey(namespace, key string) string {
	return namespace + ":" + key
}

// SetMetaString writes a string entry under the given namespace.
func (s *Stack) SetMetaString(namespace, key, value string) {
	if s.meta == nil {
		s.meta = make(map[string]any)
	}
	s.meta[metaKey(namespace, key)] = value
}

// MetaString reads a string entry. The second return is false when the
// entry is absent or holds a different type.
func (s *Stack) MetaString(namespace, key string) (string, bool) {
	if s.Empty() || s.meta == nil {
		return "", false
	}
	v, ok := s.meta[metaKey(namespace, key)].(string)
	return v, ok
}

// SetMetaByte writes a byte entry under the given namespace.
func (s *Stack) SetMetaByte(namespace, key string, value byte) {
	if s.meta == nil {
		s.meta = make(map[string]any)
	}
	s.meta[metaKey(namespace, key)] = value
}

// MetaByte reads a byte entry, falling back to def when absent.
func (s *Stack) MetaByte(namespace, key string, def byte) byte {
	if s.Empty() || s.meta == nil {
		return def
	}
	if v, ok := s.meta[metaKey(namespace, key)].(byte); ok {
		return v
	}
	return def
}
