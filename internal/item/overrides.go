package item

import "github.com/pharogames/itemforge/internal/profile"

// Overrides carries per-request values applied on top of a definition's
// defaults for a single compile. A nil field means "use the definition's
// default", never "false".
type Overrides struct {
	Slot      *int
	Locked    *bool
	Droppable *bool
	Movable   *bool

	// Owner is only consulted when the definition's base kind is a
	// player-likeness object.
	Owner *profile.OwnerRef
}

// EffectiveSlot resolves the slot for this compile.
func (o *Overrides) EffectiveSlot(def Definition) int {
	if o != nil && o.Slot != nil {
		return *o.Slot
	}
	return def.DefaultSlot
}

// EffectiveLocked resolves the locked flag for this compile.
func (o *Overrides) EffectiveLocked(def Definition) bool {
	if o != nil && o.Locked != nil {
		return *o.Locked
	}
	return def.DefaultLocked
}

// EffectiveDroppable resolves the droppable flag for this compile.
func (o *Overrides) EffectiveDroppable(def Definition) bool {
	if o != nil && o.Droppable != nil {
		return *o.Droppable
	}
	return def.DefaultDroppable
}

// EffectiveMovable resolves the movable flag for this compile.
func (o *Overrides) EffectiveMovable(def Definition) bool {
	if o != nil && o.Movable != nil {
		return *o.Movable
	}
	return def.DefaultMovable
}
