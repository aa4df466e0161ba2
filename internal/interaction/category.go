package interaction

import "github.com/pharogames/itemforge/internal/host"

// Category is one of the closed set of (click kind, sneak state)
// combinations an interaction callback can subscribe to.
type Category string

const (
	PrimaryClick   Category = "primary_click"
	SecondaryClick Category = "secondary_click"
	ShiftPrimary   Category = "shift_primary"
	ShiftSecondary Category = "shift_secondary"
	AnyPrimary     Category = "any_primary"
	AnySecondary   Category = "any_secondary"
	AnyClick       Category = "any_click"
)

// Matches reports whether this category matches a raw action and sneak
// state. Exact categories require an exact sneak match, "any" categories
// ignore sneaking, and AnyClick matches both click kinds.
func (c Category) Matches(action host.Action, sneaking bool) bool {
	primary := action == host.ActionPrimary
	secondary := action == host.ActionSecondary

	switch c {
	case PrimaryClick:
		return primary && !sneaking
	case SecondaryClick:
		return secondary && !sneaking
	case ShiftPrimary:
		return primary && sneaking
	case ShiftSecondary:
		return secondary && sneaking
	case AnyPrimary:
		return primary
	case AnySecondary:
		return secondary
	case AnyClick:
		return primary || secondary
	default:
		return false
	}
}
