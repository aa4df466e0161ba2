package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for definition validation
var (
	ErrInvalidDefinition = errors.New("invalid definition")
)

var validate = validator.New()

// VisualModel describes a definition's client visuals: a primary structured
// model reference plus the legacy multi-value block. Every field is optional.
type VisualModel struct {
	PrimaryModel string    `yaml:"primaryModel,omitempty" json:"primary_model,omitempty"`
	Strings      []string  `yaml:"strings,omitempty" json:"strings,omitempty"`
	Floats       []float32 `yaml:"floats,omitempty" json:"floats,omitempty"`
	Flags        []bool    `yaml:"flags,omitempty" json:"flags,omitempty"`
	Colors       []uint32  `yaml:"colors,omitempty" json:"colors,omitempty"` // packed ARGB
}

// HasLegacyBlock reports whether any legacy multi-value field carries data.
func (v *VisualModel) HasLegacyBlock() bool {
	if v == nil {
		return false
	}
	return len(v.Strings) > 0 || len(v.Floats) > 0 || len(v.Flags) > 0 || len(v.Colors) > 0
}

// Definition is the immutable declarative description of one logical item.
// Identity and BaseKind are required; everything else is optional with the
// defaults produced by NewDefinition.
type Definition struct {
	Identity string `json:"identity" validate:"required"`
	BaseKind string `json:"base_kind" validate:"required"`

	// Presentation
	Display   string   `json:"display,omitempty"`
	LoreLines []string `json:"lore_lines,omitempty"`

	// Visuals
	VisualModel   *VisualModel `json:"visual_model,omitempty"`
	GlintOverride *bool        `json:"glint_override,omitempty"`

	// Data components
	RarityTier        string         `json:"rarity_tier,omitempty"`
	MaxStackSize      *int           `json:"max_stack_size,omitempty" validate:"omitempty,min=1,max=99"`
	Indestructible    bool           `json:"indestructible,omitempty"`
	Modifiers         map[string]int `json:"modifiers,omitempty"`
	HideAllInfo       bool           `json:"hide_all_info,omitempty"`
	HideSecondaryInfo bool           `json:"hide_secondary_info,omitempty"`

	// Inventory behaviour defaults, overridable per give
	DefaultSlot      int  `json:"default_slot"` // -1 = first free slot
	DefaultLocked    bool `json:"default_locked"`
	DefaultDroppable bool `json:"default_droppable"`
	DefaultMovable   bool `json:"default_movable"`

	// Free-form metadata for caller use, never interpreted here
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewDefinition creates a definition with the documented defaults: slot -1
// (auto), not locked, droppable, movable.
func NewDefinition(identity, baseKind string) Definition {
	return Definition{
		Identity:         identity,
		BaseKind:         baseKind,
		DefaultSlot:      -1,
		DefaultDroppable: true,
		DefaultMovable:   true,
	}
}

// Validate checks the definition's required fields and numeric ranges.
// Loaders are expected to abort startup on any error returned here.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Identity) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, ErrMsgBlankIdentity)
	}
	if strings.TrimSpace(d.BaseKind) == "" {
		return fmt.Errorf("%w: %s for '%s'", ErrInvalidDefinition, ErrMsgBlankBaseKind, d.Identity)
	}
	if d.DefaultSlot < -1 {
		return fmt.Errorf("%w: %s for '%s'", ErrInvalidDefinition, ErrMsgSlotOutOfRange, d.Identity)
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrInvalidDefinition, d.Identity, err)
	}
	return nil
}
