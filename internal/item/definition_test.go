package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestNewDefinitionDefaults(t *testing.T) {
	def := NewDefinition("lobby.compass", "COMPASS")

	assert.Equal(t, "lobby.compass", def.Identity)
	assert.Equal(t, "COMPASS", def.BaseKind)
	assert.Equal(t, -1, def.DefaultSlot)
	assert.False(t, def.DefaultLocked)
	assert.True(t, def.DefaultDroppable)
	assert.True(t, def.DefaultMovable)
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Definition)
		wantError     bool
		errorContains string
	}{
		{
			name:   "valid minimal definition",
			mutate: func(d *Definition) {},
		},
		{
			name:          "blank identity",
			mutate:        func(d *Definition) { d.Identity = "  " },
			wantError:     true,
			errorContains: ErrMsgBlankIdentity,
		},
		{
			name:          "blank base kind",
			mutate:        func(d *Definition) { d.BaseKind = "" },
			wantError:     true,
			errorContains: ErrMsgBlankBaseKind,
		},
		{
			name:      "max stack too small",
			mutate:    func(d *Definition) { d.MaxStackSize = intPtr(0) },
			wantError: true,
		},
		{
			name:      "max stack too large",
			mutate:    func(d *Definition) { d.MaxStackSize = intPtr(100) },
			wantError: true,
		},
		{
			name:   "max stack boundaries",
			mutate: func(d *Definition) { d.MaxStackSize = intPtr(99) },
		},
		{
			name:          "default slot below -1",
			mutate:        func(d *Definition) { d.DefaultSlot = -2 },
			wantError:     true,
			errorContains: ErrMsgSlotOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := NewDefinition("test.item", "PAPER")
			tt.mutate(&def)

			err := def.Validate()
			if tt.wantError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDefinition)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVisualModelHasLegacyBlock(t *testing.T) {
	var nilModel *VisualModel
	assert.False(t, nilModel.HasLegacyBlock())
	assert.False(t, (&VisualModel{PrimaryModel: "core:compass"}).HasLegacyBlock())
	assert.True(t, (&VisualModel{Floats: []float32{1.5}}).HasLegacyBlock())
	assert.True(t, (&VisualModel{Colors: []uint32{0xFFFF0000}}).HasLegacyBlock())
}

func TestOverridePrecedence(t *testing.T) {
	def := NewDefinition("test.item", "PAPER")
	def.DefaultLocked = false
	def.DefaultDroppable = true
	def.DefaultMovable = true
	def.DefaultSlot = 4

	var none *Overrides
	assert.Equal(t, 4, none.EffectiveSlot(def))
	assert.False(t, none.EffectiveLocked(def))
	assert.True(t, none.EffectiveDroppable(def))
	assert.True(t, none.EffectiveMovable(def))

	opts := &Overrides{
		Slot:      intPtr(8),
		Locked:    boolPtr(true),
		Droppable: boolPtr(false),
		Movable:   boolPtr(false),
	}
	assert.Equal(t, 8, opts.EffectiveSlot(def))
	assert.True(t, opts.EffectiveLocked(def))
	assert.False(t, opts.EffectiveDroppable(def))
	assert.False(t, opts.EffectiveMovable(def))

	// Partial overrides leave untouched fields on definition defaults.
	partial := &Overrides{Locked: boolPtr(true)}
	assert.Equal(t, 4, partial.EffectiveSlot(def))
	assert.True(t, partial.EffectiveLocked(def))
	assert.True(t, partial.EffectiveDroppable(def))
}
