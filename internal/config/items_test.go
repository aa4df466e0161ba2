package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharogames/itemforge/internal/item"
)

const sampleYAML = `
items:
  lobby.compass:
    baseKind: COMPASS
    display: "<gold>Server Selector"
    lore:
      - "<gray>Right-click to browse"
      - "<gray>Hello %actor_name%"
    rarity: RARE
    slot: 8
    locked: true
    droppable: false
    movable: false
    metadata:
      menu: server_selector
  gui.profile:
    baseKind: PLAYER_HEAD
    display: "<aqua>Your Profile"
    model:
      primary: "hub:profile_head"
      colors: [4294901760]
    maxStackSize: 1
  plain.paper:
    baseKind: PAPER
`

func TestParseItems(t *testing.T) {
	defs, err := ParseItems([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, defs, 3)

	// Document order is preserved.
	assert.Equal(t, "lobby.compass", defs[0].Identity)
	assert.Equal(t, "gui.profile", defs[1].Identity)
	assert.Equal(t, "plain.paper", defs[2].Identity)

	compass := defs[0]
	assert.Equal(t, "COMPASS", compass.BaseKind)
	assert.Equal(t, "<gold>Server Selector", compass.Display)
	assert.Len(t, compass.LoreLines, 2)
	assert.Equal(t, "RARE", compass.RarityTier)
	assert.Equal(t, 8, compass.DefaultSlot)
	assert.True(t, compass.DefaultLocked)
	assert.False(t, compass.DefaultDroppable)
	assert.False(t, compass.DefaultMovable)
	assert.Equal(t, "server_selector", compass.Metadata["menu"])

	head := defs[1]
	require.NotNil(t, head.VisualModel)
	assert.Equal(t, "hub:profile_head", head.VisualModel.PrimaryModel)
	require.NotNil(t, head.MaxStackSize)
	assert.Equal(t, 1, *head.MaxStackSize)
}

func TestParseItemsDefaults(t *testing.T) {
	defs, err := ParseItems([]byte(sampleYAML))
	require.NoError(t, err)

	// Unset behaviour flags keep the documented defaults.
	paper := defs[2]
	assert.Equal(t, -1, paper.DefaultSlot)
	assert.False(t, paper.DefaultLocked)
	assert.True(t, paper.DefaultDroppable)
	assert.True(t, paper.DefaultMovable)
}

func TestParseItemsFailFast(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing baseKind",
			yaml: "items:\n  broken.item:\n    display: Oops\n",
		},
		{
			name: "max stack out of range",
			yaml: "items:\n  broken.item:\n    baseKind: PAPER\n    maxStackSize: 200\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := ParseItems([]byte(tt.yaml))
			assert.Nil(t, defs)
			assert.ErrorIs(t, err, item.ErrInvalidDefinition)
		})
	}
}

func TestParseItemsEmptyDocument(t *testing.T) {
	defs, err := ParseItems([]byte("other: {}\n"))
	assert.NoError(t, err)
	assert.Empty(t, defs)
}

func TestParseItemsMalformedYAML(t *testing.T) {
	_, err := ParseItems([]byte("items: [not: a: mapping\n"))
	assert.Error(t, err)
}
