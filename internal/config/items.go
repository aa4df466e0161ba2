package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pharogames/itemforge/internal/item"
)

// defRecord is the YAML shape of one item definition. Pointer fields
// distinguish "absent" from the zero value for attributes whose default is
// not false/zero.
type defRecord struct {
	BaseKind string   `yaml:"baseKind"`
	Display  string   `yaml:"display"`
	Lore     []string `yaml:"lore"`

	Model *struct {
		Primary string    `yaml:"primary"`
		Strings []string  `yaml:"strings"`
		Floats  []float32 `yaml:"floats"`
		Flags   []bool    `yaml:"flags"`
		Colors  []uint32  `yaml:"colors"`
	} `yaml:"model"`

	Glint          *bool          `yaml:"glint"`
	Rarity         string         `yaml:"rarity"`
	MaxStackSize   *int           `yaml:"maxStackSize"`
	Indestructible bool           `yaml:"indestructible"`
	Modifiers      map[string]int `yaml:"modifiers"`
	HideAllInfo    bool           `yaml:"hideAllInfo"`
	HideSecondary  bool           `yaml:"hideSecondaryInfo"`

	Slot      *int  `yaml:"slot"`
	Locked    *bool `yaml:"locked"`
	Droppable *bool `yaml:"droppable"`
	Movable   *bool `yaml:"movable"`

	Metadata map[string]any `yaml:"metadata"`
}

func (r defRecord) toDefinition(identity string) item.Definition {
	def := item.NewDefinition(identity, r.BaseKind)
	def.Display = r.Display
	def.LoreLines = r.Lore
	def.GlintOverride = r.Glint
	def.RarityTier = r.Rarity
	def.MaxStackSize = r.MaxStackSize
	def.Indestructible = r.Indestructible
	def.Modifiers = r.Modifiers
	def.HideAllInfo = r.HideAllInfo
	def.HideSecondaryInfo = r.HideSecondary
	def.Metadata = r.Metadata

	if r.Model != nil {
		def.VisualModel = &item.VisualModel{
			PrimaryModel: r.Model.Primary,
			Strings:      r.Model.Strings,
			Floats:       r.Model.Floats,
			Flags:        r.Model.Flags,
			Colors:       r.Model.Colors,
		}
	}

	if r.Slot != nil {
		def.DefaultSlot = *r.Slot
	}
	if r.Locked != nil {
		def.DefaultLocked = *r.Locked
	}
	if r.Droppable != nil {
		def.DefaultDroppable = *r.Droppable
	}
	if r.Movable != nil {
		def.DefaultMovable = *r.Movable
	}

	return def
}

// LoadItems reads and validates all item definitions from a YAML file.
// Any invalid entry fails the whole load so startup aborts on bad config.
func LoadItems(path string) ([]item.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items config: %w", err)
	}
	return ParseItems(data)
}

// ParseItems parses YAML of the form:
//
//	items:
//	  lobby.compass:
//	    baseKind: COMPASS
//	    ...
//
// Definitions are returned in document order.
func ParseItems(data []byte) ([]item.Definition, error) {
	var doc struct {
		Items yaml.Node `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse items config: %w", err)
	}

	if doc.Items.Kind == 0 {
		return nil, nil
	}
	if doc.Items.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse items config: 'items' must be a mapping")
	}

	// A mapping node stores alternating key/value children; walking it
	// directly keeps the document order.
	defs := make([]item.Definition, 0, len(doc.Items.Content)/2)
	for i := 0; i+1 < len(doc.Items.Content); i += 2 {
		keyNode := doc.Items.Content[i]
		valNode := doc.Items.Content[i+1]

		var record defRecord
		if err := valNode.Decode(&record); err != nil {
			return nil, fmt.Errorf("parse item '%s': %w", keyNode.Value, err)
		}

		def := record.toDefinition(keyNode.Value)
		if err := def.Validate(); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}
