package host

import "strings"

// Rarity is the host's item rarity tier. It controls name color in the
// client and nothing else.
type Rarity string

const (
	RarityCommon   Rarity = "COMMON"
	RarityUncommon Rarity = "UNCOMMON"
	RarityRare     Rarity = "RARE"
	RarityEpic     Rarity = "EPIC"
)

var knownRarities = map[Rarity]struct{}{
	RarityCommon:   {},
	RarityUncommon: {},
	RarityRare:     {},
	RarityEpic:     {},
}

// LookupRarity resolves a rarity tier name case-insensitively.
func LookupRarity(name string) (Rarity, bool) {
	r := Rarity(strings.ToUpper(strings.TrimSpace(name)))
	_, ok := knownRarities[r]
	return r, ok
}
