package host

import "strings"

// Kind is a base-object kind recognized by the host runtime. Every stack is
// built on exactly one kind.
type Kind string

// Known kinds. The table mirrors what the host runtime ships with; custom
// catalogs never extend it at runtime.
const (
	KindCompass      Kind = "COMPASS"
	KindClock        Kind = "CLOCK"
	KindPaper        Kind = "PAPER"
	KindBook         Kind = "BOOK"
	KindStick        Kind = "STICK"
	KindEmerald      Kind = "EMERALD"
	KindNetherStar   Kind = "NETHER_STAR"
	KindPlayerHead   Kind = "PLAYER_HEAD"
	KindWhiteBanner  Kind = "WHITE_BANNER"
	KindDiamondSword Kind = "DIAMOND_SWORD"
	KindBow          Kind = "BOW"
	KindShield       Kind = "SHIELD"
	KindChest        Kind = "CHEST"
	KindEnderPearl   Kind = "ENDER_PEARL"
	KindFirework     Kind = "FIREWORK_ROCKET"
)

var knownKinds = map[Kind]struct{}{
	KindCompass:      {},
	KindClock:        {},
	KindPaper:        {},
	KindBook:         {},
	KindStick:        {},
	KindEmerald:      {},
	KindNetherStar:   {},
	KindPlayerHead:   {},
	KindWhiteBanner:  {},
	KindDiamondSword: {},
	KindBow:          {},
	KindShield:       {},
	KindChest:        {},
	KindEnderPearl:   {},
	KindFirework:     {},
}

// LookupKind resolves a kind name case-insensitively against the host's
// known-kind table.
func LookupKind(name string) (Kind, bool) {
	k := Kind(strings.ToUpper(strings.TrimSpace(name)))
	_, ok := knownKinds[k]
	return k, ok
}

// IsPlayerLikeness reports whether stacks of this kind render an owner's
// visual profile.
func (k Kind) IsPlayerLikeness() bool {
	return k == KindPlayerHead
}
