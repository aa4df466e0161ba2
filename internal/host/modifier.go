package host

import "strings"

// Modifier is a host-recognized enchantment-like modifier, identified by a
// namespaced key. The default namespace is "core".
type Modifier string

const (
	ModifierSharpness  Modifier = "core:sharpness"
	ModifierProtection Modifier = "core:protection"
	ModifierEfficiency Modifier = "core:efficiency"
	ModifierUnbreaking Modifier = "core:unbreaking"
	ModifierThorns     Modifier = "core:thorns"
	ModifierLooting    Modifier = "core:looting"
	ModifierInfinity   Modifier = "core:infinity"
	ModifierPower      Modifier = "core:power"
	ModifierMending    Modifier = "core:mending"
	ModifierSilkTouch  Modifier = "core:silk_touch"
)

var knownModifiers = map[Modifier]struct{}{
	ModifierSharpness:  {},
	ModifierProtection: {},
	ModifierEfficiency: {},
	ModifierUnbreaking: {},
	ModifierThorns:     {},
	ModifierLooting:    {},
	ModifierInfinity:   {},
	ModifierPower:      {},
	ModifierMending:    {},
	ModifierSilkTouch:  {},
}

// LookupModifier resolves a modifier name case-insensitively. Both the bare
// form ("sharpness") and the namespaced form ("core:sharpness") are accepted.
func LookupModifier(name string) (Modifier, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	if !strings.Contains(key, ":") {
		key = "core:" + key
	}
	m := Modifier(key)
	_, ok := knownModifiers[m]
	return m, ok
}
