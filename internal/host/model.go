package host

import (
	"fmt"
	"regexp"
	"strings"
)

// ModelRef is a structured reference to a client model, in "namespace:path"
// form. The bare form "path" resolves to the "core" namespace.
type ModelRef struct {
	Namespace string
	Path      string
}

var modelPartPattern = regexp.MustCompile(`^[a-z0-9_./-]+$`)

// ParseModelRef validates and splits a model reference string.
func ParseModelRef(s string) (ModelRef, error) {
	namespace := "core"
	path := strings.TrimSpace(s)
	if idx := strings.Index(path, ":"); idx >= 0 {
		namespace = path[:idx]
		path = path[idx+1:]
	}
	if !modelPartPattern.MatchString(namespace) || !modelPartPattern.MatchString(path) {
		return ModelRef{}, fmt.Errorf("malformed model reference %q", s)
	}
	return ModelRef{Namespace: namespace, Path: path}, nil
}

// String returns the canonical namespaced form.
func (m ModelRef) String() string {
	return m.Namespace + ":" + m.Path
}

// ModelData is the legacy multi-value model block used by resource-pack
// driven visuals.
type ModelData struct {
	Strings []string
	Floats  []float32
	Flags   []bool
	Colors  []Color
}

// Empty reports whether no field of the block carries a value.
func (m ModelData) Empty() bool {
	return len(m.Strings) == 0 && len(m.Floats) == 0 && len(m.Flags) == 0 && len(m.Colors) == 0
}
