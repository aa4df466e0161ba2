// Package placeholder substitutes %key% tokens in display templates with
// per-actor values. The resolver is an optional collaborator: callers that
// have none simply skip substitution.
package placeholder

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/pharogames/itemforge/internal/host"
)

// Func produces the replacement value for one placeholder key.
type Func func(actor *host.Actor) (string, error)

// Resolver substitutes placeholders in a template for the given actor.
type Resolver interface {
	Apply(actor *host.Actor, template string) (string, error)
}

var tokenPattern = regexp.MustCompile(`%([a-z0-9_]+)%`)

// MapResolver resolves placeholders from a registered function table.
type MapResolver struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewMapResolver creates a resolver preloaded with the built-in actor
// placeholders %actor_name% and %actor_id%.
func NewMapResolver() *MapResolver {
	r := &MapResolver{funcs: make(map[string]Func)}
	r.Register("actor_name", func(a *host.Actor) (string, error) {
		return a.Name, nil
	})
	r.Register("actor_id", func(a *host.Actor) (string, error) {
		return a.ID.String(), nil
	})
	return r
}

// Register adds or replaces a placeholder function.
func (r *MapResolver) Register(key string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[key] = fn
}

// Apply substitutes every known %key% token. Unknown tokens are left as-is.
// The first failing placeholder aborts with an error; callers keep the
// original template in that case.
func (r *MapResolver) Apply(actor *host.Actor, template string) (string, error) {
	if actor == nil {
		return template, nil
	}

	// Snapshot under the lock, invoke outside it. Resolver funcs may call
	// Register themselves.
	r.mu.RLock()
	funcs := make(map[string]Func, len(r.funcs))
	for key, fn := range r.funcs {
		funcs[key] = fn
	}
	r.mu.RUnlock()

	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		if firstErr != nil {
			return token
		}
		key := token[1 : len(token)-1]
		fn, ok := funcs[key]
		if !ok {
			return token
		}
		value, err := fn(actor)
		if err != nil {
			firstErr = fmt.Errorf("placeholder %q: %w", key, err)
			return token
		}
		return value
	})
	if firstErr != nil {
		return template, firstErr
	}
	return out, nil
}
