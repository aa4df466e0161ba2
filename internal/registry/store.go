// Package registry holds the in-memory definition store. Registration may
// happen at any time after startup, from any goroutine, so every operation
// is safe under concurrent read/write.
package registry

import (
	"context"
	"sync"

	"github.com/pharogames/itemforge/internal/item"
	"github.com/pharogames/itemforge/internal/logger"
)

// Store maps identities to item definitions. Last writer wins; overwrites
// and unknown unregisters are logged, never errors.
type Store struct {
	mu   sync.RWMutex
	defs map[string]item.Definition
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{defs: make(map[string]item.Definition)}
}

// Register adds or replaces a definition. An invalid definition is rejected
// with item.ErrInvalidDefinition.
func (s *Store) Register(ctx context.Context, def item.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	_, exists := s.defs[def.Identity]
	s.defs[def.Identity] = def
	s.mu.Unlock()

	if exists {
		logger.FromContext(ctx).Warn(LogMsgOverwritingDefinition, "identity", def.Identity)
	}
	return nil
}

// Unregister removes a definition. Unknown identities are a warned no-op;
// stacks already compiled from the definition are unaffected.
func (s *Store) Unregister(ctx context.Context, identity string) {
	s.mu.Lock()
	_, exists := s.defs[identity]
	delete(s.defs, identity)
	s.mu.Unlock()

	if !exists {
		logger.FromContext(ctx).Warn(LogMsgUnregisterUnknown, "identity", identity)
	}
}

// Get returns the definition for identity, if registered.
func (s *Store) Get(identity string) (item.Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[identity]
	return def, ok
}

// IDs returns a point-in-time snapshot of all registered identities.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.defs))
	for id := range s.defs {
		ids = append(ids, id)
	}
	return ids
}

// All returns a point-in-time snapshot of all registered definitions.
func (s *Store) All() []item.Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defs := make([]item.Definition, 0, len(s.defs))
	for _, def := range s.defs {
		defs = append(defs, def)
	}
	return defs
}

// Len returns the number of registered definitions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}
