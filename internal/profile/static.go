package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StaticProvider serves profiles from a fixed in-memory table. Useful for
// tests and offline runs.
type StaticProvider struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

// NewStaticProvider creates an empty static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{profiles: make(map[uuid.UUID]Profile)}
}

// Put registers or replaces a profile.
func (p *StaticProvider) Put(prof Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[prof.ID] = prof
}

// Resolve returns the stored profile or an error when the owner is unknown.
func (p *StaticProvider) Resolve(_ context.Context, ref OwnerRef) (Profile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	prof, ok := p.profiles[ref.ID]
	if !ok {
		return Profile{}, fmt.Errorf("no profile for %s", ref.ID)
	}
	return prof, nil
}
