package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedProvider wraps another Provider with an in-memory LRU so repeated
// compiles for the same owner do not hit the upstream endpoint every time.
// Only successful, complete resolutions are cached; failures and partial
// profiles always retry upstream.
type CachedProvider struct {
	upstream Provider
	lru      *expirable.LRU[uuid.UUID, Profile]
}

// NewCachedProvider creates a caching wrapper with the given capacity and TTL.
func NewCachedProvider(upstream Provider, size int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		upstream: upstream,
		lru:      expirable.NewLRU[uuid.UUID, Profile](size, nil, ttl),
	}
}

// Resolve returns a cached profile when present, otherwise resolves upstream.
func (p *CachedProvider) Resolve(ctx context.Context, ref OwnerRef) (Profile, error) {
	if prof, ok := p.lru.Get(ref.ID); ok {
		return prof, nil
	}

	prof, err := p.upstream.Resolve(ctx, ref)
	if err != nil {
		return Profile{}, err
	}
	if prof.Complete {
		p.lru.Add(ref.ID, prof)
	}
	return prof, nil
}

// Invalidate drops a single owner from the cache.
func (p *CachedProvider) Invalidate(id uuid.UUID) {
	p.lru.Remove(id)
}
