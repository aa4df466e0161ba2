package profile

import (
	"context"

	"github.com/google/uuid"
)

// OwnerRef identifies the owner whose visual profile should be resolved.
// Name is optional and only used as a display hint.
type OwnerRef struct {
	ID   uuid.UUID
	Name string
}

// Property is a single signed attribute of a visual profile, typically the
// texture payload.
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// Profile is an owner's resolved visual profile. Complete is false when the
// provider could not supply textures; such profiles are still usable, the
// client falls back to a default visual.
type Profile struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
	Complete   bool       `json:"-"`
}

// Provider resolves owner references to visual profiles. Resolution is
// synchronous and may fail; callers decide whether failure is fatal.
type Provider interface {
	Resolve(ctx context.Context, ref OwnerRef) (Profile, error)
}
