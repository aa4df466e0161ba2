// Package catalog is the single boundary other code depends on. It composes
// the definition store, the stack builder, the protection enforcer, and the
// interaction dispatcher behind one service.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/interaction"
	"github.com/pharogames/itemforge/internal/item"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/metrics"
	"github.com/pharogames/itemforge/internal/protection"
	"github.com/pharogames/itemforge/internal/registry"
)

// ErrUnknownItem is returned when an identity has no registered definition.
var ErrUnknownItem = errors.New("unknown item")

// Service is the catalog facade.
type Service interface {
	// Create compiles a stack for the identity. actor and opts may be nil.
	Create(ctx context.Context, identity string, actor *host.Actor, opts *item.Overrides) (*host.Stack, error)
	// Give compiles a stack and places it into the actor's inventory: into
	// the resolved slot when valid, otherwise into the first free slot.
	// Returns the slot the stack landed in.
	Give(ctx context.Context, actor *host.Actor, identity string, opts *item.Overrides) (int, error)

	// IsRecognized reports whether the stack was produced by this catalog.
	IsRecognized(stack *host.Stack) bool
	// IdentityOf reads the stack's embedded identity.
	IdentityOf(stack *host.Stack) (string, bool)

	// GetDefinition returns the registered definition for an identity.
	GetDefinition(identity string) (item.Definition, bool)
	// IDs returns a snapshot of all registered identities.
	IDs() []string
	// RegisterDefinition adds or replaces a definition at runtime.
	RegisterDefinition(ctx context.Context, def item.Definition) error
	// UnregisterDefinition removes a definition. Stacks already compiled
	// from it are unaffected.
	UnregisterDefinition(ctx context.Context, identity string)

	// RegisterInteraction subscribes a callback to (identity, category).
	RegisterInteraction(identity string, category interaction.Category, handler interaction.Handler)
	// UnregisterInteractions drops every callback for the identity.
	UnregisterInteractions(identity string)

	// Protection exposes the enforcer handlers for the host event loop.
	Protection() *protection.Enforcer
	// Interactions exposes the dispatcher handler for the host event loop.
	Interactions() *interaction.Dispatcher
}

type service struct {
	store      *registry.Store
	builder    *builder.Builder
	enforcer   *protection.Enforcer
	dispatcher *interaction.Dispatcher
}

// NewService creates the catalog service around the given store and builder.
func NewService(store *registry.Store, b *builder.Builder) Service {
	return &service{
		store:      store,
		builder:    b,
		enforcer:   protection.NewEnforcer(),
		dispatcher: interaction.NewDispatcher(),
	}
}

func (s *service) Create(ctx context.Context, identity string, actor *host.Actor, opts *item.Overrides) (*host.Stack, error) {
	def, ok := s.store.Get(identity)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownItem, "identity", identity)
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownItem, identity)
	}
	return s.builder.Build(ctx, def, actor, opts)
}

func (s *service) Give(ctx context.Context, actor *host.Actor, identity string, opts *item.Overrides) (int, error) {
	def, ok := s.store.Get(identity)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownItem, "identity", identity)
		return -1, fmt.Errorf("%w: '%s'", ErrUnknownItem, identity)
	}

	stack, err := s.builder.Build(ctx, def, actor, opts)
	if err != nil {
		return -1, err
	}

	slot := opts.EffectiveSlot(def)
	if slot >= 0 && slot < actor.Inventory.Size() {
		if err := actor.Inventory.SetSlot(slot, stack); err != nil {
			return -1, err
		}
		return slot, nil
	}
	return actor.Inventory.Add(stack)
}

func (s *service) IsRecognized(stack *host.Stack) bool {
	return builder.IsRecognized(stack)
}

func (s *service) IdentityOf(stack *host.Stack) (string, bool) {
	return builder.IdentityOf(stack)
}

func (s *service) GetDefinition(identity string) (item.Definition, bool) {
	return s.store.Get(identity)
}

func (s *service) IDs() []string {
	return s.store.IDs()
}

func (s *service) RegisterDefinition(ctx context.Context, def item.Definition) error {
	if err := s.store.Register(ctx, def); err != nil {
		return err
	}
	metrics.DefinitionsRegistered.Set(float64(s.store.Len()))
	return nil
}

func (s *service) UnregisterDefinition(ctx context.Context, identity string) {
	s.store.Unregister(ctx, identity)
	metrics.DefinitionsRegistered.Set(float64(s.store.Len()))
}

func (s *service) RegisterInteraction(identity string, category interaction.Category, handler interaction.Handler) {
	s.dispatcher.Register(identity, category, handler)
}

func (s *service) UnregisterInteractions(identity string) {
	s.dispatcher.UnregisterAll(identity)
}

func (s *service) Protection() *protection.Enforcer {
	return s.enforcer
}

func (s *service) Interactions() *interaction.Dispatcher {
	return s.dispatcher
}
