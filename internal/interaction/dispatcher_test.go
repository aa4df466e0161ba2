package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/item"
)

func compileStack(t *testing.T, identity string) *host.Stack {
	t.Helper()
	b := builder.New(nil, nil)
	stack, err := b.Build(context.Background(), item.NewDefinition(identity, "COMPASS"), nil, nil)
	require.NoError(t, err)
	return stack
}

func interactEvent(actor *host.Actor, stack *host.Stack, action host.Action) *host.InteractEvent {
	return &host.InteractEvent{Actor: actor, Action: action, Hand: host.HandMain, Item: stack}
}

func TestDispatchInvokesMatchingCallbacks(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	var calls []Category
	d.Register("lobby.compass", PrimaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		calls = append(calls, m)
		assert.Same(t, actor, a)
		assert.Same(t, stack, s)
		return nil
	})
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		calls = append(calls, m)
		return nil
	})
	d.Register("lobby.compass", SecondaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		calls = append(calls, m)
		return nil
	})

	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionPrimary))

	assert.Equal(t, []Category{PrimaryClick, AnyClick}, calls, "matching callbacks run in registration order")
}

func TestDispatchRegistrationOrderSurvivesFailure(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	var calls []string
	d.Register("lobby.compass", PrimaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Register("lobby.compass", PrimaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		calls = append(calls, "second")
		return nil
	})

	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionPrimary))
	assert.Equal(t, []string{"first", "second"}, calls, "failure in the first callback does not stop the second")
}

func TestDispatchRecoversPanickingCallback(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	ran := false
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		panic("callback bug")
	})
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		ran = true
		return nil
	})

	assert.NotPanics(t, func() {
		d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionPrimary))
	})
	assert.True(t, ran)

	// The dispatcher keeps handling future events.
	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionSecondary))
}

func TestDispatchIgnoresOffHandAndPhysical(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	called := 0
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		called++
		return nil
	})

	offHand := interactEvent(actor, stack, host.ActionPrimary)
	offHand.Hand = host.HandOff
	d.HandleInteract(context.Background(), offHand)
	assert.Equal(t, 0, called, "off-hand echoes are ignored")

	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionPhysical))
	assert.Equal(t, 0, called, "physical triggers are ignored")
}

func TestDispatchIgnoresUnrecognizedStacks(t *testing.T) {
	d := NewDispatcher()
	actor := host.NewActor("Steve")

	called := 0
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		called++
		return nil
	})

	d.HandleInteract(context.Background(), interactEvent(actor, host.NewStack(host.KindStick), host.ActionPrimary))
	d.HandleInteract(context.Background(), interactEvent(actor, nil, host.ActionPrimary))
	assert.Equal(t, 0, called)
}

func TestDispatchSneakStateRouting(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	var exact, shifted int
	d.Register("lobby.compass", SecondaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		exact++
		return nil
	})
	d.Register("lobby.compass", ShiftSecondary, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		shifted++
		return nil
	})

	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionSecondary))
	assert.Equal(t, 1, exact)
	assert.Equal(t, 0, shifted)

	actor.Sneaking = true
	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionSecondary))
	assert.Equal(t, 1, exact)
	assert.Equal(t, 1, shifted)
}

func TestUnregisterAll(t *testing.T) {
	d := NewDispatcher()
	stack := compileStack(t, "lobby.compass")
	actor := host.NewActor("Steve")

	called := 0
	d.Register("lobby.compass", AnyClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		called++
		return nil
	})
	d.Register("lobby.compass", PrimaryClick, func(ctx context.Context, a *host.Actor, s *host.Stack, m Category) error {
		called++
		return nil
	})

	d.UnregisterAll("lobby.compass")
	d.HandleInteract(context.Background(), interactEvent(actor, stack, host.ActionPrimary))
	assert.Equal(t, 0, called)
}
