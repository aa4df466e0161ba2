package protection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/item"
)

func boolPtr(v bool) *bool { return &v }

func compile(t *testing.T, locked, droppable, movable bool) *host.Stack {
	t.Helper()
	b := builder.New(nil, nil)
	def := item.NewDefinition("test.item", "COMPASS")
	stack, err := b.Build(context.Background(), def, nil, &item.Overrides{
		Locked:    boolPtr(locked),
		Droppable: boolPtr(droppable),
		Movable:   boolPtr(movable),
	})
	require.NoError(t, err)
	return stack
}

func TestHandleClickBlocksProtectedStacks(t *testing.T) {
	enforcer := NewEnforcer()
	ctx := context.Background()

	tests := []struct {
		name        string
		locked      bool
		movable     bool
		wantBlocked bool
	}{
		{name: "locked", locked: true, movable: true, wantBlocked: true},
		{name: "not movable", locked: false, movable: false, wantBlocked: true},
		{name: "locked and not movable", locked: true, movable: false, wantBlocked: true},
		{name: "free", locked: false, movable: true, wantBlocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := compile(t, tt.locked, true, tt.movable)

			ev := &host.ClickEvent{Slot: 3, Current: stack, HotbarButton: -1}
			enforcer.HandleClick(ctx, ev)
			assert.Equal(t, tt.wantBlocked, ev.Cancelled())
		})
	}
}

func TestHandleClickChecksCursorStack(t *testing.T) {
	enforcer := NewEnforcer()
	locked := compile(t, true, true, true)

	ev := &host.ClickEvent{Slot: 3, Current: nil, Cursor: locked, HotbarButton: -1}
	enforcer.HandleClick(context.Background(), ev)
	assert.True(t, ev.Cancelled(), "cursor stack must be checked too")
}

func TestHandleClickChecksHotbarSwapTarget(t *testing.T) {
	enforcer := NewEnforcer()
	locked := compile(t, true, true, true)

	ev := &host.ClickEvent{Slot: 3, HotbarButton: 2, HotbarStack: locked}
	enforcer.HandleClick(context.Background(), ev)
	assert.True(t, ev.Cancelled())

	// Same stack but no hotbar button: the hotbar slot is not in play.
	ev2 := &host.ClickEvent{Slot: 3, HotbarButton: -1, HotbarStack: locked}
	enforcer.HandleClick(context.Background(), ev2)
	assert.False(t, ev2.Cancelled())
}

func TestHandleClickIgnoresForeignStacks(t *testing.T) {
	enforcer := NewEnforcer()

	foreign := host.NewStack(host.KindStick)
	ev := &host.ClickEvent{Slot: 0, Current: foreign, HotbarButton: -1}
	enforcer.HandleClick(context.Background(), ev)
	assert.False(t, ev.Cancelled(), "stacks without identity are never blocked")
}

func TestHandleDrag(t *testing.T) {
	enforcer := NewEnforcer()
	free := compile(t, false, true, true)
	locked := compile(t, true, true, true)

	ev := &host.DragEvent{Added: []*host.Stack{free, nil, locked}}
	enforcer.HandleDrag(context.Background(), ev)
	assert.True(t, ev.Cancelled(), "any one protected stack blocks the whole drag")

	ev2 := &host.DragEvent{Added: []*host.Stack{free, free}}
	enforcer.HandleDrag(context.Background(), ev2)
	assert.False(t, ev2.Cancelled())
}

func TestHandleDropUsesDroppableOnly(t *testing.T) {
	enforcer := NewEnforcer()
	ctx := context.Background()

	t.Run("non-droppable blocked", func(t *testing.T) {
		stack := compile(t, false, false, true)
		ev := &host.DropEvent{Dropped: stack}
		enforcer.HandleDrop(ctx, ev)
		assert.True(t, ev.Cancelled())
	})

	t.Run("locked but droppable passes", func(t *testing.T) {
		// Drop events are evaluated solely on droppable.
		stack := compile(t, true, true, false)
		ev := &host.DropEvent{Dropped: stack}
		enforcer.HandleDrop(ctx, ev)
		assert.False(t, ev.Cancelled())
	})
}

func TestHandleHandSwap(t *testing.T) {
	enforcer := NewEnforcer()
	free := compile(t, false, true, true)
	immovable := compile(t, false, true, false)

	ev := &host.HandSwapEvent{MainHand: free, OffHand: immovable}
	enforcer.HandleHandSwap(context.Background(), ev)
	assert.True(t, ev.Cancelled(), "both hands are checked")

	ev2 := &host.HandSwapEvent{MainHand: free, OffHand: nil}
	enforcer.HandleHandSwap(context.Background(), ev2)
	assert.False(t, ev2.Cancelled())
}

func TestEnforcementIsReadOnly(t *testing.T) {
	enforcer := NewEnforcer()
	stack := compile(t, true, false, false)

	ev := &host.ClickEvent{Current: stack, HotbarButton: -1}
	enforcer.HandleClick(context.Background(), ev)
	require.True(t, ev.Cancelled())

	// Policy metadata is unchanged after enforcement.
	assert.True(t, builder.IsLocked(stack))
	assert.False(t, builder.IsDroppable(stack))
	assert.False(t, builder.IsMovable(stack))
}
