// Package protection vetoes container mutations for stacks whose embedded
// policy forbids them. It is a pure event reactor: it reads stack metadata,
// never writes it, and keeps no state of its own.
package protection

import (
	"context"

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/metrics"
)

// Enforcer holds the handler set the host event loop registers. Attach its
// Handle* methods to the corresponding host events.
type Enforcer struct{}

// NewEnforcer creates an enforcer.
func NewEnforcer() *Enforcer {
	return &Enforcer{}
}

// shouldBlock applies the movement rule: block iff the stack carries an
// identity and is locked or not movable. Locked and movable are stored
// independently but locked yields the same blocking outcome.
func shouldBlock(stack *host.Stack) bool {
	if stack.Empty() || !builder.IsRecognized(stack) {
		return false
	}
	return builder.IsLocked(stack) || !builder.IsMovable(stack)
}

// shouldBlockDrop applies the drop rule: block iff the stack carries an
// identity and is not droppable.
func shouldBlockDrop(stack *host.Stack) bool {
	if stack.Empty() || !builder.IsRecognized(stack) {
		return false
	}
	return !builder.IsDroppable(stack)
}

// HandleClick vetoes slot moves, cursor swaps, and number-key hotbar swaps.
// Every stack the click could displace is checked; the first match cancels.
func (e *Enforcer) HandleClick(ctx context.Context, ev *host.ClickEvent) {
	if shouldBlock(ev.Current) || shouldBlock(ev.Cursor) {
		e.veto(ctx, &ev.Cancellable, metrics.EventClick)
		return
	}
	if ev.HotbarButton >= 0 && shouldBlock(ev.HotbarStack) {
		e.veto(ctx, &ev.Cancellable, metrics.EventClick)
	}
}

// HandleDrag vetoes drag-distributions that would land on any protected stack.
func (e *Enforcer) HandleDrag(ctx context.Context, ev *host.DragEvent) {
	for _, stack := range ev.Added {
		if shouldBlock(stack) {
			e.veto(ctx, &ev.Cancellable, metrics.EventDrag)
			return
		}
	}
}

// HandleDrop vetoes drops of non-droppable stacks. Locked and movable do not
// factor into drop decisions.
func (e *Enforcer) HandleDrop(ctx context.Context, ev *host.DropEvent) {
	if shouldBlockDrop(ev.Dropped) {
		e.veto(ctx, &ev.Cancellable, metrics.EventDrop)
	}
}

// HandleHandSwap vetoes main/off-hand swaps when either hand is protected.
func (e *Enforcer) HandleHandSwap(ctx context.Context, ev *host.HandSwapEvent) {
	if shouldBlock(ev.MainHand) || shouldBlock(ev.OffHand) {
		e.veto(ctx, &ev.Cancellable, metrics.EventHandSwap)
	}
}

func (e *Enforcer) veto(ctx context.Context, c *host.Cancellable, event string) {
	c.Cancel()
	metrics.MutationsBlocked.WithLabelValues(event).Inc()
	logger.FromContext(ctx).Debug(LogMsgMutationBlocked, "event", event)
}
