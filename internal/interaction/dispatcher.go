// Package interaction routes deliberate actor interactions to callbacks
// registered per item identity. Callback failures are isolated: one failing
// callback never stops the others, and never breaks the dispatcher.
package interaction

import (
	"context"
	"fmt"
	"sync"

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/metrics"
)

// Handler is an interaction callback. The category is the one that matched,
// which may be broader than the raw click (e.g. AnyClick).
type Handler func(ctx context.Context, actor *host.Actor, stack *host.Stack, matched Category) error

type entry struct {
	category Category
	handler  Handler
}

// Dispatcher keeps the registration table and handles raw interaction
// events. Registration may happen concurrently with event handling.
type Dispatcher struct {
	mu      sync.RWMutex
	entries map[string][]entry
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{entries: make(map[string][]entry)}
}

// Register appends a callback for (identity, category). Multiple callbacks
// for the same pair run in registration order.
func (d *Dispatcher) Register(identity string, category Category, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[identity] = append(d.entries[identity], entry{category: category, handler: handler})
}

// UnregisterAll removes every callback for the identity.
func (d *Dispatcher) UnregisterAll(identity string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, identity)
}

// HandleInteract resolves the held stack's identity and invokes every
// matching callback in registration order. Off-hand echoes and physical
// triggers are ignored.
func (d *Dispatcher) HandleInteract(ctx context.Context, ev *host.InteractEvent) {
	if ev.Hand != host.HandMain {
		return
	}
	if ev.Action == host.ActionPhysical {
		return
	}

	identity, ok := builder.IdentityOf(ev.Item)
	if !ok {
		return
	}

	d.mu.RLock()
	entries := append([]entry(nil), d.entries[identity]...)
	d.mu.RUnlock()
	if len(entries) == 0 {
		return
	}

	sneaking := ev.Actor != nil && ev.Actor.Sneaking

	for _, e := range entries {
		if !e.category.Matches(ev.Action, sneaking) {
			continue
		}
		d.invoke(ctx, identity, e, ev)
	}
}

// invoke runs one callback, converting both error returns and panics into
// logged, counted failures.
func (d *Dispatcher) invoke(ctx context.Context, identity string, e entry, ev *host.InteractEvent) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgCallbackPanicked, "identity", identity, "panic", fmt.Sprint(r))
			metrics.CallbackFailures.WithLabelValues(identity).Inc()
		}
	}()

	metrics.InteractionsDispatched.WithLabelValues(identity, string(e.category)).Inc()
	if err := e.handler(ctx, ev.Actor, ev.Item, e.category); err != nil {
		log.Error(LogMsgCallbackFailed, "identity", identity, "error", err)
		metrics.CallbackFailures.WithLabelValues(identity).Inc()
	}
}
