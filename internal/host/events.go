package host

// Cancellable is embedded by every veto-able event.
type Cancellable struct {
	cancelled bool
}

// Cancel vetoes the event. The host runtime discards the mutation.
func (c *Cancellable) Cancel() {
	c.cancelled = true
}

// Cancelled reports whether the event was vetoed.
func (c *Cancellable) Cancelled() bool {
	return c.cancelled
}

// ClickEvent is a container click: a slot-to-slot move, a cursor swap, or a
// number-key hotbar swap when HotbarButton >= 0.
type ClickEvent struct {
	Cancellable
	Actor        *Actor
	Slot         int
	Current      *Stack // content of the clicked slot
	Cursor       *Stack // stack being carried by the cursor
	HotbarButton int    // -1 when the click is not a hotbar swap
	HotbarStack  *Stack // content of the hotbar slot being swapped in
}

// DragEvent distributes a carried stack across several slots in one gesture.
type DragEvent struct {
	Cancellable
	Actor *Actor
	Added []*Stack // the stacks as they would land, one per affected slot
}

// DropEvent is an actor dropping a stack out of a container.
type DropEvent struct {
	Cancellable
	Actor   *Actor
	Dropped *Stack
}

// HandSwapEvent exchanges the main-hand and off-hand stacks.
type HandSwapEvent struct {
	Cancellable
	Actor    *Actor
	MainHand *Stack
	OffHand  *Stack
}

// Action is the raw interaction kind delivered by the host.
type Action int

const (
	// ActionPrimary is the primary (attack/left) interaction.
	ActionPrimary Action = iota
	// ActionSecondary is the secondary (use/right) interaction.
	ActionSecondary
	// ActionPhysical is a non-deliberate trigger (stepping on a plate).
	ActionPhysical
)

// Hand distinguishes which hand performed an interaction. The host echoes
// most interactions once per hand.
type Hand int

const (
	HandMain Hand = iota
	HandOff
)

// InteractEvent is a deliberate actor interaction with a held stack.
type InteractEvent struct {
	Cancellable
	Actor  *Actor
	Action Action
	Hand   Hand
	Item   *Stack
}
