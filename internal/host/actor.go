package host

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInventoryFull is returned by Add when no slot is free.
var ErrInventoryFull = errors.New("inventory is full")

// DefaultInventorySize matches the host's standard player container.
const DefaultInventorySize = 36

// Inventory is a fixed-size slot container. A nil entry is an empty slot.
type Inventory struct {
	slots []*Stack
}

// NewInventory creates an inventory with the given slot count.
func NewInventory(size int) *Inventory {
	return &Inventory{slots: make([]*Stack, size)}
}

// Size returns the slot count.
func (inv *Inventory) Size() int {
	return len(inv.slots)
}

// Slot returns the stack at index i, or nil when empty or out of range.
func (inv *Inventory) Slot(i int) *Stack {
	if i < 0 || i >= len(inv.slots) {
		return nil
	}
	return inv.slots[i]
}

// SetSlot places a stack at index i, replacing any current content.
func (inv *Inventory) SetSlot(i int, s *Stack) error {
	if i < 0 || i >= len(inv.slots) {
		return fmt.Errorf("slot %d out of range [0,%d)", i, len(inv.slots))
	}
	inv.slots[i] = s
	return nil
}

// Add places a stack into the first free slot and returns its index.
func (inv *Inventory) Add(s *Stack) (int, error) {
	for i, cur := range inv.slots {
		if cur.Empty() {
			inv.slots[i] = s
			return i, nil
		}
	}
	return -1, ErrInventoryFull
}

// Actor is a player-likeness participant in the host runtime.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Sneaking  bool
	Inventory *Inventory
}

// NewActor creates an actor with a default-size inventory.
func NewActor(name string) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      name,
		Inventory: NewInventory(DefaultInventorySize),
	}
}
