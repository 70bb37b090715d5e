// Package inventory implements the fixed-size item-stack containers spec.md
// §4.8 needs to make WindowSetItem traffic and the dungeon loot table
// concrete: a chest, a crafting grid, an armor set, or a player's main
// inventory are all the same Inventory shape addressed by slot index.
package inventory

import (
	"fmt"
	"sync"

	"github.com/kitemc/server/server/block"
)

// Handler is notified of mutations made through an Inventory. Implementations
// must not call back into the Inventory they were notified by.
type Handler interface {
	// HandleSet is called before slot is overwritten with item. Returning
	// false vetoes the set, leaving the slot unchanged.
	HandleSet(inv *Inventory, slot int, item block.ItemStack) bool
}

// NopHandler is the default Handler, vetoing nothing.
type NopHandler struct{}

func (NopHandler) HandleSet(*Inventory, int, block.ItemStack) bool { return true }

// Inventory is a fixed-size array of item stacks, addressed by integer slot
// index the way a window's slots are on the wire (spec.md §4.8's "Window").
type Inventory struct {
	mu     sync.Mutex
	slots  []block.ItemStack
	handle Handler
}

// New returns an empty Inventory with the given number of slots.
func New(size int) *Inventory {
	return &Inventory{slots: make([]block.ItemStack, size), handle: NopHandler{}}
}

// Size returns the number of slots in the inventory.
func (inv *Inventory) Size() int { return len(inv.slots) }

// Item returns the stack at slot, or the empty-stack sentinel if slot is out
// of range.
func (inv *Inventory) Item(slot int) block.ItemStack {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if slot < 0 || slot >= len(inv.slots) {
		return block.EmptyStack
	}
	return inv.slots[slot]
}

// SetItem overwrites slot with item, running it past the installed Handler
// first. Returns an error if slot is out of range or the handler vetoes it.
func (inv *Inventory) SetItem(slot int, item block.ItemStack) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if slot < 0 || slot >= len(inv.slots) {
		return fmt.Errorf("inventory: slot %d out of range [0,%d)", slot, len(inv.slots))
	}
	if !wrapInventoryHandler(inv, inv.handle).HandleSet(inv, slot, item) {
		return fmt.Errorf("inventory: set at slot %d vetoed by handler", slot)
	}
	inv.slots[slot] = item
	return nil
}

// AddItem merges item into the first compatible stack(s) or empty slot(s),
// in slot order, per spec.md §4.8's "merge-on-set stacking". Returns the
// count that did not fit.
func (inv *Inventory) AddItem(item block.ItemStack) (leftover int8) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	remaining := item.Count
	for i, s := range inv.slots {
		if remaining == 0 {
			break
		}
		if s.Empty() {
			continue
		}
		if s.ID != item.ID || s.Meta != item.Meta {
			continue
		}
		room := int8(64) - s.Count
		if room <= 0 {
			continue
		}
		take := min(room, remaining)
		inv.slots[i].Count += take
		remaining -= take
	}
	for i, s := range inv.slots {
		if remaining == 0 {
			break
		}
		if !s.Empty() {
			continue
		}
		take := min(int8(64), remaining)
		inv.slots[i] = block.ItemStack{ID: item.ID, Meta: item.Meta, Count: take}
		remaining -= take
	}
	return remaining
}



// Handle installs h as the inventory's Handler, passed through any wrapper
// installed via SetHandlerWrap. A nil h installs NopHandler.
func (inv *Inventory) Handle(h Handler) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if h == nil {
		h = NopHandler{}
	}
	inv.handle = h
}

// Snapshot returns a value copy of every slot, in slot order, for persisting
// an OfflinePlayer's inventories (spec.md §4.5).
func (inv *Inventory) Snapshot() []block.ItemStack {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]block.ItemStack, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Restore overwrites every slot from snapshot, which must be the same length
// as previously captured by Snapshot; used when loading an OfflinePlayer.
func (inv *Inventory) Restore(snapshot []block.ItemStack) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	copy(inv.slots, snapshot)
}