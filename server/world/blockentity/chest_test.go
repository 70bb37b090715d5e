package blockentity

import (
	"testing"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
)

func TestNewChestWithItemsFillsLeadingSlots(t *testing.T) {
	items := []block.ItemStack{
		{ID: int16(block.IronOre), Count: 1},
		{ID: int16(block.Log), Count: 4},
	}
	c := NewChestWithItems(cube.Pos{1, 2, 3}, items)

	if c.Slots[0] != items[0] || c.Slots[1] != items[1] {
		t.Fatalf("leading slots not filled with the given items: %+v", c.Slots[:2])
	}
	for i := 2; i < ChestSlots; i++ {
		if !c.Slots[i].Empty() {
			t.Fatalf("slot %d should be empty, got %+v", i, c.Slots[i])
		}
	}
	if c.Pos() != (cube.Pos{1, 2, 3}) {
		t.Fatalf("Pos() = %v, want {1,2,3}", c.Pos())
	}
	if c.BlockID() != uint8(block.Chest) {
		t.Fatalf("BlockID() = %d, want Chest", c.BlockID())
	}
}

func TestNewChestWithItemsDropsOverflow(t *testing.T) {
	items := make([]block.ItemStack, ChestSlots+5)
	for i := range items {
		items[i] = block.ItemStack{ID: int16(block.Log), Count: 1}
	}
	c := NewChestWithItems(cube.Pos{0, 0, 0}, items)
	for i := 0; i < ChestSlots; i++ {
		if c.Slots[i].Empty() {
			t.Fatalf("slot %d unexpectedly empty", i)
		}
	}
}
