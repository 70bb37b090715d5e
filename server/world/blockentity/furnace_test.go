package blockentity

import (
	"testing"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

func TestFurnaceDoesNotBurnWithoutFuel(t *testing.T) {
	w := world.New("test", 1, world.Overworld, nil, nil)
	f := NewFurnace(cube.Pos{0, 0, 0})
	f.Slots[furnaceInputSlot] = block.ItemStack{ID: int16(block.IronOre), Count: 1}

	f.Tick(w, 0)

	if f.Burning {
		t.Fatalf("furnace should not ignite with an empty fuel slot")
	}
	if f.BlockID() != uint8(block.Furnace) {
		t.Fatalf("BlockID = %d, want unlit Furnace", f.BlockID())
	}
}

func TestFurnaceSmeltsAfterEnoughTicks(t *testing.T) {
	w := world.New("test", 1, world.Overworld, nil, nil)
	f := NewFurnace(cube.Pos{0, 0, 0})
	f.Slots[furnaceInputSlot] = block.ItemStack{ID: int16(block.IronOre), Count: 1}
	f.Slots[furnaceFuelSlot] = block.ItemStack{ID: int16(block.Log), Count: 1}

	for i := 0; i < smeltTicks+1; i++ {
		f.Tick(w, int64(i))
	}

	if !f.Burning {
		t.Fatalf("furnace should be burning after lighting with fuel")
	}
	if f.Slots[furnaceOutSlot].Empty() {
		t.Fatalf("expected a smelted output after %d ticks", smeltTicks)
	}
	if f.Slots[furnaceInputSlot].Count != 0 {
		t.Fatalf("input should be consumed once smelting completes")
	}
}
