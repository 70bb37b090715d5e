package blockentity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// smeltResult maps a raw-ore input id to the smelted output stack, the
// small fixed recipe table spec.md §4.7 calls for.
var smeltResult = map[int16]block.ItemStack{
	int16(block.IronOre):     {ID: int16(block.IronOre), Meta: 1, Count: 1},
	int16(block.GoldOre):     {ID: int16(block.GoldOre), Meta: 1, Count: 1},
	int16(block.Sand):        {ID: int16(block.Glass), Count: 1},
	int16(block.Cobblestone): {ID: int16(block.Stone), Count: 1},
}

const (
	furnaceInputSlot = 0
	furnaceFuelSlot  = 1
	furnaceOutSlot   = 2
	smeltTicks       = 200
	fuelBurnTicks    = 1600 // one piece of coal
)

// Furnace smelts one input stack at a time against a fuel stack, advancing
// burnTime down and cookProgress up every tick it has both fuel and a valid
// recipe match, per spec.md §4.7.
type Furnace struct {
	pos          cube.Pos
	Burning      bool
	Slots        [3]block.ItemStack // input, fuel, output
	burnTime     int
	cookProgress int
}

// NewFurnace returns an unlit, empty furnace at pos.
func NewFurnace(pos cube.Pos) *Furnace {
	return &Furnace{pos: pos}
}

func (f *Furnace) Pos() cube.Pos { return f.pos }

func (f *Furnace) BlockID() uint8 {
	if f.Burning {
		return uint8(block.BurningFurnace)
	}
	return uint8(block.Furnace)
}

// Tick advances smelting state by one tick (spec.md §4.7): consumes fuel
// when lit, advances cook progress against the current recipe match, and
// emits the output stack once cookProgress reaches smeltTicks.
func (f *Furnace) Tick(w *world.World, currentTick int64) {
	in := f.Slots[furnaceInputSlot]
	result, hasRecipe := smeltResult[in.ID]
	hasRecipe = hasRecipe && !in.Empty()

	if f.burnTime <= 0 {
		if hasRecipe && !f.Slots[furnaceFuelSlot].Empty() && f.outputAccepts(result) {
			f.consumeFuel()
		} else {
			f.Burning = false
			f.cookProgress = 0
			return
		}
	}

	f.Burning = true
	f.burnTime--

	if !hasRecipe || !f.outputAccepts(result) {
		f.cookProgress = 0
		return
	}
	f.cookProgress++
	if f.cookProgress >= smeltTicks {
		f.cookProgress = 0
		f.consumeInput()
		f.addOutput(result)
	}
}

func (f *Furnace) outputAccepts(result block.ItemStack) bool {
	out := f.Slots[furnaceOutSlot]
	return out.Empty() || (out.ID == result.ID && out.Meta == result.Meta)
}

func (f *Furnace) consumeFuel() {
	f.Slots[furnaceFuelSlot].Count--
	if f.Slots[furnaceFuelSlot].Count <= 0 {
		f.Slots[furnaceFuelSlot] = block.EmptyStack
	}
	f.burnTime = fuelBurnTicks
}

func (f *Furnace) consumeInput() {
	f.Slots[furnaceInputSlot].Count--
	if f.Slots[furnaceInputSlot].Count <= 0 {
		f.Slots[furnaceInputSlot] = block.EmptyStack
	}
}

func (f *Furnace) addOutput(result block.ItemStack) {
	out := &f.Slots[furnaceOutSlot]
	if out.Empty() {
		*out = result
		return
	}
	out.Count += result.Count
}
