package legacygen

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/blockentity"
)

// Dungeon carves a small walled room with one or two loot chests and a mob
// spawner, reproducing the validation/carve/chest/spawner sequence of
// spec.md §4.3.
type Dungeon struct {
	Chance float64
	// Spawn is forwarded to the installed blockentity.Spawner so it can
	// create entities without package legacygen importing package entity
	// (which already depends on world).
	Spawn blockentity.SpawnFunc
}

// rollLoot draws a single dungeon chest stack, re-derived arm-for-arm from
// gen_chest_stack (mc173/src/gen/dungeon.rs): a single next_int_bounded(11)
// roll selects one of 11 outcomes, three of which (7, 8, 9) are themselves
// gated behind a further roll that, on failure, yields an empty stack
// rather than falling back to some other item — about a fifth of all draws
// from this table place nothing in the slot. Reproduces the source's exact PRNG
// consumption, not an invented weighted table.
func rollLoot(r *legacyrand.Rand) block.ItemStack {
	switch r.Int31n(11) {
	case 0:
		return block.ItemStack{ID: block.Saddle, Count: 1}
	case 1:
		return block.ItemStack{ID: block.IronIngot, Count: int8(r.Int31n(4) + 1)}
	case 2, 3:
		return block.ItemStack{ID: block.Bread, Count: 1}
	case 4:
		return block.ItemStack{ID: block.Gunpowder, Count: int8(r.Int31n(4) + 1)}
	case 5:
		return block.ItemStack{ID: block.String, Count: int8(r.Int31n(4) + 1)}
	case 6:
		return block.ItemStack{ID: block.Bucket, Count: 1}
	case 7:
		if r.Int31n(100) == 0 {
			return block.ItemStack{ID: block.GoldApple, Count: 1}
		}
	case 8:
		if r.Int31n(2) == 0 {
			return block.ItemStack{ID: block.Redstone, Count: int8(r.Int31n(4) + 1)}
		}
	case 9:
		if r.Int31n(10) == 0 {
			if r.Int31n(2) == 0 {
				return block.ItemStack{ID: block.Record13, Count: 1}
			}
			return block.ItemStack{ID: block.RecordCat, Count: 1}
		}
	case 10:
		return block.ItemStack{ID: block.Dye, Meta: 3, Count: 1}
	}
	return block.ItemStack{}
}

var spawnerKinds = []struct {
	Kind   string
	Weight int32
}{
	{"Skeleton", 25},
	{"Zombie", 50},
	{"Spider", 25},
}

func rollSpawnerKind(r *legacyrand.Rand) string {
	roll := r.Int31n(100)
	for _, e := range spawnerKinds {
		if roll < e.Weight {
			return e.Kind
		}
		roll -= e.Weight
	}
	return "Zombie"
}

func (d Dungeon) Populate(w *world.World, pcx, pcz int32, r *legacyrand.Rand) {
	if r.Float64() >= d.Chance {
		return
	}
	ox := int(pcx)*16 + int(r.Int31n(16)) + 8
	oz := int(pcz)*16 + int(r.Int31n(16)) + 8
	oy := int(r.Range(10, 50))
	origin := cube.Pos{ox, oy, oz}

	rx := int(r.Range(2, 3))
	rz := int(r.Range(2, 3))
	const height = 3

	if !d.solidFloorAndCeiling(w, origin, rx, rz, height) {
		return
	}
	airCount := d.wallRingAirCount(w, origin, rx, rz)
	if airCount < 1 || airCount > 5 {
		return
	}

	d.carve(w, origin, rx, rz, height, r)
	d.placeChests(w, origin, rx, rz, r)

	w.SetBlock(origin, uint8(block.MobSpawner), 0)
	w.SetBlockEntity(blockentity.NewSpawner(origin, rollSpawnerKind(r), d.Spawn))
}

func (d Dungeon) solidFloorAndCeiling(w *world.World, origin cube.Pos, rx, rz, height int) bool {
	for x := -rx - 1; x <= rx+1; x++ {
		for z := -rz - 1; z <= rz+1; z++ {
			floor := cube.Pos{origin[0] + x, origin[1] - 1, origin[2] + z}
			ceil := cube.Pos{origin[0] + x, origin[1] + height, origin[2] + z}
			fid, _ := w.Block(floor)
			cid, _ := w.Block(ceil)
			if !block.Lookup(block.ID(fid)).Solid || !block.Lookup(block.ID(cid)).Solid {
				return false
			}
		}
	}
	return true
}

func (d Dungeon) wallRingAirCount(w *world.World, origin cube.Pos, rx, rz int) int {
	count := 0
	for x := -rx - 1; x <= rx+1; x++ {
		for _, z := range []int{-rz - 1, rz + 1} {
			id, _ := w.Block(cube.Pos{origin[0] + x, origin[1], origin[2] + z})
			if id == uint8(block.Air) {
				count++
			}
		}
	}
	for z := -rz; z <= rz; z++ {
		for _, x := range []int{-rx - 1, rx + 1} {
			id, _ := w.Block(cube.Pos{origin[0] + x, origin[1], origin[2] + z})
			if id == uint8(block.Air) {
				count++
			}
		}
	}
	return count
}

func (d Dungeon) carve(w *world.World, origin cube.Pos, rx, rz, height int, r *legacyrand.Rand) {
	for x := -rx - 1; x <= rx+1; x++ {
		for z := -rz - 1; z <= rz+1; z++ {
			border := x == -rx-1 || x == rx+1 || z == -rz-1 || z == rz+1
			for y := -1; y <= height; y++ {
				pos := cube.Pos{origin[0] + x, origin[1] + y, origin[2] + z}
				switch {
				case y == -1 || y == height:
					w.SetBlock(pos, uint8(block.Cobblestone), 0)
				case border:
					w.SetBlock(pos, wallBlock(r), 0)
				default:
					w.SetBlock(pos, uint8(block.Air), 0)
				}
			}
		}
	}
}

// wallBlock picks cobblestone or, 25% of the time, mossy cobblestone, per
// spec.md §4.3.
func wallBlock(r *legacyrand.Rand) uint8 {
	if r.Float64() < 0.25 {
		return uint8(block.MossyCobblestone)
	}
	return uint8(block.Cobblestone)
}

// placeChests attempts up to 3x2 placements against a wall, each requiring
// exactly one solid horizontal neighbour (spec.md §4.3).
func (d Dungeon) placeChests(w *world.World, origin cube.Pos, rx, rz int, r *legacyrand.Rand) {
	placed := 0
	for attempt := 0; attempt < 3*2 && placed < 2; attempt++ {
		x := int(r.Range(int32(-rx), int32(rx)))
		z := int(r.Range(int32(-rz), int32(rz)))
		pos := cube.Pos{origin[0] + x, origin[1], origin[2] + z}
		if solidNeighbours(w, pos) != 1 {
			continue
		}
		w.SetBlock(pos, uint8(block.Chest), 0)
		items := make([]block.ItemStack, 8)
		for i := range items {
			items[i] = rollLoot(r)
		}
		w.SetBlockEntity(blockentity.NewChestWithItems(pos, items))
		placed++
	}
}

func solidNeighbours(w *world.World, pos cube.Pos) int {
	count := 0
	for _, f := range cube.Faces {
		if f == cube.FaceUp || f == cube.FaceDown {
			continue
		}
		id, _ := w.Block(pos.Side(f))
		if block.Lookup(block.ID(id)).Solid {
			count++
		}
	}
	return count
}
