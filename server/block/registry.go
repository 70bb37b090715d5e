// Package block is the static block registry: id -> material, collision
// boxes, metadata helpers and drop policy (SPEC_FULL §2 "Block registry").
// Interaction semantics for a given id are expressed entirely through the
// accessor functions in metadata.go, as spec.md §6 requires ("per-block
// metadata bit layouts ... treated as opaque accessors").
package block

import (
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/internal/legacyrand"
)

// ID is a legacy block id, 0-255.
type ID uint8

const (
	Air ID = iota
	Stone
	Grass
	Dirt
	Cobblestone
	Planks
	Sapling
	Bedrock
	Water
	StillWater
	Lava
	StillLava
	Sand
	Gravel
	GoldOre
	IronOre
	CoalOre
	Log
	Leaves
	Glass
	LapisOre
	LapisBlock
	Sandstone
	Chest
	DiamondOre
	DiamondBlock
	Furnace
	BurningFurnace
	Wool
	TallGrass
	Torch
	Fire
	MobSpawner
	Ice
	SnowBlock
	Cactus
	MossyCobblestone
	Obsidian
	Door
	Lever
	RedstoneTorch
	RedstoneRepeater
	SignPost
	Piston
)

// Type describes the static properties shared by every block sharing an id.
type Type struct {
	Name string
	Material
	// BBoxes returns the collision boxes for a block with the given metadata,
	// translated so the minimum corner sits at the origin; nil means the
	// block has no collision (air, torches, tall grass, ...).
	BBoxes func(meta uint8) []cube.BBox
	// RandomTick marks a block as wanting the per-chunk random tick sample
	// described in spec.md §4.1.
	RandomTick bool
	// Drops returns the items dropped when the block is broken with the
	// given metadata. A nil Drops means "drop self, one of it".
	Drops func(meta uint8, r *legacyrand.Rand) []ItemStack
}

var registry = map[ID]Type{}

// Register installs t under id, overwriting any previous registration. Called
// from the init() below; tests may register fixtures directly.
func Register(id ID, t Type) {
	if t.Name == "" {
		t.Name = "unknown"
	}
	registry[id] = t
}

// Lookup returns the Type registered for id, or the air sentinel if the id is
// unknown — spec.md §7 requires block queries against missing data to return
// "air, zero metadata" rather than panicking.
func Lookup(id ID) Type {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[Air]
}

// FullCube is the standard full-block collision box used by most solid
// blocks.
var FullCube = []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}

func solidBBoxes(uint8) []cube.BBox { return FullCube }

func noBBoxes(uint8) []cube.BBox { return nil }

func dropSelf(id ID) func(uint8, *legacyrand.Rand) []ItemStack {
	return func(meta uint8, _ *legacyrand.Rand) []ItemStack {
		return []ItemStack{{ID: int16(id), Meta: int16(meta), Count: 1}}
	}
}

func init() {
	Register(Air, Type{Name: "air", Material: MaterialAir, BBoxes: noBBoxes})
	Register(Stone, Type{Name: "stone", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Cobblestone)})
	Register(Grass, Type{Name: "grass", Material: MaterialSolid, BBoxes: solidBBoxes, RandomTick: true, Drops: dropSelf(Dirt)})
	Register(Dirt, Type{Name: "dirt", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Dirt)})
	Register(Cobblestone, Type{Name: "cobblestone", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Cobblestone)})
	Register(MossyCobblestone, Type{Name: "mossy_cobblestone", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(MossyCobblestone)})
	Register(Planks, Type{Name: "planks", Material: MaterialFlammableSolid, BBoxes: solidBBoxes, Drops: dropSelf(Planks)})
	Register(Sapling, Type{Name: "sapling", Material: MaterialAir, BBoxes: noBBoxes, RandomTick: true})
	Register(Bedrock, Type{Name: "bedrock", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: func(uint8, *legacyrand.Rand) []ItemStack { return nil }})
	Register(Water, Type{Name: "water", Material: MaterialLiquid, BBoxes: noBBoxes, RandomTick: true})
	Register(StillWater, Type{Name: "still_water", Material: MaterialLiquid, BBoxes: noBBoxes, RandomTick: true})
	Register(Lava, Type{Name: "lava", Material: MaterialLiquid, BBoxes: noBBoxes, RandomTick: true})
	Register(StillLava, Type{Name: "still_lava", Material: MaterialLiquid, BBoxes: noBBoxes, RandomTick: true})
	Register(Sand, Type{Name: "sand", Material: Material{Solid: true, Opaque: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, RandomTick: true, Drops: dropSelf(Sand)})
	Register(Gravel, Type{Name: "gravel", Material: Material{Solid: true, Opaque: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, RandomTick: true, Drops: dropSelf(Gravel)})
	Register(GoldOre, Type{Name: "gold_ore", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(GoldOre)})
	Register(IronOre, Type{Name: "iron_ore", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(IronOre)})
	Register(CoalOre, Type{Name: "coal_ore", Material: MaterialSolid, BBoxes: solidBBoxes})
	Register(Log, Type{Name: "log", Material: MaterialFlammableSolid, BBoxes: solidBBoxes, Drops: dropSelf(Log)})
	Register(Leaves, Type{Name: "leaves", Material: Material{Solid: true, Opaque: false, Flammable: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, RandomTick: true})
	Register(Glass, Type{Name: "glass", Material: Material{Solid: true, Slipperiness: 0.6}, BBoxes: solidBBoxes})
	Register(LapisOre, Type{Name: "lapis_ore", Material: MaterialSolid, BBoxes: solidBBoxes})
	Register(LapisBlock, Type{Name: "lapis_block", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(LapisBlock)})
	Register(Sandstone, Type{Name: "sandstone", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Sandstone)})
	Register(Chest, Type{Name: "chest", Material: Material{Solid: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, Drops: dropSelf(Chest)})
	Register(DiamondOre, Type{Name: "diamond_ore", Material: MaterialSolid, BBoxes: solidBBoxes})
	Register(DiamondBlock, Type{Name: "diamond_block", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(DiamondBlock)})
	Register(Furnace, Type{Name: "furnace", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Furnace)})
	Register(BurningFurnace, Type{Name: "burning_furnace", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Furnace)})
	Register(Wool, Type{Name: "wool", Material: Material{Solid: true, Flammable: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, Drops: dropSelf(Wool)})
	Register(TallGrass, Type{Name: "tall_grass", Material: Material{Flammable: true, Slipperiness: 0.6}, BBoxes: noBBoxes, RandomTick: true})
	Register(Torch, Type{Name: "torch", Material: MaterialAir, BBoxes: noBBoxes, RandomTick: true, Drops: dropSelf(Torch)})
	Register(Fire, Type{Name: "fire", Material: MaterialAir, BBoxes: noBBoxes, RandomTick: true, Drops: func(uint8, *legacyrand.Rand) []ItemStack { return nil }})
	Register(MobSpawner, Type{Name: "mob_spawner", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: func(uint8, *legacyrand.Rand) []ItemStack { return nil }})
	Register(Ice, Type{Name: "ice", Material: MaterialIce, BBoxes: solidBBoxes})
	Register(SnowBlock, Type{Name: "snow_block", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(SnowBlock)})
	Register(Cactus, Type{Name: "cactus", Material: Material{Solid: true, Slipperiness: 0.6}, BBoxes: solidBBoxes, RandomTick: true, Drops: dropSelf(Cactus)})
	Register(Obsidian, Type{Name: "obsidian", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: dropSelf(Obsidian)})
	Register(Door, Type{Name: "door", Material: Material{Solid: true, Slipperiness: 0.6}, BBoxes: doorBBoxes, Drops: doorDrops})
	Register(Lever, Type{Name: "lever", Material: MaterialAir, BBoxes: noBBoxes, Drops: dropSelf(Lever)})
	Register(RedstoneTorch, Type{Name: "redstone_torch", Material: MaterialAir, BBoxes: noBBoxes, RandomTick: true, Drops: dropSelf(RedstoneTorch)})
	Register(RedstoneRepeater, Type{Name: "redstone_repeater", Material: MaterialAir, BBoxes: noBBoxes, RandomTick: true, Drops: dropSelf(RedstoneRepeater)})
	Register(SignPost, Type{Name: "sign_post", Material: MaterialAir, BBoxes: noBBoxes, Drops: func(uint8, *legacyrand.Rand) []ItemStack { return nil }})
	Register(Piston, Type{Name: "piston", Material: MaterialSolid, BBoxes: solidBBoxes, Drops: func(uint8, *legacyrand.Rand) []ItemStack { return nil }})
}

func doorBBoxes(meta uint8) []cube.BBox {
	if DoorOpen(meta) {
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1, 0.2)}
	}
	return FullCube
}

func doorDrops(meta uint8, _ *legacyrand.Rand) []ItemStack {
	if DoorUpper(meta) {
		// The lower half carries the item; breaking the upper half drops
		// nothing on its own (reproduces the reference door behaviour).
		return nil
	}
	return []ItemStack{{ID: int16(Door), Count: 1}}
}
