// Package player implements the OfflinePlayer snapshot spec.md §4.5 describes
// (saved on disconnect/kick, restored on the next login) and the live
// ServerPlayer that wraps a spawned Human entity while a client is in the
// Playing state (spec.md §4.4).
package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/item/inventory"
)

// saveYOffset and stanceYOffset are the head-to-feet adjustments spec.md
// §4.5 documents: the saved snapshot stores pos raised by saveYOffset, and
// the wire-only "stance" field sent on restore is derived from the
// (recovered, unraised) entity pos plus stanceYOffset.
const (
	saveYOffset   = 1.72
	stanceYOffset = 1.62
)

const (
	MainInvSize  = 36
	ArmorInvSize = 4
	CraftInvSize = 9
)

// OfflinePlayer is the snapshot keyed by username spec.md §4.5 describes:
// created on first login, mutated only on disconnect or kick.
type OfflinePlayer struct {
	Username string
	World    string

	// Pos is stored raised by saveYOffset relative to the live entity
	// position; use RestorePos() below, not this field, outside Save/Restore.
	pos   mgl64.Vec3
	Yaw   float64
	Pitch float64

	Main  *inventory.Inventory
	Armor *inventory.Inventory
	Craft *inventory.Inventory

	Cursor   block.ItemStack
	HandSlot int
}

// New returns a freshly created OfflinePlayer at spawnPos, the snapshot
// spec.md §4.4 says is created the first time username logs in.
func New(username, world string, spawnPos mgl64.Vec3) *OfflinePlayer {
	return &OfflinePlayer{
		Username: username,
		World:    world,
		pos:      spawnPos.Add(mgl64.Vec3{0, saveYOffset, 0}),
		Main:     inventory.New(MainInvSize),
		Armor:    inventory.New(ArmorInvSize),
		Craft:    inventory.New(CraftInvSize),
		HandSlot: 0,
	}
}

// Save captures pos/yaw/pitch into the snapshot, applying saveYOffset
// (spec.md §4.5). Inventories, cursor stack and hand slot are mutated
// in-place through the exported fields and need no separate save step.
func (p *OfflinePlayer) Save(pos mgl64.Vec3, yaw, pitch float64) {
	p.pos = pos.Add(mgl64.Vec3{0, saveYOffset, 0})
	p.Yaw, p.Pitch = yaw, pitch
}

// RestorePos returns the live entity position to spawn the player's Human
// entity at, and the wire-only stance value spec.md §4.5 says accompanies it
// on the restore PositionLook packet.
func (p *OfflinePlayer) RestorePos() (pos mgl64.Vec3, stance float64) {
	pos = p.pos.Sub(mgl64.Vec3{0, saveYOffset, 0})
	stance = pos[1] + stanceYOffset
	return pos, stance
}

// MainSlotWireIndex returns the window-0 slot index spec.md §4.5 uses to send
// main inventory slot i on the wire: the hotbar occupies the first
// MainInvSize/4 (9) internal slots but appears last in the window.
func MainSlotWireIndex(i int) int {
	return (i + 27) % MainInvSize
}
