package player

import (
	"bytes"
	"encoding/gob"
	"errors"

	"github.com/df-mc/goleveldb/leveldb"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/item/inventory"
)

// record is the gob-serializable form of an OfflinePlayer; the on-disk
// encoding itself is an external collaborator spec.md §1 puts out of scope,
// so gob (rather than the legacy NBT region-file format) is a deliberate
// stand-in, not a reproduction of it.
type record struct {
	World             string
	PosX, PosY, PosZ  float64
	Yaw, Pitch        float64
	Main, Armor, Craft []block.ItemStack
	Cursor            block.ItemStack
	HandSlot          int
}

// Store persists OfflinePlayer snapshots keyed by username, backed by a
// single goleveldb database (grounded, like save.LevelDB, on the pack's
// goleveldb-backed Pile world Provider).
type Store struct {
	db *leveldb.DB
}

// OpenStore opens (creating if necessary) a goleveldb database at dir.
func OpenStore(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the saved OfflinePlayer for username, or ok=false if none has
// ever been saved (the caller should create one with New instead).
func (s *Store) Load(username string) (*OfflinePlayer, bool, error) {
	data, err := s.db.Get([]byte(username), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var rec record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return nil, false, err
	}
	p := &OfflinePlayer{
		Username: username,
		World:    rec.World,
		pos:      [3]float64{rec.PosX, rec.PosY, rec.PosZ},
		Yaw:      rec.Yaw,
		Pitch:    rec.Pitch,
		Main:     inventory.New(MainInvSize),
		Armor:    inventory.New(ArmorInvSize),
		Craft:    inventory.New(CraftInvSize),
		Cursor:   rec.Cursor,
		HandSlot: rec.HandSlot,
	}
	p.Main.Restore(rec.Main)
	p.Armor.Restore(rec.Armor)
	p.Craft.Restore(rec.Craft)
	return p, true, nil
}

// Save persists p keyed by p.Username.
func (s *Store) Save(p *OfflinePlayer) error {
	rec := record{
		World:    p.World,
		PosX:     p.pos[0],
		PosY:     p.pos[1],
		PosZ:     p.pos[2],
		Yaw:      p.Yaw,
		Pitch:    p.Pitch,
		Main:     p.Main.Snapshot(),
		Armor:    p.Armor.Snapshot(),
		Craft:    p.Craft.Snapshot(),
		Cursor:   p.Cursor,
		HandSlot: p.HandSlot,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return err
	}
	return s.db.Put([]byte(p.Username), buf.Bytes(), nil)
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
