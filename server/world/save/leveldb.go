package save

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// LevelDB is a ChunkSource backed by a single goleveldb database, one key per
// (world, chunk) pair, grounded on the pack's Pile world format's
// goleveldb-backed single-file Provider, generalized from Pile's whole-world
// snapshot to per-chunk get/put since the legacy server loads and unloads
// chunks individually as players move (spec.md §6).
type LevelDB struct {
	db *leveldb.DB

	mu      sync.Mutex
	pending *intintmap.Map // chunk key -> 1, chunks written since the last Flush
}

// OpenLevelDB opens (creating if necessary) a goleveldb database at dir to
// back a LevelDB ChunkSource.
func OpenLevelDB(dir string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db, pending: intintmap.New(64, 0.6)}, nil
}

// chunkKey hashes (worldName, cx, cz) down to the byte key stored in the
// database. Collisions are accepted (spec.md's persistence layer is out of
// scope for exact on-disk format, §1); xxhash seeds the per-world namespace
// and fnv1a folds the chunk coordinate in, so two worlds sharing a database
// never alias each other's chunks under the same key.
func chunkKey(worldName string, pos world.ChunkPos) []byte {
	worldHash := xxhash.Sum64String(worldName)
	coordHash := fnv1a.HashUint64(uint64(uint32(pos[0]))<<32 | uint64(uint32(pos[1])))
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[0:8], worldHash)
	binary.BigEndian.PutUint64(key[8:16], coordHash)
	return key
}

// pendingKey packs (cx, cz) into the int64 key the in-memory pending index
// uses to track which chunks have been written since the database was last
// synced (intintmap avoids boxing the coordinate pair into a map key struct
// on this hot path, exercised once per chunk unload).
func pendingKey(pos world.ChunkPos) int64 {
	return int64(uint32(pos[0]))<<32 | int64(uint32(pos[1]))
}

// LoadChunk returns the chunk saved at pos for worldName, or ok=false if none
// was ever saved there (the generator should run instead).
func (l *LevelDB) LoadChunk(worldName string, pos world.ChunkPos) (*chunk.Chunk, bool, error) {
	data, err := l.db.Get(chunkKey(worldName, pos), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	c, err := chunk.Decode(data)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// SaveChunk persists c at pos for worldName and records it in the pending
// index.
func (l *LevelDB) SaveChunk(worldName string, pos world.ChunkPos, c *chunk.Chunk) error {
	if err := l.db.Put(chunkKey(worldName, pos), c.Encode(), nil); err != nil {
		return err
	}
	l.mu.Lock()
	l.pending.Put(pendingKey(pos), 1)
	l.mu.Unlock()
	return nil
}

// PendingCount returns how many chunks have been saved since the last call to
// ResetPending. Nothing in the server calls it.
func (l *LevelDB) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending.Size()
}

// ResetPending clears the pending index after a full save pass.
func (l *LevelDB) ResetPending() {
	l.mu.Lock()
	l.pending = intintmap.New(64, 0.6)
	l.mu.Unlock()
}

// Close closes the underlying database.
func (l *LevelDB) Close() error { return l.db.Close() }
