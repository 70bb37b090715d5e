// Package server implements the dispatch loop that multiplexes connected
// clients onto one or more Worlds (spec.md §4.4): accepting sessions,
// ticking every world at 20 TPS, and persisting offline player snapshots
// (spec.md §5, §6). The chunk store is opened and closed here, but no chunk
// is loaded from it or saved to it.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/player"
	"github.com/kitemc/server/server/protocol"
	"github.com/kitemc/server/server/session"
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/save"
)

// TickInterval is the 20 TPS cadence spec.md §6 fixes.
const TickInterval = 50 * time.Millisecond

// Server owns every loaded World, the player snapshot store, and the set of
// connected Sessions, and drives them all at TickInterval.
type Server struct {
	log    *slog.Logger
	cfg    Config
	chunks *save.LevelDB
	store  *player.Store

	mu       sync.Mutex
	worlds   map[string]*world.World
	tick     int64
	sessions map[string]*session.Session
	cancel   context.CancelFunc
}

// New constructs a Server from cfg, opening its chunk and player stores and
// instantiating every configured World (empty; chunks are generated/loaded
// lazily). Close must be called to release the stores.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	chunks, err := save.OpenLevelDB(cfg.WorldDir)
	if err != nil {
		return nil, fmt.Errorf("server: opening world store: %w", err)
	}
	store, err := player.OpenStore(filepath.Clean(cfg.PlayerDir))
	if err != nil {
		chunks.Close()
		return nil, fmt.Errorf("server: opening player store: %w", err)
	}

	s := &Server{
		log:      log,
		cfg:      cfg,
		chunks:   chunks,
		store:    store,
		worlds:   make(map[string]*world.World),
		sessions: make(map[string]*session.Session),
	}
	for _, wc := range cfg.Worlds {
		s.worlds[wc.Name] = world.New(wc.Name, wc.Seed, world.Dimension(wc.Dimension), log.With("world", wc.Name), nil)
	}
	return s, nil
}

// World implements session.Host.
func (s *Server) World(name string) (*world.World, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.worlds[name]
	return w, ok
}

// SpawnPos is the configured spawn point new OfflinePlayers are created at.
func (s *Server) SpawnPos() mgl64.Vec3 {
	return mgl64.Vec3{s.cfg.SpawnX, s.cfg.SpawnY, s.cfg.SpawnZ}
}

// LoadOrCreatePlayer implements session.Host: it returns the persisted
// snapshot for username, or creates one at the first configured world's
// spawn point if none exists yet (spec.md §4.4).
func (s *Server) LoadOrCreatePlayer(username string) (*player.OfflinePlayer, error) {
	off, ok, err := s.store.Load(username)
	if err != nil {
		return nil, err
	}
	if ok {
		return off, nil
	}
	if len(s.cfg.Worlds) == 0 {
		return nil, fmt.Errorf("server: no worlds configured")
	}
	return player.New(username, s.cfg.Worlds[0].Name, s.SpawnPos()), nil
}

// SavePlayer implements session.Host.
func (s *Server) SavePlayer(off *player.OfflinePlayer) error {
	return s.store.Save(off)
}

// Accept registers conn as a new Session in the Handshaking state, the
// "Accept -> Handshaking" transition of spec.md §4.4.
func (s *Server) Accept(conn protocol.Conn) *session.Session {
	sess := session.New(conn, s)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Disconnect removes sess from the session table; callers should already
// have driven it through its own Disconnect/Lost handling.
func (s *Server) Disconnect(sess *session.Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

// Sessions returns a snapshot of currently connected sessions, used by the
// admin console's "list" command.
func (s *Server) Sessions() []*session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// Run ticks every world at TickInterval until ctx is cancelled, logging a
// warning whenever a tick overruns its budget rather than skipping work
// (spec.md §6, "it does not skip").
func (s *Server) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tickOnce()
		}
	}
}

// Stop cancels Run's context, ending the tick loop. Safe to call from the
// admin console's "stop" command, which runs on its own goroutine.
func (s *Server) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Server) tickOnce() {
	start := time.Now()
	s.mu.Lock()
	s.tick++
	currentTick := s.tick
	worlds := make([]*world.World, 0, len(s.worlds))
	for _, w := range s.worlds {
		worlds = append(worlds, w)
	}
	s.mu.Unlock()

	for _, w := range worlds {
		w.Tick(currentTick, wantsRandomTick, onScheduledTick, onRandomTick)
		s.broadcastEvents(w, w.DrainEvents())
	}

	if elapsed := time.Since(start); elapsed > TickInterval {
		s.log.Warn("tick overrun", "elapsed", elapsed, "budget", TickInterval)
	}
}

func wantsRandomTick(id uint8) bool {
	return block.Lookup(block.ID(id)).RandomTick
}

func onScheduledTick(w *world.World, pos cube.Pos, id, meta uint8) {}

func onRandomTick(w *world.World, pos cube.Pos, id, meta uint8) {}

// Close closes the chunk and player stores.
func (s *Server) Close() error {
	if err := s.chunks.Close(); err != nil {
		return err
	}
	return s.store.Close()
}
