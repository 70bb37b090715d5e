package session

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/player"
	"github.com/kitemc/server/server/protocol"
	"github.com/kitemc/server/server/world"
)

type fakeHost struct {
	w       *world.World
	players map[string]*player.OfflinePlayer
}

func newFakeHost() *fakeHost {
	w := world.New("world", 1, world.Overworld, slog.Default(), nil)
	return &fakeHost{w: w, players: map[string]*player.OfflinePlayer{}}
}

func (h *fakeHost) World(name string) (*world.World, bool) {
	if name != h.w.Name {
		return nil, false
	}
	return h.w, true
}

func (h *fakeHost) LoadOrCreatePlayer(username string) (*player.OfflinePlayer, error) {
	if off, ok := h.players[username]; ok {
		return off, nil
	}
	off := player.New(username, h.w.Name, mgl64.Vec3{0, 64, 0})
	h.players[username] = off
	return off, nil
}

func (h *fakeHost) SavePlayer(off *player.OfflinePlayer) error {
	h.players[off.Username] = off
	return nil
}

func TestLoginWithWrongProtocolVersionDisconnects(t *testing.T) {
	conn := protocol.NewFakeConn()
	s := New(conn, newFakeHost())

	if err := s.HandlePacket(protocol.Login{ProtocolVersion: 7, Username: "Steve"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(conn.Written) != 1 {
		t.Fatalf("expected exactly one packet written, got %d", len(conn.Written))
	}
	d, ok := conn.Written[0].(protocol.Disconnect)
	if !ok {
		t.Fatalf("expected a Disconnect packet, got %T", conn.Written[0])
	}
	if d.Reason != protocolMismatchReason {
		t.Fatalf("expected reason %q, got %q", protocolMismatchReason, d.Reason)
	}
}

func TestLoginSuccessTransitionsToPlayingAndSendsInitialState(t *testing.T) {
	conn := protocol.NewFakeConn()
	host := newFakeHost()
	s := New(conn, host)

	if err := s.HandlePacket(protocol.Login{ProtocolVersion: protocol.Version, Username: "Steve"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.state != playing {
		t.Fatalf("expected session to transition to playing")
	}
	if s.Player == nil {
		t.Fatal("expected a ServerPlayer to be created")
	}

	// Login, SpawnPosition, UpdateTime, PositionLook, then 4+4+36 WindowSetItem.
	wantMin := 3 + 1 + 4 + 4 + 36
	if len(conn.Written) < wantMin {
		t.Fatalf("expected at least %d packets written, got %d", wantMin, len(conn.Written))
	}
	if _, ok := conn.Written[0].(protocol.Login); !ok {
		t.Fatalf("expected first packet to be Login, got %T", conn.Written[0])
	}
}

func TestPlayingPositionLookUpdatesPlayerPosition(t *testing.T) {
	conn := protocol.NewFakeConn()
	host := newFakeHost()
	s := New(conn, host)
	if err := s.HandlePacket(protocol.Login{ProtocolVersion: protocol.Version, Username: "Steve"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := s.HandlePacket(protocol.PositionLook{X: 5, Y: 70, Z: -3, YawDeg: 90}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := s.Player.Pos()
	if pos != (mgl64.Vec3{5, 70, -3}) {
		t.Fatalf("expected player pos to update to (5,70,-3), got %v", pos)
	}
}
