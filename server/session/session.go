// Package session implements the per-client Handshaking/Playing dispatch
// state machine (spec.md §4.4): accept a Conn, handshake it, log it in
// against a Host, and route Playing-state packets to its ServerPlayer.
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/player"
	"github.com/kitemc/server/server/protocol"
	"github.com/kitemc/server/server/world"
)

const protocolMismatchReason = "Protocol version mismatch!"

// Host is the narrow slice of server.Server a Session needs, kept separate
// from the concrete type so this package never imports server (which in
// turn owns the Session table, avoiding an import cycle).
type Host interface {
	// World returns the named world, or ok=false if it is not loaded.
	World(name string) (w *world.World, ok bool)
	// LoadOrCreatePlayer returns the OfflinePlayer snapshot for username,
	// creating one at the configured spawn point if none exists yet.
	LoadOrCreatePlayer(username string) (*player.OfflinePlayer, error)
	// SavePlayer persists off, called on every disconnect/kick.
	SavePlayer(off *player.OfflinePlayer) error
}

type state int

const (
	handshaking state = iota
	playing
)

// Session is one connected client: a Conn plus whichever half of the
// Handshaking/Playing state machine it currently occupies (spec.md §4.4).
type Session struct {
	// ID correlates this session's log lines and any future cross-session
	// bookkeeping; it has no wire meaning (spec.md §2 ADD "uuid for
	// connection/session identifiers").
	ID   string
	conn protocol.Conn
	host Host

	state  state
	Player *player.ServerPlayer
	world  *world.World
}

// New returns a Session in the Handshaking state for conn.
func New(conn protocol.Conn, host Host) *Session {
	return &Session{ID: uuid.NewString(), conn: conn, host: host, state: handshaking}
}

// World returns the world this session's player was spawned into, or
// ok=false before login completes. Used by the server world wrapper to
// address outbound event packets to the sessions tracking a given world.
func (s *Session) World() (w *world.World, ok bool) {
	return s.world, s.state == playing
}

// Send writes p to the session's connection, for use by the server world
// wrapper when it translates world events into outbound packets.
func (s *Session) Send(p protocol.Packet) error {
	return s.conn.WritePacket(p)
}

// HandlePacket dispatches one inbound packet according to the session's
// current state (spec.md §4.4). It returns a non-nil error only for
// conditions the caller should treat as a lost connection; a protocol
// violation instead sends Disconnect and returns nil, since spec.md §7
// requires a disconnect reason rather than a silent drop.
func (s *Session) HandlePacket(p protocol.Packet) error {
	switch s.state {
	case handshaking:
		return s.handleHandshaking(p)
	case playing:
		return s.handlePlaying(p)
	default:
		return fmt.Errorf("session: unknown state %d", s.state)
	}
}

func (s *Session) handleHandshaking(p protocol.Packet) error {
	switch pk := p.(type) {
	case protocol.Handshake:
		return s.conn.WritePacket(protocol.Handshake{Username: "-"})
	case protocol.Login:
		return s.login(pk)
	default:
		return s.disconnect("unexpected packet before login")
	}
}

func (s *Session) login(pk protocol.Login) error {
	if pk.ProtocolVersion != protocol.Version {
		return s.disconnect(protocolMismatchReason)
	}
	off, err := s.host.LoadOrCreatePlayer(pk.Username)
	if err != nil {
		return s.disconnect("could not load player data")
	}
	w, ok := s.host.World(off.World)
	if !ok {
		return s.disconnect("target world is not loaded")
	}

	sp := player.Spawn(w, off)
	s.Player = sp
	s.world = w
	s.state = playing

	if err := s.conn.WritePacket(protocol.Login{
		ProtocolVersion: protocol.Version,
		EntityID:        int32(sp.ID()),
		MapSeed:         w.Seed,
		Dimension:       int8(w.Dimension),
	}); err != nil {
		return err
	}
	if err := s.conn.WritePacket(protocol.SpawnPosition{}); err != nil {
		return err
	}
	if err := s.conn.WritePacket(protocol.UpdateTime{Time: int64(w.Time)}); err != nil {
		return err
	}
	if w.Weather != world.Clear {
		if err := s.conn.WritePacket(protocol.Notification{Message: "1"}); err != nil {
			return err
		}
	}
	return s.sendInitialState()
}

// sendInitialState pushes the restored position/look and all three
// inventories via WindowSetItem on window 0, in the legacy slot order
// (spec.md §4.5): crafting 1..=4, armor 5..=8, main 9..=44.
func (s *Session) sendInitialState() error {
	off := s.Player.Offline
	pos, stance := s.Player.Offline.RestorePos()
	if err := s.conn.WritePacket(protocol.PositionLook{
		X: pos[0], Y: pos[1], Z: pos[2],
		Stance:   float32(stance),
		YawDeg:   float32(off.Yaw * 180 / math.Pi),
		PitchDeg: float32(off.Pitch * 180 / math.Pi),
		OnGround: false,
	}); err != nil {
		return err
	}

	for i := 0; i < 4; i++ {
		if err := s.sendSlot(1+i, off.Craft.Item(i)); err != nil {
			return err
		}
	}
	for i := 0; i < off.Armor.Size(); i++ {
		if err := s.sendSlot(5+i, off.Armor.Item(i)); err != nil {
			return err
		}
	}
	for i := 0; i < off.Main.Size(); i++ {
		if err := s.sendSlot(9+player.MainSlotWireIndex(i), off.Main.Item(i)); err != nil {
			return err
		}
	}
	return nil
}

// sendSlot writes a single WindowSetItem for window 0, slot wireSlot. An
// empty stack is sent as item id -1, the legacy sentinel for "no item".
func (s *Session) sendSlot(wireSlot int, item block.ItemStack) error {
	if item.Empty() {
		return s.conn.WritePacket(protocol.WindowSetItem{WindowID: 0, Slot: int16(wireSlot), ItemID: -1})
	}
	return s.conn.WritePacket(protocol.WindowSetItem{
		WindowID: 0,
		Slot:     int16(wireSlot),
		ItemID:   item.ID,
		Meta:     item.Meta,
		Count:    item.Count,
	})
}

func (s *Session) handlePlaying(p protocol.Packet) error {
	switch pk := p.(type) {
	case protocol.PositionLook:
		s.Player.MoveTo(mgl64.Vec3{pk.X, pk.Y, pk.Z})
		s.Player.SetLook(float64(pk.YawDeg)*math.Pi/180, float64(pk.PitchDeg)*math.Pi/180)
		return nil
	case protocol.KeepAlive:
		return nil
	case protocol.Disconnect:
		return s.quit(pk.Reason)
	default:
		return nil
	}
}

// quit persists the player's snapshot and reports a clean disconnect
// (spec.md §4.4's Lost transition / §7's Kick/Disconnect requirement).
func (s *Session) quit(reason string) error {
	if s.Player != nil {
		s.Player.Despawn()
		if err := s.host.SavePlayer(s.Player.Offline); err != nil {
			return err
		}
	}
	return errors.New("session: disconnected: " + reason)
}

func (s *Session) disconnect(reason string) error {
	_ = s.conn.WritePacket(protocol.Disconnect{Reason: reason})
	return s.conn.Close()
}
