// Package protocol defines the legacy protocol version 14 packet structs and
// the Conn interface that carries them (spec.md §6). The wire codec itself
// (frame encode/decode, varint/string wire formats) is out of scope per
// spec.md §1; a real implementation supplies a Conn, tests use an in-memory
// fake one.
package protocol

// Version is the only protocol version this server speaks.
const Version = 14

// Packet is implemented by every packet struct in this package. PacketID
// identifies the struct for dispatch; it carries no wire-format meaning
// here since the codec itself is out of scope.
type Packet interface {
	PacketID() byte
}

const (
	idHandshake byte = iota
	idLogin
	idDisconnect
	idSpawnPosition
	idUpdateTime
	idNotification
	idPositionLook
	idWindowSetItem
	idKeepAlive
	idBlockChange
	idEntitySpawn
	idEntityDespawn
	idEntityTeleport
)

// Handshake is the client's first packet, naming the username it intends to
// log in as.
type Handshake struct {
	Username string
}

func (Handshake) PacketID() byte { return idHandshake }

// Login completes the handshake, carrying the protocol version the client
// speaks; the session rejects anything other than Version (spec.md §7,
// "protocol violations: disconnect with a reason string").
type Login struct {
	ProtocolVersion int32
	Username        string
	EntityID        int32
	MapSeed         int64
	Dimension       int8
}

func (Login) PacketID() byte { return idLogin }

// Disconnect is sent by either side to end the connection with a
// human-readable reason, and is the terminal packet of every session
// (spec.md §7, "every disconnect reason is user-visible").
type Disconnect struct {
	Reason string
}

func (Disconnect) PacketID() byte { return idDisconnect }

// SpawnPosition tells the client where the compass/respawn point is, in
// block-int coordinates (spec.md §6).
type SpawnPosition struct {
	X, Y, Z int32
}

func (SpawnPosition) PacketID() byte { return idSpawnPosition }

// UpdateTime carries the current world time in ticks.
type UpdateTime struct {
	Time int64
}

func (UpdateTime) PacketID() byte { return idUpdateTime }

// Notification carries a short system message string; the server sends it
// with the weather codes "1" (rain started) and "0" (rain stopped).
type Notification struct {
	Message string
}

func (Notification) PacketID() byte { return idNotification }

// PositionLook carries an entity's position, stance, and look, in the wire
// units spec.md §6 fixes: f64 pos, f32 stance, f32 degrees yaw/pitch. The
// session layer is responsible for the degrees<->radians conversion at the
// boundary; the rest of the simulation works in radians (spec.md §3).
type PositionLook struct {
	X, Y, Z          float64
	Stance           float32
	YawDeg, PitchDeg float32
	OnGround         bool
}

func (PositionLook) PacketID() byte { return idPositionLook }

// WindowSetItem overwrites a single slot of a window (chest, crafting grid,
// player inventory) on the client (spec.md §4.8).
type WindowSetItem struct {
	WindowID int8
	Slot     int16
	ItemID   int16
	Meta     int16
	Count    int8
}

func (WindowSetItem) PacketID() byte { return idWindowSetItem }

// KeepAlive is an empty heartbeat packet. The session accepts and ignores
// it; no heartbeat timeout is tracked.
type KeepAlive struct{}

func (KeepAlive) PacketID() byte { return idKeepAlive }

// BlockChange tells the client that the block at X,Y,Z now has the given id
// and metadata, the wire form of a world BlockChangeEvent (spec.md §4.1).
type BlockChange struct {
	X, Y, Z       int32
	BlockID       uint8
	BlockMetadata uint8
}

func (BlockChange) PacketID() byte { return idBlockChange }

// EntitySpawn introduces an entity id at a position to clients tracking it,
// the wire form of a world EntitySpawnEvent.
type EntitySpawn struct {
	EntityID int32
	X, Y, Z  float64
}

func (EntitySpawn) PacketID() byte { return idEntitySpawn }

// EntityDespawn removes a previously spawned entity id from clients tracking
// it, the wire form of a world EntityDespawnEvent.
type EntityDespawn struct {
	EntityID int32
}

func (EntityDespawn) PacketID() byte { return idEntityDespawn }

// EntityTeleport carries an entity's absolute position and look, the wire
// form of a world EntityMoveEvent. Unlike PositionLook (which also carries a
// stance and is only ever sent to the owning client about itself), this is
// broadcast to every other client tracking the entity.
type EntityTeleport struct {
	EntityID         int32
	X, Y, Z          float64
	YawDeg, PitchDeg float32
}

func (EntityTeleport) PacketID() byte { return idEntityTeleport }

// Conn is the minimal transport a Session needs: read the next packet sent
// by the peer, or write one to it. A real implementation wraps a TCP
// connection and the (out of scope) wire codec; tests use an in-memory fake.
type Conn interface {
	ReadPacket() (Packet, error)
	WritePacket(Packet) error
	Close() error
}
