package world

import "github.com/kitemc/server/server/internal/cube"

// Event is emitted by World for every observable change: block edits, entity
// lifecycle/motion/metadata, weather, and block-entity updates (spec.md
// §4.1). The server world wrapper drains these each tick and turns them into
// outbound packets filtered by per-player view range. The world itself never
// performs I/O.
type Event interface{ isWorldEvent() }

type BlockChangeEvent struct {
	Pos      cube.Pos
	ID, Meta uint8
}

type EntitySpawnEvent struct {
	ID EntityID
}

type EntityDespawnEvent struct {
	ID EntityID
}

type EntityMoveEvent struct {
	ID EntityID
}

type EntityMetadataEvent struct {
	ID EntityID
}

type EntityPickupEvent struct {
	// Collector is the entity id that picked something up; Target is the
	// item/arrow entity that was consumed (spec.md §4.2 step 5).
	Collector, Target EntityID
}

type WeatherChangeEvent struct {
	Weather Weather
}

type BlockEntityUpdateEvent struct {
	Pos cube.Pos
}

func (BlockChangeEvent) isWorldEvent()       {}
func (EntitySpawnEvent) isWorldEvent()       {}
func (EntityDespawnEvent) isWorldEvent()     {}
func (EntityMoveEvent) isWorldEvent()        {}
func (EntityMetadataEvent) isWorldEvent()    {}
func (EntityPickupEvent) isWorldEvent()      {}
func (WeatherChangeEvent) isWorldEvent()     {}
func (BlockEntityUpdateEvent) isWorldEvent() {}

// DrainEvents removes and returns every event queued since the last drain, in
// emission order (spec.md §5 "World events are emitted in the order
// operations execute").
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	ev := w.events
	w.events = make([]Event, 0, cap(ev))
	return ev
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// Emit queues an arbitrary Event, for use by packages outside world (entity,
// generator) that cannot call the unexported emit directly.
func (w *World) Emit(e Event) { w.emit(e) }

// EmitMoved queues an EntityMoveEvent for id.
func (w *World) EmitMoved(id EntityID) { w.emit(EntityMoveEvent{ID: id}) }

// EmitMetadataChanged queues an EntityMetadataEvent for id.
func (w *World) EmitMetadataChanged(id EntityID) { w.emit(EntityMetadataEvent{ID: id}) }

// EmitPickup queues an EntityPickupEvent.
func (w *World) EmitPickup(collector, target EntityID) {
	w.emit(EntityPickupEvent{Collector: collector, Target: target})
}
