package ecs

import (
	"github.com/phanxgames/slide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SignalEventType is the Donburi event type for widget signals.
// Subscribe to it in your ECS systems to react to accepts and resets.
var SignalEventType = events.NewEventType[slide.Signal]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a SignalStore backed by a Donburi world.
// Signals are published to SignalEventType and delivered when the world
// runs SignalEventType.ProcessEvents.
func NewDonburiStore(world donburi.World) slide.SignalStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitSignal(sig slide.Signal) {
	SignalEventType.Publish(s.world, sig)
}
