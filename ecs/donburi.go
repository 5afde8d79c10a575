package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for sprig navigation events.
var NavigationEventType = events.NewEventType[sprig.NavigationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Navigation events are published to NavigationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sprig.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sprig.NavigationEvent) {
	NavigationEventType.Publish(s.world, event)
}
