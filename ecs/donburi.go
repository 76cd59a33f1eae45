package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/trellis"
)

// InteractionEventType is the Donburi event type for trellis events.
// Subscribe to it to receive clicks and slider drags.
var InteractionEventType = events.NewEventType[trellis.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to InteractionEventType when the Gui drains its
// queue and are delivered by events.ProcessAllEvents or ProcessEvents.
func NewDonburiStore(world donburi.World) trellis.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event trellis.Event) {
	InteractionEventType.Publish(s.world, event)
}

// ActionFilter returns a subscriber that forwards only events whose action
// id matches.
func ActionFilter(actionID string, fn func(donburi.World, trellis.Event)) func(donburi.World, trellis.Event) {
	return func(w donburi.World, e trellis.Event) {
		if e.ActionID == actionID {
			fn(w, e)
		}
	}
}
