// Package ecs provides ECS adapters for trellis's event queue.
//
// The primary adapter is [NewDonburiStore], which republishes drained
// trellis events (clicks and slider drags) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	gui.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
