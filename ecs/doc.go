// Package ecs provides ECS adapters for slide widget signals.
//
// [NewDonburiStore] bridges accepted and reset signals into a [Donburi]
// world as typed events. Subscribe to [SignalEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	host.SetSignalStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
