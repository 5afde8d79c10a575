// Package ecs bridges sprig's navigation events into an ECS world.
//
// The primary adapter is [NewDonburiStore], which forwards every navigation
// event a Scene dispatches (up, down, enter, ...) into a [Donburi] world as a
// typed event. Subscribe to [NavigationEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
