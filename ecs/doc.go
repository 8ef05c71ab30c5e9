// Package ecs runs shadertrack directors inside a [Donburi] world.
//
// Attach a director to an entity with [AddDirector], call [UpdateDirectors]
// from a system once per frame, and subscribe to [PlaybackEventType] to
// react to play, pause, stop, loop and finish events:
//
//	e := ecs.AddDirector(world, director)
//	ecs.PlaybackEventType.Subscribe(world, onPlayback)
//	// each frame:
//	ecs.UpdateDirectors(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
