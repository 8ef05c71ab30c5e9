package ecs

import (
	"github.com/phanxgames/shadertrack"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PlaybackEventType is the Donburi event type for director playback events.
var PlaybackEventType = events.NewEventType[shadertrack.PlaybackEvent]()

// DirectorData is the component attaching a director to an entity.
type DirectorData struct {
	Director *shadertrack.Director
}

// Director is the component type of DirectorData.
var Director = donburi.NewComponentType[DirectorData]()

var directorQuery = donburi.NewQuery(filter.Contains(Director))

type donburiSink struct {
	world donburi.World
}

// NewEventSink returns an EventSink publishing to PlaybackEventType.
// Events are queued until PlaybackEventType.ProcessEvents runs.
func NewEventSink(world donburi.World) shadertrack.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Publish(e shadertrack.PlaybackEvent) {
	PlaybackEventType.Publish(s.world, e)
}

// AddDirector creates an entity holding d and routes d's playback events
// into world. An EventSink already set on d is replaced.
func AddDirector(world donburi.World, d *shadertrack.Director) donburi.Entity {
	e := world.Create(Director)
	Director.Set(world.Entry(e), &DirectorData{Director: d})
	d.Events = NewEventSink(world)
	return e
}

// UpdateDirectors advances every playing director by one frame, then
// delivers the queued playback events.
func UpdateDirectors(world donburi.World) {
	directorQuery.Each(world, func(entry *donburi.Entry) {
		if d := Director.Get(entry).Director; d != nil {
			d.Update()
		}
	})
	PlaybackEventType.ProcessEvents(world)
}

// StopAll stops every director in world, restoring their bound targets.
func StopAll(world donburi.World) {
	directorQuery.Each(world, func(entry *donburi.Entry) {
		if d := Director.Get(entry).Director; d != nil {
			d.Stop()
		}
	})
	PlaybackEventType.ProcessEvents(world)
}
