package shadertrack

import (
	"log/slog"
	"time"
)

// PlayState is the playback state of a Director.
type PlayState uint8

const (
	Stopped PlayState = iota
	Playing
	Paused
)

func (s PlayState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// EndAction selects what a Director does when playback reaches its end.
type EndAction uint8

const (
	// EndHold keeps the last frame and pauses.
	EndHold EndAction = iota
	// EndLoop wraps back to the start.
	EndLoop
	// EndStop stops playback, restoring every bound target.
	EndStop
)

// EventKind identifies a PlaybackEvent.
type EventKind uint8

const (
	EventPlay EventKind = iota
	EventPause
	EventStop
	EventSeek
	EventLoop
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventStop:
		return "stop"
	case EventSeek:
		return "seek"
	case EventLoop:
		return "loop"
	case EventFinish:
		return "finish"
	}
	return "unknown"
}

// PlaybackEvent reports a playback state change of a Director.
type PlaybackEvent struct {
	Kind  EventKind
	Name  string
	Time  float64
	Frame int
}

// EventSink receives the playback events of a Director.
type EventSink interface {
	Publish(PlaybackEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(PlaybackEvent)

// Publish implements EventSink.
func (f EventSinkFunc) Publish(e PlaybackEvent) { f(e) }

// Director is a minimal timeline host: it owns tracks, keeps the playhead,
// computes clip weights and calls the track mixers once per frame, followed
// by one LayerMixer pass per bound target.
type Director struct {
	Name string
	// Length overrides the timeline duration. Zero uses the end of the last
	// clip.
	Length    float64
	EndAction EndAction
	Events    EventSink

	env    *Env
	layers *Layers
	tracks []*Track
	state  PlayState
	time   float64
	frame  int

	bindings []any
	seen     map[any]struct{}
}

// NewDirector creates a stopped director whose mixers share env.
func NewDirector(name string, env *Env) *Director {
	return &Director{
		Name:   name,
		env:    env,
		layers: NewLayers(),
		seen:   make(map[any]struct{}),
	}
}

// Env returns the environment shared by the director's mixers.
func (d *Director) Env() *Env { return d.env }

// AddTrack appends t. Later tracks compose over earlier ones.
func (d *Director) AddTrack(t *Track) *Track {
	d.tracks = append(d.tracks, t)
	return t
}

// Tracks returns the tracks in evaluation order.
func (d *Director) Tracks() []*Track { return d.tracks }

// Track returns the first track named name, or nil.
func (d *Director) Track(name string) *Track {
	for _, t := range d.tracks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Validate validates every track.
func (d *Director) Validate() error {
	for _, t := range d.tracks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// State returns the playback state.
func (d *Director) State() PlayState { return d.state }

// Time returns the playhead in seconds.
func (d *Director) Time() float64 { return d.time }

// Frame returns the number of frames evaluated since the last Stop.
func (d *Director) Frame() int { return d.frame }

// Duration returns Length, or the end of the last clip.
func (d *Director) Duration() float64 {
	if d.Length > 0 {
		return d.Length
	}
	var end float64
	for _, t := range d.tracks {
		end = max(end, t.End())
	}
	return end
}

// Play starts or resumes playback.
func (d *Director) Play() {
	if d.state == Playing {
		return
	}
	d.state = Playing
	d.emit(EventPlay)
	d.Evaluate()
}

// Pause holds the playhead. Bound targets keep their mixed state.
func (d *Director) Pause() {
	if d.state != Playing {
		return
	}
	d.state = Paused
	d.emit(EventPause)
}

// Stop ends playback, rewinds and restores every bound target to the state
// it had before the first evaluated frame. Mixers are torn down in reverse
// track order so the earliest captured state is restored last.
func (d *Director) Stop() {
	for i := len(d.tracks) - 1; i >= 0; i-- {
		if m := d.tracks[i].Mixer; m != nil {
			m.Destroy()
		}
	}
	d.layers.Reset()
	wasStopped := d.state == Stopped && d.time == 0
	d.state = Stopped
	d.time = 0
	d.frame = 0
	if !wasStopped {
		d.emit(EventStop)
	}
}

// Seek moves the playhead to at, clamped to [0, Duration], and evaluates it.
func (d *Director) Seek(at float64) {
	d.time = min(max(at, 0), d.Duration())
	d.emit(EventSeek)
	d.Evaluate()
}

// Update advances playback by one frame at the configured frame rate. It
// does nothing unless the director is playing.
func (d *Director) Update() {
	rate := d.env.Config.FrameRate
	if rate <= 0 {
		rate = DefaultConfig().FrameRate
	}
	d.Advance(1 / rate)
}

// Advance moves a playing director forward by dt seconds and evaluates the
// new time, applying EndAction when the end is crossed.
func (d *Director) Advance(dt float64) {
	if d.state != Playing {
		return
	}
	d.time += dt
	if end := d.Duration(); d.time >= end {
		switch d.EndAction {
		case EndLoop:
			if end > 0 {
				for d.time >= end {
					d.time -= end
				}
			} else {
				d.time = 0
			}
			d.emit(EventLoop)
		case EndStop:
			d.time = end
			d.emit(EventFinish)
			d.Stop()
			return
		default:
			d.time = end
			d.Evaluate()
			d.state = Paused
			d.emit(EventFinish)
			return
		}
	}
	d.Evaluate()
}

// Evaluate mixes every track at the current time, then closes the frame of
// each bound target.
func (d *Director) Evaluate() {
	var start time.Time
	if d.env.stats != nil {
		d.env.stats.reset()
		start = time.Now()
	}

	d.bindings = d.bindings[:0]
	clear(d.seen)
	for _, t := range d.tracks {
		if t.Mixer == nil {
			continue
		}
		t.Mixer.Mix(d.layers, t.Binding, t.Inputs(d.time))
		if t.Binding == nil {
			continue
		}
		if _, ok := d.seen[t.Binding]; !ok {
			d.seen[t.Binding] = struct{}{}
			d.bindings = append(d.bindings, t.Binding)
		}
	}
	var lm LayerMixer
	for _, b := range d.bindings {
		lm.ProcessFrame(d.layers, b)
	}
	d.frame++

	if d.env.stats != nil {
		d.env.stats.evalTime = time.Since(start)
		d.env.debugLog(d.frame, d.time)
	}
}

func (d *Director) emit(k EventKind) {
	Logger().Info("playback", slog.String("director", d.Name),
		slog.String("event", k.String()), slog.Float64("time", d.time))
	if d.Events != nil {
		d.Events.Publish(PlaybackEvent{Kind: k, Name: d.Name, Time: d.time, Frame: d.frame})
	}
}
