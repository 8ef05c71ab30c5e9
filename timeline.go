package shadertrack

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip places ClipData on a track. Its weight is 1 inside [Start, End] and
// ramps over EaseIn seconds after Start and EaseOut seconds before End,
// shaped by the easing functions (linear when nil).
type Clip struct {
	Data     *ClipData
	Start    float64
	Duration float64

	EaseIn      float64
	EaseOut     float64
	EaseInFunc  ease.TweenFunc
	EaseOutFunc ease.TweenFunc

	in, out       *gween.Tween
	inDur, outDur float64
}

// NewClip places data at start for duration seconds.
func (t *Track) NewClip(data *ClipData, start, duration float64) *Clip {
	c := &Clip{Data: data, Start: start, Duration: duration}
	t.Clips = append(t.Clips, c)
	return c
}

// End returns the time the clip ends.
func (c *Clip) End() float64 {
	return c.Start + c.Duration
}

// Ease sets the ramp durations and returns c.
func (c *Clip) Ease(in, out float64, fn ease.TweenFunc) *Clip {
	c.EaseIn, c.EaseOut = in, out
	c.EaseInFunc, c.EaseOutFunc = fn, fn
	return c
}

// Weight returns the host weight of the clip at time t, zero outside the
// clip.
func (c *Clip) Weight(t float64) float64 {
	if c.Duration <= 0 || t < c.Start || t > c.End() {
		return 0
	}
	w := 1.0
	if elapsed := t - c.Start; c.EaseIn > 0 && elapsed < c.EaseIn {
		if c.in == nil || c.inDur != c.EaseIn {
			c.in = gween.New(0, 1, float32(c.EaseIn), easeOrLinear(c.EaseInFunc))
			c.inDur = c.EaseIn
		}
		v, _ := c.in.Set(float32(elapsed))
		w = min(w, float64(v))
	}
	if remaining := c.End() - t; c.EaseOut > 0 && remaining < c.EaseOut {
		if c.out == nil || c.outDur != c.EaseOut {
			c.out = gween.New(1, 0, float32(c.EaseOut), easeOrLinear(c.EaseOutFunc))
			c.outDur = c.EaseOut
		}
		v, _ := c.out.Set(float32(c.EaseOut - remaining))
		w = min(w, float64(v))
	}
	return clamp01(w)
}

func easeOrLinear(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}

// Track is an ordered list of clips driving one binding through one mixer.
// Tracks are evaluated in the order they were added to a Director; later
// tracks compose over earlier ones.
type Track struct {
	Name    string
	Binding any
	Mixer   TrackMixer
	Clips   []*Clip
	Muted   bool

	inputs []Input
}

// NewTrack creates a track feeding binding through mixer.
func NewTrack(name string, binding any, mixer TrackMixer) *Track {
	return &Track{Name: name, Binding: binding, Mixer: mixer}
}

// Inputs computes the mixer inputs of the track at time t. The returned slice
// is reused by the next call.
func (t *Track) Inputs(at float64) []Input {
	t.inputs = t.inputs[:0]
	if t.Muted {
		return t.inputs
	}
	for _, c := range t.Clips {
		if c == nil || c.Data == nil {
			continue
		}
		w := c.Weight(at)
		if w <= 0 {
			continue
		}
		t.inputs = append(t.inputs, Input{Clip: c.Data, Weight: w, Start: c.Start})
	}
	return t.inputs
}

// End returns the end of the last clip carrying data.
func (t *Track) End() float64 {
	var end float64
	for _, c := range t.Clips {
		if c != nil && c.Data != nil {
			end = max(end, c.End())
		}
	}
	return end
}

// Validate returns ErrTooManyOverlaps if more than two clips of the track
// overlap at some time. Clips that only touch do not overlap.
func (t *Track) Validate() error {
	type edge struct {
		at    float64
		delta int
	}
	edges := make([]edge, 0, 2*len(t.Clips))
	for _, c := range t.Clips {
		if c == nil || c.Duration <= 0 {
			continue
		}
		edges = append(edges, edge{c.Start, 1}, edge{c.End(), -1})
	}
	// Ends sort before starts at the same time.
	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.delta, b.delta)
	})
	open := 0
	for _, e := range edges {
		open += e.delta
		if open > 2 {
			return fmt.Errorf("%w: track %q at %v", ErrTooManyOverlaps, t.Name, e.at)
		}
	}
	return nil
}
