package shadertrack

import (
	"strconv"
	"sync/atomic"
)

// Env bundles the collaborators shared by every mixer of one timeline
// instance: the blender, the property store and the configuration.
type Env struct {
	Blend  *Blender
	Store  *Store
	Config Config

	stats *debugStats
}

// NewEnv creates the environment described by cfg. Unless cfg disables it,
// textures are crossfaded with a CrossfadePass; missing textures are
// synthesized with SolidTextures.
func NewEnv(cfg Config) *Env {
	var pass TexturePass
	if !cfg.DisableGPUBlend {
		pass = NewCrossfadePass()
	}
	env := &Env{
		Blend:  NewBlender(pass),
		Store:  NewStore(NewSolidTextures()),
		Config: cfg,
	}
	if cfg.Debug {
		env.stats = &debugStats{}
		env.Blend.stats = env.stats
	}
	return env
}

// Dispose releases the GPU resources held by the environment.
func (e *Env) Dispose() {
	if p, ok := e.Blend.Pass.(*CrossfadePass); ok {
		p.Dispose()
	}
	if s, ok := e.Store.Textures.(*SolidTextures); ok {
		s.Dispose()
	}
}

// TrackMixer is the per-track mixer the host calls once per frame with the
// track's binding and clip inputs, and tears down when playback stops.
type TrackMixer interface {
	Mix(layers *Layers, binding any, inputs []Input)
	// Destroy restores the state captured before the first frame. It is
	// safe to call any number of times.
	Destroy()
}

type mixState uint8

const (
	stateUninitialized mixState = iota
	stateTracking
)

// mixTarget adapts one bound target (a material, or one renderer slot) to
// the clip mixing algorithm.
type mixTarget interface {
	// seed returns the value of the clip's property the clip blends against.
	seed(c *ClipData) Value
	write(c *ClipData, v Value)
}

// mixClips applies the active clips of one frame to t:
//
//   - no clip leaves t untouched;
//   - one clip at full weight is written as is;
//   - one clip below full weight blends against its seed;
//   - two blendable clips interpolate from the earlier to the later by the
//     later clip's weight;
//   - two unrelated clips each blend against their own seed, in order.
//
// Only the first two clips are honored. key prefixes texture crossfade
// render target keys.
func (e *Env) mixClips(active []activeInput, t mixTarget, key string) {
	if len(active) == 0 {
		return
	}
	if len(active) > 2 {
		e.debugTooManyClips(active)
		active = active[:2]
	}
	if e.stats != nil {
		e.stats.active += len(active)
	}

	if len(active) == 1 {
		e.blendAgainstSeed(active[0], t, key)
		return
	}

	a, b := active[0], active[1]
	if a.clip.IsBlendableWith(b.clip) {
		v, err := e.Blend.LerpInto(key+a.clip.Property, a.clip.Value, b.clip.Value, b.weight)
		if err != nil {
			Logger().Debug("clip blend skipped", "property", a.clip.Property, "err", err)
			return
		}
		e.write(t, b.clip, v)
		return
	}
	e.blendAgainstSeed(a, t, key)
	e.blendAgainstSeed(b, t, key)
}

func (e *Env) blendAgainstSeed(in activeInput, t mixTarget, key string) {
	if in.weight >= 1 {
		e.write(t, in.clip, in.clip.Value)
		return
	}
	v, err := e.Blend.LerpInto(key+in.clip.Property, t.seed(in.clip), in.clip.Value, in.weight)
	if err != nil {
		Logger().Debug("clip blend skipped", "property", in.clip.Property, "err", err)
		return
	}
	e.write(t, in.clip, v)
}

func (e *Env) write(t mixTarget, c *ClipData, v Value) {
	if e.stats != nil {
		e.stats.writes++
	}
	t.write(c, v)
}

var mixerSeq atomic.Uint64

// newMixerKey returns a render target key prefix owned by one mixer, so
// crossfades of different targets and tracks never share targets.
func newMixerKey() string {
	return "mix" + strconv.FormatUint(mixerSeq.Add(1), 10) + "/"
}

// slotKey returns the render target key prefix of a renderer slot.
func slotKey(slot int) string {
	return "slot" + strconv.Itoa(slot) + "/"
}
