package shadertrack

// Layers sequences the mixers of stacked tracks that share a bound target.
// It holds one Frame per target for the frame being evaluated; LayerMixer
// finalizes and drops it once every track bound to the target ran.
//
// Frames are keyed by target identity, so targets must be comparable
// (normally pointers). One Layers serves one timeline instance.
type Layers struct {
	frames map[any]*Frame
}

// NewLayers creates an empty layer sequencer.
func NewLayers() *Layers {
	return &Layers{frames: make(map[any]*Frame)}
}

// Frame returns the composition state of target for the current frame,
// creating it for the first mixer that asks.
func (l *Layers) Frame(target any) *Frame {
	if l.frames == nil {
		l.frames = make(map[any]*Frame)
	}
	f, ok := l.frames[target]
	if !ok {
		f = &Frame{target: target}
		l.frames[target] = f
	}
	return f
}

// Finish applies the pending whole-material overrides of target, if any, and
// discards its frame state.
func (l *Layers) Finish(target any) {
	f, ok := l.frames[target]
	if !ok {
		return
	}
	if r, ok := target.(Renderer); ok && f.overrides != nil {
		r.SetSharedMaterials(f.overrides)
	}
	delete(l.frames, target)
}

// Reset discards every frame without applying pending overrides.
func (l *Layers) Reset() {
	clear(l.frames)
}

// Len returns the number of targets with live frame state.
func (l *Layers) Len() int {
	return len(l.frames)
}

// LayerMixer runs after every track mixer of a bound target and closes that
// target's frame.
type LayerMixer struct{}

// ProcessFrame finalizes target's frame in layers.
func (LayerMixer) ProcessFrame(layers *Layers, target any) {
	if layers == nil || target == nil {
		return
	}
	layers.Finish(target)
}

// composeKey identifies something composed on a target this frame: a material
// property (slot -1) or a renderer slot (empty property).
type composeKey struct {
	slot int
	prop string
}

// allProperties marks a whole-material write.
const allProperties = "*"

type lookupKey struct {
	shader Shader
	name   string
}

type lookupResult struct {
	d  PropertyDescriptor
	ok bool
}

// Frame is the per-target state shared by the mixers of one frame.
type Frame struct {
	target  any
	claimed bool

	// baseline is the default snapshot of the first material mixer to run
	// this frame, offered to later mixers capturing their own default.
	baseline Material
	// slotBaseline is the same for renderer mixers: one overlay per slot.
	// SlotMixers never set either.
	slotBaseline []*Overlay
	hasSlotBase  bool

	composed  map[composeKey]struct{}
	overrides []Material
	lookups   map[lookupKey]lookupResult
}

// ClaimFirst reports whether the caller is the first mixer to run on the
// target this frame. It returns true exactly once per frame.
func (f *Frame) ClaimFirst() bool {
	if f.claimed {
		return false
	}
	f.claimed = true
	return true
}

// composedProperty reports whether an earlier mixer wrote property name on
// the target this frame.
func (f *Frame) composedProperty(name string) bool {
	_, ok := f.composed[composeKey{-1, name}]
	if !ok {
		_, ok = f.composed[composeKey{-1, allProperties}]
	}
	return ok
}

// composedAnyProperty reports whether an earlier mixer wrote any material
// property on the target this frame.
func (f *Frame) composedAnyProperty() bool {
	for k := range f.composed {
		if k.slot < 0 {
			return true
		}
	}
	return false
}

func (f *Frame) markProperty(name string) {
	f.mark(composeKey{-1, name})
}

// composedSlot reports whether an earlier mixer wrote the overlay of slot
// this frame.
func (f *Frame) composedSlot(slot int) bool {
	_, ok := f.composed[composeKey{slot, ""}]
	return ok
}

func (f *Frame) markSlot(slot int) {
	f.mark(composeKey{slot, ""})
}

func (f *Frame) mark(k composeKey) {
	if f.composed == nil {
		f.composed = make(map[composeKey]struct{})
	}
	f.composed[k] = struct{}{}
}

// seedOverrides starts the frame's override array from initial unless an
// earlier mixer already did, and returns it.
func (f *Frame) seedOverrides(initial []Material) []Material {
	if f.overrides == nil {
		f.overrides = append(make([]Material, 0, len(initial)), initial...)
	}
	return f.overrides
}

// describe memoizes Describe for the duration of the frame.
func (f *Frame) describe(s Shader, name string) (PropertyDescriptor, bool) {
	k := lookupKey{s, name}
	if r, ok := f.lookups[k]; ok {
		return r.d, r.ok
	}
	d, ok := Describe(s, name)
	if f.lookups == nil {
		f.lookups = make(map[lookupKey]lookupResult)
	}
	f.lookups[k] = lookupResult{d, ok}
	return d, ok
}
