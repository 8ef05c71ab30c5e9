package shadertrack

// MaterialMixer mixes the clips of one track into a bound Material.
//
// On the first frame with a bound material it snapshots the material; on
// Destroy it copies the snapshot back. Clips blending in or out seed from
// the snapshot, or from the live material for properties an earlier track
// already composed this frame.
type MaterialMixer struct {
	env *Env

	key      string
	state    mixState
	bound    Material
	defaults Material
	active   []activeInput
}

// NewMaterialMixer creates a mixer using env's blender and store.
func NewMaterialMixer(env *Env) *MaterialMixer {
	return &MaterialMixer{env: env}
}

// Mix implements TrackMixer. Bindings that are not a Material are treated
// as unbound.
func (m *MaterialMixer) Mix(layers *Layers, binding any, inputs []Input) {
	mat, _ := binding.(Material)
	m.ProcessFrame(layers, mat, inputs)
}

// ProcessFrame mixes inputs into target for the current frame. A nil target
// makes the call a no-op.
func (m *MaterialMixer) ProcessFrame(layers *Layers, target Material, inputs []Input) {
	if target == nil {
		return
	}
	if m.state == stateTracking && m.bound != target {
		m.Destroy()
	}
	if layers == nil {
		layers = NewLayers()
	}

	if m.key == "" {
		m.key = newMixerKey()
	}

	f := layers.Frame(target)
	f.ClaimFirst()
	if m.state == stateUninitialized {
		if f.baseline != nil {
			m.defaults = f.baseline
		} else {
			m.defaults = target.Clone()
		}
		m.bound = target
		m.state = stateTracking
	}
	// The first material mixer of the frame publishes its snapshot,
	// whichever kind of mixer claimed the frame.
	if f.baseline == nil {
		f.baseline = m.defaults
	}

	m.active = activeInputs(m.active[:0], inputs)
	m.env.mixClips(m.active, materialFrame{m: m, f: f}, m.key)
}

// Destroy implements TrackMixer.
func (m *MaterialMixer) Destroy() {
	if m.state == stateTracking && m.bound != nil && m.defaults != nil {
		m.bound.CopyPropertiesFrom(m.defaults)
	}
	m.state = stateUninitialized
	m.bound = nil
	m.defaults = nil
}

// Tracking reports whether the mixer holds a captured default state.
func (m *MaterialMixer) Tracking() bool {
	return m.state == stateTracking
}

// Default returns the captured default snapshot, or nil.
func (m *MaterialMixer) Default() Material {
	return m.defaults
}

// materialFrame is the mixTarget of a MaterialMixer for one frame.
type materialFrame struct {
	m *MaterialMixer
	f *Frame
}

func (mf materialFrame) seed(c *ClipData) Value {
	v := c.Value
	src := mf.m.defaults
	composed := mf.f.composedProperty(c.Property)
	if c.Value.Kind == KindMaterial {
		composed = mf.f.composedAnyProperty()
	}
	if composed {
		src = mf.m.bound
	}
	mf.m.env.Store.read(mf.f, src, c.Property, &v)
	return v
}

func (mf materialFrame) write(c *ClipData, v Value) {
	if !mf.m.env.Store.write(mf.f, mf.m.bound, c.Property, v) {
		return
	}
	if v.Kind == KindMaterial {
		mf.f.markProperty(allProperties)
	} else {
		mf.f.markProperty(c.Property)
	}
}
