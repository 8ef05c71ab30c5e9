package shadertrack

// DefaultSlotSwapThreshold is the clip weight above which a SlotMixer clip
// replaces the materials of its slots.
const DefaultSlotSwapThreshold = 0.5

// SlotMixer substitutes whole materials on the slots of a bound Renderer.
// Each frame the first clip whose weight exceeds Threshold assigns its
// material to every slot selected by Mask. Clips must carry Material values;
// others are ignored.
//
// Substitutions are collected in the frame's override array and applied
// once by LayerMixer, so stacked slot tracks compose top to bottom. Destroy
// puts back the materials the renderer had when the mixer first ran.
type SlotMixer struct {
	env *Env

	Mask      SlotMask
	Threshold float64

	state   mixState
	bound   Renderer
	initial []Material
	active  []activeInput
}

// NewSlotMixer creates a slot mixer affecting the slots selected by mask. The
// threshold is taken from env's configuration, or DefaultSlotSwapThreshold.
func NewSlotMixer(env *Env, mask SlotMask) *SlotMixer {
	th := DefaultSlotSwapThreshold
	if env != nil && env.Config.SlotSwapThreshold > 0 {
		th = env.Config.SlotSwapThreshold
	}
	return &SlotMixer{env: env, Mask: mask, Threshold: th}
}

// Mix implements TrackMixer.
func (m *SlotMixer) Mix(layers *Layers, binding any, inputs []Input) {
	r, _ := binding.(Renderer)
	m.ProcessFrame(layers, r, inputs)
}

// ProcessFrame records this frame's substitutions for target in layers. The
// renderer itself is only written by LayerMixer.
func (m *SlotMixer) ProcessFrame(layers *Layers, target Renderer, inputs []Input) {
	if target == nil {
		return
	}
	if m.state == stateTracking && m.bound != target {
		m.Destroy()
	}
	if layers == nil {
		layers = NewLayers()
	}
	mats := target.SharedMaterials()
	f := layers.Frame(target)
	f.ClaimFirst()
	if m.state == stateUninitialized {
		m.initial = append(m.initial[:0], mats...)
		m.bound = target
		m.state = stateTracking
	}
	m.Mask = m.Mask.Resize(len(mats))

	overrides := f.seedOverrides(m.initial)
	for len(overrides) < len(mats) {
		overrides = append(overrides, mats[len(overrides)])
	}
	f.overrides = overrides

	m.active = activeInputs(m.active[:0], inputs)
	for _, in := range m.active {
		if in.clip.Kind() != KindMaterial || in.weight <= m.Threshold {
			continue
		}
		for slot := range overrides {
			if m.Mask.Affects(slot) {
				overrides[slot] = in.clip.Value.Material
			}
		}
		if m.env != nil && m.env.stats != nil {
			m.env.stats.swaps++
		}
		break
	}
}

// Destroy implements TrackMixer.
func (m *SlotMixer) Destroy() {
	if m.state == stateTracking && m.bound != nil {
		m.bound.SetSharedMaterials(append([]Material(nil), m.initial...))
	}
	m.state = stateUninitialized
	m.bound = nil
	m.initial = m.initial[:0]
}

// Tracking reports whether the mixer holds the captured initial materials.
func (m *SlotMixer) Tracking() bool {
	return m.state == stateTracking
}
