package shadertrack

// RendererMixer mixes the clips of one track into the per-slot property
// overlays of a bound Renderer. Every slot selected by Mask receives the
// mixed values; other slots are never touched.
//
// On the first frame with a bound renderer it remembers each slot's overlay
// (or its absence). Destroy puts the remembered overlay back on every slot
// the mixer wrote; slots that had none are cleared.
type RendererMixer struct {
	env *Env

	// Mask selects the affected slots. It is resized to the renderer's slot
	// count every frame; new slots are affected.
	Mask SlotMask

	key      string
	state    mixState
	bound    Renderer
	snapshot []*Overlay
	touched  []bool
	active   []activeInput
}

// NewRendererMixer creates a mixer affecting the slots selected by mask. A
// nil mask affects every slot.
func NewRendererMixer(env *Env, mask SlotMask) *RendererMixer {
	return &RendererMixer{env: env, Mask: mask}
}

// Mix implements TrackMixer. Bindings that are not a Renderer are treated
// as unbound.
func (m *RendererMixer) Mix(layers *Layers, binding any, inputs []Input) {
	r, _ := binding.(Renderer)
	m.ProcessFrame(layers, r, inputs)
}

// ProcessFrame mixes inputs into the overlays of target for the current
// frame. A nil target or one without slots makes the call a no-op.
func (m *RendererMixer) ProcessFrame(layers *Layers, target Renderer, inputs []Input) {
	if target == nil {
		return
	}
	mats := target.SharedMaterials()
	if len(mats) == 0 {
		return
	}
	if m.state == stateTracking && m.bound != target {
		m.Destroy()
	}
	if layers == nil {
		layers = NewLayers()
	}
	m.Mask = m.Mask.Resize(len(mats))

	if m.key == "" {
		m.key = newMixerKey()
	}

	f := layers.Frame(target)
	f.ClaimFirst()
	if m.state == stateUninitialized {
		m.capture(f, target)
	}
	m.growSnapshot(target, len(mats))
	// A SlotMixer may have claimed the frame; the first renderer mixer
	// still publishes the overlays it captured.
	if !f.hasSlotBase {
		f.slotBaseline = m.snapshot
		f.hasSlotBase = true
	}

	m.active = activeInputs(m.active[:0], inputs)
	if len(m.active) == 0 {
		return
	}

	for slot, mat := range mats {
		if !m.Mask.Affects(slot) {
			continue
		}
		var working *Overlay
		if f.composedSlot(slot) {
			working = target.PropertyOverlay(slot).Clone()
		} else {
			working = m.snapshot[slot].Clone()
		}
		sf := slotFrame{env: m.env, f: f, overlay: working, material: mat}
		m.env.mixClips(m.active, sf, m.key+slotKey(slot))
		target.SetPropertyOverlay(slot, working)
		f.markSlot(slot)
		m.touched[slot] = true
	}
}

// capture snapshots the overlays of target. A mixer joining after another
// renderer mixer ran this frame reuses that mixer's snapshot so that it does
// not record values composed this frame.
func (m *RendererMixer) capture(f *Frame, target Renderer) {
	m.snapshot = m.snapshot[:0]
	if f.hasSlotBase {
		m.snapshot = append(m.snapshot, f.slotBaseline...)
	}
	m.touched = m.touched[:0]
	m.bound = target
	m.state = stateTracking
}

// growSnapshot extends the snapshot to n slots with the current overlays of
// slots not seen before.
func (m *RendererMixer) growSnapshot(target Renderer, n int) {
	for i := len(m.snapshot); i < n; i++ {
		m.snapshot = append(m.snapshot, target.PropertyOverlay(i))
	}
	for len(m.touched) < n {
		m.touched = append(m.touched, false)
	}
}

// Destroy implements TrackMixer.
func (m *RendererMixer) Destroy() {
	if m.state == stateTracking && m.bound != nil {
		n := len(m.bound.SharedMaterials())
		for slot, t := range m.touched {
			if t && slot < n {
				m.bound.SetPropertyOverlay(slot, m.snapshot[slot])
			}
		}
	}
	m.state = stateUninitialized
	m.bound = nil
	m.snapshot = m.snapshot[:0]
	m.touched = m.touched[:0]
}

// Tracking reports whether the mixer holds a captured default state.
func (m *RendererMixer) Tracking() bool {
	return m.state == stateTracking
}

// slotFrame is the mixTarget of one renderer slot for one frame: writes go
// to the working overlay, seeds come from it or from the slot's material.
type slotFrame struct {
	env      *Env
	f        *Frame
	overlay  *Overlay
	material Material
}

func (sf slotFrame) seed(c *ClipData) Value {
	v := c.Value
	if sf.env.Store.read(sf.f, sf.overlay, c.Property, &v) {
		return v
	}
	if sf.material != nil {
		sf.env.Store.read(sf.f, sf.material, c.Property, &v)
	}
	return v
}

func (sf slotFrame) write(c *ClipData, v Value) {
	sf.env.Store.write(sf.f, sf.overlay, c.Property, v)
}
