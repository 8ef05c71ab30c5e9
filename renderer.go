package shadertrack

// SlotRenderer is an in-process Renderer with a fixed list of material slots.
type SlotRenderer struct {
	Name      string
	materials []Material
	overlays  []*Overlay
}

// NewSlotRenderer creates a renderer with one slot per material.
func NewSlotRenderer(name string, mats ...Material) *SlotRenderer {
	r := &SlotRenderer{Name: name}
	r.SetSharedMaterials(mats)
	return r
}

// SharedMaterials implements Renderer. The returned slice must not be
// modified.
func (r *SlotRenderer) SharedMaterials() []Material {
	return r.materials
}

// SetSharedMaterials implements Renderer. The slot count follows len(mats);
// overlays of removed slots are dropped and new slots start without one.
func (r *SlotRenderer) SetSharedMaterials(mats []Material) {
	r.materials = append(r.materials[:0:0], mats...)
	switch {
	case len(r.overlays) > len(mats):
		r.overlays = r.overlays[:len(mats)]
	case len(r.overlays) < len(mats):
		r.overlays = append(r.overlays, make([]*Overlay, len(mats)-len(r.overlays))...)
	}
}

// SlotCount returns the number of material slots.
func (r *SlotRenderer) SlotCount() int {
	return len(r.materials)
}

// PropertyOverlay implements Renderer.
func (r *SlotRenderer) PropertyOverlay(slot int) *Overlay {
	if slot < 0 || slot >= len(r.overlays) {
		return nil
	}
	return r.overlays[slot]
}

// SetPropertyOverlay implements Renderer. Out-of-range slots are ignored.
func (r *SlotRenderer) SetPropertyOverlay(slot int, o *Overlay) {
	if slot < 0 || slot >= len(r.overlays) {
		return
	}
	r.overlays[slot] = o
}
