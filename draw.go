package shadertrack

import "github.com/hajimehoshi/ebiten/v2"

// MaterialShader draws with a Kage shader whose uniforms and images come
// from a BasicMaterial and an optional per-slot Overlay. Images[0] is the
// source image; the material's first two textures fill Images[1] and
// Images[2].
type MaterialShader struct {
	Shader   *ebiten.Shader
	Material *BasicMaterial
	Overlay  *Overlay

	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewMaterialShader creates a material shader drawing m with shader.
func NewMaterialShader(shader *ebiten.Shader, m *BasicMaterial) *MaterialShader {
	return &MaterialShader{
		Shader:   shader,
		Material: m,
		uniforms: make(map[string]any),
	}
}

// ForSlot binds s to slot of r: the slot's material and overlay.
// Slots not holding a *BasicMaterial leave s unchanged.
func (s *MaterialShader) ForSlot(r Renderer, slot int) *MaterialShader {
	mats := r.SharedMaterials()
	if slot < 0 || slot >= len(mats) {
		return s
	}
	if m, ok := mats[slot].(*BasicMaterial); ok {
		s.Material = m
		s.Overlay = r.PropertyOverlay(slot)
	}
	return s
}

// prepare refreshes the uniforms and images from the material.
func (s *MaterialShader) prepare(src *ebiten.Image) {
	clear(s.uniforms)
	s.shaderOp.GeoM.Reset()
	s.shaderOp.Images[0] = src
	s.shaderOp.Images[1] = nil
	s.shaderOp.Images[2] = nil
	if s.Material != nil {
		s.Material.Uniforms(s.uniforms, s.Overlay)
		imgs := s.Material.Images(s.Overlay)
		s.shaderOp.Images[1] = imgs[0]
		s.shaderOp.Images[2] = imgs[1]
	}
	s.shaderOp.Uniforms = s.uniforms
}

// Apply renders src into dst with the material's current values.
func (s *MaterialShader) Apply(src, dst *ebiten.Image) {
	if s.Shader == nil {
		return
	}
	s.prepare(src)
	bounds := src.Bounds()
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), s.Shader, &s.shaderOp)
}

// DrawAt renders src at (x, y) on dst.
func (s *MaterialShader) DrawAt(dst, src *ebiten.Image, x, y float64) {
	if s.Shader == nil {
		return
	}
	s.prepare(src)
	s.shaderOp.GeoM.Translate(x, y)
	bounds := src.Bounds()
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), s.Shader, &s.shaderOp)
}
