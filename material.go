package shadertrack

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// BasicMaterial is an in-process Material holding one value per property
// declared by its ShaderInfo. Writes to undeclared names are dropped.
//
// Texture properties additionally expose their packed tiling/offset vector
// under name + "_ST", initialized to scale (1, 1) and offset (0, 0).
type BasicMaterial struct {
	Name     string
	shader   *ShaderInfo
	scalars  map[string]float64
	vectors  map[string]Vec4
	textures map[string]Texture
}

// NewMaterial creates a material with every property at its default: zero
// for scalars (the minimum for ranges), white for colors, zero for vectors,
// no texture and identity tiling/offset.
func NewMaterial(name string, shader *ShaderInfo) *BasicMaterial {
	m := &BasicMaterial{
		Name:     name,
		shader:   shader,
		scalars:  make(map[string]float64),
		vectors:  make(map[string]Vec4),
		textures: make(map[string]Texture),
	}
	if shader == nil {
		return m
	}
	for _, p := range shader.props {
		switch p.Kind {
		case KindFloat, KindInt:
			m.scalars[p.Name] = 0
		case KindRange:
			m.scalars[p.Name] = p.Min
		case KindColor:
			m.vectors[p.Name] = ColorWhite.Vec4()
		case KindVector:
			m.vectors[p.Name] = Vec4{}
		case KindTexture:
			m.textures[p.Name] = nil
			m.vectors[stName(p.Name)] = identityScaleOffset
		}
	}
	return m
}

// Shader implements Material.
func (m *BasicMaterial) Shader() Shader {
	if m.shader == nil {
		return nil
	}
	return m.shader
}

// ShaderInfo returns the concrete shader of the material.
func (m *BasicMaterial) ShaderInfo() *ShaderInfo {
	return m.shader
}

// HasProperty implements PropertyBlock.
func (m *BasicMaterial) HasProperty(name string) bool {
	if _, ok := m.scalars[name]; ok {
		return true
	}
	if _, ok := m.vectors[name]; ok {
		return true
	}
	_, ok := m.textures[name]
	return ok
}

// Float implements PropertyBlock.
func (m *BasicMaterial) Float(name string) float64 { return m.scalars[name] }

// SetFloat implements PropertyBlock.
func (m *BasicMaterial) SetFloat(name string, v float64) {
	if _, ok := m.scalars[name]; ok {
		m.scalars[name] = v
	}
}

// Int implements PropertyBlock.
func (m *BasicMaterial) Int(name string) int { return int(m.scalars[name]) }

// SetInt implements PropertyBlock.
func (m *BasicMaterial) SetInt(name string, v int) { m.SetFloat(name, float64(v)) }

// Color implements PropertyBlock.
func (m *BasicMaterial) Color(name string) Color { return m.vectors[name].Color() }

// SetColor implements PropertyBlock.
func (m *BasicMaterial) SetColor(name string, c Color) { m.SetVector(name, c.Vec4()) }

// Vector implements PropertyBlock.
func (m *BasicMaterial) Vector(name string) Vec4 { return m.vectors[name] }

// SetVector implements PropertyBlock.
func (m *BasicMaterial) SetVector(name string, v Vec4) {
	if _, ok := m.vectors[name]; ok {
		m.vectors[name] = v
	}
}

// Texture implements PropertyBlock.
func (m *BasicMaterial) Texture(name string) Texture { return m.textures[name] }

// SetTexture implements PropertyBlock.
func (m *BasicMaterial) SetTexture(name string, t Texture) {
	if _, ok := m.textures[name]; ok {
		m.textures[name] = t
	}
}

// CopyPropertiesFrom implements Material.
func (m *BasicMaterial) CopyPropertiesFrom(src Material) {
	if src == nil || src == Material(m) {
		return
	}
	for k := range m.scalars {
		if src.HasProperty(k) {
			m.scalars[k] = src.Float(k)
		}
	}
	for k := range m.vectors {
		if src.HasProperty(k) {
			m.vectors[k] = src.Vector(k)
		}
	}
	for k := range m.textures {
		if src.HasProperty(k) {
			m.textures[k] = src.Texture(k)
		}
	}
}

// Clone implements Material.
func (m *BasicMaterial) Clone() Material {
	c := &BasicMaterial{
		Name:     m.Name,
		shader:   m.shader,
		scalars:  make(map[string]float64, len(m.scalars)),
		vectors:  make(map[string]Vec4, len(m.vectors)),
		textures: make(map[string]Texture, len(m.textures)),
	}
	for k, v := range m.scalars {
		c.scalars[k] = v
	}
	for k, v := range m.vectors {
		c.vectors[k] = v
	}
	for k, v := range m.textures {
		c.textures[k] = v
	}
	return c
}

// LerpProperties implements Material. Scalars and vectors are interpolated;
// textures cut over from a to b at t = 0.5. Properties missing on either
// side are left unchanged.
func (m *BasicMaterial) LerpProperties(a, b Material, t float64) {
	if a == nil || b == nil {
		return
	}
	t = clamp01(t)
	for k := range m.scalars {
		if a.HasProperty(k) && b.HasProperty(k) {
			m.scalars[k] = lerpf(a.Float(k), b.Float(k), t)
		}
	}
	for k := range m.vectors {
		if a.HasProperty(k) && b.HasProperty(k) {
			m.vectors[k] = a.Vector(k).Lerp(b.Vector(k), t)
		}
	}
	for k := range m.textures {
		if a.HasProperty(k) && b.HasProperty(k) {
			if t < 0.5 {
				m.textures[k] = a.Texture(k)
			} else {
				m.textures[k] = b.Texture(k)
			}
		}
	}
}

// Uniforms writes the material's scalar and vector properties into dst using
// Kage uniform names (see UniformName). Scalars become float32, vectors
// []float32 of length 4. Overlay values, if o is non-nil, take precedence.
func (m *BasicMaterial) Uniforms(dst map[string]any, o *Overlay) {
	for k, v := range m.scalars {
		if o != nil && o.HasProperty(k) {
			v = o.Float(k)
		}
		dst[UniformName(k)] = float32(v)
	}
	for k, v := range m.vectors {
		if o != nil && o.HasProperty(k) {
			v = o.Vector(k)
		}
		dst[UniformName(k)] = []float32{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
	}
}

// Images returns the ebiten images bound to the material's texture
// properties in declaration order, up to three. Slot 0 of a shader draw is
// reserved for the source image.
func (m *BasicMaterial) Images(o *Overlay) [3]*ebiten.Image {
	var imgs [3]*ebiten.Image
	if m.shader == nil {
		return imgs
	}
	n := 0
	for _, p := range m.shader.props {
		if p.Kind != KindTexture || n == len(imgs) {
			continue
		}
		tex := m.textures[p.Name]
		if o != nil && o.HasProperty(p.Name) {
			tex = o.Texture(p.Name)
		}
		if it, ok := tex.(*ImageTexture); ok {
			imgs[n] = it.Image
		}
		n++
	}
	return imgs
}

// UniformName converts a shader property name to an exported Kage uniform
// name: leading underscores are dropped and the first letter is upper-cased
// ("_BaseColor" becomes "BaseColor", "_MainTex_ST" becomes "MainTex_ST").
func UniformName(name string) string {
	name = strings.TrimLeft(name, "_")
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
