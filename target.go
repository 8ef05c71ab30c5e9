package shadertrack

// PropertyBlock is a set of shader property values addressed by name. It is
// implemented both by materials and by sparse override layers (Overlay).
// Getters of missing properties return zero values.
type PropertyBlock interface {
	HasProperty(name string) bool

	Float(name string) float64
	SetFloat(name string, v float64)
	Int(name string) int
	SetInt(name string, v int)
	Color(name string) Color
	SetColor(name string, c Color)
	Vector(name string) Vec4
	SetVector(name string, v Vec4)
	Texture(name string) Texture
	SetTexture(name string, t Texture)
}

// Material is a shader-backed PropertyBlock. Implementations must be
// comparable (normally pointers): targets are keyed by identity.
type Material interface {
	PropertyBlock

	// Shader returns the reflection data of the material's shader.
	Shader() Shader
	// CopyPropertiesFrom overwrites every property also present on src.
	CopyPropertiesFrom(src Material)
	// Clone returns an independent copy sharing the same shader.
	Clone() Material
	// LerpProperties sets every property to the interpolation of a and b.
	LerpProperties(a, b Material, t float64)
}

// Renderer is a multi-slot renderer: one shared material per slot plus an
// optional sparse override layer per slot. Implementations must be
// comparable (normally pointers).
type Renderer interface {
	SharedMaterials() []Material
	SetSharedMaterials(mats []Material)
	// PropertyOverlay returns the override layer of slot, or nil if none.
	PropertyOverlay(slot int) *Overlay
	// SetPropertyOverlay replaces the override layer of slot. Nil clears it.
	SetPropertyOverlay(slot int, o *Overlay)
}

// stName is the name of the packed tiling/offset vector of a texture
// property.
func stName(name string) string {
	return name + "_ST"
}
