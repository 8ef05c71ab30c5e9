package shadertrack

// Shader is the reflection interface of the host's shader system. Property
// indices are only valid for the shader that returned them.
type Shader interface {
	// FindProperty returns the index of the named property, or -1 if the
	// shader declares no such property.
	FindProperty(name string) int
	// PropertyKind returns the declared kind of the property at index.
	PropertyKind(index int) PropertyKind
	// RangeLimits returns the declared [min, max] of a Range property.
	RangeLimits(index int) (min, max float64)
	// TextureDimension returns the declared dimension of a Texture property.
	TextureDimension(index int) TextureDimension
}

// PropertyDescriptor describes one shader property as reported by a Shader.
type PropertyDescriptor struct {
	Name      string
	Kind      PropertyKind
	HasRange  bool
	Min, Max  float64
	Dimension TextureDimension
}

// Describe looks up name on s. It reports false if s is nil or declares no
// property with that name.
func Describe(s Shader, name string) (PropertyDescriptor, bool) {
	if s == nil {
		return PropertyDescriptor{}, false
	}
	idx := s.FindProperty(name)
	if idx < 0 {
		return PropertyDescriptor{}, false
	}
	d := PropertyDescriptor{Name: name, Kind: s.PropertyKind(idx)}
	switch d.Kind {
	case KindRange:
		d.HasRange = true
		d.Min, d.Max = s.RangeLimits(idx)
	case KindTexture:
		d.Dimension = s.TextureDimension(idx)
	}
	return d, true
}

// ShaderInfo is a static Shader built from a list of descriptors. It is the
// shader used by BasicMaterial.
type ShaderInfo struct {
	Name  string
	props []PropertyDescriptor
	index map[string]int
}

// NewShaderInfo creates a shader declaring the given properties in order.
// Texture properties with an unset dimension default to Dimension2D.
func NewShaderInfo(name string, props ...PropertyDescriptor) *ShaderInfo {
	s := &ShaderInfo{
		Name:  name,
		props: make([]PropertyDescriptor, len(props)),
		index: make(map[string]int, len(props)),
	}
	for i, p := range props {
		if p.Kind == KindTexture && p.Dimension == DimensionUnknown {
			p.Dimension = Dimension2D
		}
		if p.Kind == KindRange {
			p.HasRange = true
		}
		s.props[i] = p
		s.index[p.Name] = i
	}
	return s
}

// FindProperty implements Shader.
func (s *ShaderInfo) FindProperty(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// PropertyKind implements Shader.
func (s *ShaderInfo) PropertyKind(index int) PropertyKind {
	return s.props[index].Kind
}

// RangeLimits implements Shader.
func (s *ShaderInfo) RangeLimits(index int) (min, max float64) {
	p := s.props[index]
	return p.Min, p.Max
}

// TextureDimension implements Shader.
func (s *ShaderInfo) TextureDimension(index int) TextureDimension {
	return s.props[index].Dimension
}

// PropertyCount returns the number of declared properties.
func (s *ShaderInfo) PropertyCount() int {
	return len(s.props)
}

// Property returns the descriptor at index.
func (s *ShaderInfo) Property(index int) PropertyDescriptor {
	return s.props[index]
}

// FloatProperty declares a Float property.
func FloatProperty(name string) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindFloat}
}

// RangeProperty declares a Range property limited to [min, max].
func RangeProperty(name string, min, max float64) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindRange, HasRange: true, Min: min, Max: max}
}

// IntProperty declares an Int property.
func IntProperty(name string) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindInt}
}

// ColorProperty declares a Color property.
func ColorProperty(name string) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindColor}
}

// VectorProperty declares a Vector property.
func VectorProperty(name string) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindVector}
}

// TextureProperty declares a Texture property of the given dimension.
func TextureProperty(name string, dim TextureDimension) PropertyDescriptor {
	return PropertyDescriptor{Name: name, Kind: KindTexture, Dimension: dim}
}
