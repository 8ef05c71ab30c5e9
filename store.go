package shadertrack

// Store reads and writes Values against targets by property name.
//
// Shader-backed targets (a Material with a non-nil Shader) are checked
// through reflection: names the shader does not declare, or declares with an
// incompatible kind, are skipped. Other targets, such as overlays, are read
// only where they carry the property and accept every write.
type Store struct {
	// Textures synthesizes a texture for texture writes that carry none.
	// Without it such writes are dropped.
	Textures TextureFactory
}

// NewStore creates a store that synthesizes missing textures with f.
func NewStore(f TextureFactory) *Store {
	return &Store{Textures: f}
}

// ReadFrom updates v from the property name on target. It leaves v unchanged
// and reports false if target lacks a compatible property.
func (s *Store) ReadFrom(target PropertyBlock, name string, v *Value) bool {
	return s.read(nil, target, name, v)
}

// WriteTo writes v to the property name on target and reports whether a
// write happened.
func (s *Store) WriteTo(target PropertyBlock, name string, v Value) bool {
	return s.write(nil, target, name, v)
}

// resolve returns the descriptor of name on target's shader. shaderBacked is
// false for targets without reflection data, in which case ok is true.
func resolve(f *Frame, target PropertyBlock, name string) (d PropertyDescriptor, shaderBacked, ok bool) {
	m, isMat := target.(Material)
	if !isMat {
		return d, false, true
	}
	sh := m.Shader()
	if sh == nil {
		return d, false, true
	}
	if f != nil {
		d, ok = f.describe(sh, name)
	} else {
		d, ok = Describe(sh, name)
	}
	return d, true, ok
}

func (s *Store) read(f *Frame, target PropertyBlock, name string, v *Value) bool {
	if target == nil {
		return false
	}
	if v.Kind == KindMaterial {
		m, ok := target.(Material)
		if !ok {
			return false
		}
		v.Material = m.Clone()
		return true
	}

	d, shaderBacked, ok := resolve(f, target, name)
	if !ok {
		return false
	}
	if shaderBacked {
		if !v.Kind.compatible(d.Kind) {
			return false
		}
	} else {
		key := name
		if v.Kind == KindTexture && v.Target == TextureTilingOffset {
			key = stName(name)
		}
		if !target.HasProperty(key) {
			return false
		}
	}

	switch v.Kind {
	case KindFloat:
		v.Vector.X = target.Float(name)
	case KindInt:
		v.Vector.X = float64(target.Int(name))
	case KindRange:
		v.Vector.X = target.Float(name)
		if d.HasRange {
			v.Vector.Y, v.Vector.Z = d.Min, d.Max
		}
	case KindColor:
		v.Vector = target.Color(name).Vec4()
	case KindVector:
		v.Vector = target.Vector(name)
	case KindTexture:
		if v.Target == TextureTilingOffset {
			v.Vector = target.Vector(stName(name))
		} else {
			v.Texture = target.Texture(name)
		}
	default:
		return false
	}
	return true
}

func (s *Store) write(f *Frame, target PropertyBlock, name string, v Value) bool {
	if target == nil {
		return false
	}
	if v.Kind == KindMaterial {
		m, ok := target.(Material)
		if !ok || v.Material == nil || v.Material == m {
			return false
		}
		m.CopyPropertiesFrom(v.Material)
		return true
	}

	d, shaderBacked, ok := resolve(f, target, name)
	if !ok || (shaderBacked && !v.Kind.compatible(d.Kind)) {
		return false
	}

	switch v.Kind {
	case KindFloat, KindRange:
		target.SetFloat(name, v.Vector.X)
	case KindInt:
		target.SetInt(name, int(v.Vector.X))
	case KindColor:
		target.SetColor(name, v.Vector.Color())
	case KindVector:
		target.SetVector(name, v.Vector)
	case KindTexture:
		if v.Target == TextureTilingOffset {
			target.SetVector(stName(name), v.Vector)
			return true
		}
		tex := v.Texture
		if tex == nil {
			if s.Textures == nil {
				return false
			}
			tex = s.Textures.SolidTexture(v.Vector.Color())
		}
		if shaderBacked && d.Dimension != DimensionUnknown && tex.Dimension() != d.Dimension {
			return false
		}
		target.SetTexture(name, tex)
	default:
		return false
	}
	return true
}
