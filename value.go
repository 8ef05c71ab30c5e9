package shadertrack

// Value is one shader property value. Kind selects the meaningful payload:
//
//   - KindFloat, KindRange, KindInt: Vector.X. Range values read from a live
//     shader also carry the declared min and max in Vector.Y and Vector.Z.
//   - KindColor, KindVector: Vector.
//   - KindTexture with TextureAsset: Texture, with Vector as the fallback
//     color used when Texture is nil.
//   - KindTexture with TextureTilingOffset: Vector packed as
//     (scale.x, scale.y, offset.x, offset.y).
//   - KindMaterial: Material.
//
// Fields outside the selected payload are ignored.
type Value struct {
	Kind     PropertyKind
	Vector   Vec4
	Texture  Texture
	Target   TextureTarget
	Material Material
}

// FloatValue returns a Float value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Vector: Vec4{X: v}}
}

// RangeValue returns a Range value. The limits are only informative.
func RangeValue(v, min, max float64) Value {
	return Value{Kind: KindRange, Vector: Vec4{X: v, Y: min, Z: max}}
}

// IntValue returns an Int value.
func IntValue(v int) Value {
	return Value{Kind: KindInt, Vector: Vec4{X: float64(v)}}
}

// ColorValue returns a Color value.
func ColorValue(c Color) Value {
	return Value{Kind: KindColor, Vector: c.Vec4()}
}

// VectorValue returns a Vector value.
func VectorValue(v Vec4) Value {
	return Value{Kind: KindVector, Vector: v}
}

// TextureValue returns a texture asset value. If tex is nil, writes
// synthesize a solid texture of the fallback color.
func TextureValue(tex Texture, fallback Color) Value {
	return Value{Kind: KindTexture, Target: TextureAsset, Texture: tex, Vector: fallback.Vec4()}
}

// TilingOffsetValue returns a texture tiling/offset value.
func TilingOffsetValue(scaleX, scaleY, offsetX, offsetY float64) Value {
	return Value{
		Kind:   KindTexture,
		Target: TextureTilingOffset,
		Vector: Vec4{scaleX, scaleY, offsetX, offsetY},
	}
}

// MaterialValue returns a whole-material override value.
func MaterialValue(m Material) Value {
	return Value{Kind: KindMaterial, Material: m}
}

// Float returns the scalar payload.
func (v Value) Float() float64 { return v.Vector.X }

// Int returns the scalar payload truncated toward zero.
func (v Value) Int() int { return int(v.Vector.X) }

// Color returns the vector payload as a color.
func (v Value) Color() Color { return v.Vector.Color() }

// RangeLimits returns the packed [min, max] of a Range value.
func (v Value) RangeLimits() (min, max float64) { return v.Vector.Y, v.Vector.Z }

// Equal reports whether v and o carry the same kind and payload. Payload
// fields that Kind does not select are not compared.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindFloat, KindInt:
		return v.Vector.X == o.Vector.X
	case KindRange, KindColor, KindVector:
		return v.Vector == o.Vector
	case KindTexture:
		if v.Target != o.Target {
			return false
		}
		if v.Target == TextureTilingOffset {
			return v.Vector == o.Vector
		}
		if v.Texture == nil && o.Texture == nil {
			return v.Vector == o.Vector
		}
		return v.Texture == o.Texture
	case KindMaterial:
		return v.Material == o.Material
	}
	return false
}
