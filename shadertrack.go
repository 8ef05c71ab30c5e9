package shadertrack

import (
	"math"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a color is written into an image.
type Color struct {
	R, G, B, A float64
}

// Common colors used for texture defaults.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGrey  = Color{0.5, 0.5, 0.5, 1}
	ColorBump  = Color{0.5, 0.5, 1, 1}
)

// Vec4 returns the color as a 4-component vector (R, G, B, A).
func (c Color) Vec4() Vec4 {
	return Vec4{c.R, c.G, c.B, c.A}
}

// Vec4 is the 4-component float vector every color, vector and
// packed scalar property is stored in.
type Vec4 struct {
	X, Y, Z, W float64
}

// Color reinterprets the vector as an RGBA color.
func (v Vec4) Color() Color {
	return Color{v.X, v.Y, v.Z, v.W}
}

// Lerp linearly interpolates each component from v to o.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		X: lerpf(v.X, o.X, t),
		Y: lerpf(v.Y, o.Y, t),
		Z: lerpf(v.Z, o.Z, t),
		W: lerpf(v.W, o.W, t),
	}
}

// identityScaleOffset is the tiling/offset of an untransformed texture:
// scale (1, 1), offset (0, 0).
var identityScaleOffset = Vec4{1, 1, 0, 0}

// PropertyKind is the semantic type of a shader property and the tag of a
// Value.
type PropertyKind uint8

const (
	KindFloat    PropertyKind = iota // scalar
	KindRange                        // scalar with shader-declared min/max
	KindInt                          // integer scalar
	KindColor                        // RGBA color
	KindVector                       // 4-component vector
	KindTexture                      // texture asset or its tiling/offset
	KindMaterial                     // whole-material override
)

var kindNames = [...]string{
	KindFloat:    "Float",
	KindRange:    "Range",
	KindInt:      "Int",
	KindColor:    "Color",
	KindVector:   "Vector",
	KindTexture:  "Texture",
	KindMaterial: "Material",
}

func (k PropertyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParsePropertyKind returns the kind named s, ignoring case.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, s) {
			return PropertyKind(k), true
		}
	}
	return 0, false
}

// numeric reports whether the kind is stored as a single scalar.
func (k PropertyKind) numeric() bool {
	return k == KindFloat || k == KindRange || k == KindInt
}

// compatible reports whether a value of kind k may be read from or written to
// a shader slot declared as kind slot.
func (k PropertyKind) compatible(slot PropertyKind) bool {
	switch {
	case k.numeric():
		return slot.numeric()
	case k == KindColor || k == KindVector:
		return slot == KindColor || slot == KindVector
	case k == KindTexture:
		return slot == KindTexture
	}
	return false
}

// TextureTarget selects which part of a texture property a texture value
// manipulates.
type TextureTarget uint8

const (
	TextureAsset        TextureTarget = iota // the bound texture itself
	TextureTilingOffset                      // packed scale.xy / offset.xy
)

// TextureDimension is the shape of a texture resource.
type TextureDimension uint8

const (
	DimensionUnknown TextureDimension = iota
	DimensionNone
	Dimension2D
	Dimension3D
	DimensionCube
	Dimension2DArray
	DimensionCubeArray
)

// WrapMode controls how a texture is sampled outside [0, 1].
type WrapMode uint8

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapMirror
	WrapMirrorOnce
)

// FilterMode controls texture sampling interpolation. The numeric order is
// meaningful: blends interpolate between filter modes numerically.
type FilterMode uint8

const (
	FilterPoint FilterMode = iota
	FilterBilinear
	FilterTrilinear
)

func lerpf(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundLerp interpolates two integers and rounds half away from zero.
func roundLerp(a, b int, t float64) int {
	return int(math.Round(lerpf(float64(a), float64(b), t)))
}
