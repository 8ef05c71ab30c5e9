package shadertrack

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a texture resource bound to a texture property. Implementations
// must be comparable (normally pointers): values are matched by identity.
type Texture interface {
	Size() (w, h int)
	Dimension() TextureDimension
	Sampler() SamplerState
}

// SamplerState holds the sampling parameters of a texture.
type SamplerState struct {
	Wrap       WrapMode
	Filter     FilterMode
	Anisotropy int
}

// ImageTexture is a 2D Texture backed by an *ebiten.Image.
type ImageTexture struct {
	Image   *ebiten.Image
	Name    string
	State   SamplerState
	managed bool // created by this package; freed on Dispose
}

// NewImageTexture wraps img as a 2D texture with bilinear filtering and
// repeat wrapping.
func NewImageTexture(name string, img *ebiten.Image) *ImageTexture {
	return &ImageTexture{
		Image: img,
		Name:  name,
		State: SamplerState{Wrap: WrapRepeat, Filter: FilterBilinear, Anisotropy: 1},
	}
}

// Size implements Texture.
func (t *ImageTexture) Size() (w, h int) {
	if t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Dimension implements Texture. Ebitengine images are always 2D.
func (t *ImageTexture) Dimension() TextureDimension { return Dimension2D }

// Sampler implements Texture.
func (t *ImageTexture) Sampler() SamplerState { return t.State }

// EbitenFilter returns the ebiten.Filter closest to the sampler's filter mode.
func (t *ImageTexture) EbitenFilter() ebiten.Filter {
	if t.State.Filter == FilterPoint {
		return ebiten.FilterNearest
	}
	return ebiten.FilterLinear
}

// Dispose deallocates the image if this package created it. Caller-supplied
// images are left alone.
func (t *ImageTexture) Dispose() {
	if t.managed && t.Image != nil {
		t.Image.Deallocate()
		t.Image = nil
	}
}

// TextureFactory synthesizes stand-in textures for texture writes that carry
// no texture.
type TextureFactory interface {
	SolidTexture(c Color) Texture
}

// SolidTextures is a TextureFactory producing 1x1 ebiten images. Each color is
// created once and recycled on later requests.
type SolidTextures struct {
	cache map[colorRGBA]*ImageTexture
}

// NewSolidTextures creates an empty solid texture cache.
func NewSolidTextures() *SolidTextures {
	return &SolidTextures{cache: make(map[colorRGBA]*ImageTexture)}
}

// SolidTexture implements TextureFactory.
func (s *SolidTextures) SolidTexture(c Color) Texture {
	key := c.toRGBA()
	if t, ok := s.cache[key]; ok {
		return t
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(key)
	t := NewImageTexture("solid", img)
	t.managed = true
	s.cache[key] = t
	return t
}

// Len returns the number of cached textures.
func (s *SolidTextures) Len() int {
	return len(s.cache)
}

// Dispose deallocates every cached texture.
func (s *SolidTextures) Dispose() {
	for k, t := range s.cache {
		t.Dispose()
		delete(s.cache, k)
	}
}

// DefaultTextureColor maps a shader's default texture name ("white",
// "black", "grey", "bump") to the color a missing texture of that kind stands
// for. Unknown names map to white.
func DefaultTextureColor(name string) Color {
	switch strings.ToLower(name) {
	case "black":
		return ColorBlack
	case "grey", "gray":
		return ColorGrey
	case "bump":
		return ColorBump
	default:
		return ColorWhite
	}
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
