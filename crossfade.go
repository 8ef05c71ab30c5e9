package shadertrack

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// The crossfade shader mixes two premultiplied images of equal size.
const crossfadeShaderSrc = `//kage:unit pixels
package main

var Weight float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	base := imageSrc0At(src)
	over := imageSrc1At(src)
	return mix(base, over, Weight)
}
`

// Compiled on first use.

var (
	crossfadeShader    *ebiten.Shader
	crossfadeShaderErr error
)

func ensureCrossfadeShader() (*ebiten.Shader, error) {
	if crossfadeShader == nil && crossfadeShaderErr == nil {
		s, err := ebiten.NewShader([]byte(crossfadeShaderSrc))
		if err != nil {
			crossfadeShaderErr = fmt.Errorf("%w: compile crossfade shader: %v", ErrResourceUnavailable, err)
			return nil, crossfadeShaderErr
		}
		crossfadeShader = s
	}
	return crossfadeShader, crossfadeShaderErr
}

// CrossfadePass is the ebiten TexturePass. It scales both inputs to the
// interpolated output size and mixes them with a Kage shader. Inputs must be
// *ImageTexture.
type CrossfadePass struct {
	targets  renderTargetCache
	uniforms map[string]any
	imgOp    ebiten.DrawImageOptions
	shaderOp ebiten.DrawRectShaderOptions
}

// NewCrossfadePass creates a crossfade pass with no allocated targets.
func NewCrossfadePass() *CrossfadePass {
	return &CrossfadePass{uniforms: make(map[string]any, 1)}
}

// Crossfade implements TexturePass. The output has the rounded interpolated
// size of base and overlay, base's wrap mode and the rounded interpolated
// filter mode and anisotropy.
func (p *CrossfadePass) Crossfade(key string, base, overlay Texture, t float64) (Texture, error) {
	a, ok := base.(*ImageTexture)
	if !ok || a.Image == nil {
		return nil, fmt.Errorf("%w: base %T", ErrUnsupportedTexture, base)
	}
	b, ok := overlay.(*ImageTexture)
	if !ok || b.Image == nil {
		return nil, fmt.Errorf("%w: overlay %T", ErrUnsupportedTexture, overlay)
	}
	shader, err := ensureCrossfadeShader()
	if err != nil {
		return nil, err
	}

	aw, ah := a.Size()
	bw, bh := b.Size()
	w := max(roundLerp(aw, bw, t), 1)
	h := max(roundLerp(ah, bh, t), 1)

	e := p.targets.get(key)
	p.drawScaled(e.base.ensure(w, h), a)
	p.drawScaled(e.overlay.ensure(w, h), b)

	out := e.out.ensure(w, h)
	p.uniforms["Weight"] = float32(t)
	p.shaderOp.Images[0] = e.base.image
	p.shaderOp.Images[1] = e.overlay.image
	p.shaderOp.Uniforms = p.uniforms
	out.DrawRectShader(w, h, shader, &p.shaderOp)

	as, bs := a.Sampler(), b.Sampler()
	e.tex.Image = out
	e.tex.State = SamplerState{
		Wrap:       as.Wrap,
		Filter:     FilterMode(roundLerp(int(as.Filter), int(bs.Filter), t)),
		Anisotropy: roundLerp(as.Anisotropy, bs.Anisotropy, t),
	}
	return e.tex, nil
}

// drawScaled stretches src over the whole of dst.
func (p *CrossfadePass) drawScaled(dst *ebiten.Image, src *ImageTexture) {
	sw, sh := src.Size()
	db := dst.Bounds()
	op := &p.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Scale(float64(db.Dx())/float64(sw), float64(db.Dy())/float64(sh))
	op.Filter = src.EbitenFilter()
	op.Blend = ebiten.BlendCopy
	dst.DrawImage(src.Image, op)
}

// Targets returns the number of keys the pass holds render targets for.
func (p *CrossfadePass) Targets() int {
	return p.targets.len()
}

// Dispose deallocates every render target. Textures returned earlier become
// invalid.
func (p *CrossfadePass) Dispose() {
	p.targets.dispose()
}
