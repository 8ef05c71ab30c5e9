package shadertrack

import (
	"errors"
	"fmt"
)

// TexturePass renders the crossfade of two 2D textures. The result is owned
// by the pass and recycled by the next crossfade with the same key.
type TexturePass interface {
	Crossfade(key string, base, overlay Texture, t float64) (Texture, error)
}

// Blender interpolates Values. A Blender without a Pass hard-cuts textures.
// One Blender is shared by every mixer of a timeline instance.
type Blender struct {
	Pass TexturePass

	warned bool
	stats  *debugStats
}

// NewBlender creates a blender crossfading textures with pass (may be nil).
func NewBlender(pass TexturePass) *Blender {
	return &Blender{Pass: pass}
}

// Lerp is Blender.Lerp without a texture pass: textures always hard-cut and
// no warning is logged.
func Lerp(a, b Value, t float64) (Value, error) {
	var bl Blender
	bl.warned = true
	return bl.Lerp(a, b, t)
}

// Lerp interpolates from a to b by t, clamped to [0, 1]. It returns
// ErrBlendKindMismatch if the kinds differ; the result is then a.
//
// Lerp(v, v, t) is v, Lerp(a, b, 0) is a and Lerp(a, b, 1) is b.
func (bl *Blender) Lerp(a, b Value, t float64) (Value, error) {
	return bl.LerpInto("", a, b, t)
}

// LerpInto is Lerp with a key naming the render target a texture crossfade
// writes to. Callers blending several textures in one frame use distinct
// keys so results do not overwrite each other.
func (bl *Blender) LerpInto(key string, a, b Value, t float64) (Value, error) {
	if a.Kind != b.Kind {
		return a, fmt.Errorf("%w: %v and %v", ErrBlendKindMismatch, a.Kind, b.Kind)
	}
	t = clamp01(t)
	if t == 0 || a.Equal(b) {
		return a, nil
	}
	if t == 1 {
		return b, nil
	}

	switch a.Kind {
	case KindFloat, KindRange, KindColor, KindVector:
		out := a
		out.Vector = a.Vector.Lerp(b.Vector, t)
		return out, nil
	case KindInt:
		out := a
		out.Vector.X = float64(int(lerpf(a.Vector.X, b.Vector.X, t)))
		return out, nil
	case KindTexture:
		if a.Target != b.Target || a.Target == TextureTilingOffset {
			out := a
			out.Vector = a.Vector.Lerp(b.Vector, t)
			return out, nil
		}
		return bl.lerpTexture(key, a, b, t), nil
	case KindMaterial:
		if a.Material == nil || b.Material == nil {
			return a, nil
		}
		m := a.Material.Clone()
		m.LerpProperties(a.Material, b.Material, t)
		return MaterialValue(m), nil
	}
	return a, nil
}

// lerpTexture crossfades two texture assets on the GPU, hard-cutting at
// t = 0.5 when either texture is missing or not 2D, or the pass fails.
func (bl *Blender) lerpTexture(key string, a, b Value, t float64) Value {
	out := a
	out.Vector = a.Vector.Lerp(b.Vector, t)
	if a.Texture == nil || b.Texture == nil ||
		a.Texture.Dimension() != Dimension2D || b.Texture.Dimension() != Dimension2D {
		return hardCut(out, a, b, t)
	}
	if bl.Pass == nil {
		bl.warnUnavailable(ErrResourceUnavailable)
		return hardCut(out, a, b, t)
	}
	tex, err := bl.Pass.Crossfade(key, a.Texture, b.Texture, t)
	if err != nil {
		if errors.Is(err, ErrResourceUnavailable) {
			bl.warnUnavailable(err)
		} else {
			Logger().Debug("texture crossfade failed", "key", key, "err", err)
		}
		return hardCut(out, a, b, t)
	}
	if bl.stats != nil {
		bl.stats.crossfades++
	}
	out.Texture = tex
	return out
}

func hardCut(out, a, b Value, t float64) Value {
	if t < 0.5 {
		out.Texture = a.Texture
	} else {
		out.Texture = b.Texture
	}
	return out
}

func (bl *Blender) warnUnavailable(err error) {
	if bl.stats != nil {
		bl.stats.hardCuts++
	}
	if bl.warned {
		return
	}
	bl.warned = true
	Logger().Warn("texture blend pass unavailable, falling back to hard cut", "err", err)
}
