package shadertrack

import (
	"bytes"
	"log/slog"
	"testing"
)

// fakeTexture is a GPU-free Texture.
type fakeTexture struct {
	name  string
	w, h  int
	dim   TextureDimension
	state SamplerState
}

func newFakeTexture(name string, w, h int) *fakeTexture {
	return &fakeTexture{name: name, w: w, h: h, dim: Dimension2D}
}

func (t *fakeTexture) Size() (int, int)            { return t.w, t.h }
func (t *fakeTexture) Dimension() TextureDimension { return t.dim }
func (t *fakeTexture) Sampler() SamplerState       { return t.state }

// fakeFactory hands out one fakeTexture per color.
type fakeFactory struct {
	made map[Color]*fakeTexture
}

func (f *fakeFactory) SolidTexture(c Color) Texture {
	if f.made == nil {
		f.made = make(map[Color]*fakeTexture)
	}
	if t, ok := f.made[c]; ok {
		return t
	}
	t := newFakeTexture("solid", 1, 1)
	f.made[c] = t
	return t
}

// fakePass records crossfades and returns one output texture per key.
type fakePass struct {
	err   error
	calls []fakeCrossfade
	outs  map[string]*fakeTexture
}

type fakeCrossfade struct {
	key           string
	base, overlay Texture
	t             float64
}

func (p *fakePass) Crossfade(key string, base, overlay Texture, t float64) (Texture, error) {
	p.calls = append(p.calls, fakeCrossfade{key, base, overlay, t})
	if p.err != nil {
		return nil, p.err
	}
	if p.outs == nil {
		p.outs = make(map[string]*fakeTexture)
	}
	out, ok := p.outs[key]
	if !ok {
		out = newFakeTexture("out:"+key, 1, 1)
		p.outs[key] = out
	}
	return out, nil
}

// newTestEnv returns an environment without GPU resources.
func newTestEnv(pass TexturePass) *Env {
	return &Env{
		Blend:  NewBlender(pass),
		Store:  NewStore(&fakeFactory{}),
		Config: DefaultConfig(),
	}
}

// captureLogs installs a text logger writing to the returned buffer for the
// duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

// litShader declares one property of every kind.
func litShader() *ShaderInfo {
	return NewShaderInfo("lit",
		FloatProperty("_Glow"),
		RangeProperty("_Metallic", 0, 1),
		IntProperty("_Steps"),
		ColorProperty("_BaseColor"),
		VectorProperty("_Wind"),
		TextureProperty("_MainTex", Dimension2D),
		TextureProperty("_Cube", DimensionCube),
	)
}

func frame(clip *ClipData, weight, start float64) Input {
	return Input{Clip: clip, Weight: weight, Start: start}
}
