package shadertrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterial_Defaults(t *testing.T) {
	m := NewMaterial("m", litShader())
	assert.Equal(t, 0.0, m.Float("_Glow"))
	assert.Equal(t, 0.0, m.Float("_Metallic"))
	assert.Equal(t, ColorWhite, m.Color("_BaseColor"))
	assert.Nil(t, m.Texture("_MainTex"))
	assert.Equal(t, Vec4{1, 1, 0, 0}, m.Vector("_MainTex_ST"))
	assert.True(t, m.HasProperty("_Cube"))
	assert.False(t, m.HasProperty("_Nope"))

	m.SetFloat("_Nope", 1)
	assert.False(t, m.HasProperty("_Nope"), "undeclared writes are dropped")

	empty := NewMaterial("empty", nil)
	assert.Nil(t, empty.Shader())
	assert.Nil(t, empty.ShaderInfo())
}

func TestBasicMaterial_CloneIsIndependent(t *testing.T) {
	m := NewMaterial("m", litShader())
	m.SetFloat("_Glow", 2)
	c := m.Clone().(*BasicMaterial)
	c.SetFloat("_Glow", 5)
	assert.Equal(t, 2.0, m.Float("_Glow"))
	assert.Equal(t, 5.0, c.Float("_Glow"))
	assert.Same(t, m.ShaderInfo(), c.ShaderInfo())
}

func TestBasicMaterial_CopyPropertiesFrom(t *testing.T) {
	tex := newFakeTexture("albedo", 4, 4)
	src := NewMaterial("src", litShader())
	src.SetFloat("_Glow", 3)
	src.SetColor("_BaseColor", ColorBlack)
	src.SetTexture("_MainTex", tex)

	dst := NewMaterial("dst", NewShaderInfo("glow", FloatProperty("_Glow"), FloatProperty("_Other")))
	dst.SetFloat("_Other", 7)
	dst.CopyPropertiesFrom(src)
	assert.Equal(t, 3.0, dst.Float("_Glow"))
	assert.Equal(t, 7.0, dst.Float("_Other"), "properties missing on src are kept")

	dst.CopyPropertiesFrom(dst)
	dst.CopyPropertiesFrom(nil)
	assert.Equal(t, 3.0, dst.Float("_Glow"))

	full := NewMaterial("full", litShader())
	full.CopyPropertiesFrom(src)
	assert.Equal(t, ColorBlack, full.Color("_BaseColor"))
	assert.Same(t, tex, full.Texture("_MainTex"))
}

func TestBasicMaterial_LerpProperties(t *testing.T) {
	x, y := newFakeTexture("x", 1, 1), newFakeTexture("y", 1, 1)
	a := NewMaterial("a", litShader())
	a.SetFloat("_Glow", 0)
	a.SetVector("_Wind", Vec4{0, 0, 0, 0})
	a.SetTexture("_MainTex", x)
	b := NewMaterial("b", litShader())
	b.SetFloat("_Glow", 10)
	b.SetVector("_Wind", Vec4{4, 8, 0, 0})
	b.SetTexture("_MainTex", y)

	m := NewMaterial("m", litShader())
	m.LerpProperties(a, b, 0.25)
	assert.InDelta(t, 2.5, m.Float("_Glow"), 1e-9)
	assert.Equal(t, Vec4{1, 2, 0, 0}, m.Vector("_Wind"))
	assert.Same(t, x, m.Texture("_MainTex"))

	m.LerpProperties(a, b, 0.5)
	assert.Same(t, y, m.Texture("_MainTex"), "textures cut over at one half")

	m.LerpProperties(a, b, 3)
	assert.Equal(t, 10.0, m.Float("_Glow"), "t is clamped")

	m.LerpProperties(nil, b, 0)
	assert.Equal(t, 10.0, m.Float("_Glow"))
}

func TestBasicMaterial_Uniforms(t *testing.T) {
	m := NewMaterial("m", NewShaderInfo("s", FloatProperty("_Glow"), ColorProperty("_BaseColor")))
	m.SetFloat("_Glow", 2)
	o := NewOverlay()
	o.SetFloat("_Glow", 4)

	u := make(map[string]any)
	m.Uniforms(u, nil)
	assert.Equal(t, float32(2), u["Glow"])
	assert.Equal(t, []float32{1, 1, 1, 1}, u["BaseColor"])

	m.Uniforms(u, o)
	assert.Equal(t, float32(4), u["Glow"], "overlay values win")
}

func TestBasicMaterial_ImagesSkipsForeignTextures(t *testing.T) {
	m := NewMaterial("m", litShader())
	m.SetTexture("_MainTex", newFakeTexture("fake", 1, 1))
	imgs := m.Images(nil)
	for _, img := range imgs {
		assert.Nil(t, img)
	}
}

func TestUniformName(t *testing.T) {
	tests := map[string]string{
		"_BaseColor":  "BaseColor",
		"_MainTex_ST": "MainTex_ST",
		"glow":        "Glow",
		"__x":         "X",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, UniformName(in), in)
	}
}

func TestOverlay(t *testing.T) {
	var nilOverlay *Overlay
	assert.True(t, nilOverlay.Clone().IsEmpty())

	o := NewOverlay()
	assert.True(t, o.IsEmpty())
	o.SetFloat("_Glow", 1)
	o.SetInt("_Steps", 3)
	o.SetColor("_BaseColor", ColorBlack)
	o.SetTexture("_MainTex", nil)
	assert.Equal(t, 4, o.Len())
	assert.True(t, o.HasProperty("_MainTex"), "nil textures still override")
	assert.Equal(t, 3, o.Int("_Steps"))
	assert.Equal(t, ColorBlack, o.Color("_BaseColor"))

	c := o.Clone()
	c.SetFloat("_Glow", 9)
	assert.Equal(t, 1.0, o.Float("_Glow"))
	assert.Equal(t, 4, c.Len())

	o.Clear()
	assert.True(t, o.IsEmpty())
	assert.Equal(t, 4, c.Len())
}

func TestSlotRenderer(t *testing.T) {
	a, b := newGlowMaterial(1), newGlowMaterial(2)
	r := NewSlotRenderer("r", a, b)
	require.Equal(t, 2, r.SlotCount())
	assert.Nil(t, r.PropertyOverlay(0))
	assert.Nil(t, r.PropertyOverlay(5))

	o := NewOverlay()
	r.SetPropertyOverlay(1, o)
	r.SetPropertyOverlay(7, o)
	assert.Same(t, o, r.PropertyOverlay(1))

	mats := []Material{a}
	r.SetSharedMaterials(mats)
	mats[0] = b
	assert.Equal(t, []Material{a}, r.SharedMaterials(), "the slice is copied")
	assert.Nil(t, r.PropertyOverlay(1))

	r.SetSharedMaterials([]Material{a, b, a})
	assert.Equal(t, 3, r.SlotCount())
	assert.Nil(t, r.PropertyOverlay(2))
}
