package shadertrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_ClaimFirstOncePerFrame(t *testing.T) {
	layers := NewLayers()
	m := newGlowMaterial(0)

	f := layers.Frame(m)
	assert.True(t, f.ClaimFirst())
	assert.False(t, f.ClaimFirst())
	assert.Same(t, f, layers.Frame(m))

	LayerMixer{}.ProcessFrame(layers, m)
	assert.True(t, layers.Frame(m).ClaimFirst(), "new frame, new first mixer")
}

func TestFrame_ComposedTracking(t *testing.T) {
	var f Frame
	assert.False(t, f.composedProperty("_Glow"))
	assert.False(t, f.composedAnyProperty())

	f.markSlot(2)
	assert.True(t, f.composedSlot(2))
	assert.False(t, f.composedAnyProperty(), "slots are not material properties")

	f.markProperty("_Glow")
	assert.True(t, f.composedProperty("_Glow"))
	assert.False(t, f.composedProperty("_Tint"))
	assert.True(t, f.composedAnyProperty())

	f.markProperty(allProperties)
	assert.True(t, f.composedProperty("_Tint"), "whole-material writes cover every property")
}

func TestFrame_SeedOverridesOnce(t *testing.T) {
	var f Frame
	a, b := newGlowMaterial(1), newGlowMaterial(2)
	initial := []Material{a, b}

	got := f.seedOverrides(initial)
	got[0] = b
	assert.Equal(t, a, initial[0], "seeded from a copy")
	assert.Equal(t, []Material{b, b}, f.seedOverrides([]Material{a, a}))
}

func TestFrame_DescribeMemoized(t *testing.T) {
	sh := &countingShader{ShaderInfo: litShader()}
	var f Frame
	for range 3 {
		d, ok := f.describe(sh, "_Metallic")
		assert.True(t, ok)
		assert.Equal(t, KindRange, d.Kind)
	}
	_, ok := f.describe(sh, "_Nope")
	assert.False(t, ok)
	_, _ = f.describe(sh, "_Nope")
	assert.Equal(t, 2, sh.finds)
}

type countingShader struct {
	*ShaderInfo
	finds int
}

func (s *countingShader) FindProperty(name string) int {
	s.finds++
	return s.ShaderInfo.FindProperty(name)
}

func TestLayers_FinishWithoutFrame(t *testing.T) {
	layers := NewLayers()
	layers.Finish("nothing")
	LayerMixer{}.ProcessFrame(nil, "x")
	LayerMixer{}.ProcessFrame(layers, nil)
	assert.Zero(t, layers.Len())
}

func TestLayers_ResetDropsOverrides(t *testing.T) {
	r := newThreeSlotRenderer()
	initial := append([]Material(nil), r.SharedMaterials()...)
	layers := NewLayers()
	f := layers.Frame(r)
	f.seedOverrides(initial)[0] = newGlowMaterial(9)

	layers.Reset()
	assert.Zero(t, layers.Len())
	assert.Equal(t, initial, r.SharedMaterials())
}

func TestSlotMask_Resize(t *testing.T) {
	tests := []struct {
		name string
		in   SlotMask
		n    int
		want SlotMask
	}{
		{"grow nil", nil, 3, SlotMask{true, true, true}},
		{"grow keeps entries", SlotMask{false}, 3, SlotMask{false, true, true}},
		{"shrink", SlotMask{false, true, false}, 2, SlotMask{false, true}},
		{"same", SlotMask{false, true}, 2, SlotMask{false, true}},
		{"negative", SlotMask{true}, -1, SlotMask{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Resize(tt.n))
		})
	}
}

func TestSlotMask_Affects(t *testing.T) {
	m := Only(3, 1, 5)
	assert.Equal(t, SlotMask{false, true, false}, m)
	assert.True(t, m.Affects(1))
	assert.False(t, m.Affects(0))
	assert.False(t, m.Affects(3))
	assert.False(t, m.Affects(-1))
	assert.Equal(t, SlotMask{true, true}, NewSlotMask(2))
}
