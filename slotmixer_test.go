package shadertrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotMixer_SwapsAboveThreshold(t *testing.T) {
	r := newThreeSlotRenderer()
	initial := append([]Material(nil), r.SharedMaterials()...)
	gold := newGlowMaterial(100)
	mixer := NewSlotMixer(newTestEnv(nil), Only(3, 0, 2))
	layers := NewLayers()
	clip := NewClip("", MaterialValue(gold))

	tests := []struct {
		weight float64
		want   []Material
	}{
		{0.3, initial},
		{0.5, initial},
		{0.51, []Material{gold, initial[1], gold}},
		{1, []Material{gold, initial[1], gold}},
		{0.2, initial},
	}
	for _, tt := range tests {
		mixer.ProcessFrame(layers, r, []Input{frame(clip, tt.weight, 0)})
		LayerMixer{}.ProcessFrame(layers, r)
		assert.Equal(t, tt.want, r.SharedMaterials(), "weight %v", tt.weight)
	}

	mixer.Destroy()
	assert.Equal(t, initial, r.SharedMaterials())
	assert.False(t, mixer.Tracking())
}

func TestSlotMixer_FirstClipAboveThresholdWins(t *testing.T) {
	r := newThreeSlotRenderer()
	a, b := newGlowMaterial(10), newGlowMaterial(20)
	mixer := NewSlotMixer(newTestEnv(nil), nil)
	layers := NewLayers()

	mixer.ProcessFrame(layers, r, []Input{
		frame(NewClip("", MaterialValue(b)), 0.9, 1),
		frame(NewClip("", MaterialValue(a)), 0.6, 0),
	})
	LayerMixer{}.ProcessFrame(layers, r)
	assert.Equal(t, []Material{a, a, a}, r.SharedMaterials())
}

func TestSlotMixer_IgnoresNonMaterialClips(t *testing.T) {
	r := newThreeSlotRenderer()
	initial := append([]Material(nil), r.SharedMaterials()...)
	mixer := NewSlotMixer(newTestEnv(nil), nil)
	layers := NewLayers()

	mixer.ProcessFrame(layers, r, []Input{frame(NewClip("_Glow", FloatValue(3)), 1, 0)})
	LayerMixer{}.ProcessFrame(layers, r)
	assert.Equal(t, initial, r.SharedMaterials())
}

func TestSlotMixer_OverridesAppliedOnlyByLayerMixer(t *testing.T) {
	r := newThreeSlotRenderer()
	initial := append([]Material(nil), r.SharedMaterials()...)
	gold := newGlowMaterial(100)
	mixer := NewSlotMixer(newTestEnv(nil), nil)
	layers := NewLayers()

	mixer.ProcessFrame(layers, r, []Input{frame(NewClip("", MaterialValue(gold)), 1, 0)})
	assert.Equal(t, initial, r.SharedMaterials())
	LayerMixer{}.ProcessFrame(layers, r)
	assert.Equal(t, []Material{gold, gold, gold}, r.SharedMaterials())
	assert.Zero(t, layers.Len())
}

func TestLayeredSlotTracks(t *testing.T) {
	r := newThreeSlotRenderer()
	initial := append([]Material(nil), r.SharedMaterials()...)
	gold, silver := newGlowMaterial(100), newGlowMaterial(50)
	env := newTestEnv(nil)
	lower := NewSlotMixer(env, nil)
	upper := NewSlotMixer(env, Only(3, 1))
	layers := NewLayers()

	for range 2 {
		lower.ProcessFrame(layers, r, []Input{frame(NewClip("", MaterialValue(gold)), 1, 0)})
		upper.ProcessFrame(layers, r, []Input{frame(NewClip("", MaterialValue(silver)), 1, 0)})
		LayerMixer{}.ProcessFrame(layers, r)
		assert.Equal(t, []Material{gold, silver, gold}, r.SharedMaterials())
	}

	upper.Destroy()
	lower.Destroy()
	assert.Equal(t, initial, r.SharedMaterials())
}

func TestSlotMixer_ThresholdFromConfig(t *testing.T) {
	env := newTestEnv(nil)
	env.Config.SlotSwapThreshold = 0.8
	assert.Equal(t, 0.8, NewSlotMixer(env, nil).Threshold)

	env.Config.SlotSwapThreshold = 0
	assert.Equal(t, DefaultSlotSwapThreshold, NewSlotMixer(env, nil).Threshold)
}

func TestSlotMixer_WithRendererMixerOnSameTarget(t *testing.T) {
	r := newThreeSlotRenderer()
	gold := newGlowMaterial(100)
	env := newTestEnv(nil)
	swap := NewSlotMixer(env, Only(3, 0))
	tint := NewRendererMixer(env, nil)
	layers := NewLayers()

	swap.ProcessFrame(layers, r, []Input{frame(NewClip("", MaterialValue(gold)), 1, 0)})
	tint.ProcessFrame(layers, r, []Input{frame(NewClip("_Glow", FloatValue(0)), 0.5, 0)})
	LayerMixer{}.ProcessFrame(layers, r)

	require.Equal(t, gold, r.SharedMaterials()[0])
	// The overlay seeds from the material the slot had while mixing.
	assert.InDelta(t, 0.5, r.PropertyOverlay(0).Float("_Glow"), 1e-9)
	assert.InDelta(t, 1.0, r.PropertyOverlay(1).Float("_Glow"), 1e-9)
}

func TestSlotMixerBeforeRendererMixers(t *testing.T) {
	tests := []struct {
		name     string
		teardown func(swap *SlotMixer, base, top *RendererMixer)
	}{
		{"reverse", func(swap *SlotMixer, base, top *RendererMixer) {
			top.Destroy()
			base.Destroy()
			swap.Destroy()
		}},
		{"track order", func(swap *SlotMixer, base, top *RendererMixer) {
			swap.Destroy()
			base.Destroy()
			top.Destroy()
		}},
		{"middle first", func(swap *SlotMixer, base, top *RendererMixer) {
			base.Destroy()
			swap.Destroy()
			top.Destroy()
			base.Destroy()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newThreeSlotRenderer()
			initial := append([]Material(nil), r.SharedMaterials()...)
			gold := newGlowMaterial(100)
			env := newTestEnv(nil)
			swap := NewSlotMixer(env, Only(3, 1))
			base := NewRendererMixer(env, Only(3, 0))
			top := NewRendererMixer(env, Only(3, 0))
			layers := NewLayers()

			run := func(baseInputs ...Input) {
				swap.ProcessFrame(layers, r, []Input{frame(NewClip("", MaterialValue(gold)), 1, 0)})
				base.ProcessFrame(layers, r, baseInputs)
				top.ProcessFrame(layers, r, []Input{frame(NewClip("_Glow", FloatValue(0)), 0.5, 0)})
				LayerMixer{}.ProcessFrame(layers, r)
			}

			run(frame(NewClip("_Glow", FloatValue(20)), 1, 0))
			assert.InDelta(t, 10.0, r.PropertyOverlay(0).Float("_Glow"), 1e-9)
			assert.Same(t, gold, r.SharedMaterials()[1])

			// Without the base clip the top track blends against the
			// pre-playback value of slot 0, not last frame's output.
			run()
			assert.InDelta(t, 0.5, r.PropertyOverlay(0).Float("_Glow"), 1e-9)

			tt.teardown(swap, base, top)
			for slot := range 3 {
				assert.Nil(t, r.PropertyOverlay(slot), "slot %d", slot)
			}
			assert.Equal(t, initial, r.SharedMaterials())
		})
	}
}
