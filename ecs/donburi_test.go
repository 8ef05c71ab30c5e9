package ecs

import (
	"testing"

	"github.com/phanxgames/shadertrack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newGlowDirector(t *testing.T) (*shadertrack.Director, *shadertrack.BasicMaterial) {
	t.Helper()
	cfg := shadertrack.DefaultConfig()
	cfg.DisableGPUBlend = true
	cfg.FrameRate = 10
	env := shadertrack.NewEnv(cfg)

	shader := shadertrack.NewShaderInfo("glow", shadertrack.FloatProperty("_Glow"))
	mat := shadertrack.NewMaterial("hero", shader)
	mat.SetFloat("_Glow", 0.25)

	d := shadertrack.NewDirector("intro", env)
	tr := d.AddTrack(shadertrack.NewTrack("glow", mat, shadertrack.NewMaterialMixer(env)))
	tr.NewClip(shadertrack.NewClip("_Glow", shadertrack.FloatValue(1)), 0, 1)
	return d, mat
}

func TestAddDirector(t *testing.T) {
	world := donburi.NewWorld()
	d, _ := newGlowDirector(t)

	e := AddDirector(world, d)
	require.True(t, world.Valid(e))
	got := Director.Get(world.Entry(e))
	assert.Same(t, d, got.Director)
	assert.NotNil(t, d.Events)
}

func TestUpdateDirectors_PublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	d, mat := newGlowDirector(t)
	AddDirector(world, d)

	var received []shadertrack.PlaybackEvent
	PlaybackEventType.Subscribe(world, func(w donburi.World, e shadertrack.PlaybackEvent) {
		received = append(received, e)
	})

	d.Play()
	UpdateDirectors(world)

	require.Len(t, received, 1)
	assert.Equal(t, shadertrack.EventPlay, received[0].Kind)
	assert.Equal(t, "intro", received[0].Name)
	assert.InDelta(t, 1.0, mat.Float("_Glow"), 1e-9)
	assert.InDelta(t, 0.1, d.Time(), 1e-9)
}

func TestUpdateDirectors_FinishHolds(t *testing.T) {
	world := donburi.NewWorld()
	d, _ := newGlowDirector(t)
	AddDirector(world, d)

	var kinds []shadertrack.EventKind
	PlaybackEventType.Subscribe(world, func(w donburi.World, e shadertrack.PlaybackEvent) {
		kinds = append(kinds, e.Kind)
	})

	d.Play()
	for range 20 {
		UpdateDirectors(world)
	}
	assert.Equal(t, []shadertrack.EventKind{shadertrack.EventPlay, shadertrack.EventFinish}, kinds)
	assert.Equal(t, shadertrack.Paused, d.State())
}

func TestStopAll_Restores(t *testing.T) {
	world := donburi.NewWorld()
	d, mat := newGlowDirector(t)
	AddDirector(world, d)

	d.Play()
	UpdateDirectors(world)
	require.InDelta(t, 1.0, mat.Float("_Glow"), 1e-9)

	StopAll(world)
	assert.InDelta(t, 0.25, mat.Float("_Glow"), 1e-9)
	assert.Equal(t, shadertrack.Stopped, d.State())
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	var sink shadertrack.EventSink = NewEventSink(donburi.NewWorld())
	_ = sink
}
