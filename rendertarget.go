package shadertrack

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// renderTarget is an offscreen image recycled across frames. It is
// reallocated only when the requested size changes.
type renderTarget struct {
	image *ebiten.Image
	w, h  int
}

// ensure returns a cleared image of exactly w x h pixels.
func (rt *renderTarget) ensure(w, h int) *ebiten.Image {
	if rt.image != nil && rt.w == w && rt.h == h {
		rt.image.Clear()
		return rt.image
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
	rt.w, rt.h = w, h
	return rt.image
}

// dispose deallocates the image.
func (rt *renderTarget) dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
	rt.w, rt.h = 0, 0
}

// renderTargetCache hands out one set of render targets per key, so that
// crossfades of different slots and properties in the same frame do not
// overwrite each other.
type renderTargetCache struct {
	entries map[string]*crossfadeTargets
}

// crossfadeTargets holds the scaled inputs and the output of one crossfade.
type crossfadeTargets struct {
	base, overlay renderTarget
	out           renderTarget
	tex           *ImageTexture
}

// get returns the targets for key, creating them on first use.
func (c *renderTargetCache) get(key string) *crossfadeTargets {
	if c.entries == nil {
		c.entries = make(map[string]*crossfadeTargets)
	}
	e, ok := c.entries[key]
	if !ok {
		e = &crossfadeTargets{tex: &ImageTexture{Name: "crossfade:" + key}}
		c.entries[key] = e
	}
	return e
}

// len returns the number of keys with allocated targets.
func (c *renderTargetCache) len() int {
	return len(c.entries)
}

// dispose deallocates every target.
func (c *renderTargetCache) dispose() {
	for k, e := range c.entries {
		e.base.dispose()
		e.overlay.dispose()
		e.out.dispose()
		e.tex.Image = nil
		delete(c.entries, k)
	}
}
