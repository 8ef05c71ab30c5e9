// Package shadertrack animates shader properties from timeline clips.
//
// A track binds a target (a [Material], or the material slots of a
// [Renderer]) to clips, each driving one shader property to a [Value]. Every
// frame the host hands the track's mixer the clips overlapping the playhead
// together with their weights; the mixer blends them with the state the
// target had before playback and writes the result. When playback stops the
// mixer puts the original state back.
//
// # Values
//
// [Value] is a tagged union over the property kinds a shader declares:
// float, range, int, color, vector, texture and whole-material override.
// [Lerp] interpolates two values of the same kind. Textures are crossfaded
// on the GPU by a [TexturePass] ([CrossfadePass] uses a Kage shader) and
// hard-cut at t = 0.5 when no pass can render them.
//
// # Mixers
//
//   - [MaterialMixer] writes into a bound material.
//   - [RendererMixer] writes into the per-slot property overlays of a
//     renderer, restricted by a [SlotMask].
//   - [SlotMixer] substitutes whole materials on renderer slots.
//
// With one active clip, the clip blends against the pre-playback state by
// its weight. With two clips on the same property the result interpolates
// from the earlier clip to the later one by the later clip's weight. Only
// the first two active clips of a track are mixed.
//
// # Layering
//
// Tracks bound to the same target share a [Layers] value. The first mixer
// of a frame seeds from the captured default state; later mixers build on
// what earlier tracks composed in the same frame. [LayerMixer] closes each
// target's frame after its last track, applying slot substitutions once, so
// no state carries over between frames.
//
// # Playback
//
// [Director] is a small reference host: it owns tracks and clips with
// eased weights, keeps the playhead and runs the mixers and layer pass each
// frame:
//
//	env := shadertrack.NewEnv(shadertrack.DefaultConfig())
//	d := shadertrack.NewDirector("intro", env)
//	tr := d.AddTrack(shadertrack.NewTrack("glow", mat, shadertrack.NewMaterialMixer(env)))
//	tr.NewClip(shadertrack.NewClip("_Glow", shadertrack.FloatValue(1)), 0, 2).Ease(0.5, 0.5, ease.InOutQuad)
//	d.Play()
//	// each frame:
//	d.Update()
//
// [LoadScript] drives a director from a JSON script for automated checks,
// [LoadConfig] reads a TOML [Config] and [WatchConfigFile] reloads it when
// the file changes.
package shadertrack
