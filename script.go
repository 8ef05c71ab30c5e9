package shadertrack

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action of a playback script.
type scriptStep struct {
	Action   string  `json:"action"`
	Time     float64 `json:"time,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Target   string  `json:"target,omitempty"`
	Property string  `json:"property,omitempty"`
	Kind     string  `json:"kind,omitempty"`
	Label    string  `json:"label,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"seek": true, "advance": true, "play": true,
	"pause": true, "stop": true, "dump": true,
}

// Sample is a property value recorded by a "dump" step.
type Sample struct {
	Label    string
	Frame    int
	Time     float64
	Target   string
	Property string
	Value    Value
	// File is the PNG written for texture samples when DumpDir is set.
	File string
}

// ScriptRunner drives a Director from a JSON playback script, one step per
// frame, for automated checks.
//
//	{"steps": [
//	  {"action": "play"},
//	  {"action": "advance", "frames": 30},
//	  {"action": "dump", "target": "hero", "property": "_Glow", "label": "mid"},
//	  {"action": "seek", "time": 2.5},
//	  {"action": "stop"}
//	]}
type ScriptRunner struct {
	// DumpDir receives PNG dumps of texture samples. Empty disables them.
	DumpDir string
	Samples []Sample

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	director  *Director
	targets   map[string]PropertyBlock
}

// LoadScript parses a JSON playback script for d. Dump steps resolve their
// target names through targets.
func LoadScript(data []byte, d *Director, targets map[string]PropertyBlock) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("shadertrack: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("shadertrack: parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("shadertrack: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action != "dump" {
			continue
		}
		if _, ok := targets[st.Target]; !ok {
			return nil, fmt.Errorf("shadertrack: parse script: step %d: unknown target %q", i, st.Target)
		}
		if st.Kind != "" {
			if _, ok := ParsePropertyKind(st.Kind); !ok {
				return nil, fmt.Errorf("shadertrack: parse script: step %d: unknown kind %q", i, st.Kind)
			}
		}
	}
	return &ScriptRunner{steps: s.Steps, director: d, targets: targets}, nil
}

// Done reports whether every step ran.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step runs one frame of the script. Advancing steps update the director
// once per frame.
func (r *ScriptRunner) Step() error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.director.Update()
		r.checkDone()
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "seek":
		r.director.Seek(st.Time)
	case "advance":
		if st.Frames > 0 {
			r.director.Update()
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "play":
		r.director.Play()
	case "pause":
		r.director.Pause()
	case "stop":
		r.director.Stop()
	case "dump":
		err = r.dump(st)
	}
	r.checkDone()
	return err
}

// Run steps until the script is done and returns the first error.
func (r *ScriptRunner) Run() error {
	for !r.done {
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) dump(st scriptStep) error {
	target := r.targets[st.Target]
	v, err := r.sampleValue(target, st)
	if err != nil {
		return err
	}
	if !r.director.Env().Store.ReadFrom(target, st.Property, &v) {
		return fmt.Errorf("shadertrack: dump %s.%s: property not readable", st.Target, st.Property)
	}
	s := Sample{
		Label:    st.Label,
		Frame:    r.director.Frame(),
		Time:     r.director.Time(),
		Target:   st.Target,
		Property: st.Property,
		Value:    v,
	}
	if r.DumpDir != "" && v.Kind == KindTexture && v.Target == TextureAsset && v.Texture != nil {
		path, err := DumpTexture(r.DumpDir, st.Label, v.Texture)
		if err != nil {
			return err
		}
		s.File = path
	}
	r.Samples = append(r.Samples, s)
	return nil
}

// sampleValue returns an empty value of the kind to read: the step's kind,
// else the kind the target's shader declares.
func (r *ScriptRunner) sampleValue(target PropertyBlock, st scriptStep) (Value, error) {
	if st.Kind != "" {
		k, _ := ParsePropertyKind(st.Kind)
		return Value{Kind: k}, nil
	}
	if m, ok := target.(Material); ok && m.Shader() != nil {
		if d, ok := Describe(m.Shader(), st.Property); ok {
			return Value{Kind: d.Kind}, nil
		}
	}
	return Value{}, fmt.Errorf("shadertrack: dump %s.%s: kind unknown", st.Target, st.Property)
}
