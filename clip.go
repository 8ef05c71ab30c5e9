package shadertrack

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// EmptyClipName is the display name of a clip without a property.
const EmptyClipName = "Empty"

// ClipData is the payload of one authored clip: the property it animates and
// the value it drives that property to. It must not change during a frame.
type ClipData struct {
	// Property is the shader property name. Material-kind clips ignore it.
	Property string
	Value    Value
	// WeightMultiplier attenuates the host weight. Zero mutes the clip.
	WeightMultiplier float64
}

// NewClip creates clip data for property with a weight multiplier of 1.
func NewClip(property string, v Value) *ClipData {
	return &ClipData{Property: property, Value: v, WeightMultiplier: 1}
}

// Kind returns the kind of the clip's value.
func (c *ClipData) Kind() PropertyKind {
	return c.Value.Kind
}

// IsBlendableWith reports whether c and o animate the same thing and can be
// interpolated into each other: same kind and property name, and for
// textures the same texture target. Two material overrides are always
// blendable.
func (c *ClipData) IsBlendableWith(o *ClipData) bool {
	if c == nil || o == nil || c.Value.Kind != o.Value.Kind {
		return false
	}
	if c.Value.Kind == KindMaterial {
		return true
	}
	if c.Property != o.Property {
		return false
	}
	return c.Value.Kind != KindTexture || c.Value.Target == o.Value.Target
}

// DisplayName returns the label of the clip: "name [Kind]", the material
// name for material overrides, or EmptyClipName.
func (c *ClipData) DisplayName() string {
	if c.Value.Kind == KindMaterial {
		if bm, ok := c.Value.Material.(*BasicMaterial); ok && bm.Name != "" {
			return bm.Name
		}
		if c.Value.Material == nil {
			return EmptyClipName
		}
	}
	if strings.TrimSpace(c.Property) == "" {
		return EmptyClipName
	}
	return fmt.Sprintf("%s [%v]", c.Property, c.Value.Kind)
}

// Input is one clip input of a track mixer for the current frame, as handed
// over by the host: the clip, its host weight and its start time.
type Input struct {
	Clip   *ClipData
	Weight float64
	Start  float64
}

// activeInput is an Input contributing to the frame, with its effective
// weight in (0, 1].
type activeInput struct {
	clip   *ClipData
	weight float64
	start  float64
}

// activeInputs appends to dst the inputs whose effective weight is positive,
// ordered by start time. Inputs with equal start keep their order.
func activeInputs(dst []activeInput, inputs []Input) []activeInput {
	for _, in := range inputs {
		if in.Clip == nil {
			continue
		}
		w := in.Weight * in.Clip.WeightMultiplier
		if !(w > 0) {
			continue
		}
		dst = append(dst, activeInput{clip: in.Clip, weight: min(w, 1), start: in.Start})
	}
	slices.SortStableFunc(dst, func(a, b activeInput) int {
		return cmp.Compare(a.start, b.start)
	})
	return dst
}
