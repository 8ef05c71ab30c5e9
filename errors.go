package shadertrack

import "errors"

var (
	// ErrBlendKindMismatch is returned by Lerp when the operands have
	// different kinds. Mixers never blend such values directly; they blend
	// each against the target instead.
	ErrBlendKindMismatch = errors.New("shadertrack: blend of mismatched property kinds")

	// ErrResourceUnavailable is returned by a TexturePass that cannot render,
	// e.g. because its shader failed to compile.
	ErrResourceUnavailable = errors.New("shadertrack: texture blend pass unavailable")

	// ErrUnsupportedTexture is returned by a TexturePass given a texture it
	// cannot sample.
	ErrUnsupportedTexture = errors.New("shadertrack: unsupported texture for blend pass")

	// ErrTooManyOverlaps is returned by Track.Validate when more than two
	// clips overlap at some time.
	ErrTooManyOverlaps = errors.New("shadertrack: more than two overlapping clips")
)
