package shadertrack

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DumpTexture writes tex as a PNG file into dir and returns its path. The
// file is named after label with a timestamp prefix. Only ebiten-backed
// textures can be dumped, and only while the game loop runs.
func DumpTexture(dir, label string, tex Texture) (path string, err error) {
	it, ok := tex.(*ImageTexture)
	if !ok || it.Image == nil {
		return "", fmt.Errorf("shadertrack: dump %q: %w", label, ErrUnsupportedTexture)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("shadertrack: dump: %w", err)
	}

	w, h := it.Size()
	pix := make([]byte, 4*w*h)
	it.Image.ReadPixels(pix)
	img := straightAlpha(pix, w, h)

	path = filepath.Join(dir, time.Now().Format("20060102_150405")+"_"+sanitizeLabel(label)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("shadertrack: dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("shadertrack: dump %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("shadertrack: dump %s: %w", path, err)
	}
	return path, nil
}

// straightAlpha converts premultiplied RGBA pixels, as returned by
// ReadPixels, into an NRGBA image. Channels are rounded to nearest.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			img.Pix[c] = uint8(min((int(img.Pix[c])*255+a/2)/a, 255))
		}
	}
	return img
}

// sanitizeLabel keeps letters, digits, '-' and '.' of label and replaces
// everything else with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
