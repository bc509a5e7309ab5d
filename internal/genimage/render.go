package genimage

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"image"
	"image/color"
	"image/png"
)

// Default output dimensions for synthetic renders.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

// Render produces a placeholder PNG for a prompt. The palette is seeded from
// the prompt hash so resubmitting the same text yields the same artwork,
// which keeps local development and tests deterministic.
func Render(prompt string, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("genimage: dimensions must be positive")
	}

	sum := sha256.Sum256([]byte(prompt))
	top := color.RGBA{R: sum[0], G: sum[1], B: sum[2], A: 0xff}
	bottom := color.RGBA{R: sum[3], G: sum[4], B: sum[5], A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := lerp(top, bottom, y, height)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lerp(a, b color.RGBA, step, steps int) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(steps-step) + int(y)*step) / steps)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
