package genimage

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderIsDeterministic(t *testing.T) {
	a, err := Render("a castle in the sky", 64, 64)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	b, err := Render("a castle in the sky", 64, 64)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same prompt should render identical bytes")
	}

	c, err := Render("a different prompt", 64, 64)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("different prompts should render different bytes")
	}
}

func TestRenderProducesValidPNG(t *testing.T) {
	data, err := Render("prompt", 32, 48)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 48 {
		t.Fatalf("unexpected dimensions: %v", bounds)
	}
}

func TestRenderRejectsBadDimensions(t *testing.T) {
	if _, err := Render("prompt", 0, 10); err == nil {
		t.Fatal("zero width should fail")
	}
	if _, err := Render("prompt", 10, -1); err == nil {
		t.Fatal("negative height should fail")
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"a castle in the sky", "A-Castle-In-The"},
		{"cat", "Cat"},
		{"  spaced   out   ", "Spaced-Out"},
		{"mixed: punctuation!", "Mixed-Punctuation"},
		{"!!! ???", "Image"},
		{"", "Image"},
	}
	for _, tc := range cases {
		if got := Slug(tc.prompt); got != tc.want {
			t.Fatalf("Slug(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}
