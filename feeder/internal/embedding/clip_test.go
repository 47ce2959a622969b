package embedding

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEmbedProducesFixedDims(t *testing.T) {
	e := NewClipEmbedder()
	img := solidImage(color.RGBA{R: 200, G: 50, B: 50, A: 255}, 64, 64)

	vec, err := e.Embed(img)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != Dims {
		t.Fatalf("Embed() len = %d, want %d", len(vec), Dims)
	}
}

func TestEmbedIsDeterministic(t *testing.T) {
	e := NewClipEmbedder()
	img := solidImage(color.RGBA{R: 10, G: 200, B: 30, A: 255}, 64, 64)

	first, err := e.Embed(img)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := e.Embed(img)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Embed() not deterministic at index %d: %v != %v", i, first[i], second[i])
		}
	}
}
