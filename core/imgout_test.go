package ascii

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestRenderImage_PNGDimensions(t *testing.T) {
	lines := []string{"ab", "c"}

	var buf bytes.Buffer
	if err := RenderImage(&buf, lines, ".png"); err != nil {
		t.Fatalf("render image failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2*glyphWidth || bounds.Dy() != 2*glyphHeight {
		t.Fatalf("output bounds %v, want %dx%d", bounds, 2*glyphWidth, 2*glyphHeight)
	}
}

func TestRenderImage_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderImage(&buf, []string{"#@$"}, ".jpg"); err != nil {
		t.Fatalf("render image failed: %v", err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
}

func TestRenderImage_UnsupportedFormat(t *testing.T) {
	err := RenderImage(&bytes.Buffer{}, []string{"x"}, ".gif")
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if aerr := err.(*Error); aerr.Kind != KindImage {
		t.Fatalf("error kind %q, want %q", aerr.Kind, KindImage)
	}
}

func TestRenderImage_EmptyGrid(t *testing.T) {
	if err := RenderImage(&bytes.Buffer{}, nil, ".png"); err == nil {
		t.Fatal("expected an error for an empty grid")
	}
}
