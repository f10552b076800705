package ascii

import (
	"image/jpeg"
	"image/png"
	"io"

	"github.com/fogleman/gg"
)

// Glyph cell of the drawing context's built-in 7x13 monospace face.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// RenderImage draws an ASCII grid onto a bitmap, white glyphs on a black
// background, and encodes it to w in the format implied by ext.
func RenderImage(w io.Writer, lines []string, ext string) error {
	var cols int
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 || len(lines) == 0 {
		return errorf(KindImage, "nothing to draw")
	}

	dc := gg.NewContext(cols*glyphWidth, len(lines)*glyphHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)

	for i, line := range lines {
		// DrawString takes the baseline, not the cell top.
		dc.DrawString(line, 0, float64(i*glyphHeight+glyphHeight-3))
	}

	switch ext {
	case "", ".jpg", ".jpeg":
		if err := jpeg.Encode(w, dc.Image(), &jpeg.Options{Quality: 100}); err != nil {
			return errorf(KindImage, "%s", err)
		}
	case ".png":
		if err := png.Encode(w, dc.Image()); err != nil {
			return errorf(KindImage, "%s", err)
		}
	default:
		return errorf(KindImage, "unsupported image format: %s", ext)
	}
	return nil
}
