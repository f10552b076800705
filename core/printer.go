package ascii

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultChars is the built-in intensity ramp, least to most intense.
// The spaces are human-readable separators, not palette entries.
const DefaultChars = ". ' , ^ \" ~ + - = # @ $"

// DefaultScale is the built-in horizontal sampling stride.
const DefaultScale = 3

// Printer converts a decoded image into an ASCII character grid. It is
// configured through chainable setters and consumed by Render or Lines.
//
// The decode outcome of LoadImage is stored, not propagated: a missing or
// corrupt file only surfaces when the grid is actually produced.
type Printer struct {
	img     image.Image
	loadErr error
	chars   []rune
	scale   int
}

// NewPrinter returns a Printer with the default palette and scale and no
// image attached.
func NewPrinter() *Printer {
	return &Printer{
		chars: buildPalette(strings.ReplaceAll(DefaultChars, " ", "")),
		scale: DefaultScale,
	}
}

// buildPalette prepends the mandatory space entry, index 0 = darkest.
func buildPalette(intense string) []rune {
	chars := make([]rune, 0, len(intense)+1)
	chars = append(chars, ' ')
	chars = append(chars, []rune(intense)...)
	return chars
}

// LoadImage decodes the file at path. The outcome, good or bad, is stored
// on the printer and inspected at render time.
func (p *Printer) LoadImage(path string) *Printer {
	img, err := imaging.Open(path)
	p.img, p.loadErr = img, err
	if err != nil {
		p.img = nil
	}
	return p
}

// LoadImageReader decodes an image from r. Used for the `-` convention
// where the image bytes arrive on a stdin pipe.
func (p *Printer) LoadImageReader(r io.Reader) *Printer {
	img, _, err := image.Decode(r)
	p.img, p.loadErr = img, err
	if err != nil {
		p.img = nil
	}
	return p
}

// SetChars replaces the palette with a space followed by the runes of
// intense in the order given. The caller strips whitespace beforehand.
func (p *Printer) SetChars(intense string) *Printer {
	p.chars = buildPalette(intense)
	return p
}

// SetScale replaces the sampling stride. The caller guarantees n >= 1;
// zero would fault the stride arithmetic.
func (p *Printer) SetScale(n int) *Printer {
	p.scale = n
	return p
}

// Scale reports the configured sampling stride.
func (p *Printer) Scale() int {
	return p.scale
}

// PaletteLen reports the number of palette entries, leading space included.
func (p *Printer) PaletteLen() int {
	return len(p.chars)
}

// pixelIntensity computes the luminance of an RGB triple with the usual
// ITU-R BT.601 weights. Result lies in [0, 255].
func pixelIntensity(r, g, b uint8) float64 {
	return 0.2989*float64(r) + 0.5870*float64(g) + 0.1140*float64(b)
}

// getChar maps an intensity in [0, 255] to a palette entry. The bucket
// width is 256/len, so any in-range intensity lands strictly inside the
// palette; the clamp guards the float arithmetic at the top end.
func (p *Printer) getChar(intensity float64) rune {
	idx := int(intensity / (256.0 / float64(len(p.chars))))
	if idx >= len(p.chars) {
		idx = len(p.chars) - 1
	}
	return p.chars[idx]
}

// Lines samples the attached image and returns one string per sampled row.
// Pixel (x, y) contributes a character iff y mod 2*scale == 0 and
// x mod scale == 0; skipped columns are omitted, not blanked, so the grid
// is horizontally compacted. The vertical stride doubling compensates for
// terminal cells being taller than wide.
func (p *Printer) Lines() ([]string, error) {
	if p.img == nil && p.loadErr == nil {
		return nil, errorf(KindImage, "no image selected")
	}
	if p.loadErr != nil {
		return nil, errorf(KindImage, "%s", p.loadErr)
	}

	bounds := p.img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var lines []string
	for y := 0; y < height; y++ {
		if y%(p.scale*2) != 0 {
			continue
		}
		var row strings.Builder
		for x := 0; x < width; x += p.scale {
			r, g, b, _ := p.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			intensity := pixelIntensity(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			row.WriteRune(p.getChar(intensity))
		}
		lines = append(lines, row.String())
	}
	return lines, nil
}

// Render writes the sampled grid to w, one line per sampled row, followed
// by a single trailing blank line.
func (p *Printer) Render(w io.Writer) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	return WriteLines(w, lines)
}

// WriteLines writes an already-sampled grid plus the trailing blank line.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errorf(KindIO, "%s", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errorf(KindIO, "%s", err)
	}
	return nil
}
