/*
Package preview renders anisotropy textures as false colour images that are
easier to inspect by eye than the raw encodings.

The direction of each pixel selects a hue around the colour wheel, starting
with red along (0,1) and turning clockwise, and the strength selects the
lightness so pixels with no anisotropy are black. The result is reduced to a
paletted image.
*/
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/bodgit/anisotropy"
	"github.com/bodgit/anisotropy/texel"
	"github.com/bodgit/anisotropy/vector"
	"github.com/ericpauley/go-quantize/quantize"
)

// MaxColors is the largest palette a preview uses
const MaxColors = 256

// hueSteps is the resolution of the colour wheel, 256 steps per sector
const hueSteps = 6 * 256

// hueToRGB converts a hue in [0,hueSteps) at full saturation and the given
// lightness in [0,127] to RGB
func hueToRGB(h int, l uint8) color.RGBA {
	c := 2 * int(l)
	if c > 255 {
		c = 255
	}

	h %= hueSteps
	sector := h >> 8
	f := h & 0xff

	// Rising or falling edge inside the sector
	var x int
	if sector&1 == 0 {
		x = (c*f + 127) / 256
	} else {
		x = (c*(256-f) + 127) / 256
	}

	var r, g, b int
	switch sector {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
}

// colorAt returns the preview colour for a direction and a strength in
// [0,1]
func colorAt(x, y, strength float32) color.RGBA {
	theta := vector.DirectionToAngle(x, y)
	h := int(theta / vector.TwoPi * hueSteps)
	return hueToRGB(h, uint8(strength*127))
}

// Image returns the unquantized false colour image of b
func Image(b anisotropy.Buffer) (*image.RGBA, error) {
	if b.Encoding != anisotropy.AngleStrength {
		var err error
		if b, err = anisotropy.Convert(b, anisotropy.ThreeChannel); err != nil {
			return nil, err
		}
	} else if err := b.Validate(); err != nil {
		return nil, err
	}

	m := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+b.Channels, j+4 {
		var x, y, strength float32
		if b.Encoding == anisotropy.AngleStrength {
			x, y = vector.Normalize(vector.AngleToDirection(b.Pix[i]))
			strength = float32(b.Pix[i+1]) / 255
		} else {
			x, y = texel.UnpackDirection(b.Pix[i], b.Pix[i+1])
			strength = float32(b.Pix[i+2]) / 255
		}

		c := colorAt(x, y, strength)
		copy(m.Pix[j:j+4], []byte{c.R, c.G, c.B, c.A})
	}

	return m, nil
}

// Render returns the false colour preview of b reduced to at most
// MaxColors colors
func Render(b anisotropy.Buffer) (*image.Paletted, error) {
	m, err := Image(b)
	if err != nil {
		return nil, err
	}

	r := m.Bounds()
	if r.Empty() {
		return image.NewPaletted(r, color.Palette{color.Black}), nil
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(r, q.Quantize(make(color.Palette, 0, MaxColors), m))
	draw.Draw(pm, r, m, r.Min, draw.Src)

	return pm, nil
}

// Encode writes the preview of b to w as a PNG
func Encode(w io.Writer, b anisotropy.Buffer) error {
	pm, err := Render(b)
	if err != nil {
		return err
	}
	return png.Encode(w, pm)
}
