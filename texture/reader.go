package texture

import (
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// channels returns the number of channels m was stored with
func channels(m image.Image) (int, error) {
	switch m := m.(type) {
	case *image.Gray:
		return 1, nil
	case *image.YCbCr:
		return 3, nil
	case *image.RGBA:
		// The PNG decoder uses this for truecolor without transparency
		if m.Opaque() {
			return 3, nil
		}
		return 4, nil
	case *image.NRGBA:
		return 4, nil
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4, nil
			}
		}
		return 3, nil
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return 0, ErrBitDepth
	case *image.CMYK:
		return 4, nil
	default:
		if m.ColorModel() == color.GrayModel {
			return 1, nil
		}
		return 0, ErrChannels
	}
}

// Decode reads an image from r and returns its pixels as interleaved
// channels along with its dimensions
func Decode(r io.Reader) ([]byte, int, int, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, err
	}

	n, err := channels(m)
	if err != nil {
		return nil, 0, 0, err
	}
	if n != Channels {
		return nil, 0, 0, ErrChannels
	}

	b := m.Bounds()
	pix := make([]byte, 0, b.Dx()*b.Dy()*Channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			pix = append(pix, c.R, c.G, c.B)
		}
	}

	return pix, b.Dx(), b.Dy(), nil
}

// DecodeConfig returns the dimensions of an image without decoding the
// pixels
func DecodeConfig(r io.Reader) (int, int, error) {
	c, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	return c.Width, c.Height, nil
}
