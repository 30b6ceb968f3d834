package texture

import (
	"image"
	"image/png"
	"io"
)

// Image wraps interleaved three channel pixels as an opaque image.Image
func Image(pix []byte, width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 || len(pix) != width*height*Channels {
		return nil, errSize
	}

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pix); i, j = i+Channels, j+4 {
		m.Pix[j+0] = pix[i+0]
		m.Pix[j+1] = pix[i+1]
		m.Pix[j+2] = pix[i+2]
		m.Pix[j+3] = 0xff
	}

	return m, nil
}

// Encode writes interleaved three channel pixels to w as an 8-bit truecolor
// PNG
func Encode(w io.Writer, pix []byte, width, height int) error {
	m, err := Image(pix, width, height)
	if err != nil {
		return err
	}

	// An opaque *image.RGBA is written without an alpha channel
	return png.Encode(w, m)
}
