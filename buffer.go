package anisotropy

import "errors"

// Channels is the number of channels stored per pixel, whether or not the
// encoding uses all of them
const Channels = 3

var errBufferSize = errors.New("anisotropy: buffer size does not match dimensions")

// Buffer is an 8-bit image held as raw interleaved channels, tagged with the
// encoding of its contents
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Encoding Encoding
	Pix      []byte
}

// NewBuffer returns a zeroed buffer of the given dimensions
func NewBuffer(width, height int, encoding Encoding) Buffer {
	return Buffer{
		Width:    width,
		Height:   height,
		Channels: Channels,
		Encoding: encoding,
		Pix:      make([]byte, width*height*Channels),
	}
}

// Validate checks the pixel data matches the declared dimensions
func (b Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 || b.Channels != Channels || len(b.Pix) != b.Width*b.Height*b.Channels {
		return errBufferSize
	}
	return nil
}

// Len returns the number of pixels
func (b Buffer) Len() int {
	return b.Width * b.Height
}

// at returns the channels of the i'th pixel in raster order
func (b Buffer) at(i int) []byte {
	o := i * b.Channels
	return b.Pix[o : o+b.Channels : o+b.Channels]
}

// mapTexels allocates a new buffer with the given encoding and fills it by
// calling fn for every pixel in raster order
func (b Buffer) mapTexels(encoding Encoding, fn func(src, dst []byte)) Buffer {
	out := NewBuffer(b.Width, b.Height, encoding)
	for i := 0; i < b.Len(); i++ {
		fn(b.at(i), out.at(i))
	}
	return out
}
