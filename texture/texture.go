/*
Package texture implements reading and writing the 8-bit, three channel
images that anisotropy maps are stored in.

Pixels are exchanged as a flat slice of interleaved channel values in raster
order, three bytes per pixel. Any format registered with the image package
can be decoded as long as it natively carries exactly three 8-bit channels;
images are always written as truecolor PNG.
*/
package texture

import "errors"

// Channels is the number of channels per pixel
const Channels = 3

var (
	// ErrChannels is returned when decoding an image that doesn't have
	// exactly three channels
	ErrChannels = errors.New("texture: image does not have three channels")
	// ErrBitDepth is returned when decoding an image with more than eight
	// bits per channel
	ErrBitDepth = errors.New("texture: image is not 8 bits per channel")

	errSize = errors.New("texture: pixel data does not match dimensions")
)
