/*
Package vector implements the small amount of 2D vector math needed to move
anisotropy data between its byte encodings.

Byte channels are read either in texture space, where a sample is a float in
[0,1], or in vector space, where it is a float in [-1,1]. Angles are measured
clockwise from the reference axis (0,1) and stored as a single byte covering
[0,2π).

All arithmetic is carried out in float32 and every float to byte conversion
truncates, so results match textures baked by earlier tools bit for bit.
*/
package vector

import "math"

// TwoPi is a full turn in radians
const TwoPi = float32(2 * math.Pi)

// Normalize scales x, y to unit length. A zero vector is returned unchanged.
func Normalize(x, y float32) (float32, float32) {
	magnitude := Length(x, y)
	if magnitude > 0 {
		x /= magnitude
		y /= magnitude
	}
	return x, y
}

// Length returns the magnitude of x, y
func Length(x, y float32) float32 {
	// Explicit conversions stop the compiler fusing into an FMA
	return float32(math.Sqrt(float64(float32(x*x) + float32(y*y))))
}

// ToVectorSpace maps two samples from [0,255] to [-1,1]
func ToVectorSpace(x, y float32) (float32, float32) {
	x = (x/255 - 0.5) * 2
	y = (y/255 - 0.5) * 2
	return x, y
}

// ToTextureSpace maps two components from [-1,1] to [0,1]. Only the upper
// bound is clamped.
func ToTextureSpace(x, y float32) (float32, float32) {
	x = (x + 1) * 0.5
	y = (y + 1) * 0.5
	if x > 1 {
		x = 1
	}
	if y > 1 {
		y = 1
	}
	return x, y
}

// DirectionToAngle converts a normalized direction into an angle in [0,2π)
// measured from (0,1)
func DirectionToAngle(x, y float32) float32 {
	// Dot product with (0,1), which can overshoot 1 after normalizing
	dot := y
	if dot > 1 {
		dot = 1
	}
	theta := float32(math.Acos(float64(dot)))
	if x < 0 {
		theta = TwoPi - theta
	}
	return theta
}

// AngleToDirection converts an angle byte into a unit direction. This is the
// inverse of DirectionToAngle followed by AngleToQuantized.
func AngleToDirection(b uint8) (float32, float32) {
	theta := float32(b) / 255 * TwoPi
	if theta >= math.Pi {
		theta -= TwoPi
	}
	// Stored angles run counter-clockwise, rotations are clockwise
	theta = -theta

	sin, cos := math.Sincos(float64(theta))

	// Rotate (0,1)
	return float32(0*cos - 1*sin), float32(0*sin + 1*cos)
}

// AngleToQuantized converts an angle in radians to a byte
func AngleToQuantized(theta float32) uint8 {
	return clampByte(theta / TwoPi * 255)
}

// Quantize converts a texture space value in [0,1] to a byte, truncating
func Quantize(v float32) uint8 {
	return clampByte(v * 255)
}

func clampByte(v float32) uint8 {
	switch {
	case v <= 0 || math.IsNaN(float64(v)):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
