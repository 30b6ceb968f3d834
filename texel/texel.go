/*
Package texel implements the per-pixel encoders and decoders used when
converting anisotropy textures between encodings.

Every function takes and returns raw channel values for a single pixel and is
pure, the callers are responsible for iterating over an image.
*/
package texel

import "github.com/bodgit/anisotropy/vector"

const (
	// legacyPivot is the strength value that legacy textures treat as zero
	legacyPivot = 128
)

// BakeStrength fuses a direction and a separate strength into a single 2D
// vector whose magnitude is the strength. The result is in texture space.
func BakeStrength(x, y, strength uint8) (float32, float32) {
	dx, dy := vector.ToVectorSpace(float32(x), float32(y))
	dx, dy = vector.Normalize(dx, dy)

	s := float32(strength) / 255
	dx *= s
	dy *= s

	return vector.ToTextureSpace(dx, dy)
}

// UnpackVector splits a 2D vector texel into a unit direction and the
// strength it carried as its magnitude, capped at 1
func UnpackVector(x, y uint8) (float32, float32, float32) {
	dx, dy := vector.ToVectorSpace(float32(x), float32(y))

	strength := vector.Length(dx, dy)
	if strength > 1 {
		strength = 1
	}

	dx, dy = vector.Normalize(dx, dy)

	return dx, dy, strength
}

// UnpackDirection decodes a direction stored in two channels and normalizes
// it
func UnpackDirection(x, y uint8) (float32, float32) {
	return vector.Normalize(vector.ToVectorSpace(float32(x), float32(y)))
}

// EncodeDirection stores a direction in vector space as two channel values
func EncodeDirection(x, y float32) (uint8, uint8) {
	tx, ty := vector.ToTextureSpace(x, y)
	return vector.Quantize(tx), vector.Quantize(ty)
}

// EncodeAngle stores a normalized direction as an angle channel value
func EncodeAngle(x, y float32) uint8 {
	return vector.AngleToQuantized(vector.DirectionToAngle(x, y))
}

// RemapLegacy converts a texel from the legacy three channel encoding, where
// strength is signed around 128, to the current one. Strengths below the
// pivot also had their direction channels stored swapped.
func RemapLegacy(x, y, strength uint8) (uint8, uint8, uint8) {
	var s int
	if strength < legacyPivot {
		x, y = y, x
		s = legacyPivot - int(strength)
	} else {
		s = int(strength) - legacyPivot
	}
	return x, y, uint8(255 * s / legacyPivot)
}
