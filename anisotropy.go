/*
Package anisotropy is a library for converting anisotropy texture maps
between the per-pixel encodings used by physically-based rendering
pipelines.
*/
package anisotropy

import "fmt"

// Encoding describes how direction and strength are packed into the
// channels of an anisotropy texture
type Encoding int

const (
	// LegacyThreeChannel stores a direction in the first two channels and
	// a strength signed around 128 in the third
	LegacyThreeChannel Encoding = iota
	// ThreeChannel stores a direction in the first two channels and an
	// unsigned strength in the third
	ThreeChannel
	// TwoChannelVector stores a 2D vector whose magnitude is the strength
	TwoChannelVector
	// AngleStrength stores an angle in the first channel and a strength in
	// the second
	AngleStrength
)

var tokens = map[Encoding]string{
	LegacyThreeChannel: "3channel2",
	ThreeChannel:       "3channel",
	TwoChannelVector:   "2D",
	AngleStrength:      "angle",
}

// Encodings lists every supported encoding
func Encodings() []Encoding {
	return []Encoding{LegacyThreeChannel, ThreeChannel, TwoChannelVector, AngleStrength}
}

// ParseEncoding returns the Encoding named by token
func ParseEncoding(token string) (Encoding, error) {
	for e, t := range tokens {
		if t == token {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown encoding %q", token)
}

func (e Encoding) String() string {
	if t, ok := tokens[e]; ok {
		return t
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}
