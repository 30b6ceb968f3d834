package anisotropy

import (
	"fmt"

	"github.com/bodgit/anisotropy/texel"
	"github.com/bodgit/anisotropy/vector"
)

// Transform converts an entire buffer from one encoding to another. The
// input is never modified.
type Transform func(Buffer) Buffer

// Edge is a directed pair of encodings
type Edge struct {
	From, To Encoding
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}

// UnsupportedError is returned when no transform exists between the two
// requested encodings
type UnsupportedError struct {
	From, To Encoding
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported conversion from %s to %s", e.From, e.To)
}

var graph = map[Edge]Transform{
	{LegacyThreeChannel, ThreeChannel}: legacyToThreeChannel,
	{AngleStrength, TwoChannelVector}:  angleToTwoChannel,
	{ThreeChannel, TwoChannelVector}:   threeChannelToTwoChannel,
	{ThreeChannel, AngleStrength}:      threeChannelToAngle,
	{TwoChannelVector, ThreeChannel}:   twoChannelToThreeChannel,
	{TwoChannelVector, AngleStrength}:  twoChannelToAngle,
}

// Edges returns every directly supported conversion
func Edges() []Edge {
	edges := make([]Edge, 0, len(graph))
	for _, from := range Encodings() {
		for _, to := range Encodings() {
			if _, ok := graph[Edge{from, to}]; ok {
				edges = append(edges, Edge{from, to})
			}
		}
	}
	return edges
}

// Lookup returns the transform that converts directly between from and to.
// There is no transform from an encoding to itself.
func Lookup(from, to Encoding) (Transform, error) {
	if fn, ok := graph[Edge{from, to}]; ok {
		return fn, nil
	}
	return nil, &UnsupportedError{From: from, To: to}
}

// Canonicalize converts b to the encoding used as the starting point for
// further conversions. Only legacy buffers need converting.
func Canonicalize(b Buffer) Buffer {
	switch b.Encoding {
	case LegacyThreeChannel:
		return legacyToThreeChannel(b)
	default:
		return b
	}
}

// Convert returns b converted to the given encoding. Converting to the
// current encoding returns b unchanged.
func Convert(b Buffer, to Encoding) (Buffer, error) {
	if err := b.Validate(); err != nil {
		return Buffer{}, err
	}

	if b.Encoding == to {
		return b, nil
	}

	c := Canonicalize(b)
	if c.Encoding == to {
		return c, nil
	}

	fn, err := Lookup(c.Encoding, to)
	if err != nil {
		// Report the pair that was asked for, not the canonical one
		return Buffer{}, &UnsupportedError{From: b.Encoding, To: to}
	}

	return fn(c), nil
}

func legacyToThreeChannel(b Buffer) Buffer {
	return b.mapTexels(ThreeChannel, func(src, dst []byte) {
		dst[0], dst[1], dst[2] = texel.RemapLegacy(src[0], src[1], src[2])
	})
}

func angleToTwoChannel(b Buffer) Buffer {
	return b.mapTexels(TwoChannelVector, func(src, dst []byte) {
		x, y := vector.Normalize(vector.AngleToDirection(src[0]))
		dst[0], dst[1] = texel.EncodeDirection(x, y)
		// Strength is carried along unscaled
		dst[2] = src[1]
	})
}

func threeChannelToTwoChannel(b Buffer) Buffer {
	return b.mapTexels(TwoChannelVector, func(src, dst []byte) {
		x, y := texel.BakeStrength(src[0], src[1], src[2])
		dst[0], dst[1], dst[2] = vector.Quantize(x), vector.Quantize(y), 0
	})
}

func threeChannelToAngle(b Buffer) Buffer {
	return b.mapTexels(AngleStrength, func(src, dst []byte) {
		x, y := texel.UnpackDirection(src[0], src[1])
		dst[0], dst[1], dst[2] = texel.EncodeAngle(x, y), src[2], 0
	})
}

func twoChannelToThreeChannel(b Buffer) Buffer {
	return b.mapTexels(ThreeChannel, func(src, dst []byte) {
		x, y, strength := texel.UnpackVector(src[0], src[1])
		dst[0], dst[1] = texel.EncodeDirection(x, y)
		dst[2] = vector.Quantize(strength)
	})
}

func twoChannelToAngle(b Buffer) Buffer {
	return b.mapTexels(AngleStrength, func(src, dst []byte) {
		x, y, strength := texel.UnpackVector(src[0], src[1])
		dst[0], dst[1], dst[2] = texel.EncodeAngle(x, y), vector.Quantize(strength), 0
	})
}
