package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/bodgit/anisotropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHueToRGB(t *testing.T) {
	tables := []struct {
		h int
		l uint8
		c color.RGBA
	}{
		{0, 127, color.RGBA{254, 0, 0, 0xff}},
		{2 * 256, 127, color.RGBA{0, 254, 0, 0xff}},
		{4 * 256, 127, color.RGBA{0, 0, 254, 0xff}},
		{hueSteps, 127, color.RGBA{254, 0, 0, 0xff}},
		{3 * 256, 0, color.RGBA{0, 0, 0, 0xff}},
	}

	for _, table := range tables {
		assert.Equal(t, table.c, hueToRGB(table.h, table.l))
	}
}

func TestImage(t *testing.T) {
	b := anisotropy.NewBuffer(2, 1, anisotropy.AngleStrength)
	copy(b.Pix, []byte{
		0, 255, 0, // Up, full strength
		64, 0, 0, // Right, no strength
	})

	m, err := Image(b)
	require.Nil(t, err)
	assert.Equal(t, color.RGBA{254, 0, 0, 0xff}, m.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, m.RGBAAt(1, 0))
}

func TestImageLegacy(t *testing.T) {
	b := anisotropy.NewBuffer(1, 1, anisotropy.LegacyThreeChannel)
	copy(b.Pix, []byte{128, 255, 255})

	m, err := Image(b)
	require.Nil(t, err)
	// Strength 255 is remapped to 253
	assert.Equal(t, color.RGBA{252, 0, 0, 0xff}, m.RGBAAt(0, 0))
}

func TestImageInvalid(t *testing.T) {
	b := anisotropy.NewBuffer(2, 2, anisotropy.AngleStrength)
	b.Pix = b.Pix[:5]

	_, err := Image(b)
	assert.NotNil(t, err)
}

func TestRender(t *testing.T) {
	b := anisotropy.NewBuffer(16, 16, anisotropy.ThreeChannel)
	for i := 0; i < b.Len(); i++ {
		b.Pix[i*3+0] = byte(i)
		b.Pix[i*3+1] = byte(255 - i)
		b.Pix[i*3+2] = byte(i * 3)
	}

	pm, err := Render(b)
	require.Nil(t, err)
	assert.Equal(t, 16, pm.Bounds().Dx())
	assert.Equal(t, 16, pm.Bounds().Dy())
	assert.NotEmpty(t, pm.Palette)
	assert.LessOrEqual(t, len(pm.Palette), MaxColors)

	w := new(bytes.Buffer)
	require.Nil(t, Encode(w, b))
	c, err := png.DecodeConfig(w)
	require.Nil(t, err)
	assert.Equal(t, 16, c.Width)
}
