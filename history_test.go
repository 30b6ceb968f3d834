package anisotropy

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	dir, err := ioutil.TempDir("", "anisotropy")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	h, err := NewHistory(filepath.Join(dir, "history.db"))
	require.Nil(t, err)
	defer h.Close()

	e, err := h.FindBySHA1("ABCD", TwoChannelVector)
	require.Nil(t, err)
	assert.Nil(t, e)

	id, err := h.Record(Entry{
		SHA1:   "ABCD",
		Input:  "aniso.png",
		From:   ThreeChannel,
		To:     TwoChannelVector,
		Output: "aniso.2D.png",
		Width:  4,
		Height: 2,
	})
	require.Nil(t, err)
	assert.Equal(t, int64(1), id)

	e, err = h.FindBySHA1("ABCD", TwoChannelVector)
	require.Nil(t, err)
	require.NotNil(t, e)
	assert.Equal(t, Entry{
		ID:     1,
		SHA1:   "ABCD",
		Input:  "aniso.png",
		From:   ThreeChannel,
		To:     TwoChannelVector,
		Output: "aniso.2D.png",
		Width:  4,
		Height: 2,
	}, *e)

	e, err = h.FindBySHA1("ABCD", AngleStrength)
	require.Nil(t, err)
	assert.Nil(t, e)

	entries, err := h.Entries()
	require.Nil(t, err)
	assert.Len(t, entries, 1)
}

func TestConvertFileHistory(t *testing.T) {
	dir, err := ioutil.TempDir("", "anisotropy")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	h, err := NewHistory(filepath.Join(dir, "history.db"))
	require.Nil(t, err)
	defer h.Close()

	input := filepath.Join(dir, "aniso.png")
	writeTexture(t, input, []byte{10, 20, 100, 30, 40, 200}, 2, 1)

	c := New(h, log.New(ioutil.Discard, "", 0))

	for _, to := range []Encoding{AngleStrength, TwoChannelVector} {
		_, err := c.ConvertFile(input, LegacyThreeChannel, to)
		require.Nil(t, err)
	}

	// Unsupported conversions aren't recorded
	_, err = c.ConvertFile(input, AngleStrength, ThreeChannel)
	require.NotNil(t, err)

	entries, err := h.Entries()
	require.Nil(t, err)
	require.Len(t, entries, 2)

	for i, to := range []Encoding{AngleStrength, TwoChannelVector} {
		assert.Equal(t, input, entries[i].Input)
		assert.Equal(t, LegacyThreeChannel, entries[i].From)
		assert.Equal(t, to, entries[i].To)
		assert.Equal(t, OutputPath(input, to), entries[i].Output)
		assert.Equal(t, 2, entries[i].Width)
		assert.Equal(t, 1, entries[i].Height)
		assert.Len(t, entries[i].SHA1, 40)
	}
	assert.Equal(t, entries[0].SHA1, entries[1].SHA1)
}
