package anisotropy

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/anisotropy/texture"
)

// Converter converts anisotropy texture files, optionally recording each
// conversion in a History
type Converter struct {
	history *History
	logger  *log.Logger
}

// New returns a Converter. history may be nil.
func New(history *History, logger *log.Logger) *Converter {
	return &Converter{
		history: history,
		logger:  logger,
	}
}

// OutputPath returns the file a conversion of file to the given encoding is
// written to
func OutputPath(file string, to Encoding) string {
	return fmt.Sprintf("%s.%s.png", strings.TrimSuffix(file, filepath.Ext(file)), to)
}

func (c *Converter) load(file string, encoding Encoding) (Buffer, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return Buffer{}, "", err
	}
	defer f.Close()

	h := sha1.New()
	pix, width, height, err := texture.Decode(io.TeeReader(f, h))
	if err != nil {
		return Buffer{}, "", fmt.Errorf("%s: %w", file, err)
	}

	return Buffer{
		Width:    width,
		Height:   height,
		Channels: Channels,
		Encoding: encoding,
		Pix:      pix,
	}, fmt.Sprintf("%X", h.Sum(nil)), nil
}

// Load decodes file into a Buffer tagged with the given encoding
func (c *Converter) Load(file string, encoding Encoding) (Buffer, error) {
	b, _, err := c.load(file, encoding)
	return b, err
}

// ConvertFile converts file from one encoding to another and writes the
// result alongside it, returning the path written. Nothing is written if
// the file can't be decoded or the conversion isn't supported.
func (c *Converter) ConvertFile(file string, from, to Encoding) (string, error) {
	in, sha, err := c.load(file, from)
	if err != nil {
		return "", err
	}
	c.logger.Printf("Decoded \"%s\", %dx%d, SHA1 \"%s\"\n", file, in.Width, in.Height, sha)

	if c.history != nil {
		e, err := c.history.FindBySHA1(sha, to)
		if err != nil {
			return "", err
		}
		if e != nil {
			c.logger.Printf("Previously converted from %s to \"%s\"\n", e.From, e.Output)
		}
	}

	out, err := Convert(in, to)
	if err != nil {
		return "", err
	}
	c.logger.Printf("Converted %s to %s\n", from, to)

	// Encode fully before touching the filesystem
	b := new(bytes.Buffer)
	if err := texture.Encode(b, out.Pix, out.Width, out.Height); err != nil {
		return "", err
	}

	output := OutputPath(file, to)
	if err := ioutil.WriteFile(output, b.Bytes(), 0644); err != nil {
		return "", err
	}
	c.logger.Printf("Wrote \"%s\"\n", output)

	if c.history != nil {
		if _, err := c.history.Record(Entry{
			SHA1:   sha,
			Input:  file,
			From:   from,
			To:     to,
			Output: output,
			Width:  out.Width,
			Height: out.Height,
		}); err != nil {
			return "", err
		}
	}

	return output, nil
}
