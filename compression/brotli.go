package compression

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli compresses at Level. The zero value uses brotli.DefaultCompression.
type Brotli struct {
	Level int
}

func (c Brotli) CompressBlock(block []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = brotli.DefaultCompression
	}

	return compressStream(block, CodecBrotli, func(w io.Writer) io.WriteCloser {
		return brotli.NewWriterLevel(w, level)
	})
}

func (c Brotli) DecompressBlock(block []byte) ([]byte, error) {
	return decompressStream(brotli.NewReader(bytes.NewReader(block)), CodecBrotli)
}
