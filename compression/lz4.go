package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// LZ4 uses the framed LZ4 format.
type LZ4 struct {
}

func (c LZ4) CompressBlock(block []byte) ([]byte, error) {
	return compressStream(block, CodecLZ4, func(w io.Writer) io.WriteCloser {
		return lz4.NewWriter(w)
	})
}

func (c LZ4) DecompressBlock(block []byte) ([]byte, error) {
	return decompressStream(lz4.NewReader(bytes.NewReader(block)), CodecLZ4)
}
