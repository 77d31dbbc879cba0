package compression

import (
	"bytes"
	"compress/gzip"
	"io"
)

type GZip struct {
}

func (c GZip) CompressBlock(block []byte) ([]byte, error) {
	return compressStream(block, CodecGZip, func(w io.Writer) io.WriteCloser {
		return gzip.NewWriter(w)
	})
}

func (c GZip) DecompressBlock(block []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(block))
	if err != nil {
		return nil, codecError(err, "invalid gzip header", CodecGZip)
	}
	defer r.Close()

	return decompressStream(r, CodecGZip)
}
