package compression

import (
	"github.com/golang/snappy"
)

// Snappy uses the raw block format, without stream framing.
type Snappy struct {
}

func (c Snappy) CompressBlock(block []byte) ([]byte, error) {
	return snappy.Encode(nil, block), nil
}

func (c Snappy) DecompressBlock(block []byte) ([]byte, error) {
	ret, err := snappy.Decode(nil, block)
	if err != nil {
		return nil, codecError(err, "failed to decompress block", CodecSnappy)
	}

	return ret, nil
}
