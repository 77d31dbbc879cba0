// Package compression holds the block compressors used for page payloads.
package compression

import (
	"strings"

	"github.com/hexbee-net/errors"
)

// Codec identifies a page compression codec. Values follow the Parquet
// CompressionCodec enumeration.
type Codec int32

const (
	CodecUncompressed Codec = 0
	CodecSnappy       Codec = 1
	CodecGZip         Codec = 2
	CodecLZO          Codec = 3
	CodecBrotli       Codec = 4
	CodecLZ4          Codec = 5
	CodecZStd         Codec = 6
)

var codecNames = map[Codec]string{
	CodecUncompressed: "UNCOMPRESSED",
	CodecSnappy:       "SNAPPY",
	CodecGZip:         "GZIP",
	CodecLZO:          "LZO",
	CodecBrotli:       "BROTLI",
	CodecLZ4:          "LZ4",
	CodecZStd:         "ZSTD",
}

func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}

	return "<UNSET>"
}

// ParseCodec returns the codec with the given (case insensitive) name.
func ParseCodec(name string) (Codec, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return CodecUncompressed, nil
	}

	for c, n := range codecNames {
		if n == name {
			return c, nil
		}
	}

	return CodecUncompressed, errors.WithFields(
		errors.New("unknown compression codec"),
		errors.Fields{
			"codec": name,
		})
}

type BlockCompressor interface {
	CompressBlock(block []byte) ([]byte, error)
	DecompressBlock(block []byte) ([]byte, error)
}

// Registry maps codecs to their block compressor.
type Registry map[Codec]BlockCompressor

// DefaultRegistry returns a registry with every supported codec. LZO has no
// implementation.
func DefaultRegistry() Registry {
	return Registry{
		CodecUncompressed: Plain{},
		CodecSnappy:       Snappy{},
		CodecGZip:         GZip{},
		CodecBrotli:       Brotli{},
		CodecLZ4:          LZ4{},
		CodecZStd:         ZStd{},
	}
}

func (r Registry) Compress(codec Codec, block []byte) ([]byte, error) {
	c, ok := r[codec]
	if !ok {
		return nil, errors.WithFields(
			errors.New("compression method not supported"),
			errors.Fields{
				"method": codec.String(),
			})
	}

	return c.CompressBlock(block)
}

func (r Registry) Decompress(codec Codec, block []byte) ([]byte, error) {
	c, ok := r[codec]
	if !ok {
		return nil, errors.WithFields(
			errors.New("compression method not supported"),
			errors.Fields{
				"method": codec.String(),
			})
	}

	return c.DecompressBlock(block)
}
