package page

import (
	"io"

	"github.com/hexbee-net/bytedict/compression"
	"github.com/hexbee-net/errors"
)

type blockReader struct {
	compressors compression.Registry
}

func (r *blockReader) readBlock(in io.Reader, size int32) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(in, int64(size)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read block data")
	}

	if len(buf) != int(size) {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidBlockSize),
			errors.Fields{
				"expected": size,
				"actual":   len(buf),
			})
	}

	return buf, nil
}

func (r *blockReader) decompress(buf []byte, codec compression.Codec, uncompressedSize int32) ([]byte, error) {
	res, err := r.compressors.Decompress(codec, buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress block")
	}

	if len(res) != int(uncompressedSize) {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidBlockSize),
			errors.Fields{
				"expected": uncompressedSize,
				"actual":   len(res),
				"codec":    codec.String(),
			})
	}

	return res, nil
}
