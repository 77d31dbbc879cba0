package compression

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdErr     error
)

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll
// calls, a single pair is shared by every ZStd value.
func zstdCodecs() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		if zstdEncoder, zstdErr = zstd.NewWriter(nil); zstdErr != nil {
			return
		}

		zstdDecoder, zstdErr = zstd.NewReader(nil)
	})

	return zstdEncoder, zstdDecoder, zstdErr
}

type ZStd struct {
}

func (c ZStd) CompressBlock(block []byte) ([]byte, error) {
	enc, _, err := zstdCodecs()
	if err != nil {
		return nil, codecError(err, "failed to create encoder", CodecZStd)
	}

	return enc.EncodeAll(block, nil), nil
}

func (c ZStd) DecompressBlock(block []byte) ([]byte, error) {
	_, dec, err := zstdCodecs()
	if err != nil {
		return nil, codecError(err, "failed to create decoder", CodecZStd)
	}

	ret, err := dec.DecodeAll(block, nil)
	if err != nil {
		return nil, codecError(err, "failed to decompress block", CodecZStd)
	}

	return ret, nil
}
