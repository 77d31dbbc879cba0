package compression

import (
	"bytes"
	"io"

	"github.com/hexbee-net/errors"
)

// compressStream runs block through a streaming compressor.
func compressStream(block []byte, codec Codec, newWriter func(io.Writer) io.WriteCloser) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(block)/2))
	w := newWriter(buf)

	if _, err := w.Write(block); err != nil {
		_ = w.Close()
		return nil, codecError(err, "failed to compress block", codec)
	}

	if err := w.Close(); err != nil {
		return nil, codecError(err, "failed to flush compressed block", codec)
	}

	return buf.Bytes(), nil
}

func decompressStream(r io.Reader, codec Codec) ([]byte, error) {
	ret, err := io.ReadAll(r)
	if err != nil {
		return nil, codecError(err, "failed to decompress block", codec)
	}

	return ret, nil
}

func codecError(err error, msg string, codec Codec) error {
	return errors.WithFields(
		errors.Wrap(err, msg),
		errors.Fields{
			"codec": codec.String(),
		})
}
