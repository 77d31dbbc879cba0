package compression

import (
	"bytes"
	"testing"

	"github.com/hexbee-net/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	block := bytes.Repeat([]byte("dictionary page payload "), 64)
	registry := DefaultRegistry()

	for codec := range registry {
		codec := codec

		t.Run(codec.String(), func(t *testing.T) {
			t.Parallel()

			compressed, err := registry.Compress(codec, block)
			require.NoError(t, err)

			res, err := registry.Decompress(codec, compressed)
			require.NoError(t, err)
			assert.Equal(t, block, res)
		})
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := DefaultRegistry().Decompress(CodecLZO, []byte{1, 2, 3})
	assert.Error(t, err)

	_, err = Registry{}.Compress(CodecSnappy, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestRegistry_CorruptData(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()

	for _, codec := range []Codec{CodecSnappy, CodecGZip, CodecZStd} {
		_, err := registry.Decompress(codec, []byte{0xff, 0xff, 0xff, 0xff, 0xff})
		assert.Error(t, err, codec.String())
	}
}

func TestParseCodec(t *testing.T) {
	t.Parallel()

	tests := map[string]Codec{
		"":             CodecUncompressed,
		"uncompressed": CodecUncompressed,
		"snappy":       CodecSnappy,
		"GZIP":         CodecGZip,
		" zstd ":       CodecZStd,
		"lz4":          CodecLZ4,
		"brotli":       CodecBrotli,
	}

	for name, expected := range tests {
		c, err := ParseCodec(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, c, name)
	}

	_, err := ParseCodec("lzma")
	assert.EqualError(t, errors.Cause(err), "unknown compression codec")
}

func TestCodec_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SNAPPY", CodecSnappy.String())
	assert.Equal(t, "<UNSET>", Codec(42).String())
}

func TestBrotli_Level(t *testing.T) {
	t.Parallel()

	block := bytes.Repeat([]byte("foobar"), 100)

	for _, level := range []int{0, 1, 11} {
		c := Brotli{Level: level}

		compressed, err := c.CompressBlock(block)
		require.NoError(t, err)

		res, err := c.DecompressBlock(compressed)
		require.NoError(t, err)
		assert.Equal(t, block, res, "level %d", level)
	}
}
