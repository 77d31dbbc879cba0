package dictionary

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/hexbee-net/bytedict/column"
	"github.com/stretchr/testify/assert"
)

func TestDecodeBigEndian64(t *testing.T) {
	t.Parallel()

	var minus5 [8]byte
	minus5Value := int64(-5)
	binary.BigEndian.PutUint64(minus5[:], uint64(minus5Value))

	assert.Equal(t, int64(-5), decodeBigEndian64(minus5[:]))

	tests := []struct {
		in       []byte
		expected int64
	}{
		{in: nil, expected: 0},
		{in: []byte{0x7f}, expected: 127},
		{in: []byte{0x80}, expected: -128},
		{in: []byte{0xff, 0xfb}, expected: -5},
		{in: []byte{0x00, 0xff}, expected: 255},
		{in: []byte{0x01, 0x00, 0x00}, expected: 65536},
		{in: []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, expected: math.MaxInt64},
		{in: []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, expected: math.MinInt64},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, decodeBigEndian64(test.in), "%x", test.in)
	}
}

func TestDecodeBigEndian32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       []byte
		expected int32
	}{
		{in: nil, expected: 0},
		{in: []byte{0xfb}, expected: -5},
		{in: []byte{0xff, 0xff, 0xff, 0xfb}, expected: -5},
		{in: []byte{0x00, 0x01, 0x00}, expected: 256},
		{in: []byte{0x80, 0, 0, 0}, expected: math.MinInt32},
		{in: []byte{0x7f, 0xff, 0xff, 0xff}, expected: math.MaxInt32},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, decodeBigEndian32(test.in), "%x", test.in)
	}
}

func TestDecodeBigEndian128(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       []byte
		expected column.Int128
	}{
		{in: nil, expected: column.Int128{}},
		{in: []byte{0xfb}, expected: column.Int128{Hi: -1, Lo: math.MaxUint64 - 4}},
		{in: []byte{0x01, 0x02}, expected: column.Int128{Lo: 0x0102}},
		{
			in:       []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0},
			expected: column.Int128{Hi: 1, Lo: 0},
		},
		{
			in:       []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			expected: column.Int128{Hi: math.MinInt64, Lo: 0},
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, decodeBigEndian128(test.in), "%x", test.in)
	}

	assert.Equal(t, "-5", decodeBigEndian128([]byte{0xff, 0xfb}).String())
}

func TestDecodeBigEndian_Wider(t *testing.T) {
	t.Parallel()

	// only the low-order bytes that fit are used
	assert.Equal(t, int32(-5), decodeBigEndian32([]byte{0x12, 0xff, 0xff, 0xff, 0xfb}))
	assert.Equal(t, int64(1), decodeBigEndian64([]byte{0xff, 0, 0, 0, 0, 0, 0, 0, 1}))
}
