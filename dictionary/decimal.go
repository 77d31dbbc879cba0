package dictionary

import (
	"encoding/binary"

	"github.com/hexbee-net/bytedict/column"
)

// The decimal decoders read a big-endian two's complement integer and sign
// extend it to the full width. Only the low-order bytes that fit the width
// are used when b is longer; the schema layer guarantees that never happens.

func decodeBigEndian32(b []byte) int32 {
	if len(b) > 4 {
		b = b[len(b)-4:]
	}

	if len(b) == 0 {
		return 0
	}

	v := int32(int8(b[0]))
	for _, x := range b[1:] {
		v = v<<8 | int32(x)
	}

	return v
}

func decodeBigEndian64(b []byte) int64 {
	if len(b) > 8 {
		b = b[len(b)-8:]
	}

	if len(b) == 0 {
		return 0
	}

	v := int64(int8(b[0]))
	for _, x := range b[1:] {
		v = v<<8 | int64(x)
	}

	return v
}

func decodeBigEndian128(b []byte) column.Int128 {
	var buf [16]byte

	if len(b) > len(buf) {
		b = b[len(b)-len(buf):]
	}

	if len(b) > 0 && b[0]&0x80 != 0 {
		for i := range buf {
			buf[i] = 0xff
		}
	}

	copy(buf[len(buf)-len(b):], b)

	return column.Int128{
		Hi: int64(binary.BigEndian.Uint64(buf[:8])),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
}
