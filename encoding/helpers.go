package encoding

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/hexbee-net/errors"
)

type byteReader struct {
	io.Reader
}

func (r byteReader) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r.Reader, buf); err != nil {
		return 0, err
	}

	return buf[0], nil
}

func readUVarInt32(r io.Reader) (uint32, error) {
	b, ok := r.(io.ByteReader)
	if !ok {
		b = &byteReader{Reader: r}
	}

	i, err := binary.ReadUvarint(b)
	if err != nil {
		return 0, err
	}

	if i > math.MaxUint32 {
		return 0, errors.New("uint32 out of range")
	}

	return uint32(i), nil
}

// unpack8 extracts eight values of the given bit-width from a bit-packed
// group. Values are packed least significant bit first.
func unpack8(data []byte, bitWidth int) (out [8]uint32) {
	var (
		acc  uint64
		bits int
		pos  int
	)

	mask := uint64(1)<<uint(bitWidth) - 1

	for i := range out {
		for bits < bitWidth {
			acc |= uint64(data[pos]) << uint(bits)
			pos++
			bits += 8
		}

		out[i] = uint32(acc & mask)
		acc >>= uint(bitWidth)
		bits -= bitWidth
	}

	return out
}

func decodeRLEValue(value []byte) uint32 {
	switch len(value) {
	case 0: //nolint:gomnd // the switch is on the size of the input
		return 0
	case 1: //nolint:gomnd // the switch is on the size of the input
		return uint32(value[0])
	case 2: //nolint:gomnd // the switch is on the size of the input
		return uint32(value[0]) | uint32(value[1])<<8
	case 3: //nolint:gomnd // the switch is on the size of the input
		return uint32(value[0]) | uint32(value[1])<<8 | uint32(value[2])<<16
	case 4: //nolint:gomnd // the switch is on the size of the input
		return binary.LittleEndian.Uint32(value)
	default:
		panic("invalid argument")
	}
}
