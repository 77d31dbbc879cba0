package dictionary

import (
	"encoding/binary"

	"github.com/hexbee-net/errors"
)

// cursor walks an untrusted page buffer. Every read is bounds-checked
// against the declared length; nothing past it is ever read.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(buf []byte, declaredLength int) cursor {
	if declaredLength < len(buf) {
		buf = buf[:declaredLength]
	}

	return cursor{data: buf}
}

func (c *cursor) offset() int {
	return c.pos
}

func (c *cursor) reset() {
	c.pos = 0
}

func (c *cursor) readUint32LE() (uint32, error) {
	if err := c.check(4); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4

	return v, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if err := c.check(n); err != nil {
		return nil, err
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) skip(n int) error {
	if err := c.check(n); err != nil {
		return err
	}

	c.pos += n

	return nil
}

func (c *cursor) check(n int) error {
	if n < 0 || n > len(c.data)-c.pos {
		return errors.WithFields(
			errors.WithStack(ErrOffsetOverflow),
			errors.Fields{
				"offset":    c.pos,
				"requested": n,
				"available": len(c.data) - c.pos,
			})
	}

	return nil
}
