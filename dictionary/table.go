package dictionary

import (
	"github.com/hexbee-net/bytedict/column"
	"github.com/hexbee-net/errors"
)

// OverflowPad is the spare capacity reserved after the last dictionary
// value. It lets column.String copy values in column.OverflowStride chunks
// without bounds-checking each one. Readers must never look past the
// logical end of a value.
const OverflowPad = column.OverflowStride

// Table is the decoded dictionary of one page. Code i resolves to Value(i).
// A Table is immutable once built.
type Table struct {
	data           []byte
	values         [][]byte
	maxValueLength int
}

// Build parses a PLAIN encoded byte-array dictionary page: numValues entries
// made of a little-endian uint32 length followed by that many bytes. The
// entries must cover exactly declaredLength bytes.
func Build(buf []byte, declaredLength, numValues int) (*Table, error) {
	if declaredLength < 0 || numValues < 0 {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidArgument),
			errors.Fields{
				"declared-length": declaredLength,
				"num-values":      numValues,
			})
	}

	c := newCursor(buf, declaredLength)

	// first pass sizes the backing buffer
	total := 0

	for i := 0; i < numValues; i++ {
		l, err := c.readUint32LE()
		if err != nil {
			return nil, annotateEntry(err, i, declaredLength)
		}

		if err := c.skip(int(l)); err != nil {
			return nil, annotateEntry(err, i, declaredLength)
		}

		total += int(l)
	}

	t := &Table{
		data:   make([]byte, total, total+OverflowPad),
		values: make([][]byte, numValues),
	}

	c.reset()

	offset := 0

	// the cursor rejects any entry running past declaredLength
	for i := 0; i < numValues; i++ {
		l, err := c.readUint32LE()
		if err != nil {
			return nil, annotateEntry(err, i, declaredLength)
		}

		src, err := c.readBytes(int(l))
		if err != nil {
			return nil, annotateEntry(err, i, declaredLength)
		}

		n := copy(t.data[offset:], src)
		t.values[i] = t.data[offset : offset+n]
		offset += n

		if n > t.maxValueLength {
			t.maxValueLength = n
		}
	}

	if c.offset() != declaredLength {
		return nil, errors.WithFields(
			errors.WithStack(ErrLengthMismatch),
			errors.Fields{
				"offset":          c.offset(),
				"declared-length": declaredLength,
				"buffer-length":   len(buf),
			})
	}

	return t, nil
}

func annotateEntry(err error, entry, declaredLength int) error {
	return errors.WithFields(err, errors.Fields{
		"entry":           entry,
		"declared-length": declaredLength,
	})
}

// Len is the number of dictionary values.
func (t *Table) Len() int {
	return len(t.values)
}

// Value returns the value of code i. The returned slice must not be
// modified.
func (t *Table) Value(i int) []byte {
	v := t.values[i]

	return v[:len(v):len(v)]
}

// Values returns every value in code order. The slices share the table
// storage and keep its spare capacity for column.String's chunked copies;
// they must not be modified or read past their length.
func (t *Table) Values() [][]byte {
	return t.values
}

// MaxValueLength is the length of the longest value.
func (t *Table) MaxValueLength() int {
	return t.maxValueLength
}

// PayloadSize is the total length of all values, without length prefixes
// or padding.
func (t *Table) PayloadSize() int {
	return len(t.data)
}
