package column

// OverflowStride is the width of the chunks InsertManyStringsOverflow copies
// values in. Sources must keep at least OverflowStride-1 readable bytes of
// capacity past the end of each value for the chunked copy to be used.
const OverflowStride = 16

// String is a materialized column of variable length byte strings.
type String struct {
	nullMap

	chars   []byte
	offsets []int
}

func NewString(nullable bool) *String {
	return &String{
		nullMap: newNullMap(nullable),
		offsets: []int{0},
	}
}

func (c *String) Len() int {
	return len(c.offsets) - 1
}

// Value returns row i. The slice aliases the column storage.
func (c *String) Value(i int) []byte {
	start, end := c.offsets[i], c.offsets[i+1]

	return c.chars[start:end:end]
}

func (c *String) InsertManyDefaults(n int) {
	if n <= 0 {
		return
	}

	c.markNulls(c.Len(), n)

	end := len(c.chars)
	for i := 0; i < n; i++ {
		c.offsets = append(c.offsets, end)
	}
}

// InsertManyStrings appends values one by one.
func (c *String) InsertManyStrings(values [][]byte) {
	for _, v := range values {
		c.chars = append(c.chars, v...)
		c.offsets = append(c.offsets, len(c.chars))
	}
}

// InsertManyStringsOverflow appends values. maxLength is the caller's bound
// on their lengths; storage is reserved once from the actual lengths of the
// batch. Values whose capacity allows it are copied in OverflowStride chunks
// that may run past their logical end. Bytes written past the logical end
// are overwritten by the next value or sliced off.
func (c *String) InsertManyStringsOverflow(values [][]byte, maxLength int) {
	if len(values) == 0 {
		return
	}

	size := 0
	for _, v := range values {
		size += len(v)
	}

	c.reserve(size + OverflowStride)

	buf := c.chars[:cap(c.chars)]
	end := len(c.chars)

	for _, v := range values {
		n := len(v)

		span := n
		if rounded := (n + OverflowStride - 1) &^ (OverflowStride - 1); rounded <= cap(v) && end+rounded <= len(buf) {
			span = rounded
		}

		copy(buf[end:end+span], v[:span])
		end += n

		c.offsets = append(c.offsets, end)
	}

	c.chars = buf[:end]
}

func (c *String) reserve(extra int) {
	if cap(c.chars)-len(c.chars) >= extra {
		return
	}

	grown := make([]byte, len(c.chars), 2*cap(c.chars)+extra)
	copy(grown, c.chars)
	c.chars = grown
}
