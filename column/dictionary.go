package column

// Dictionary is a dictionary encoded output column: rows hold int32 codes
// into a dictionary registered once per page.
type Dictionary struct {
	nullMap

	dict  [][]byte
	codes []int32
}

func NewDictionary(nullable bool) *Dictionary {
	return &Dictionary{
		nullMap: newNullMap(nullable),
	}
}

func (c *Dictionary) Len() int {
	return len(c.codes)
}

func (c *Dictionary) DictSize() int {
	return len(c.dict)
}

// InsertManyDict registers the dictionary values. The values are copied into
// storage owned by the column.
func (c *Dictionary) InsertManyDict(values [][]byte) {
	size := 0
	for _, v := range values {
		size += len(v)
	}

	data := make([]byte, 0, size)
	dict := make([][]byte, len(values))

	for i, v := range values {
		start := len(data)
		data = append(data, v...)
		dict[i] = data[start:len(data):len(data)]
	}

	c.dict = dict
}

// ResetDict drops the registered dictionary so the next page can register
// its own. Rows already decoded keep their codes.
func (c *Dictionary) ResetDict() {
	c.dict = nil
}

func (c *Dictionary) InsertManyCodes(codes []uint32) {
	for _, code := range codes {
		c.codes = append(c.codes, int32(code))
	}
}

func (c *Dictionary) InsertManyDefaults(n int) {
	if n <= 0 {
		return
	}

	c.markNulls(c.Len(), n)

	for i := 0; i < n; i++ {
		c.codes = append(c.codes, 0)
	}
}

func (c *Dictionary) Code(i int) int32 {
	return c.codes[i]
}

func (c *Dictionary) Codes() []int32 {
	return c.codes
}

// Value resolves row i through the registered dictionary. Null rows and
// rows without a dictionary resolve to nil.
func (c *Dictionary) Value(i int) []byte {
	if c.IsNull(i) {
		return nil
	}

	code := int(c.codes[i])
	if code >= len(c.dict) {
		return nil
	}

	return c.dict[code]
}
