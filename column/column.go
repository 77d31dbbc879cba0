// Package column holds the output columns dictionary decoding writes into.
package column

import (
	"github.com/RoaringBitmap/roaring"
)

// Column is the part of every output column the decoder relies on.
type Column interface {
	// Len is the number of rows in the column.
	Len() int
	// InsertManyDefaults appends n default rows. Nullable columns mark them
	// as null.
	InsertManyDefaults(n int)
}

// nullMap tracks the null rows of a nullable column.
type nullMap struct {
	nullable bool
	nulls    *roaring.Bitmap
}

func newNullMap(nullable bool) nullMap {
	m := nullMap{nullable: nullable}
	if nullable {
		m.nulls = roaring.New()
	}

	return m
}

func (m *nullMap) markNulls(start, n int) {
	if !m.nullable || n <= 0 {
		return
	}

	m.nulls.AddRange(uint64(start), uint64(start+n))
}

func (m *nullMap) IsNullable() bool {
	return m.nullable
}

func (m *nullMap) IsNull(i int) bool {
	return m.nullable && m.nulls.Contains(uint32(i))
}

func (m *nullMap) NullCount() int {
	if !m.nullable {
		return 0
	}

	return int(m.nulls.GetCardinality())
}
