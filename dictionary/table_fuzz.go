//go:build gofuzz
// +build gofuzz

package dictionary

import (
	"github.com/hexbee-net/bytedict/column"
	"github.com/hexbee-net/bytedict/selection"
)

func FuzzBuild(data []byte) int {
	if len(data) < 2 {
		return 0
	}

	numValues := int(data[0])
	buf := data[1:]

	table, err := Build(buf, len(buf), numValues)
	if err != nil {
		if !IsCorruption(err) {
			panic(err)
		}

		return 0
	}

	if table.Len() != numValues {
		panic("dictionary size mismatch")
	}

	return 1
}

func FuzzDecodeStrings(data []byte) int {
	if len(data) < 3 {
		return 0
	}

	split := int(data[0]) + 1
	if split >= len(data) {
		return 0
	}

	dict, indexes := data[1:split], data[split:]

	d := NewDecoder()
	if err := d.SetDict(dict, len(dict), len(dict)/5); err != nil {
		return 0
	}

	if err := d.SetData(indexes); err != nil {
		return 0
	}

	col := column.NewString(false)
	if err := d.DecodeValues(col, TypeString, selection.All(len(indexes))); err != nil {
		if col.Len() != 0 {
			panic("partial output on error")
		}

		return 0
	}

	return 1
}
