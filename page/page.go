// Package page reads dictionary and data page payloads out of a column
// chunk. Page headers are decoded by the caller and handed in as Header.
package page

import (
	"github.com/hexbee-net/bytedict/compression"
)

type Type int32

const (
	TypeDataPage       Type = 0
	TypeIndexPage      Type = 1
	TypeDictionaryPage Type = 2
	TypeDataPageV2     Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeDataPage:
		return "DATA_PAGE"
	case TypeIndexPage:
		return "INDEX_PAGE"
	case TypeDictionaryPage:
		return "DICTIONARY_PAGE"
	case TypeDataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "<UNSET>"
	}
}

type Encoding int32

const (
	EncodingPlain           Encoding = 0
	EncodingPlainDictionary Encoding = 2
	EncodingRLE             Encoding = 3
	EncodingRLEDictionary   Encoding = 8
)

func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "PLAIN"
	case EncodingPlainDictionary:
		return "PLAIN_DICTIONARY"
	case EncodingRLE:
		return "RLE"
	case EncodingRLEDictionary:
		return "RLE_DICTIONARY"
	default:
		return "<UNSET>"
	}
}

// Header describes one page of a column chunk.
type Header struct {
	Type     Type
	Codec    compression.Codec
	Encoding Encoding

	NumValues        int32
	CompressedSize   int32
	UncompressedSize int32

	// LevelsByteLength is the size of the repetition and definition levels
	// stored uncompressed ahead of the values of a DATA_PAGE_V2.
	LevelsByteLength int32

	// MaxRepetitionLevel and MaxDefinitionLevel come from the column schema.
	// A DATA_PAGE carries a length prefixed level section for each one that
	// is not zero.
	MaxRepetitionLevel int16
	MaxDefinitionLevel int16
}

// DataPage is the decompressed payload of a dictionary encoded data page.
type DataPage struct {
	// DefinitionLevels is the RLE encoded definition level section of a
	// DATA_PAGE, without its length prefix. It is nil for DATA_PAGE_V2 pages
	// and for required columns.
	DefinitionLevels []byte
	// Indexes is the bit-width byte followed by the hybrid encoded
	// dictionary indexes.
	Indexes []byte
}

// Dictionary is the decompressed payload of a dictionary page.
type Dictionary struct {
	Data      []byte
	NumValues int
}

// Length is the declared length of the dictionary payload.
func (d *Dictionary) Length() int {
	return len(d.Data)
}
