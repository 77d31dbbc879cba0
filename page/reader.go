package page

import (
	"encoding/binary"
	"io"

	"github.com/hexbee-net/bytedict/compression"
	"github.com/hexbee-net/errors"
)

const (
	ErrInvalidBlockSize = errors.Error("invalid block size")
	ErrInvalidHeader    = errors.Error("invalid page header")
	ErrInvalidLevels    = errors.Error("invalid level section")
)

type Reader struct {
	blockReader blockReader
}

func NewReader(compressors compression.Registry) *Reader {
	if compressors == nil {
		compressors = compression.DefaultRegistry()
	}

	return &Reader{blockReader: blockReader{compressors: compressors}}
}

// ReadDictionaryPage reads and decompresses a PLAIN encoded dictionary page.
func (r *Reader) ReadDictionaryPage(in io.Reader, h *Header) (*Dictionary, error) {
	if err := checkSizes(h); err != nil {
		return nil, err
	}

	if h.Type != TypeDictionaryPage {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":    "not a dictionary page",
				"page-type": h.Type.String(),
			})
	}

	if h.NumValues < 0 {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":     "negative NumValues in DICTIONARY_PAGE",
				"num-values": h.NumValues,
			})
	}

	if h.Encoding != EncodingPlain && h.Encoding != EncodingPlainDictionary {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":   "only PLAIN and PLAIN_DICTIONARY are supported for dictionary pages",
				"encoding": h.Encoding.String(),
			})
	}

	buf, err := r.blockReader.readBlock(in, h.CompressedSize)
	if err != nil {
		return nil, err
	}

	data, err := r.blockReader.decompress(buf, h.Codec, h.UncompressedSize)
	if err != nil {
		return nil, err
	}

	return &Dictionary{
		Data:      data,
		NumValues: int(h.NumValues),
	}, nil
}

// ReadIndexPage reads a dictionary encoded data page and returns its values
// section: the bit-width byte followed by the hybrid encoded indexes.
func (r *Reader) ReadIndexPage(in io.Reader, h *Header) ([]byte, error) {
	p, err := r.ReadDataPage(in, h)
	if err != nil {
		return nil, err
	}

	return p.Indexes, nil
}

// ReadDataPage reads a dictionary encoded data page and splits its levels
// from its indexes.
func (r *Reader) ReadDataPage(in io.Reader, h *Header) (*DataPage, error) {
	if err := checkSizes(h); err != nil {
		return nil, err
	}

	if h.Encoding != EncodingRLEDictionary && h.Encoding != EncodingPlainDictionary {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":   "data page is not dictionary encoded",
				"encoding": h.Encoding.String(),
			})
	}

	if h.MaxRepetitionLevel < 0 || h.MaxDefinitionLevel < 0 {
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":               "negative max level",
				"max-repetition-level": h.MaxRepetitionLevel,
				"max-definition-level": h.MaxDefinitionLevel,
			})
	}

	buf, err := r.blockReader.readBlock(in, h.CompressedSize)
	if err != nil {
		return nil, err
	}

	switch h.Type {
	case TypeDataPage:
		data, err := r.blockReader.decompress(buf, h.Codec, h.UncompressedSize)
		if err != nil {
			return nil, err
		}

		return splitLevels(data, h)

	case TypeDataPageV2:
		// levels are never compressed in a V2 page
		levels := h.LevelsByteLength
		if levels < 0 || levels > h.CompressedSize || levels > h.UncompressedSize {
			return nil, errors.WithFields(
				errors.WithStack(ErrInvalidHeader),
				errors.Fields{
					"reason":             "invalid levels size",
					"levels-byte-length": levels,
				})
		}

		data, err := r.blockReader.decompress(buf[levels:], h.Codec, h.UncompressedSize-levels)
		if err != nil {
			return nil, err
		}

		return &DataPage{Indexes: data}, nil

	default:
		return nil, errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":    "page type not supported",
				"page-type": h.Type.String(),
			})
	}
}

// splitLevels strips the repetition then definition level sections of a
// DATA_PAGE. Each one is a little-endian uint32 length followed by that many
// RLE encoded bytes.
func splitLevels(data []byte, h *Header) (*DataPage, error) {
	p := &DataPage{}

	var err error

	if h.MaxRepetitionLevel > 0 {
		if _, data, err = levelSection(data, "repetition"); err != nil {
			return nil, err
		}
	}

	if h.MaxDefinitionLevel > 0 {
		if p.DefinitionLevels, data, err = levelSection(data, "definition"); err != nil {
			return nil, err
		}
	}

	p.Indexes = data

	return p, nil
}

func levelSection(data []byte, kind string) (levels, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, errors.WithFields(
			errors.WithStack(ErrInvalidLevels),
			errors.Fields{
				"levels":    kind,
				"available": len(data),
			})
	}

	size := binary.LittleEndian.Uint32(data)
	if uint64(size) > uint64(len(data)-4) {
		return nil, nil, errors.WithFields(
			errors.WithStack(ErrInvalidLevels),
			errors.Fields{
				"levels":    kind,
				"size":      size,
				"available": len(data) - 4,
			})
	}

	end := 4 + int(size)

	return data[4:end:end], data[end:], nil
}

func checkSizes(h *Header) error {
	if h == nil {
		return errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason": "missing page header",
			})
	}

	if h.CompressedSize < 0 || h.UncompressedSize < 0 {
		return errors.WithFields(
			errors.WithStack(ErrInvalidHeader),
			errors.Fields{
				"reason":            "invalid page data size",
				"compressed-size":   h.CompressedSize,
				"uncompressed-size": h.UncompressedSize,
			})
	}

	return nil
}
