// Package encoding decodes the dictionary index streams of RLE_DICTIONARY
// data pages.
package encoding

import (
	"github.com/hexbee-net/errors"
)

const (
	errNilReader         = errors.Error("reader is nil")
	errInvalidBitWidth   = errors.Error("invalid bit-width")
	errEmptyRLERun       = errors.Error("rle: empty RLE run")
	errEmptyBitPackedRun = errors.Error("rle: empty bit-packed run")
	errValueTooLarge     = errors.Error("rle: RLE run value is too large")
	errNotInitialized    = errors.Error("reader is not initialized")
	errShortStream       = errors.Error("not enough values in stream")
)

// MaxBitWidth is the largest bit-width allowed for dictionary indexes.
const MaxBitWidth = 32

type Decoder interface {
	Next() (uint32, error)
	Fill(dst []uint32) error
}
