package dictionary

import (
	"github.com/hexbee-net/errors"
)

// Corruption errors. The page or column chunk must be abandoned.
const (
	ErrOffsetOverflow    = errors.Error("offset exceeds declared length")
	ErrLengthMismatch    = errors.Error("length mismatch")
	ErrCodeOutOfRange    = errors.Error("dictionary code out of range")
	ErrCodeCountMismatch = errors.Error("selection does not consume every decoded code")
	ErrCorruptIndexes    = errors.Error("malformed dictionary index stream")
)

// Invalid argument errors, raised on a schema or caller mismatch.
const (
	ErrUnsupportedType = errors.Error("unsupported logical type for byte-array dictionary decode")
	ErrColumnMismatch  = errors.Error("output column does not match logical type")
	ErrInvalidArgument = errors.Error("invalid argument")
	ErrNoDictionary    = errors.Error("dictionary is not set")
	ErrNoIndexSource   = errors.Error("index source is not set")
)

// IsCorruption reports whether err was caused by a malformed page.
func IsCorruption(err error) bool {
	switch errors.Cause(err) {
	case ErrOffsetOverflow, ErrLengthMismatch, ErrCodeOutOfRange, ErrCodeCountMismatch, ErrCorruptIndexes:
		return true
	default:
		return false
	}
}

// IsInvalidArgument reports whether err was caused by a schema or codec
// mismatch.
func IsInvalidArgument(err error) bool {
	switch errors.Cause(err) {
	case ErrUnsupportedType, ErrColumnMismatch, ErrInvalidArgument, ErrNoDictionary, ErrNoIndexSource:
		return true
	default:
		return false
	}
}
