package dictionary

import (
	"strings"

	"github.com/hexbee-net/errors"
)

// LogicalType is the type of the output column a byte-array dictionary is
// decoded into.
type LogicalType int

const (
	TypeUnknown LogicalType = iota
	TypeString
	TypeFixedString
	TypeDecimal32
	TypeDecimal64
	TypeDecimal128
	TypeDecimal128I
	TypeInt32
	TypeInt64
	TypeFloat64
	TypeDate
	TypeDateTime
)

var logicalTypeNames = map[LogicalType]string{
	TypeUnknown:     "Unknown",
	TypeString:      "String",
	TypeFixedString: "FixedString",
	TypeDecimal32:   "Decimal32",
	TypeDecimal64:   "Decimal64",
	TypeDecimal128:  "Decimal128",
	TypeDecimal128I: "Decimal128I",
	TypeInt32:       "Int32",
	TypeInt64:       "Int64",
	TypeFloat64:     "Float64",
	TypeDate:        "Date",
	TypeDateTime:    "DateTime",
}

func (t LogicalType) String() string {
	if name, ok := logicalTypeNames[t]; ok {
		return name
	}

	return "<UNSET>"
}

// ParseLogicalType returns the logical type with the given (case
// insensitive) name.
func ParseLogicalType(name string) (LogicalType, error) {
	for t, n := range logicalTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return t, nil
		}
	}

	return TypeUnknown, errors.WithFields(
		errors.WithStack(ErrInvalidArgument),
		errors.Fields{
			"logical-type": name,
		})
}

// DecimalWidth is the bit width of the unscaled integer of a decimal type,
// or 0 for non decimal types.
func (t LogicalType) DecimalWidth() int {
	switch t {
	case TypeDecimal32:
		return 32
	case TypeDecimal64:
		return 64
	case TypeDecimal128, TypeDecimal128I:
		return 128
	default:
		return 0
	}
}
