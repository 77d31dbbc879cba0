package column

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Int128 is a 128-bit two's complement integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

func (i Int128) BigInt() *big.Int {
	v := big.NewInt(i.Hi)
	v.Lsh(v, 64)

	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.BigInt().String()
}

// Native is the set of unscaled decimal representations.
type Native interface {
	int32 | int64 | Int128
}

// Decimal is a materialized column of unscaled decimal values. Precision and
// scale are carried for presentation only.
type Decimal[T Native] struct {
	nullMap

	precision int32
	scale     int32
	values    []T
}

func NewDecimal[T Native](precision, scale int32, nullable bool) *Decimal[T] {
	return &Decimal[T]{
		nullMap:   newNullMap(nullable),
		precision: precision,
		scale:     scale,
	}
}

func (c *Decimal[T]) Len() int {
	return len(c.values)
}

func (c *Decimal[T]) Precision() int32 {
	return c.precision
}

func (c *Decimal[T]) Scale() int32 {
	return c.scale
}

func (c *Decimal[T]) Append(v T) {
	c.values = append(c.values, v)
}

func (c *Decimal[T]) InsertManyDefaults(n int) {
	if n <= 0 {
		return
	}

	c.markNulls(c.Len(), n)

	var zero T
	for i := 0; i < n; i++ {
		c.values = append(c.values, zero)
	}
}

// Value returns the unscaled value of row i.
func (c *Decimal[T]) Value(i int) T {
	return c.values[i]
}

// Decimal returns row i with the column scale applied.
func (c *Decimal[T]) Decimal(i int) decimal.Decimal {
	switch v := any(c.values[i]).(type) {
	case int32:
		return decimal.New(int64(v), -c.scale)
	case int64:
		return decimal.New(v, -c.scale)
	case Int128:
		return decimal.NewFromBigInt(v.BigInt(), -c.scale)
	default:
		panic("unreachable")
	}
}
