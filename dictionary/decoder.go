// Package dictionary decodes dictionary encoded byte-array columns: strings,
// fixed length byte arrays and binary decimals.
//
// A Decoder is fed one dictionary page with SetDict, then one index stream
// per data page with SetData. Each DecodeValues call consumes the codes of
// one batch, walks its selection plan and writes into the output column,
// either as resolved values or, for column.Dictionary outputs, as codes.
package dictionary

import (
	"github.com/hexbee-net/bytedict/column"
	"github.com/hexbee-net/bytedict/encoding"
	"github.com/hexbee-net/bytedict/selection"
	"github.com/hexbee-net/errors"
	"go.uber.org/zap"
)

// IndexSource produces dictionary codes. Fill writes exactly len(dst) codes.
type IndexSource interface {
	Fill(dst []uint32) error
}

type Option func(*Decoder)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(d *Decoder) {
		d.metrics = m
	}
}

// Decoder decodes the dictionary encoded byte-array values of one column
// chunk. It is not safe for concurrent use.
type Decoder struct {
	table   *Table
	indexes IndexSource

	codes []uint32
	batch [][]byte

	logger  *zap.Logger
	metrics *Metrics
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// SetDict builds the dictionary table of the current page.
func (d *Decoder) SetDict(buf []byte, length, numValues int) error {
	t, err := Build(buf, length, numValues)
	if err != nil {
		if IsCorruption(err) {
			d.metrics.corruptPage()
			d.logger.Warn("rejected dictionary page",
				zap.Int("declared-length", length),
				zap.Int("num-values", numValues),
				zap.Error(err))
		}

		return err
	}

	d.table = t
	d.metrics.dictionaryBuilt()
	d.logger.Debug("dictionary page decoded",
		zap.Int("num-values", t.Len()),
		zap.Int("payload-size", t.PayloadSize()),
		zap.Int("max-value-length", t.MaxValueLength()))

	return nil
}

func (d *Decoder) Table() *Table {
	return d.table
}

// SetData installs the index stream of a data page: a bit-width byte
// followed by RLE / bit-packed hybrid encoded codes.
func (d *Decoder) SetData(data []byte) error {
	dec, err := encoding.NewIndexDecoder(data)
	if err != nil {
		return errors.Wrap(err, "failed to initialize dictionary index decoder")
	}

	d.indexes = dec

	return nil
}

// SetIndexSource installs an already positioned index source.
func (d *Decoder) SetIndexSource(src IndexSource) {
	d.indexes = src
}

type decodePath int

const (
	passthroughPath decodePath = iota
	stringPath
	decimal32Path
	decimal64Path
	decimal128Path
)

// DecodeValues decodes one batch into col. The batch covers plan.NumValues()
// rows and consumes plan.NonNullCount() codes from the index source.
//
// Every check runs before the first write: on error col is left untouched.
func (d *Decoder) DecodeValues(col column.Column, typ LogicalType, plan *selection.Plan) error {
	if d.table == nil {
		return errors.WithStack(ErrNoDictionary)
	}

	if plan == nil {
		return errors.WithFields(
			errors.WithStack(ErrInvalidArgument),
			errors.Fields{
				"reason": "nil selection plan",
			})
	}

	path, err := selectPath(col, typ)
	if err != nil {
		return err
	}

	if err := d.fillCodes(plan.NonNullCount()); err != nil {
		return err
	}

	switch path {
	case passthroughPath:
		dict := col.(*column.Dictionary)
		if dict.DictSize() == 0 {
			dict.InsertManyDict(d.table.values)
		}

		return d.decodeCodes(dict, plan)

	case stringPath:
		return d.decodeStrings(col.(*column.String), plan)

	case decimal32Path:
		return decodeDecimals(d, col.(*column.Decimal[int32]), plan, decodeBigEndian32)

	case decimal64Path:
		return decodeDecimals(d, col.(*column.Decimal[int64]), plan, decodeBigEndian64)

	default:
		return decodeDecimals(d, col.(*column.Decimal[column.Int128]), plan, decodeBigEndian128)
	}
}

// selectPath picks the decode path once per call from the output column
// and the logical type.
func selectPath(col column.Column, typ LogicalType) (decodePath, error) {
	if _, ok := col.(*column.Dictionary); ok {
		return passthroughPath, nil
	}

	var (
		path decodePath
		ok   bool
	)

	switch typ {
	case TypeString, TypeFixedString:
		_, ok = col.(*column.String)
		path = stringPath

	case TypeDecimal32:
		_, ok = col.(*column.Decimal[int32])
		path = decimal32Path

	case TypeDecimal64:
		_, ok = col.(*column.Decimal[int64])
		path = decimal64Path

	case TypeDecimal128, TypeDecimal128I:
		_, ok = col.(*column.Decimal[column.Int128])
		path = decimal128Path

	default:
		return 0, errors.WithFields(
			errors.WithStack(ErrUnsupportedType),
			errors.Fields{
				"logical-type": typ.String(),
			})
	}

	if !ok {
		return 0, errors.WithFields(
			errors.WithStack(ErrColumnMismatch),
			errors.Fields{
				"logical-type": typ.String(),
			})
	}

	return path, nil
}

// fillCodes reads the codes of the batch and checks each one against the
// dictionary size.
func (d *Decoder) fillCodes(n int) error {
	if cap(d.codes) < n {
		d.codes = make([]uint32, n)
	}

	d.codes = d.codes[:n]

	if n == 0 {
		return nil
	}

	if d.indexes == nil {
		return errors.WithStack(ErrNoIndexSource)
	}

	if err := d.indexes.Fill(d.codes); err != nil {
		d.metrics.corruptPage()

		return errors.WithFields(
			errors.WithStack(ErrCorruptIndexes),
			errors.Fields{
				"stream-error": err.Error(),
				"codes-count":  n,
			})
	}

	size := uint32(d.table.Len())

	for i, code := range d.codes {
		if code >= size {
			d.metrics.corruptPage()

			return errors.WithFields(
				errors.WithStack(ErrCodeOutOfRange),
				errors.Fields{
					"position":     i,
					"code":         code,
					"values-count": size,
				})
		}
	}

	return nil
}

// walk drives the selection plan over the decoded codes. content receives
// the codes of each CONTENT run.
func (d *Decoder) walk(col column.Column, plan *selection.Plan, content func(codes []uint32)) error {
	plan.Reset()

	pos := 0

	for {
		kind, n, ok := plan.NextRun()
		if !ok {
			break
		}

		switch kind {
		case selection.Content:
			content(d.codes[pos : pos+n])
			pos += n

		case selection.NullData:
			col.InsertManyDefaults(n)

		case selection.FilteredContent:
			pos += n

		case selection.FilteredNull:
			// nothing to do
		}
	}

	if pos != len(d.codes) {
		return errors.WithFields(
			errors.WithStack(ErrCodeCountMismatch),
			errors.Fields{
				"consumed": pos,
				"decoded":  len(d.codes),
			})
	}

	return nil
}

func (d *Decoder) decodeCodes(col *column.Dictionary, plan *selection.Plan) error {
	decoded := 0

	err := d.walk(col, plan, func(codes []uint32) {
		col.InsertManyCodes(codes)
		decoded += len(codes)
	})

	d.metrics.valuesDecoded(pathPassthrough, decoded)

	return err
}

func (d *Decoder) decodeStrings(col *column.String, plan *selection.Plan) error {
	values := d.table.values
	maxLength := d.table.maxValueLength
	decoded := 0

	err := d.walk(col, plan, func(codes []uint32) {
		batch := d.batch[:0]
		for _, code := range codes {
			batch = append(batch, values[code])
		}

		col.InsertManyStringsOverflow(batch, maxLength)

		decoded += len(batch)
		d.batch = batch[:0]
	})

	d.metrics.valuesDecoded(pathString, decoded)

	return err
}

func decodeDecimals[T column.Native](d *Decoder, col *column.Decimal[T], plan *selection.Plan, decode func([]byte) T) error {
	values := d.table.values
	decoded := 0

	err := d.walk(col, plan, func(codes []uint32) {
		for _, code := range codes {
			col.Append(decode(values[code]))
		}

		decoded += len(codes)
	})

	d.metrics.valuesDecoded(pathDecimal, decoded)

	return err
}
