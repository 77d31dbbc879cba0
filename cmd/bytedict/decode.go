package main

import (
	"bytes"
	"fmt"
	"io"
	"math/bits"

	"github.com/RoaringBitmap/roaring"
	"github.com/hexbee-net/bytedict/column"
	"github.com/hexbee-net/bytedict/dictionary"
	"github.com/hexbee-net/bytedict/encoding"
	"github.com/hexbee-net/bytedict/page"
	"github.com/hexbee-net/bytedict/selection"
	"github.com/hexbee-net/bytedict/source"
	"github.com/hexbee-net/bytedict/source/local"
	"github.com/hexbee-net/bytedict/source/memory"
	"github.com/hexbee-net/errors"
	"go.uber.org/zap"
)

type job struct {
	cfg     *jobConfig
	logger  *zap.Logger
	metrics *dictionary.Metrics
	out     io.Writer
}

func (j *job) run() error {
	typ, err := dictionary.ParseLogicalType(j.cfg.Column.Type)
	if err != nil {
		return err
	}

	pages := page.NewReader(nil)
	dec := dictionary.NewDecoder(
		dictionary.WithLogger(j.logger),
		dictionary.WithMetrics(j.metrics))

	dict, err := j.readDictionary(pages)
	if err != nil {
		return err
	}

	if err := dec.SetDict(dict.Data, dict.Length(), dict.NumValues); err != nil {
		return err
	}

	data, err := j.readDataPage(pages)
	if err != nil {
		return err
	}

	if err := dec.SetData(data.Indexes); err != nil {
		return err
	}

	plan, err := j.plan(data.DefinitionLevels)
	if err != nil {
		return err
	}

	col := j.newColumn(typ)
	if err := dec.DecodeValues(col, typ, plan); err != nil {
		return err
	}

	j.logger.Info("column decoded",
		zap.String("logical-type", typ.String()),
		zap.Int("dictionary-size", dec.Table().Len()),
		zap.Int("rows", col.Len()))

	return j.print(col)
}

func (j *job) readDictionary(pages *page.Reader) (*page.Dictionary, error) {
	h, err := j.cfg.Dictionary.header()
	if err != nil {
		return nil, err
	}

	in, err := openSection(j.cfg.Dictionary.File, j.cfg.Dictionary.Offset, h.CompressedSize)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return pages.ReadDictionaryPage(in, h)
}

func (j *job) readDataPage(pages *page.Reader) (*page.DataPage, error) {
	h, err := j.cfg.Data.header()
	if err != nil {
		return nil, err
	}

	in, err := openSection(j.cfg.Data.File, j.cfg.Data.Offset, h.CompressedSize)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return pages.ReadDataPage(in, h)
}

// openSection loads size bytes of path starting at offset.
func openSection(path string, offset int64, size int32) (source.Reader, error) {
	f, err := local.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := source.ReadSection(f, offset, int64(size))
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, "failed to read page"),
			errors.Fields{
				"path":   path,
				"offset": offset,
				"size":   size,
			})
	}

	return memory.NewReader(buf), nil
}

func (j *job) plan(defLevels []byte) (*selection.Plan, error) {
	var nulls, selected *roaring.Bitmap

	if len(j.cfg.Column.NullRows) > 0 {
		nulls = roaring.BitmapOf(j.cfg.Column.NullRows...)
	}

	if defLevels != nil {
		var err error
		if nulls, err = levelNulls(defLevels, int(j.cfg.Data.NumValues), j.cfg.Data.MaxDefinitionLevel); err != nil {
			return nil, err
		}
	}

	if len(j.cfg.Column.SelectedRows) > 0 {
		selected = roaring.BitmapOf(j.cfg.Column.SelectedRows...)
	}

	return selection.FromBitmaps(int(j.cfg.Data.NumValues), nulls, selected), nil
}

// levelNulls returns the rows whose definition level is below maxLevel.
func levelNulls(levels []byte, numValues int, maxLevel int16) (*roaring.Bitmap, error) {
	dec, err := encoding.NewHybridDecoder(bits.Len16(uint16(maxLevel)))
	if err != nil {
		return nil, err
	}

	if err := dec.Init(bytes.NewReader(levels)); err != nil {
		return nil, err
	}

	values := make([]uint32, numValues)
	if err := dec.Fill(values); err != nil {
		return nil, errors.Wrap(err, "failed to decode definition levels")
	}

	nulls := roaring.New()

	for i, l := range values {
		if l < uint32(maxLevel) {
			nulls.Add(uint32(i))
		}
	}

	return nulls, nil
}

func (j *job) newColumn(typ dictionary.LogicalType) column.Column {
	c := j.cfg.Column

	if c.DictionaryEncoded {
		return column.NewDictionary(c.Nullable)
	}

	switch typ.DecimalWidth() {
	case 32:
		return column.NewDecimal[int32](c.Precision, c.Scale, c.Nullable)
	case 64:
		return column.NewDecimal[int64](c.Precision, c.Scale, c.Nullable)
	case 128:
		return column.NewDecimal[column.Int128](c.Precision, c.Scale, c.Nullable)
	default:
		// non string types are rejected by the decoder
		return column.NewString(c.Nullable)
	}
}

type nullable interface {
	IsNull(i int) bool
}

func (j *job) print(col column.Column) error {
	for i := 0; i < col.Len(); i++ {
		if n, ok := col.(nullable); ok && n.IsNull(i) {
			if _, err := fmt.Fprintf(j.out, "%d\tNULL\n", i); err != nil {
				return err
			}

			continue
		}

		var value string

		switch c := col.(type) {
		case *column.String:
			value = fmt.Sprintf("%q", c.Value(i))
		case *column.Dictionary:
			value = fmt.Sprintf("%d\t%q", c.Code(i), c.Value(i))
		case *column.Decimal[int32]:
			value = c.Decimal(i).String()
		case *column.Decimal[int64]:
			value = c.Decimal(i).String()
		case *column.Decimal[column.Int128]:
			value = c.Decimal(i).String()
		}

		if _, err := fmt.Fprintf(j.out, "%d\t%s\n", i, value); err != nil {
			return err
		}
	}

	return nil
}
