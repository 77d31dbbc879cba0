package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hexbee-net/bytedict/compression"
	"github.com/hexbee-net/bytedict/page"
	"github.com/hexbee-net/errors"
)

const errInvalidConfig = errors.Error("invalid job configuration")

// jobConfig describes one dictionary page, one dictionary encoded data page
// and the column the values are decoded into.
type jobConfig struct {
	Dictionary dictionaryConfig `toml:"dictionary"`
	Data       dataConfig       `toml:"data"`
	Column     columnConfig     `toml:"column"`
}

type dictionaryConfig struct {
	File             string `toml:"file"`
	Offset           int64  `toml:"offset"`
	Codec            string `toml:"codec"`
	NumValues        int32  `toml:"num_values"`
	CompressedSize   int32  `toml:"compressed_size"`
	UncompressedSize int32  `toml:"uncompressed_size"`
}

type dataConfig struct {
	// File defaults to the dictionary file.
	File             string `toml:"file"`
	Offset           int64  `toml:"offset"`
	Codec            string `toml:"codec"`
	V2               bool   `toml:"v2"`
	Encoding         string `toml:"encoding"`
	NumValues        int32  `toml:"num_values"`
	CompressedSize   int32  `toml:"compressed_size"`
	UncompressedSize int32  `toml:"uncompressed_size"`
	LevelsByteLength int32  `toml:"levels_byte_length"`

	MaxRepetitionLevel int16 `toml:"max_repetition_level"`
	// MaxDefinitionLevel > 0 makes the null rows come from the definition
	// levels of the page.
	MaxDefinitionLevel int16 `toml:"max_definition_level"`
}

type columnConfig struct {
	Type              string   `toml:"type"`
	Precision         int32    `toml:"precision"`
	Scale             int32    `toml:"scale"`
	Nullable          bool     `toml:"nullable"`
	NullRows          []uint32 `toml:"null_rows"`
	SelectedRows      []uint32 `toml:"selected_rows"`
	DictionaryEncoded bool     `toml:"dictionary_encoded"`
}

func loadConfig(path string) (*jobConfig, error) {
	cfg := &jobConfig{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, "failed to decode job configuration"),
			errors.Fields{
				"path": path,
			})
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *jobConfig) validate() error {
	if c.Dictionary.File == "" {
		return errors.WithFields(
			errors.WithStack(errInvalidConfig),
			errors.Fields{
				"reason": "missing dictionary file",
			})
	}

	if c.Data.File == "" {
		c.Data.File = c.Dictionary.File
	}

	if c.Column.Type == "" {
		c.Column.Type = "String"
	}

	if len(c.Column.NullRows) > 0 && !c.Column.Nullable {
		return errors.WithFields(
			errors.WithStack(errInvalidConfig),
			errors.Fields{
				"reason": "null rows in a non nullable column",
			})
	}

	if c.Data.MaxDefinitionLevel > 0 && (len(c.Column.NullRows) > 0 || !c.Column.Nullable) {
		return errors.WithFields(
			errors.WithStack(errInvalidConfig),
			errors.Fields{
				"reason": "definition levels need a nullable column without null rows",
			})
	}

	if err := checkRows(c.Column.NullRows, c.Data.NumValues); err != nil {
		return err
	}

	return checkRows(c.Column.SelectedRows, c.Data.NumValues)
}

func checkRows(rows []uint32, numValues int32) error {
	for _, row := range rows {
		if int64(row) >= int64(numValues) {
			return errors.WithFields(
				errors.WithStack(errInvalidConfig),
				errors.Fields{
					"reason":     "row out of range",
					"row":        row,
					"num-values": numValues,
				})
		}
	}

	return nil
}

func (c *dictionaryConfig) header() (*page.Header, error) {
	codec, err := compression.ParseCodec(c.Codec)
	if err != nil {
		return nil, err
	}

	return &page.Header{
		Type:             page.TypeDictionaryPage,
		Codec:            codec,
		Encoding:         page.EncodingPlain,
		NumValues:        c.NumValues,
		CompressedSize:   c.CompressedSize,
		UncompressedSize: c.UncompressedSize,
	}, nil
}

func (c *dataConfig) header() (*page.Header, error) {
	codec, err := compression.ParseCodec(c.Codec)
	if err != nil {
		return nil, err
	}

	enc := page.EncodingRLEDictionary
	if c.Encoding != "" {
		if enc, err = parseEncoding(c.Encoding); err != nil {
			return nil, err
		}
	}

	typ := page.TypeDataPage
	if c.V2 {
		typ = page.TypeDataPageV2
	}

	return &page.Header{
		Type:             typ,
		Codec:            codec,
		Encoding:         enc,
		NumValues:        c.NumValues,
		CompressedSize:   c.CompressedSize,
		UncompressedSize: c.UncompressedSize,
		LevelsByteLength: c.LevelsByteLength,

		MaxRepetitionLevel: c.MaxRepetitionLevel,
		MaxDefinitionLevel: c.MaxDefinitionLevel,
	}, nil
}

func parseEncoding(name string) (page.Encoding, error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	for _, enc := range []page.Encoding{
		page.EncodingPlain,
		page.EncodingPlainDictionary,
		page.EncodingRLE,
		page.EncodingRLEDictionary,
	} {
		if enc.String() == name {
			return enc, nil
		}
	}

	return 0, errors.WithFields(
		errors.WithStack(errInvalidConfig),
		errors.Fields{
			"reason":   "unknown page encoding",
			"encoding": name,
		})
}
