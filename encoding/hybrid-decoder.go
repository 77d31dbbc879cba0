package encoding

import (
	"bytes"
	"io"
	"math/bits"

	"github.com/hexbee-net/errors"
)

// HybridDecoder reads the RLE / bit-packing hybrid encoding.
type HybridDecoder struct {
	r io.Reader

	bitWidth     int
	rleValueSize int

	bpRun [8]uint32

	// a bit-packed group of 8 values takes bitWidth bytes
	scratch [MaxBitWidth]byte

	rleCount uint32
	rleValue uint32

	bpCount  uint32
	bpRunPos uint8
}

func NewHybridDecoder(bitWidth int) (*HybridDecoder, error) {
	if bitWidth < 0 || bitWidth > MaxBitWidth {
		return nil, errors.WithFields(
			errors.WithStack(errInvalidBitWidth),
			errors.Fields{
				"bit-width": bitWidth,
			})
	}

	return &HybridDecoder{
		bitWidth:     bitWidth,
		rleValueSize: (bitWidth + 7) / 8,
	}, nil
}

func (d *HybridDecoder) Init(reader io.Reader) error {
	if reader == nil {
		return errors.WithStack(errNilReader)
	}

	d.r = reader
	d.rleCount = 0
	d.bpCount = 0
	d.bpRunPos = 0

	return nil
}

func (d *HybridDecoder) BitWidth() int {
	return d.bitWidth
}

func (d *HybridDecoder) Next() (uint32, error) {
	var next uint32

	// when the bit width is zero, it means we can only have infinite zero.
	if d.bitWidth == 0 {
		return 0, nil
	}

	if d.r == nil {
		return 0, errors.WithStack(errNotInitialized)
	}

	if d.rleCount == 0 && d.bpCount == 0 && d.bpRunPos == 0 {
		if err := d.readRunHeader(); err != nil {
			return 0, err
		}
	}

	switch {
	case d.rleCount > 0:
		next = d.rleValue
		d.rleCount--

	case d.bpCount > 0 || d.bpRunPos > 0:
		if d.bpRunPos == 0 {
			if err := d.readBitPackedRun(); err != nil {
				return 0, err
			}
			d.bpCount--
		}

		next = d.bpRun[d.bpRunPos]
		d.bpRunPos = (d.bpRunPos + 1) % 8

	default:
		return 0, io.EOF
	}

	return next, nil
}

// Fill decodes exactly len(dst) values. RLE runs are expanded in bulk.
func (d *HybridDecoder) Fill(dst []uint32) error {
	if d.bitWidth == 0 {
		for i := range dst {
			dst[i] = 0
		}

		return nil
	}

	for i := 0; i < len(dst); {
		if d.rleCount > 0 {
			n := int(d.rleCount)
			if rem := len(dst) - i; n > rem {
				n = rem
			}

			for j := i; j < i+n; j++ {
				dst[j] = d.rleValue
			}

			d.rleCount -= uint32(n)
			i += n

			continue
		}

		v, err := d.Next()
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return errors.WithFields(
					errors.WithStack(errShortStream),
					errors.Fields{
						"expected": len(dst),
						"actual":   i,
					})
			}

			return err
		}

		dst[i] = v
		i++
	}

	return nil
}

func (d *HybridDecoder) readRunHeader() error {
	h, err := readUVarInt32(d.r)
	if err != nil {
		// this error could be EOF which is ok by this implementation the only issue is the binary.ReadUVariant can not
		// return UnexpectedEOF is there is some bit read from the stream with no luck, it always return EOF
		return err
	}

	// The lower bit indicate if this is bitpack or rle
	if h&1 == 1 {
		d.bpCount = h >> 1
		if d.bpCount == 0 {
			return errors.WithStack(errEmptyBitPackedRun)
		}

		d.bpRunPos = 0
	} else {
		d.rleCount = h >> 1
		if d.rleCount == 0 {
			return errors.WithStack(errEmptyRLERun)
		}

		return d.readRLERunValue()
	}

	return nil
}

func (d *HybridDecoder) readBitPackedRun() error {
	data := d.scratch[:d.bitWidth]

	if _, err := io.ReadFull(d.r, data); err != nil {
		return errors.Wrap(err, "failed to read bit-packed group")
	}

	d.bpRun = unpack8(data, d.bitWidth)

	return nil
}

func (d *HybridDecoder) readRLERunValue() error {
	v := d.scratch[:d.rleValueSize]

	if _, err := io.ReadFull(d.r, v); err != nil {
		return errors.Wrap(err, "failed to read RLE run value")
	}

	d.rleValue = decodeRLEValue(v)

	if bits.Len32(d.rleValue) > d.bitWidth {
		return errors.WithFields(
			errors.WithStack(errValueTooLarge),
			errors.Fields{
				"value":     d.rleValue,
				"bit-width": d.bitWidth,
			})
	}

	return nil
}

// NewIndexDecoder returns a decoder over the payload of an RLE_DICTIONARY
// data page: a one byte bit-width followed by hybrid encoded indexes.
func NewIndexDecoder(data []byte) (*HybridDecoder, error) {
	if len(data) == 0 {
		return nil, errors.WithStack(io.ErrUnexpectedEOF)
	}

	d, err := NewHybridDecoder(int(data[0]))
	if err != nil {
		return nil, err
	}

	if err := d.Init(bytes.NewReader(data[1:])); err != nil {
		return nil, err
	}

	return d, nil
}
