// Package selection describes which rows of a batch are materialized, which
// are null and which are filtered out, as a sequence of runs.
package selection

import (
	"github.com/RoaringBitmap/roaring"
)

type Kind uint8

const (
	// Content rows are materialized and consume one dictionary code each.
	Content Kind = iota
	// NullData rows are emitted as nulls and consume no code.
	NullData
	// FilteredContent rows are dropped but still consume one code each.
	FilteredContent
	// FilteredNull rows are dropped and consume nothing.
	FilteredNull
)

func (k Kind) String() string {
	switch k {
	case Content:
		return "CONTENT"
	case NullData:
		return "NULL_DATA"
	case FilteredContent:
		return "FILTERED_CONTENT"
	case FilteredNull:
		return "FILTERED_NULL"
	default:
		return "<UNSET>"
	}
}

// ConsumesCode reports whether rows of this kind have a value in the
// dictionary index stream.
func (k Kind) ConsumesCode() bool {
	return k == Content || k == FilteredContent
}

type Run struct {
	Kind   Kind
	Length int
}

// Plan is an ordered run-length selection over one batch of rows.
// It is not safe for concurrent use.
type Plan struct {
	runs []Run
	pos  int

	numValues int
	numNulls  int
}

// NewPlan builds a plan from runs. Adjacent runs of the same kind are merged
// and empty runs are dropped.
func NewPlan(runs ...Run) *Plan {
	p := &Plan{runs: make([]Run, 0, len(runs))}

	for _, r := range runs {
		p.Append(r.Kind, r.Length)
	}

	return p
}

// All returns a plan selecting n non-null rows.
func All(n int) *Plan {
	return NewPlan(Run{Kind: Content, Length: n})
}

// FromBitmaps builds the plan of a batch of numValues rows. Rows in nulls
// are null; rows missing from selected are filtered out. A nil selected
// keeps every row.
func FromBitmaps(numValues int, nulls, selected *roaring.Bitmap) *Plan {
	p := &Plan{}

	for i := 0; i < numValues; i++ {
		isNull := nulls != nil && nulls.Contains(uint32(i))
		keep := selected == nil || selected.Contains(uint32(i))

		var kind Kind

		switch {
		case keep && !isNull:
			kind = Content
		case keep:
			kind = NullData
		case !isNull:
			kind = FilteredContent
		default:
			kind = FilteredNull
		}

		p.Append(kind, 1)
	}

	return p
}

// Append adds length rows of the given kind at the end of the plan.
func (p *Plan) Append(kind Kind, length int) {
	if length <= 0 {
		return
	}

	p.numValues += length
	if !kind.ConsumesCode() {
		p.numNulls += length
	}

	if n := len(p.runs); n > 0 && p.runs[n-1].Kind == kind {
		p.runs[n-1].Length += length
		return
	}

	p.runs = append(p.runs, Run{Kind: kind, Length: length})
}

// NextRun returns the next run, or false once the plan is exhausted.
func (p *Plan) NextRun() (Kind, int, bool) {
	if p.pos >= len(p.runs) {
		return 0, 0, false
	}

	r := p.runs[p.pos]
	p.pos++

	return r.Kind, r.Length, true
}

// Reset rewinds the run iterator.
func (p *Plan) Reset() {
	p.pos = 0
}

func (p *Plan) Runs() []Run {
	return p.runs
}

// NumValues is the number of rows covered by the plan, filtered or not.
func (p *Plan) NumValues() int {
	return p.numValues
}

// NumNulls is the number of null rows, filtered or not.
func (p *Plan) NumNulls() int {
	return p.numNulls
}

// NonNullCount is the number of dictionary codes the batch consumes.
func (p *Plan) NonNullCount() int {
	return p.numValues - p.numNulls
}

// NumSelected is the number of rows emitted to the output.
func (p *Plan) NumSelected() int {
	n := 0

	for _, r := range p.runs {
		if r.Kind == Content || r.Kind == NullData {
			n += r.Length
		}
	}

	return n
}
