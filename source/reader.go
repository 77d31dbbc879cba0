// Package source provides the byte sources pages are read from.
package source

import (
	"io"

	"github.com/hexbee-net/errors"
)

type Reader interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Sizer is implemented by sources that know their total size.
type Sizer interface {
	Size() int64
}

// ReadSection reads exactly size bytes starting at offset. Sections running
// past the end of a Sizer are rejected before anything is allocated.
func ReadSection(r Reader, offset, size int64) ([]byte, error) {
	if offset < 0 || size < 0 {
		return nil, errors.WithFields(
			errors.New("invalid section"),
			errors.Fields{
				"offset": offset,
				"size":   size,
			})
	}

	if s, ok := r.(Sizer); ok && offset+size > s.Size() {
		return nil, io.ErrUnexpectedEOF
	}

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}
