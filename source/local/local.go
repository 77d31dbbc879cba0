// Package local serves column chunks stored in local files.
package local

import (
	"os"

	"github.com/hexbee-net/errors"
)

// File is a read only local file source.
type File struct {
	*os.File

	path string
	size int64
}

// NewReader opens path and records its size.
func NewReader(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, "failed to open source file"),
			errors.Fields{
				"path": path,
			})
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, errors.WithFields(
			errors.Wrap(err, "failed to stat source file"),
			errors.Fields{
				"path": path,
			})
	}

	return &File{
		File: f,
		path: path,
		size: info.Size(),
	}, nil
}

func (f *File) Path() string {
	return f.path
}

// Size is the size of the file when it was opened.
func (f *File) Size() int64 {
	return f.size
}
