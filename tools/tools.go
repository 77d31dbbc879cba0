//go:build tools
// +build tools

// Package tools pins the code generators and fuzzing tools of the module:
// minimock builds dictionary/index_source_mock_test.go and go-fuzz drives
// the gofuzz harnesses in dictionary/table_fuzz.go.
package tools

import (
	_ "github.com/dvyukov/go-fuzz/go-fuzz"
	_ "github.com/dvyukov/go-fuzz/go-fuzz-build"
	_ "github.com/gojuno/minimock/v3/cmd/minimock"
)
