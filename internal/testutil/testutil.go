// Package testutil defines support code for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/creachadair/sjson"
)

// testdataDir is the path of the testdata directory at the module root.
var testdataDir string

func init() {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("testutil: cannot locate source file")
	}
	testdataDir = filepath.Join(filepath.Dir(file), "..", "..", "testdata")
}

// Fixture returns the contents of the named file in the testdata directory.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Fatalf("Reading test fixture: %v", err)
	}
	return data
}

// MustParse parses src as an SJSON document, or fails t.
func MustParse(t testing.TB, src string) sjson.Object {
	t.Helper()
	obj, err := sjson.ParseString(src)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", src, err)
	}
	return obj
}
