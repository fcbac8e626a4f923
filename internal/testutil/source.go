// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil builds test fixtures.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression of a temporary source file.
type Compression int

const (
	// None writes the source uncompressed.
	None Compression = iota

	// Gzip compresses the source with gzip.
	Gzip

	// DictZip compresses the source with dictzip.
	DictZip
)

// MakeSourceOptions are options for MakeTempSource.
type MakeSourceOptions struct {
	// Ext is an optional file extension. Defaults to '.xml.gz' for Gzip,
	// '.xml.dz' for DictZip and '.xml' otherwise.
	Ext string

	// Compression is the compression to use.
	Compression Compression
}

// GetExt returns the file extension.
func (o *MakeSourceOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		switch o.Compression {
		case Gzip:
			return ".xml.gz"
		case DictZip:
			return ".xml.dz"
		}
	}
	return ".xml"
}

// MakeTempSource writes doc to a temporary source file and returns its path.
// The file is removed when the test finishes.
func MakeTempSource(t *testing.T, doc string, opts *MakeSourceOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeSourceOptions{}
	}

	path := filepath.Join(t.TempDir(), "source"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch opts.Compression {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	default:
		w = nopCloser{f}
	}

	if _, err := io.WriteString(w, doc); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
