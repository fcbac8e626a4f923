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

// Package source opens dictionary release files. Releases are distributed
// plain, gzip compressed or dictzip compressed.
package source

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// extensions are tried in order when the given path does not exist.
var extensions = []string{
	".xml",
	".gz",
	".xml.gz",
	".GZ",
	".dz",
	".xml.dz",
	".DZ",
}

// File is an open source file.
type File struct {
	io.Reader

	// Path is the path of the file that was opened.
	Path string

	closers []io.Closer
}

// Close closes the decompressor, if any, and the file.
func (f *File) Close() error {
	var errs []error
	for i := len(f.closers) - 1; i >= 0; i-- {
		errs = append(errs, f.closers[i].Close())
	}
	return errors.Join(errs...)
}

// Open opens the source at path. If no file exists at path, path with each of
// the known extensions appended is tried. Files ending in .gz are read with
// gzip and files ending in .dz with dictzip.
func Open(path string) (*File, error) {
	osFile, err := find(path)
	if err != nil {
		return nil, err
	}

	f := &File{
		Path:    osFile.Name(),
		closers: []io.Closer{osFile},
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".gz":
		z, err := gzip.NewReader(bufio.NewReader(osFile))
		if err != nil {
			_ = osFile.Close()
			return nil, fmt.Errorf("creating gzip reader for %q: %w", f.Path, err)
		}
		f.Reader = z
		f.closers = append(f.closers, z)
	case ".dz":
		z, err := dictzip.NewReader(osFile)
		if err != nil {
			_ = osFile.Close()
			return nil, fmt.Errorf("creating dictzip reader for %q: %w", f.Path, err)
		}
		// The uncompressed size is not known up front. Reads past the end
		// return io.EOF.
		f.Reader = bufio.NewReader(io.NewSectionReader(z, 0, math.MaxInt64))
		f.closers = append(f.closers, z)
	default:
		f.Reader = bufio.NewReader(osFile)
	}

	return f, nil
}

func find(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	for _, ext := range extensions {
		f, extErr := os.Open(path + ext)
		if extErr == nil {
			return f, nil
		}
		if !errors.Is(extErr, os.ErrNotExist) {
			return nil, fmt.Errorf("opening source: %w", extErr)
		}
	}
	return nil, fmt.Errorf("opening source: %w", err)
}
