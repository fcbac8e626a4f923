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

package sink

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ianlewis/go-jmdict/schema"
)

// All is the language wildcard. A sink with All accepts every record and
// keeps every translation.
const All = schema.AllLanguages

var (
	// ErrClosed indicates a write to a closed sink.
	ErrClosed = errors.New("sink closed")

	// ErrNoLanguages indicates a sink spec without languages.
	ErrNoLanguages = errors.New("no languages")

	// ErrNoPath indicates a sink spec without a destination path.
	ErrNoPath = errors.New("no output path")

	// ErrHeaderNotWritten indicates a record appended before the header.
	ErrHeaderNotWritten = errors.New("header not written")
)

// Spec configures a sink.
type Spec struct {
	// Languages are the language codes to keep, or [All].
	Languages []string `yaml:"languages" json:"languages"`

	// CommonOnly limits the sink to common records.
	CommonOnly bool `yaml:"commonOnly" json:"commonOnly"`

	// Path is the output file path.
	Path string `yaml:"path" json:"path"`
}

// Validate checks the spec.
func (s Spec) Validate() error {
	if len(s.Languages) == 0 {
		return fmt.Errorf("sink %q: %w", s.Path, ErrNoLanguages)
	}
	if s.Path == "" {
		return ErrNoPath
	}
	return nil
}

// Header is the metadata written before the record array.
type Header struct {
	// Version is the version of the converter.
	Version string

	// WithCommonOnly adds the sink's commonOnly flag to the header. It is
	// set for dictionaries that support common-only outputs.
	WithCommonOnly bool

	DictDate      string
	DictRevisions []string

	// Tags maps tag codes to their descriptions.
	Tags map[string]string

	// ArrayName is the key of the record array, e.g. "words".
	ArrayName string
}

// field is a header key and its value.
type field struct {
	key   string
	value any
}

// Sink is a single JSON output document.
type Sink struct {
	spec  Spec
	langs schema.Languages

	w      *bufio.Writer
	closer io.Closer

	buf *bytes.Buffer
	enc *json.Encoder

	headerWritten bool
	wroteAny      bool
	finished      bool
	closed        bool
	count         int
}

// New returns a sink writing to w. If w is an io.Closer it is closed by
// [Sink.Close].
func New(spec Spec, w io.Writer) *Sink {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	s := &Sink{
		spec:  spec,
		langs: schema.NewLanguages(spec.Languages...),
		w:     bufio.NewWriter(w),
		buf:   buf,
		enc:   enc,
	}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Create creates the file at spec.Path and returns a sink writing to it.
func Create(spec Spec) (*Sink, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Create(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("creating sink: %w", err)
	}
	return New(spec, f), nil
}

// Spec returns the sink's spec.
func (s *Sink) Spec() Spec {
	return s.spec
}

// Languages returns the sink's language set.
func (s *Sink) Languages() schema.Languages {
	return s.langs
}

// Count returns the number of records written.
func (s *Sink) Count() int {
	return s.count
}

// Accepts reports whether a record with the given languages and common flag
// belongs in this sink.
func (s *Sink) Accepts(langs schema.Languages, common bool) bool {
	if s.spec.CommonOnly && !common {
		return false
	}
	return s.langs.IsAll() || s.langs.Intersects(langs)
}

// WriteHeader writes the document header up to the opening bracket of the
// record array.
func (s *Sink) WriteHeader(h Header) error {
	if s.closed {
		return ErrClosed
	}

	langs := slices.Clone(s.spec.Languages)
	slices.Sort(langs)
	langs = slices.Compact(langs)

	revisions := h.DictRevisions
	if revisions == nil {
		revisions = []string{}
	}
	tags := h.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	fields := []field{
		{"version", h.Version},
		{"languages", langs},
	}
	if h.WithCommonOnly {
		fields = append(fields, field{"commonOnly", s.spec.CommonOnly})
	}
	fields = append(fields,
		field{"dictDate", h.DictDate},
		field{"dictRevisions", revisions},
		field{"tags", tags},
	)

	if err := s.writeString("{"); err != nil {
		return err
	}
	for _, f := range fields {
		if err := s.writeField(f.key, f.value); err != nil {
			return err
		}
		if err := s.writeString(","); err != nil {
			return err
		}
	}
	if err := s.writeKey(h.ArrayName); err != nil {
		return err
	}
	if err := s.writeString("["); err != nil {
		return err
	}
	s.headerWritten = true
	return nil
}

// Append writes a record to the array. Records after the first are preceded
// by a comma.
func (s *Sink) Append(record any) error {
	if s.closed {
		return ErrClosed
	}
	if !s.headerWritten {
		return ErrHeaderNotWritten
	}
	if s.wroteAny {
		if err := s.writeString(","); err != nil {
			return err
		}
	}
	if err := s.writeJSON(record); err != nil {
		return err
	}
	s.wroteAny = true
	s.count++
	return nil
}

// Finish closes the record array and the document and flushes the output.
// It does not close the underlying writer.
func (s *Sink) Finish() error {
	if s.closed {
		return ErrClosed
	}
	if s.finished {
		return nil
	}
	if !s.headerWritten {
		return ErrHeaderNotWritten
	}
	if err := s.writeString("]}\n"); err != nil {
		return err
	}
	s.finished = true
	return s.flush()
}

// Close flushes any buffered output and closes the underlying writer. Close
// does not complete the document; a sink closed without [Sink.Finish] holds
// invalid JSON. Calling Close more than once has no effect.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing sink %q: %w", s.spec.Path, cerr))
		}
	}
	return err
}

func (s *Sink) flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("writing sink %q: %w", s.spec.Path, err)
	}
	return nil
}

func (s *Sink) writeField(key string, value any) error {
	if err := s.writeKey(key); err != nil {
		return err
	}
	return s.writeJSON(value)
}

func (s *Sink) writeKey(key string) error {
	if err := s.writeJSON(key); err != nil {
		return err
	}
	return s.writeString(":")
}

// writeJSON writes the JSON encoding of v without HTML escaping and without
// the trailing newline added by the encoder.
func (s *Sink) writeJSON(v any) error {
	s.buf.Reset()
	if err := s.enc.Encode(v); err != nil {
		return fmt.Errorf("encoding record for sink %q: %w", s.spec.Path, err)
	}
	if _, err := s.w.Write(bytes.TrimSuffix(s.buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("writing sink %q: %w", s.spec.Path, err)
	}
	return nil
}

func (s *Sink) writeString(str string) error {
	if _, err := s.w.WriteString(str); err != nil {
		return fmt.Errorf("writing sink %q: %w", s.spec.Path, err)
	}
	return nil
}
