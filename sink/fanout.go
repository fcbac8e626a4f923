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
	"errors"

	"github.com/ianlewis/go-jmdict/schema"
)

// Record is a converted record that can be filtered by language.
type Record[R any] interface {
	// AllLanguages returns the languages of all translations in the record.
	AllLanguages() schema.Languages

	// IsCommon reports whether the record is common.
	IsCommon() bool

	// Project returns the record limited to the given languages.
	Project(langs schema.Languages) R
}

// FanOut writes each record to every sink that accepts it.
type FanOut[R Record[R]] struct {
	sinks []*Sink
}

// NewFanOut returns a FanOut over the given sinks.
func NewFanOut[R Record[R]](sinks ...*Sink) *FanOut[R] {
	return &FanOut[R]{sinks: sinks}
}

// Sinks returns the sinks in the order they were given.
func (f *FanOut[R]) Sinks() []*Sink {
	return f.sinks
}

// WriteHeader writes the header to every sink.
func (f *FanOut[R]) WriteHeader(h Header) error {
	for _, s := range f.sinks {
		if err := s.WriteHeader(h); err != nil {
			return err
		}
	}
	return nil
}

// Write projects the record onto the languages of each accepting sink and
// appends it there. It returns the number of sinks the record was written to.
func (f *FanOut[R]) Write(record R) (int, error) {
	langs := record.AllLanguages()
	common := record.IsCommon()

	n := 0
	for _, s := range f.sinks {
		if !s.Accepts(langs, common) {
			continue
		}
		if err := s.Append(record.Project(s.Languages())); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Finish completes every sink's document.
func (f *FanOut[R]) Finish() error {
	var errs []error
	for _, s := range f.sinks {
		errs = append(errs, s.Finish())
	}
	return errors.Join(errs...)
}

// Close closes every sink.
func (f *FanOut[R]) Close() error {
	var errs []error
	for _, s := range f.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
