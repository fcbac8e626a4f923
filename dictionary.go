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

package jmdict

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-jmdict/kanji"
	"github.com/ianlewis/go-jmdict/name"
	"github.com/ianlewis/go-jmdict/sink"
	"github.com/ianlewis/go-jmdict/tagstream"
	"github.com/ianlewis/go-jmdict/word"
)

// ErrCommonOnlyUnsupported indicates a common-only output requested for a
// dictionary without a common flag.
var ErrCommonOnlyUnsupported = errors.New("common-only outputs are not supported")

// Dictionary describes how one kind of release is read and converted.
type Dictionary[P any, R sink.Record[R]] struct {
	// Name is the name of the dictionary.
	Name string

	// Prefix is the default output file name prefix.
	Prefix string

	// ArrayName is the key of the record array in outputs.
	ArrayName string

	// CommonOnly reports whether outputs may be limited to common records.
	CommonOnly bool

	Grammar Grammar[P]
	Convert ConvertFunc[P, R]
}

// Words is JMdict converted without example sentences.
var Words = &Dictionary[*word.Entry, *word.Word]{
	Name:       "JMdict",
	Prefix:     "jmdict",
	ArrayName:  "words",
	CommonOnly: true,
	Grammar:    word.Grammar{},
	Convert:    word.Convert,
}

// WordsWithExamples is JMdict converted with example sentences.
var WordsWithExamples = &Dictionary[*word.Entry, *word.WordWithExamples]{
	Name:       "JMdict",
	Prefix:     "jmdict-examples",
	ArrayName:  "words",
	CommonOnly: true,
	Grammar:    word.Grammar{},
	Convert:    word.ConvertWithExamples,
}

// Names is JMnedict.
var Names = &Dictionary[*name.Entry, *name.Name]{
	Name:      "JMnedict",
	Prefix:    "jmnedict",
	ArrayName: "words",
	Grammar:   name.Grammar{},
	Convert:   name.Convert,
}

// Kanji is kanjidic2.
var Kanji = &Dictionary[*kanji.Entry, *kanji.Character]{
	Name:      "kanjidic2",
	Prefix:    "kanjidic2",
	ArrayName: "characters",
	Grammar:   kanji.Grammar{},
	Convert:   kanji.Convert,
}

// RunOptions are options for Dictionary.Run.
type RunOptions struct {
	// Version is written to the header of every output.
	Version string

	// Logger is the logger used by the driver.
	Logger *slog.Logger

	// ProgressInterval is the number of entries between progress logs.
	ProgressInterval int

	// Report receives a report of the run if not nil.
	Report io.Writer
}

// SinkSpec returns a spec for an output named after the dictionary, its
// languages and the common-only flag, e.g. "jmdict-eng-common.json".
func (d *Dictionary[P, R]) SinkSpec(dir string, langs []string, commonOnly bool) sink.Spec {
	sorted := slices.Clone(langs)
	slices.Sort(sorted)
	parts := append([]string{d.Prefix}, sorted...)
	if commonOnly {
		parts = append(parts, "common")
	}
	return sink.Spec{
		Languages:  langs,
		CommonOnly: commonOnly,
		Path:       filepath.Join(dir, strings.Join(parts, "-")+".json"),
	}
}

// ValidateSpecs checks the output specs against the dictionary.
func (d *Dictionary[P, R]) ValidateSpecs(specs []sink.Spec) error {
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return err
		}
		if spec.CommonOnly && !d.CommonOnly {
			return fmt.Errorf("%s output %q: %w", d.Name, spec.Path, ErrCommonOnlyUnsupported)
		}
	}
	return nil
}

// Header returns the output header for the dictionary. Metadata fields are
// filled in during the run.
func (d *Dictionary[P, R]) Header(version string) sink.Header {
	return sink.Header{
		Version:        version,
		WithCommonOnly: d.CommonOnly,
		ArrayName:      d.ArrayName,
	}
}

// Run converts the release read from src into the sinks returned by open.
// It returns the tally and the sinks that were written.
func (d *Dictionary[P, R]) Run(ctx context.Context, src tagstream.Source, open SinkOpener, opts *RunOptions) (*Tally, []*sink.Sink, error) {
	if opts == nil {
		opts = &RunOptions{}
	}

	convert := NewConvertObserver(d.Convert, d.Header(opts.Version), open)
	observers := []Observer[P]{convert}
	if opts.Report != nil {
		observers = append(observers, NewReportObserver[P](opts.Report, d.Name))
	}

	driver := NewDriver(d.Grammar, &Options{
		Logger:           opts.Logger,
		ProgressInterval: opts.ProgressInterval,
	}, observers...)
	tally, err := driver.Run(ctx, src)
	return tally, convert.Sinks(), err
}
