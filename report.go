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
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/sink"
)

// ReportObserver prints the release metadata and a per-language tally of
// the converted records.
type ReportObserver[P any] struct {
	NopObserver[P]

	w     io.Writer
	title string
}

// NewReportObserver returns a ReportObserver that writes to w.
func NewReportObserver[P any](w io.Writer, title string) *ReportObserver[P] {
	return &ReportObserver[P]{
		w:     w,
		title: title,
	}
}

// BeforeEntries prints the metadata.
func (o *ReportObserver[P]) BeforeEntries(_ context.Context, meta *metadata.Metadata) error {
	if _, err := fmt.Fprintf(o.w, "%s\n\n", o.title); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	PrintMetadata(o.w, meta)
	return nil
}

// AfterEntries prints the tally.
func (o *ReportObserver[P]) AfterEntries(_ context.Context, _ *metadata.Metadata, tally *Tally) error {
	if _, err := fmt.Fprintln(o.w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	PrintTally(o.w, tally)
	return nil
}

// PrintMetadata prints the metadata as a table.
func PrintMetadata(w io.Writer, meta *metadata.Metadata) {
	tbl := table.New("Property", "Value").WithWriter(w)
	tbl.AddRow("Date", meta.Date)
	tbl.AddRow("Revisions", strings.Join(meta.Revisions, ", "))
	tbl.AddRow("Tags", len(meta.Entities))
	tbl.Print()
}

// PrintTally prints the record counts as a table.
func PrintTally(w io.Writer, tally *Tally) {
	tbl := table.New("Language", "Name", "Records").WithWriter(w)
	for _, code := range tally.LanguageCodes() {
		tbl.AddRow(code, LanguageName(code), tally.Languages[code])
	}
	tbl.AddRow("", "Total", tally.Converted)
	tbl.AddRow("", "Common", tally.Common)
	tbl.Print()
}

// PrintSinks prints the number of records written to each sink.
func PrintSinks(w io.Writer, sinks []*sink.Sink) {
	tbl := table.New("Output", "Languages", "Common only", "Records").WithWriter(w)
	for _, s := range sinks {
		spec := s.Spec()
		tbl.AddRow(spec.Path, strings.Join(s.Languages().Sorted(), ","), spec.CommonOnly, s.Count())
	}
	tbl.Print()
}

// LanguageName returns the English name of a language code, or "" if the
// code is not known.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(tag)
}
