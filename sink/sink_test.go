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
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict/schema"
)

// testRecord is a record with one text per language.
type testRecord struct {
	ID     string            `json:"id"`
	Common bool              `json:"-"`
	Texts  map[string]string `json:"texts"`
}

func (r *testRecord) AllLanguages() schema.Languages {
	langs := schema.Languages{}
	for l := range r.Texts {
		langs.Add(l)
	}
	return langs
}

func (r *testRecord) IsCommon() bool {
	return r.Common
}

func (r *testRecord) Project(langs schema.Languages) *testRecord {
	out := *r
	out.Texts = map[string]string{}
	for l, t := range r.Texts {
		if langs.Accepts(l) {
			out.Texts[l] = t
		}
	}
	return &out
}

// closeBuffer records whether it was closed.
type closeBuffer struct {
	strings.Builder
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

var testHeader = Header{
	Version:        "1.2.3",
	WithCommonOnly: true,
	DictDate:       "2024-03-15",
	DictRevisions:  []string{"1.09", "1.08"},
	Tags:           map[string]string{"v1": "Ichidan verb", "n": "noun"},
	ArrayName:      "words",
}

func TestSink(t *testing.T) {
	t.Parallel()

	var b closeBuffer
	s := New(Spec{Languages: []string{"ger", "eng"}, Path: "test.json"}, &b)

	if err := s.WriteHeader(testHeader); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	for _, r := range []*testRecord{
		{ID: "1", Texts: map[string]string{"eng": "a & b"}},
		{ID: "2", Texts: map[string]string{"ger": "<c>"}},
	} {
		if err := s.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := `{"version":"1.2.3","languages":["eng","ger"],"commonOnly":false,` +
		`"dictDate":"2024-03-15","dictRevisions":["1.09","1.08"],` +
		`"tags":{"n":"noun","v1":"Ichidan verb"},` +
		`"words":[{"id":"1","texts":{"eng":"a & b"}},{"id":"2","texts":{"ger":"<c>"}}]}` + "\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("output (-want, +got):\n%s", diff)
	}
	if !json.Valid([]byte(b.String())) {
		t.Errorf("output is not valid JSON")
	}
	if !b.closed {
		t.Errorf("underlying writer not closed")
	}
	if got, want := s.Count(), 2; got != want {
		t.Errorf("Count: want %d, got %d", want, got)
	}
	if err := s.Append(&testRecord{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Append after Close: want %v, got %v", ErrClosed, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestSink_EmptyWithoutCommonOnly(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	s := New(Spec{Languages: []string{All}}, &b)

	h := testHeader
	h.WithCommonOnly = false
	h.Tags = nil
	h.DictRevisions = nil
	h.ArrayName = "characters"
	if err := s.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := `{"version":"1.2.3","languages":["all"],"dictDate":"2024-03-15",` +
		`"dictRevisions":[],"tags":{},"characters":[]}` + "\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("output (-want, +got):\n%s", diff)
	}
}

func TestSink_AppendBeforeHeader(t *testing.T) {
	t.Parallel()

	s := New(Spec{Languages: []string{All}}, &strings.Builder{})
	if err := s.Append(&testRecord{}); !errors.Is(err, ErrHeaderNotWritten) {
		t.Errorf("Append: want %v, got %v", ErrHeaderNotWritten, err)
	}
}

func TestSink_Accepts(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		spec   Spec
		langs  []string
		common bool
		want   bool
	}{
		"all": {
			spec:  Spec{Languages: []string{All}},
			langs: []string{"ger"},
			want:  true,
		},
		"all without languages": {
			spec: Spec{Languages: []string{All}},
			want: true,
		},
		"intersecting": {
			spec:  Spec{Languages: []string{"eng", "fre"}},
			langs: []string{"ger", "fre"},
			want:  true,
		},
		"disjoint": {
			spec:  Spec{Languages: []string{"eng"}},
			langs: []string{"ger"},
			want:  false,
		},
		"common only with common record": {
			spec:   Spec{Languages: []string{"eng"}, CommonOnly: true},
			langs:  []string{"eng"},
			common: true,
			want:   true,
		},
		"common only with uncommon record": {
			spec:  Spec{Languages: []string{"eng"}, CommonOnly: true},
			langs: []string{"eng"},
			want:  false,
		},
		"all common only with uncommon record": {
			spec:  Spec{Languages: []string{All}, CommonOnly: true},
			langs: []string{"eng"},
			want:  false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := New(tc.spec, &strings.Builder{})
			if got := s.Accepts(schema.NewLanguages(tc.langs...), tc.common); got != tc.want {
				t.Errorf("Accepts: want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFanOut(t *testing.T) {
	t.Parallel()

	var eng, all, engCommon strings.Builder
	f := NewFanOut[*testRecord](
		New(Spec{Languages: []string{"eng"}}, &eng),
		New(Spec{Languages: []string{All}}, &all),
		New(Spec{Languages: []string{"eng"}, CommonOnly: true}, &engCommon),
	)

	h := testHeader
	h.Tags = nil
	if err := f.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	records := []*testRecord{
		{ID: "1", Common: true, Texts: map[string]string{"eng": "one", "ger": "eins"}},
		{ID: "2", Texts: map[string]string{"eng": "two"}},
		{ID: "3", Common: true, Texts: map[string]string{"ger": "drei"}},
	}
	var counts []int
	for _, r := range records {
		n, err := f.Write(r)
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		counts = append(counts, n)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, counts); diff != "" {
		t.Errorf("Write counts (-want, +got):\n%s", diff)
	}
	if err := f.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	type doc struct {
		Words []testRecord `json:"words"`
	}
	decode := func(s string) []testRecord {
		var d doc
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			t.Fatalf("json.Unmarshal: %v", err)
		}
		return d.Words
	}

	wantEng := []testRecord{
		{ID: "1", Texts: map[string]string{"eng": "one"}},
		{ID: "2", Texts: map[string]string{"eng": "two"}},
	}
	if diff := cmp.Diff(wantEng, decode(eng.String())); diff != "" {
		t.Errorf("eng (-want, +got):\n%s", diff)
	}

	wantAll := []testRecord{
		{ID: "1", Texts: map[string]string{"eng": "one", "ger": "eins"}},
		{ID: "2", Texts: map[string]string{"eng": "two"}},
		{ID: "3", Texts: map[string]string{"ger": "drei"}},
	}
	if diff := cmp.Diff(wantAll, decode(all.String())); diff != "" {
		t.Errorf("all (-want, +got):\n%s", diff)
	}

	wantCommon := []testRecord{
		{ID: "1", Texts: map[string]string{"eng": "one"}},
	}
	if diff := cmp.Diff(wantCommon, decode(engCommon.String())); diff != "" {
		t.Errorf("eng-common (-want, +got):\n%s", diff)
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	s, err := Create(Spec{Languages: []string{"eng"}, Path: path})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.WriteHeader(testHeader); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !json.Valid(b) {
		t.Errorf("output is not valid JSON: %s", b)
	}

	if _, err := Create(Spec{Path: path}); !errors.Is(err, ErrNoLanguages) {
		t.Errorf("Create: want %v, got %v", ErrNoLanguages, err)
	}
	if _, err := Create(Spec{Languages: []string{"eng"}}); !errors.Is(err, ErrNoPath) {
		t.Errorf("Create: want %v, got %v", ErrNoPath, err)
	}
}
