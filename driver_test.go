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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict/internal/source"
	"github.com/ianlewis/go-jmdict/internal/testutil"
	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/schema"
	"github.com/ianlewis/go-jmdict/sink"
	"github.com/ianlewis/go-jmdict/tagstream"
	"github.com/ianlewis/go-jmdict/word"
)

const testWords = `<?xml version="1.0" encoding="UTF-8"?>
<!-- Rev 1.09 -->
<!DOCTYPE JMdict [
<!ELEMENT JMdict (entry*)>
<!ENTITY n "noun (common) (futsuumeishi)">
<!ENTITY v1 "Ichidan verb">
]>
<!-- JMdict created: 2024-03-15 -->
<JMdict>
<entry>
<ent_seq>1000001</ent_seq>
<k_ele>
<keb>本</keb>
<ke_pri>news2</ke_pri>
<ke_pri>nf12</ke_pri>
</k_ele>
<r_ele>
<reb>ほん</reb>
</r_ele>
<sense>
<pos>&n;</pos>
<gloss>book</gloss>
<gloss xml:lang="ger">Buch</gloss>
</sense>
</entry>
<entry>
<ent_seq>1000002</ent_seq>
<k_ele>
<keb>見る</keb>
<ke_pri>ichi1</ke_pri>
</k_ele>
<r_ele>
<reb>みる</reb>
<re_pri>ichi1</re_pri>
</r_ele>
<sense>
<pos>&v1;</pos>
<gloss>to see</gloss>
</sense>
<sense>
<gloss xml:lang="ger">sehen</gloss>
</sense>
</entry>
</JMdict>
`

// memSinks returns an opener of in-memory sinks and their buffers.
func memSinks(specs ...sink.Spec) (SinkOpener, []*bytes.Buffer) {
	bufs := make([]*bytes.Buffer, len(specs))
	for i := range bufs {
		bufs[i] = &bytes.Buffer{}
	}
	return func() ([]*sink.Sink, error) {
		sinks := make([]*sink.Sink, len(specs))
		for i, spec := range specs {
			sinks[i] = sink.New(spec, bufs[i])
		}
		return sinks, nil
	}, bufs
}

func xmlSource(doc string) tagstream.Source {
	return tagstream.NewXMLSource(strings.NewReader(doc))
}

type wordsDoc struct {
	Version       string            `json:"version"`
	Languages     []string          `json:"languages"`
	CommonOnly    bool              `json:"commonOnly"`
	DictDate      string            `json:"dictDate"`
	DictRevisions []string          `json:"dictRevisions"`
	Tags          map[string]string `json:"tags"`
	Words         []*word.Word      `json:"words"`
}

func decodeWords(t *testing.T, b []byte) *wordsDoc {
	t.Helper()
	var d wordsDoc
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, b)
	}
	return &d
}

func ids(words []*word.Word) []string {
	var out []string
	for _, w := range words {
		out = append(out, w.ID)
	}
	return out
}

func TestWords_Run(t *testing.T) {
	t.Parallel()

	open, bufs := memSinks(
		sink.Spec{Languages: []string{"eng"}, Path: "eng.json"},
		sink.Spec{Languages: []string{sink.All}, Path: "all.json"},
		sink.Spec{Languages: []string{"eng"}, CommonOnly: true, Path: "eng-common.json"},
	)

	var report bytes.Buffer
	tally, sinks, err := Words.Run(context.Background(), xmlSource(testWords), open, &RunOptions{
		Version: "1.0.0",
		Report:  &report,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantTally := &Tally{
		Entries:   2,
		Converted: 2,
		Common:    1,
		Languages: map[string]int{"eng": 2, "ger": 2},
	}
	if diff := cmp.Diff(wantTally, tally); diff != "" {
		t.Errorf("tally (-want, +got):\n%s", diff)
	}

	var counts []int
	for _, s := range sinks {
		counts = append(counts, s.Count())
	}
	if diff := cmp.Diff([]int{2, 2, 1}, counts); diff != "" {
		t.Errorf("sink counts (-want, +got):\n%s", diff)
	}

	eng := decodeWords(t, bufs[0].Bytes())
	if diff := cmp.Diff([]string{"1000001", "1000002"}, ids(eng.Words)); diff != "" {
		t.Errorf("eng ids (-want, +got):\n%s", diff)
	}
	// The German-only sense is dropped.
	if got := len(eng.Words[1].Sense); got != 1 {
		t.Errorf("eng senses of 1000002: want 1, got %d", got)
	}
	wantHeader := &wordsDoc{
		Version:       "1.0.0",
		Languages:     []string{"eng"},
		DictDate:      "2024-03-15",
		DictRevisions: []string{"1.09"},
		Tags: map[string]string{
			"n":  "noun (common) (futsuumeishi)",
			"v1": "Ichidan verb",
		},
	}
	eng.Words = nil
	if diff := cmp.Diff(wantHeader, eng); diff != "" {
		t.Errorf("eng header (-want, +got):\n%s", diff)
	}

	all := decodeWords(t, bufs[1].Bytes())
	if diff := cmp.Diff([]string{"1000001", "1000002"}, ids(all.Words)); diff != "" {
		t.Errorf("all ids (-want, +got):\n%s", diff)
	}
	if got := len(all.Words[1].Sense); got != 2 {
		t.Errorf("all senses of 1000002: want 2, got %d", got)
	}
	// The second sense inherits its part of speech.
	if diff := cmp.Diff([]string{"v1"}, all.Words[1].Sense[1].PartOfSpeech); diff != "" {
		t.Errorf("inherited part of speech (-want, +got):\n%s", diff)
	}

	common := decodeWords(t, bufs[2].Bytes())
	if diff := cmp.Diff([]string{"1000002"}, ids(common.Words)); diff != "" {
		t.Errorf("eng-common ids (-want, +got):\n%s", diff)
	}
	if !common.CommonOnly {
		t.Errorf("eng-common commonOnly: want true")
	}

	for _, want := range []string{"JMdict", "2024-03-15", "ger", "Common"} {
		if !strings.Contains(report.String(), want) {
			t.Errorf("report does not contain %q:\n%s", want, report.String())
		}
	}
}

func TestWords_RunFromFile(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempSource(t, testWords, &testutil.MakeSourceOptions{
		Compression: testutil.DictZip,
	})
	f, err := source.Open(path)
	if err != nil {
		t.Fatalf("source.Open: %v", err)
	}
	defer f.Close()

	dir := t.TempDir()
	specs := []sink.Spec{Words.SinkSpec(dir, []string{"eng"}, false)}
	if err := Words.ValidateSpecs(specs); err != nil {
		t.Fatalf("ValidateSpecs: %v", err)
	}

	_, sinks, err := Words.Run(context.Background(), tagstream.NewXMLSource(f), CreateSinks(specs), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := sinks[0].Spec().Path, filepath.Join(dir, "jmdict-eng.json"); got != want {
		t.Errorf("Path: want %q, got %q", want, got)
	}
}

// recordingObserver records the notifications it receives.
type recordingObserver[P any] struct {
	calls   []string
	failOn  string
	finErr  error
	runErrs []error
}

func (o *recordingObserver[P]) record(call string) error {
	o.calls = append(o.calls, call)
	if call == o.failOn {
		return errors.New(call + " failed")
	}
	return nil
}

func (o *recordingObserver[P]) OnStart(context.Context) error {
	return o.record("OnStart")
}

func (o *recordingObserver[P]) BeforeEntries(context.Context, *metadata.Metadata) error {
	return o.record("BeforeEntries")
}

func (o *recordingObserver[P]) OnEntry(context.Context, P, *metadata.Metadata, *Tally) error {
	return o.record("OnEntry")
}

func (o *recordingObserver[P]) AfterEntries(context.Context, *metadata.Metadata, *Tally) error {
	return o.record("AfterEntries")
}

func (o *recordingObserver[P]) OnFinish(_ context.Context, runErr error) error {
	o.runErrs = append(o.runErrs, runErr)
	o.calls = append(o.calls, "OnFinish")
	return o.finErr
}

func TestDriver_Notifications(t *testing.T) {
	t.Parallel()

	o := &recordingObserver[*word.Entry]{}
	d := NewDriver[*word.Entry](word.Grammar{}, nil, o)
	tally, err := d.Run(context.Background(), xmlSource(testWords))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := tally.Entries, 2; got != want {
		t.Errorf("Entries: want %d, got %d", want, got)
	}

	want := []string{"OnStart", "BeforeEntries", "OnEntry", "OnEntry", "AfterEntries", "OnFinish"}
	if diff := cmp.Diff(want, o.calls); diff != "" {
		t.Errorf("calls (-want, +got):\n%s", diff)
	}
	if o.runErrs[0] != nil {
		t.Errorf("OnFinish runErr: want nil, got %v", o.runErrs[0])
	}
}

func TestDriver_FinishOnError(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("close failed")
	first := &recordingObserver[*word.Entry]{failOn: "OnEntry"}
	second := &recordingObserver[*word.Entry]{finErr: closeErr}
	d := NewDriver[*word.Entry](word.Grammar{}, nil, first, second)

	_, err := d.Run(context.Background(), xmlSource(testWords))
	if err == nil {
		t.Fatalf("Run: want error")
	}
	if !errors.Is(err, closeErr) {
		t.Errorf("Run: want %v, got %v", closeErr, err)
	}

	wantFirst := []string{"OnStart", "BeforeEntries", "OnEntry", "OnFinish"}
	if diff := cmp.Diff(wantFirst, first.calls); diff != "" {
		t.Errorf("first calls (-want, +got):\n%s", diff)
	}
	wantSecond := []string{"OnStart", "BeforeEntries", "OnFinish"}
	if diff := cmp.Diff(wantSecond, second.calls); diff != "" {
		t.Errorf("second calls (-want, +got):\n%s", diff)
	}
	if second.runErrs[0] == nil {
		t.Errorf("OnFinish runErr: want error")
	}
}

func TestDriver_ConversionError(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(testWords, "<pos>&n;</pos>\n", "", 1)
	open, bufs := memSinks(sink.Spec{Languages: []string{sink.All}})

	_, _, err := Words.Run(context.Background(), xmlSource(doc), open, nil)
	if !errors.Is(err, schema.ErrConversion) {
		t.Fatalf("Run: want %v, got %v", schema.ErrConversion, err)
	}
	if !errors.Is(err, word.ErrMissingPartOfSpeech) {
		t.Errorf("Run: want %v, got %v", word.ErrMissingPartOfSpeech, err)
	}
	var cerr *schema.ConversionError
	if !errors.As(err, &cerr) || cerr.EntryID != "1000001" {
		t.Errorf("Run: want conversion error for 1000001, got %v", err)
	}
	// The output is left incomplete.
	if json.Valid(bufs[0].Bytes()) {
		t.Errorf("output of a failed run is valid JSON:\n%s", bufs[0].Bytes())
	}
}

func TestDriver_ParsingError(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(testWords, "<reb>みる</reb>", "<bogus>みる</bogus>", 1)
	_, err := NewDriver[*word.Entry](word.Grammar{}, nil).Run(context.Background(), xmlSource(doc))
	if !errors.Is(err, tagstream.ErrUnexpectedEvent) {
		t.Errorf("Run: want %v, got %v", tagstream.ErrUnexpectedEvent, err)
	}
	var perr *tagstream.ParsingError
	if !errors.As(err, &perr) || perr.Position.Line == 0 {
		t.Errorf("Run: want parsing error with a position, got %v", err)
	}
}

func TestDriver_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := &recordingObserver[*word.Entry]{}
	_, err := NewDriver[*word.Entry](word.Grammar{}, nil, o).Run(ctx, xmlSource(testWords))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run: want %v, got %v", context.Canceled, err)
	}
	want := []string{"OnStart", "BeforeEntries", "OnFinish"}
	if diff := cmp.Diff(want, o.calls); diff != "" {
		t.Errorf("calls (-want, +got):\n%s", diff)
	}
}

func TestDictionary_ValidateSpecs(t *testing.T) {
	t.Parallel()

	specs := []sink.Spec{{Languages: []string{"eng"}, CommonOnly: true, Path: "out.json"}}
	if err := Words.ValidateSpecs(specs); err != nil {
		t.Errorf("Words.ValidateSpecs: %v", err)
	}
	if err := Names.ValidateSpecs(specs); !errors.Is(err, ErrCommonOnlyUnsupported) {
		t.Errorf("Names.ValidateSpecs: want %v, got %v", ErrCommonOnlyUnsupported, err)
	}
	if err := Kanji.ValidateSpecs(specs); !errors.Is(err, ErrCommonOnlyUnsupported) {
		t.Errorf("Kanji.ValidateSpecs: want %v, got %v", ErrCommonOnlyUnsupported, err)
	}
	if err := Words.ValidateSpecs([]sink.Spec{{Path: "out.json"}}); !errors.Is(err, sink.ErrNoLanguages) {
		t.Errorf("Words.ValidateSpecs: want %v, got %v", sink.ErrNoLanguages, err)
	}
}

func TestDictionary_SinkSpec(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		spec sink.Spec
		want string
	}{
		"words common": {
			spec: Words.SinkSpec("out", []string{"eng"}, true),
			want: filepath.Join("out", "jmdict-eng-common.json"),
		},
		"examples all": {
			spec: WordsWithExamples.SinkSpec("out", []string{sink.All}, false),
			want: filepath.Join("out", "jmdict-examples-all.json"),
		},
		"names sorted": {
			spec: Names.SinkSpec("", []string{"ger", "eng"}, false),
			want: "jmnedict-eng-ger.json",
		},
		"kanji": {
			spec: Kanji.SinkSpec(".", []string{"en"}, false),
			want: "kanjidic2-en.json",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.spec.Path; got != tc.want {
				t.Errorf("Path: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestReadMetadata(t *testing.T) {
	t.Parallel()

	meta, err := ReadMetadata[*word.Entry](word.Grammar{}, xmlSource(testWords))
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if got, want := meta.Date, "2024-03-15"; got != want {
		t.Errorf("Date: want %q, got %q", want, got)
	}
}

func TestLanguageName(t *testing.T) {
	t.Parallel()

	if got, want := LanguageName("en"), "English"; got != want {
		t.Errorf("LanguageName: want %q, got %q", want, got)
	}
	if got := LanguageName("not a language"); got != "" {
		t.Errorf("LanguageName: want %q, got %q", "", got)
	}
}
