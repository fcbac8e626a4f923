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

package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict/tagstream"
)

func newReader(doc string) *tagstream.Reader {
	return tagstream.NewReader(tagstream.NewXMLSource(strings.NewReader(doc)))
}

func TestParseWordHeader(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- Rev 1.09
	Added the g_type attribute to gloss.
-->
<!-- Rev 1.08 -->
<!DOCTYPE JMdict [
<!ELEMENT JMdict (entry*)>
<!ENTITY v5uru "Godan verb - Uru old class verb (old form of Eru)">
<!ENTITY n "noun (common) (futsuumeishi)">
<!ENTITY adj-t "&#39;taru&#39; adjective">
]>
<!-- JMdict created: 2024-03-15 -->
<JMdict>
</JMdict>
`
	r := newReader(doc)
	m, err := ParseWordHeader(r)
	if err != nil {
		t.Fatalf("ParseWordHeader: %v", err)
	}

	want := &Metadata{
		Revisions: []string{"1.09", "1.08"},
		Entities: map[string]string{
			"v5uru": "Godan verb - Uru old class verb (old form of Eru)",
			"n":     "noun (common) (futsuumeishi)",
			"adj-t": "'taru' adjective",
		},
		Date: "2024-03-15",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ParseWordHeader (-want, +got):\n%s", diff)
	}

	// The reader is left before the root element.
	if ok, err := r.IsOpenTag("JMdict"); err != nil || !ok {
		t.Errorf("IsOpenTag(JMdict) = %v, %v", ok, err)
	}
}

func TestParseNameHeader(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMnedict [
<!-- Rev 1.01
     Initial release -->
<!-- Rev 1.02 added name types -->
<!ELEMENT JMnedict (entry*)>
<!ENTITY surname "family or surname">
<!ENTITY place "place name">
]>
<!-- JMnedict created: 2024-03-14 -->
<JMnedict></JMnedict>
`
	m, err := ParseNameHeader(newReader(doc))
	if err != nil {
		t.Fatalf("ParseNameHeader: %v", err)
	}

	want := &Metadata{
		Revisions: []string{"1.01", "1.02"},
		Entities: map[string]string{
			"surname": "family or surname",
			"place":   "place name",
		},
		Date: "2024-03-14",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ParseNameHeader (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"place", "surname"}, m.EntityNames()); diff != "" {
		t.Errorf("EntityNames (-want, +got):\n%s", diff)
	}
}

func TestParseKanjiHeader(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE kanjidic2 [
<!ELEMENT kanjidic2 (header,character*)>
]>
<kanjidic2>
<header>
<file_version>4</file_version>
<database_version>2024-075</database_version>
<date_of_creation>2024-03-15</date_of_creation>
</header>
</kanjidic2>
`
	m, err := ParseKanjiHeader(newReader(doc))
	if err != nil {
		t.Fatalf("ParseKanjiHeader: %v", err)
	}

	want := &Metadata{
		Revisions: []string{"4", "2024-075"},
		Entities:  map[string]string{},
		Date:      "2024-03-15",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ParseKanjiHeader (-want, +got):\n%s", diff)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		parse func(*tagstream.Reader) (*Metadata, error)
		want  error
	}{
		{
			name:  "missing DTD",
			doc:   `<!-- JMnedict created: 2024-03-14 --><JMnedict/>`,
			parse: ParseNameHeader,
			want:  ErrMissingDTD,
		},
		{
			name: "missing date comment",
			doc: `<!DOCTYPE JMdict [
<!ENTITY n "noun">
]>
<JMdict/>`,
			parse: ParseWordHeader,
			want:  ErrMissingDate,
		},
		{
			name: "date comment without colon",
			doc: `<!DOCTYPE JMdict [
<!ENTITY n "noun">
]>
<!-- created on a sunny day -->
<JMdict/>`,
			parse: ParseWordHeader,
			want:  ErrMissingDate,
		},
		{
			name:  "element before DTD",
			doc:   `<JMdict/>`,
			parse: ParseWordHeader,
			want:  tagstream.ErrUnexpectedEvent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := test.parse(newReader(test.doc))
			if !errors.Is(err, test.want) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.want, err)
			}
		})
	}
}

func TestNew_Copies(t *testing.T) {
	t.Parallel()

	revisions := []string{"1.0"}
	entities := map[string]string{"n": "noun"}
	m := New(revisions, entities, "2024-01-01")

	revisions[0] = "changed"
	entities["n"] = "changed"

	if got := m.Revisions[0]; got != "1.0" {
		t.Errorf("Revisions[0] = %q, want %q", got, "1.0")
	}
	if got, _ := m.Entity("n"); got != "noun" {
		t.Errorf("Entity(n) = %q, want %q", got, "noun")
	}
}
