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

package name

import (
	"github.com/ianlewis/go-jmdict/schema"
)

// Name is a converted JMnedict entry.
type Name struct {
	ID          string        `json:"id"`
	Kanji       []Kanji       `json:"kanji"`
	Kana        []Kana        `json:"kana"`
	Translation []Translation `json:"translation"`
}

// Kanji is a kanji spelling of a name.
type Kanji struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// Kana is a kana reading of a name.
type Kana struct {
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	AppliesToKanji []string `json:"appliesToKanji"`
}

// Translation is a group of translations sharing name types.
type Translation struct {
	Type        []string          `json:"type"`
	Related     []schema.Xref     `json:"related"`
	Translation []TranslationText `json:"translation"`
}

// TranslationText is a translation in one language.
type TranslationText struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// AllLanguages returns the languages of all translation texts.
func (n *Name) AllLanguages() schema.Languages {
	langs := schema.Languages{}
	for _, tr := range n.Translation {
		for _, t := range tr.Translation {
			langs.Add(t.Lang)
		}
	}
	return langs
}

// IsCommon always returns false. JMnedict has no notion of common names.
func (*Name) IsCommon() bool {
	return false
}

// Project returns a copy of the name with only translation texts in the
// given languages. Groups left without texts are dropped.
func (n *Name) Project(langs schema.Languages) *Name {
	if langs.IsAll() {
		return n
	}
	out := *n
	out.Translation = make([]Translation, 0, len(n.Translation))
	for _, tr := range n.Translation {
		texts := make([]TranslationText, 0, len(tr.Translation))
		for _, t := range tr.Translation {
			if langs.Accepts(t.Lang) {
				texts = append(texts, t)
			}
		}
		if len(texts) == 0 {
			continue
		}
		tr.Translation = texts
		out.Translation = append(out.Translation, tr)
	}
	return &out
}
