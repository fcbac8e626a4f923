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

package word

import (
	"github.com/ianlewis/go-jmdict/schema"
)

// Word is a converted JMdict entry.
type Word struct {
	ID    string  `json:"id"`
	Kanji []Kanji `json:"kanji"`
	Kana  []Kana  `json:"kana"`
	Sense []Sense `json:"sense"`
}

// Kanji is a kanji spelling.
type Kanji struct {
	Common bool     `json:"common"`
	Text   string   `json:"text"`
	Tags   []string `json:"tags"`
}

// Kana is a kana reading. AppliesToKanji is ["*"] for all spellings and
// empty for readings that are not true readings of the kanji.
type Kana struct {
	Common         bool     `json:"common"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	AppliesToKanji []string `json:"appliesToKanji"`
}

// Sense is a converted sense.
type Sense struct {
	PartOfSpeech   []string         `json:"partOfSpeech"`
	AppliesToKanji []string         `json:"appliesToKanji"`
	AppliesToKana  []string         `json:"appliesToKana"`
	Related        []schema.Xref    `json:"related"`
	Antonym        []schema.Xref    `json:"antonym"`
	Field          []string         `json:"field"`
	Dialect        []string         `json:"dialect"`
	Misc           []string         `json:"misc"`
	Info           []string         `json:"info"`
	LanguageSource []LanguageSource `json:"languageSource"`
	Gloss          []Gloss          `json:"gloss"`
}

// LanguageSource is the source language of a loanword. Text is nil when the
// source word is not given.
type LanguageSource struct {
	Lang  string  `json:"lang"`
	Full  bool    `json:"full"`
	Wasei bool    `json:"wasei"`
	Text  *string `json:"text"`
}

// Gloss is a translation of a sense.
type Gloss struct {
	Lang   string            `json:"lang"`
	Gender *schema.Gender    `json:"gender"`
	Type   *schema.GlossType `json:"type"`
	Text   string            `json:"text"`
}

// WordWithExamples is a Word whose senses carry example sentences.
type WordWithExamples struct {
	ID    string              `json:"id"`
	Kanji []Kanji             `json:"kanji"`
	Kana  []Kana              `json:"kana"`
	Sense []SenseWithExamples `json:"sense"`
}

// SenseWithExamples is a Sense with example sentences.
type SenseWithExamples struct {
	Sense
	Examples []Example `json:"examples"`
}

// Example is an example sentence for a sense.
type Example struct {
	Source    ExampleSource     `json:"source"`
	Text      string            `json:"text"`
	Sentences []ExampleSentence `json:"sentences"`
}

// ExampleSource identifies the corpus record of an example.
type ExampleSource struct {
	Type  schema.ExampleSourceType `json:"type"`
	Value string                   `json:"value"`
}

// ExampleSentence is an example sentence in one language.
type ExampleSentence struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// AllLanguages returns the languages of all glosses.
func (w *Word) AllLanguages() schema.Languages {
	langs := schema.Languages{}
	for i := range w.Sense {
		w.Sense[i].addLanguages(langs)
	}
	return langs
}

// IsCommon reports whether any spelling or reading is common.
func (w *Word) IsCommon() bool {
	return isCommon(w.Kanji, w.Kana)
}

// Project returns a copy of the word with only glosses in the given
// languages. Senses left without glosses are dropped.
func (w *Word) Project(langs schema.Languages) *Word {
	if langs.IsAll() {
		return w
	}
	out := *w
	out.Sense = make([]Sense, 0, len(w.Sense))
	for _, s := range w.Sense {
		if p, ok := s.project(langs); ok {
			out.Sense = append(out.Sense, p)
		}
	}
	return &out
}

// AllLanguages returns the languages of all glosses.
func (w *WordWithExamples) AllLanguages() schema.Languages {
	langs := schema.Languages{}
	for i := range w.Sense {
		w.Sense[i].addLanguages(langs)
	}
	return langs
}

// IsCommon reports whether any spelling or reading is common.
func (w *WordWithExamples) IsCommon() bool {
	return isCommon(w.Kanji, w.Kana)
}

// Project returns a copy of the word with only glosses in the given
// languages. Senses left without glosses are dropped along with their
// examples.
func (w *WordWithExamples) Project(langs schema.Languages) *WordWithExamples {
	if langs.IsAll() {
		return w
	}
	out := *w
	out.Sense = make([]SenseWithExamples, 0, len(w.Sense))
	for _, s := range w.Sense {
		if p, ok := s.Sense.project(langs); ok {
			out.Sense = append(out.Sense, SenseWithExamples{
				Sense:    p,
				Examples: s.Examples,
			})
		}
	}
	return &out
}

func (s *Sense) addLanguages(langs schema.Languages) {
	for _, g := range s.Gloss {
		langs.Add(g.Lang)
	}
}

func (s Sense) project(langs schema.Languages) (Sense, bool) {
	glosses := make([]Gloss, 0, len(s.Gloss))
	for _, g := range s.Gloss {
		if langs.Accepts(g.Lang) {
			glosses = append(glosses, g)
		}
	}
	if len(glosses) == 0 {
		return Sense{}, false
	}
	s.Gloss = glosses
	return s, true
}

func isCommon(kanji []Kanji, kana []Kana) bool {
	for _, k := range kanji {
		if k.Common {
			return true
		}
	}
	for _, k := range kana {
		if k.Common {
			return true
		}
	}
	return false
}
