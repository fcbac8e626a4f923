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

// Entry is a parsed JMdict <entry>. Its shape follows the source elements.
type Entry struct {
	// Seq is the <ent_seq> sequence number.
	Seq string

	Kanji    []KanjiElement
	Readings []ReadingElement
	Senses   []SenseElement
}

// KanjiElement is a <k_ele> kanji spelling.
type KanjiElement struct {
	Text       string
	Info       []string
	Priorities []string
}

// ReadingElement is an <r_ele> kana reading.
type ReadingElement struct {
	Text string

	// NoKanji is set by <re_nokanji/>: the reading is not a true reading of
	// the kanji spellings.
	NoKanji bool

	// Restrictions are the <re_restr> kanji spellings the reading is limited
	// to.
	Restrictions []string

	Info       []string
	Priorities []string
}

// SenseElement is a <sense>.
type SenseElement struct {
	RestrictKanji   []string
	RestrictReading []string
	PartsOfSpeech   []string
	Xrefs           []string
	Antonyms        []string
	Fields          []string
	Misc            []string
	Info            []string
	LanguageSources []LanguageSourceElement
	Dialects        []string
	Glosses         []GlossElement
	Examples        []ExampleElement
}

// LanguageSourceElement is an <lsource> loanword source.
type LanguageSourceElement struct {
	Lang string

	// Type is the raw ls_type attribute, "" when absent.
	Type string

	// Wasei is the raw ls_wasei attribute, "" when absent.
	Wasei string

	Text string
}

// GlossElement is a <gloss>. Gender and Type hold the raw attribute values.
type GlossElement struct {
	Lang   string
	Gender string
	Type   string
	Text   string
}

// ExampleElement is an <example> sentence pair.
type ExampleElement struct {
	SourceType string
	Source     string
	Text       string
	Sentences  []ExampleSentenceElement
}

// ExampleSentenceElement is an <ex_sent>.
type ExampleSentenceElement struct {
	Lang string
	Text string
}
