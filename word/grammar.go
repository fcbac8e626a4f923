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
	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/tagstream"
)

const (
	rootTag = "JMdict"

	// defaultLang is the xml:lang default declared by the DTD.
	defaultLang = "eng"
)

// Grammar reads a JMdict document one entry at a time.
type Grammar struct{}

// ParseMetadata implements [jmdict.Grammar.ParseMetadata].
func (Grammar) ParseMetadata(r *tagstream.Reader) (*metadata.Metadata, error) {
	return metadata.ParseWordHeader(r)
}

// OpenRecords implements [jmdict.Grammar.OpenRecords].
func (Grammar) OpenRecords(r *tagstream.Reader) error {
	_, err := r.OpenTag(rootTag)
	return err
}

// HasNextEntry implements [jmdict.Grammar.HasNextEntry].
func (Grammar) HasNextEntry(r *tagstream.Reader) (bool, error) {
	return r.IsOpenTag("entry")
}

// NextEntry implements [jmdict.Grammar.NextEntry].
func (Grammar) NextEntry(r *tagstream.Reader) (*Entry, error) {
	var e Entry
	err := r.Element("entry", func(tagstream.StartTag) error {
		var err error
		if e.Seq, err = r.TextTag("ent_seq"); err != nil {
			return err
		}
		if e.Kanji, err = tagstream.TagList(r, "k_ele", func(tagstream.StartTag) (KanjiElement, error) {
			return parseKanjiElement(r)
		}); err != nil {
			return err
		}
		if e.Readings, err = tagstream.NonEmptyTagList(r, "r_ele", func(tagstream.StartTag) (ReadingElement, error) {
			return parseReadingElement(r)
		}); err != nil {
			return err
		}
		e.Senses, err = tagstream.NonEmptyTagList(r, "sense", func(tagstream.StartTag) (SenseElement, error) {
			return parseSense(r)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CloseRecords implements [jmdict.Grammar.CloseRecords].
func (Grammar) CloseRecords(r *tagstream.Reader) error {
	if err := r.CloseTag(rootTag); err != nil {
		return err
	}
	return r.End()
}

func parseKanjiElement(r *tagstream.Reader) (KanjiElement, error) {
	var k KanjiElement
	var err error
	if k.Text, err = r.TextTag("keb"); err != nil {
		return k, err
	}
	if k.Info, err = tagstream.TextTagList(r, "ke_inf"); err != nil {
		return k, err
	}
	k.Priorities, err = tagstream.TextTagList(r, "ke_pri")
	return k, err
}

func parseReadingElement(r *tagstream.Reader) (ReadingElement, error) {
	var re ReadingElement
	var err error
	if re.Text, err = r.TextTag("reb"); err != nil {
		return re, err
	}
	if re.NoKanji, err = r.MaybeTag("re_nokanji", nil); err != nil {
		return re, err
	}
	if re.Restrictions, err = tagstream.TextTagList(r, "re_restr"); err != nil {
		return re, err
	}
	if re.Info, err = tagstream.TextTagList(r, "re_inf"); err != nil {
		return re, err
	}
	re.Priorities, err = tagstream.TextTagList(r, "re_pri")
	return re, err
}

func parseSense(r *tagstream.Reader) (SenseElement, error) {
	var s SenseElement
	text := func(dst *[]string, name string) func(tagstream.StartTag) error {
		return func(tagstream.StartTag) error {
			t, err := r.Text("text of <" + name + ">")
			if err != nil {
				return err
			}
			*dst = append(*dst, t)
			return nil
		}
	}

	err := r.MixedTagList("children of <sense>", map[string]func(tagstream.StartTag) error{
		"stagk": text(&s.RestrictKanji, "stagk"),
		"stagr": text(&s.RestrictReading, "stagr"),
		"pos":   text(&s.PartsOfSpeech, "pos"),
		"xref":  text(&s.Xrefs, "xref"),
		"ant":   text(&s.Antonyms, "ant"),
		"field": text(&s.Fields, "field"),
		"misc":  text(&s.Misc, "misc"),
		"s_inf": text(&s.Info, "s_inf"),
		"dial":  text(&s.Dialects, "dial"),
		"lsource": func(start tagstream.StartTag) error {
			t, err := r.Text("text of <lsource>")
			if err != nil {
				return err
			}
			s.LanguageSources = append(s.LanguageSources, LanguageSourceElement{
				Lang:  start.AttrOr("xml:lang", defaultLang),
				Type:  start.AttrOr("ls_type", ""),
				Wasei: start.AttrOr("ls_wasei", ""),
				Text:  t,
			})
			return nil
		},
		"gloss": func(start tagstream.StartTag) error {
			t, err := r.Text("text of <gloss>")
			if err != nil {
				return err
			}
			s.Glosses = append(s.Glosses, GlossElement{
				Lang:   start.AttrOr("xml:lang", defaultLang),
				Gender: start.AttrOr("g_gend", ""),
				Type:   start.AttrOr("g_type", ""),
				Text:   t,
			})
			return nil
		},
		"example": func(tagstream.StartTag) error {
			ex, err := parseExample(r)
			if err != nil {
				return err
			}
			s.Examples = append(s.Examples, ex)
			return nil
		},
	})
	return s, err
}

func parseExample(r *tagstream.Reader) (ExampleElement, error) {
	var ex ExampleElement
	err := r.Element("ex_srce", func(start tagstream.StartTag) error {
		var err error
		if ex.SourceType, err = tagstream.RequireAttr(start, "exsrc_type"); err != nil {
			return err
		}
		ex.Source, err = r.Text("text of <ex_srce>")
		return err
	})
	if err != nil {
		return ex, err
	}
	if ex.Text, err = r.TextTag("ex_text"); err != nil {
		return ex, err
	}
	ex.Sentences, err = tagstream.NonEmptyTagList(r, "ex_sent", func(start tagstream.StartTag) (ExampleSentenceElement, error) {
		t, err := r.Text("text of <ex_sent>")
		return ExampleSentenceElement{
			Lang: start.AttrOr("xml:lang", defaultLang),
			Text: t,
		}, err
	})
	return ex, err
}
