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

package kanji

import (
	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/tagstream"
)

const (
	rootTag = "kanjidic2"

	// defaultLang is the m_lang default declared by the DTD.
	defaultLang = "en"
)

// Grammar reads a kanjidic2 document one character at a time.
type Grammar struct{}

// ParseMetadata implements [jmdict.Grammar.ParseMetadata]. The header is
// inside the root element so the root element is opened here.
func (Grammar) ParseMetadata(r *tagstream.Reader) (*metadata.Metadata, error) {
	return metadata.ParseKanjiHeader(r)
}

// OpenRecords implements [jmdict.Grammar.OpenRecords]. The root element was
// already opened while reading the header.
func (Grammar) OpenRecords(*tagstream.Reader) error {
	return nil
}

// HasNextEntry implements [jmdict.Grammar.HasNextEntry].
func (Grammar) HasNextEntry(r *tagstream.Reader) (bool, error) {
	return r.IsOpenTag("character")
}

// NextEntry implements [jmdict.Grammar.NextEntry].
func (Grammar) NextEntry(r *tagstream.Reader) (*Entry, error) {
	var e Entry
	err := r.Element("character", func(tagstream.StartTag) error {
		var err error
		if e.Literal, err = r.TextTag("literal"); err != nil {
			return err
		}
		if err = r.Element("codepoint", func(tagstream.StartTag) error {
			e.Codepoints, err = typedValues(r, "cp_value", "cp_type")
			return err
		}); err != nil {
			return err
		}
		if err = r.Element("radical", func(tagstream.StartTag) error {
			e.Radicals, err = typedValues(r, "rad_value", "rad_type")
			return err
		}); err != nil {
			return err
		}
		if err = r.Element("misc", func(tagstream.StartTag) error {
			e.Misc, err = parseMisc(r)
			return err
		}); err != nil {
			return err
		}
		if _, err = r.MaybeTag("dic_number", func(tagstream.StartTag) error {
			e.DictionaryReferences, err = tagstream.NonEmptyTagList(r, "dic_ref", func(start tagstream.StartTag) (DictionaryReferenceElement, error) {
				return parseDictionaryReference(r, start)
			})
			return err
		}); err != nil {
			return err
		}
		if _, err = r.MaybeTag("query_code", func(tagstream.StartTag) error {
			e.QueryCodes, err = tagstream.NonEmptyTagList(r, "q_code", func(start tagstream.StartTag) (QueryCodeElement, error) {
				return parseQueryCode(r, start)
			})
			return err
		}); err != nil {
			return err
		}
		_, err = r.MaybeTag("reading_meaning", func(tagstream.StartTag) error {
			rm, err := parseReadingMeaning(r)
			e.ReadingMeaning = rm
			return err
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

// typedValues reads one or more elements whose type is given by a required
// attribute.
func typedValues(r *tagstream.Reader, name, attr string) ([]TypedValue, error) {
	return tagstream.NonEmptyTagList(r, name, func(start tagstream.StartTag) (TypedValue, error) {
		return typedValue(r, start, attr)
	})
}

func typedValue(r *tagstream.Reader, start tagstream.StartTag, attr string) (TypedValue, error) {
	t, err := tagstream.RequireAttr(start, attr)
	if err != nil {
		return TypedValue{}, err
	}
	v, err := r.Text("text of <" + start.Name + ">")
	return TypedValue{Type: t, Value: v}, err
}

func parseMisc(r *tagstream.Reader) (MiscElement, error) {
	var m MiscElement
	var err error
	if m.Grade, _, err = r.MaybeTextTag("grade"); err != nil {
		return m, err
	}
	if m.StrokeCounts, err = tagstream.NonEmptyTagList(r, "stroke_count", func(tagstream.StartTag) (string, error) {
		return r.Text("text of <stroke_count>")
	}); err != nil {
		return m, err
	}
	if m.Variants, err = tagstream.TagList(r, "variant", func(start tagstream.StartTag) (TypedValue, error) {
		return typedValue(r, start, "var_type")
	}); err != nil {
		return m, err
	}
	if m.Frequency, _, err = r.MaybeTextTag("freq"); err != nil {
		return m, err
	}
	if m.RadicalNames, err = tagstream.TextTagList(r, "rad_name"); err != nil {
		return m, err
	}
	m.JLPT, _, err = r.MaybeTextTag("jlpt")
	return m, err
}

func parseDictionaryReference(r *tagstream.Reader, start tagstream.StartTag) (DictionaryReferenceElement, error) {
	t, err := tagstream.RequireAttr(start, "dr_type")
	if err != nil {
		return DictionaryReferenceElement{}, err
	}
	v, err := r.Text("text of <dic_ref>")
	return DictionaryReferenceElement{
		Type:   t,
		Volume: start.AttrOr("m_vol", ""),
		Page:   start.AttrOr("m_page", ""),
		Value:  v,
	}, err
}

func parseQueryCode(r *tagstream.Reader, start tagstream.StartTag) (QueryCodeElement, error) {
	t, err := tagstream.RequireAttr(start, "qc_type")
	if err != nil {
		return QueryCodeElement{}, err
	}
	v, err := r.Text("text of <q_code>")
	return QueryCodeElement{
		Type:          t,
		Misclassified: start.AttrOr("skip_misclass", ""),
		Value:         v,
	}, err
}

func parseReadingMeaning(r *tagstream.Reader) (*ReadingMeaningElement, error) {
	var rm ReadingMeaningElement
	var err error
	if rm.Groups, err = tagstream.TagList(r, "rmgroup", func(tagstream.StartTag) (GroupElement, error) {
		return parseGroup(r)
	}); err != nil {
		return nil, err
	}
	if rm.Nanori, err = tagstream.TextTagList(r, "nanori"); err != nil {
		return nil, err
	}
	return &rm, nil
}

func parseGroup(r *tagstream.Reader) (GroupElement, error) {
	var g GroupElement
	var err error
	if g.Readings, err = tagstream.TagList(r, "reading", func(start tagstream.StartTag) (ReadingElement, error) {
		t, err := tagstream.RequireAttr(start, "r_type")
		if err != nil {
			return ReadingElement{}, err
		}
		v, err := r.Text("text of <reading>")
		return ReadingElement{
			Type:   t,
			OnType: start.AttrOr("on_type", ""),
			Status: start.AttrOr("r_status", ""),
			Value:  v,
		}, err
	}); err != nil {
		return g, err
	}
	g.Meanings, err = tagstream.TagList(r, "meaning", func(start tagstream.StartTag) (MeaningElement, error) {
		v, err := r.Text("text of <meaning>")
		return MeaningElement{
			Lang:  start.AttrOr("m_lang", defaultLang),
			Value: v,
		}, err
	})
	return g, err
}
