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
	"errors"
	"fmt"
	"strconv"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/schema"
)

// morohashiType is the dr_type of Dai Kan-Wa Jiten references, the only
// type that may carry a volume and page.
const morohashiType = "moro"

var (
	// ErrInvalidMorohashi indicates a volume or page on a non-Morohashi
	// reference, or a Morohashi reference with only one of the two.
	ErrInvalidMorohashi = errors.New("invalid Morohashi reference")

	// ErrInvalidNumber indicates a numeric property that is not a number.
	ErrInvalidNumber = errors.New("invalid number")
)

// Convert converts a parsed character into a Character. Convert is a pure
// function of its arguments. kanjidic2 has no entities so the metadata is
// not consulted for tags.
func Convert(e *Entry, _ *metadata.Metadata) (*Character, error) {
	c, err := convert(e)
	if err != nil {
		return nil, &schema.ConversionError{EntryID: e.Literal, Err: err}
	}
	return c, nil
}

func convert(e *Entry) (*Character, error) {
	misc, err := convertMisc(e.Misc)
	if err != nil {
		return nil, err
	}

	c := &Character{
		Literal:              e.Literal,
		Codepoints:           typedTags(e.Codepoints),
		Radicals:             typedTags(e.Radicals),
		Misc:                 misc,
		DictionaryReferences: make([]DictionaryReference, 0, len(e.DictionaryReferences)),
		QueryCodes:           make([]QueryCode, 0, len(e.QueryCodes)),
	}

	for _, d := range e.DictionaryReferences {
		ref, err := convertDictionaryReference(d)
		if err != nil {
			return nil, err
		}
		c.DictionaryReferences = append(c.DictionaryReferences, ref)
	}

	for _, q := range e.QueryCodes {
		c.QueryCodes = append(c.QueryCodes, QueryCode{
			Type:                  q.Type,
			SkipMisclassification: optional(q.Misclassified),
			Value:                 q.Value,
		})
	}

	if e.ReadingMeaning != nil {
		c.ReadingMeaning = convertReadingMeaning(e.ReadingMeaning)
	}

	return c, nil
}

func typedTags(values []TypedValue) []TypedTag {
	tags := make([]TypedTag, 0, len(values))
	for _, v := range values {
		tags = append(tags, TypedTag{Type: v.Type, Value: v.Value})
	}
	return tags
}

func convertMisc(m MiscElement) (Misc, error) {
	var out Misc
	var err error
	if out.Grade, err = optionalInt("grade", m.Grade); err != nil {
		return Misc{}, err
	}
	out.StrokeCounts = make([]int, 0, len(m.StrokeCounts))
	for _, s := range m.StrokeCounts {
		n, err := parseInt("stroke count", s)
		if err != nil {
			return Misc{}, err
		}
		out.StrokeCounts = append(out.StrokeCounts, n)
	}
	out.Variants = typedTags(m.Variants)
	if out.Frequency, err = optionalInt("frequency", m.Frequency); err != nil {
		return Misc{}, err
	}
	out.RadicalNames = schema.Verbatim(m.RadicalNames)
	if out.JLPTLevel, err = optionalInt("jlpt level", m.JLPT); err != nil {
		return Misc{}, err
	}
	return out, nil
}

func convertDictionaryReference(d DictionaryReferenceElement) (DictionaryReference, error) {
	out := DictionaryReference{Type: d.Type, Value: d.Value}
	hasVolume, hasPage := d.Volume != "", d.Page != ""
	if !hasVolume && !hasPage {
		return out, nil
	}
	if d.Type != morohashiType {
		return DictionaryReference{}, fmt.Errorf("%w: volume/page on %q reference %q", ErrInvalidMorohashi, d.Type, d.Value)
	}
	if hasVolume != hasPage {
		return DictionaryReference{}, fmt.Errorf("%w: reference %q needs both volume and page", ErrInvalidMorohashi, d.Value)
	}
	volume, err := parseInt("morohashi volume", d.Volume)
	if err != nil {
		return DictionaryReference{}, err
	}
	page, err := parseInt("morohashi page", d.Page)
	if err != nil {
		return DictionaryReference{}, err
	}
	out.Morohashi = &Morohashi{Volume: volume, Page: page}
	return out, nil
}

func convertReadingMeaning(rm *ReadingMeaningElement) *ReadingMeaning {
	out := &ReadingMeaning{
		Groups: make([]ReadingMeaningGroup, 0, len(rm.Groups)),
		Nanori: schema.Verbatim(rm.Nanori),
	}
	for _, g := range rm.Groups {
		group := ReadingMeaningGroup{
			Readings: make([]Reading, 0, len(g.Readings)),
			Meanings: make([]Meaning, 0, len(g.Meanings)),
		}
		for _, r := range g.Readings {
			group.Readings = append(group.Readings, Reading{
				Type:   r.Type,
				OnType: optional(r.OnType),
				Status: optional(r.Status),
				Value:  r.Value,
			})
		}
		for _, m := range g.Meanings {
			group.Meanings = append(group.Meanings, Meaning{Lang: m.Lang, Value: m.Value})
		}
		out.Groups = append(out.Groups, group)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(what, s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := parseInt(what, s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, what, s)
	}
	return n, nil
}
