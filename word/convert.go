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
	"errors"
	"fmt"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/schema"
)

var (
	// ErrMissingPartOfSpeech indicates a sense with no part of speech of its
	// own and no preceding sense to inherit one from.
	ErrMissingPartOfSpeech = errors.New("no part of speech to inherit")

	// ErrConflictingRestriction indicates a reading that is marked as not a
	// true reading of the kanji and also restricted to specific kanji.
	ErrConflictingRestriction = errors.New("reading has both re_nokanji and re_restr")
)

// Convert converts a parsed entry into a Word. Convert is a pure function of
// its arguments.
func Convert(e *Entry, meta *metadata.Metadata) (*Word, error) {
	c := converter{entry: e, meta: meta}
	w, err := c.word()
	if err != nil {
		return nil, c.wrap(err)
	}
	return w, nil
}

// ConvertWithExamples converts a parsed entry into a WordWithExamples.
func ConvertWithExamples(e *Entry, meta *metadata.Metadata) (*WordWithExamples, error) {
	c := converter{entry: e, meta: meta}
	w, err := c.word()
	if err != nil {
		return nil, c.wrap(err)
	}

	out := &WordWithExamples{
		ID:    w.ID,
		Kanji: w.Kanji,
		Kana:  w.Kana,
		Sense: make([]SenseWithExamples, len(w.Sense)),
	}
	for i, s := range w.Sense {
		examples, err := convertExamples(e.Senses[i].Examples)
		if err != nil {
			return nil, c.wrap(fmt.Errorf("sense %d: %w", i+1, err))
		}
		out.Sense[i] = SenseWithExamples{
			Sense:    s,
			Examples: examples,
		}
	}
	return out, nil
}

type converter struct {
	entry *Entry
	meta  *metadata.Metadata
}

func (c *converter) wrap(err error) error {
	var cerr *schema.ConversionError
	if errors.As(err, &cerr) {
		return err
	}
	return &schema.ConversionError{EntryID: c.entry.Seq, Err: err}
}

func (c *converter) word() (*Word, error) {
	w := &Word{
		ID:    c.entry.Seq,
		Kanji: make([]Kanji, 0, len(c.entry.Kanji)),
		Kana:  make([]Kana, 0, len(c.entry.Readings)),
		Sense: make([]Sense, 0, len(c.entry.Senses)),
	}

	for _, k := range c.entry.Kanji {
		tags, err := schema.Tags(c.meta, k.Info)
		if err != nil {
			return nil, fmt.Errorf("kanji %q: %w", k.Text, err)
		}
		w.Kanji = append(w.Kanji, Kanji{
			Common: schema.IsCommon(k.Priorities),
			Text:   k.Text,
			Tags:   tags,
		})
	}

	for _, r := range c.entry.Readings {
		kana, err := c.kana(r)
		if err != nil {
			return nil, fmt.Errorf("kana %q: %w", r.Text, err)
		}
		w.Kana = append(w.Kana, kana)
	}

	pos, err := resolvePartsOfSpeech(c.entry.Senses)
	if err != nil {
		return nil, err
	}

	for i, s := range c.entry.Senses {
		sense, err := c.sense(s, pos[i])
		if err != nil {
			return nil, fmt.Errorf("sense %d: %w", i+1, err)
		}
		w.Sense = append(w.Sense, sense)
	}

	return w, nil
}

func (c *converter) kana(r ReadingElement) (Kana, error) {
	if r.NoKanji && len(r.Restrictions) > 0 {
		return Kana{}, ErrConflictingRestriction
	}
	tags, err := schema.Tags(c.meta, r.Info)
	if err != nil {
		return Kana{}, err
	}
	appliesTo := schema.AppliesTo(r.Restrictions)
	if r.NoKanji {
		appliesTo = []string{}
	}
	return Kana{
		Common:         schema.IsCommon(r.Priorities),
		Text:           r.Text,
		Tags:           tags,
		AppliesToKanji: appliesTo,
	}, nil
}

// resolvePartsOfSpeech returns the part of speech codes of each sense. A
// sense without any inherits those of the closest preceding sense that has
// some.
func resolvePartsOfSpeech(senses []SenseElement) ([][]string, error) {
	resolved := make([][]string, len(senses))
	var last []string
	for i, s := range senses {
		if len(s.PartsOfSpeech) > 0 {
			last = s.PartsOfSpeech
		}
		if last == nil {
			return nil, fmt.Errorf("sense %d: %w", i+1, ErrMissingPartOfSpeech)
		}
		resolved[i] = last
	}
	return resolved, nil
}

func (c *converter) sense(s SenseElement, pos []string) (Sense, error) {
	var out Sense
	var err error
	if out.PartOfSpeech, err = schema.Tags(c.meta, pos); err != nil {
		return Sense{}, fmt.Errorf("part of speech: %w", err)
	}
	out.AppliesToKanji = schema.AppliesTo(s.RestrictKanji)
	out.AppliesToKana = schema.AppliesTo(s.RestrictReading)
	if out.Related, err = schema.Xrefs(s.Xrefs); err != nil {
		return Sense{}, fmt.Errorf("xref: %w", err)
	}
	if out.Antonym, err = schema.Xrefs(s.Antonyms); err != nil {
		return Sense{}, fmt.Errorf("antonym: %w", err)
	}
	if out.Field, err = schema.Tags(c.meta, s.Fields); err != nil {
		return Sense{}, fmt.Errorf("field: %w", err)
	}
	if out.Dialect, err = schema.Tags(c.meta, s.Dialects); err != nil {
		return Sense{}, fmt.Errorf("dialect: %w", err)
	}
	if out.Misc, err = schema.Tags(c.meta, s.Misc); err != nil {
		return Sense{}, fmt.Errorf("misc: %w", err)
	}
	out.Info = schema.Verbatim(s.Info)

	out.LanguageSource = make([]LanguageSource, 0, len(s.LanguageSources))
	for _, ls := range s.LanguageSources {
		out.LanguageSource = append(out.LanguageSource, convertLanguageSource(ls))
	}

	out.Gloss = make([]Gloss, 0, len(s.Glosses))
	for _, g := range s.Glosses {
		gloss, err := convertGloss(g)
		if err != nil {
			return Sense{}, err
		}
		out.Gloss = append(out.Gloss, gloss)
	}

	return out, nil
}

func convertLanguageSource(ls LanguageSourceElement) LanguageSource {
	out := LanguageSource{
		Lang:  ls.Lang,
		Full:  ls.Type != "part",
		Wasei: ls.Wasei == "y",
	}
	if ls.Text != "" {
		text := ls.Text
		out.Text = &text
	}
	return out
}

// convertGloss converts a gloss. A few source records have empty glosses;
// the empty text is kept as is.
func convertGloss(g GlossElement) (Gloss, error) {
	out := Gloss{
		Lang: g.Lang,
		Text: g.Text,
	}
	if g.Gender != "" {
		gender, err := schema.ParseGender(g.Gender)
		if err != nil {
			return Gloss{}, fmt.Errorf("gloss %q: %w", g.Text, err)
		}
		out.Gender = &gender
	}
	if g.Type != "" {
		t, err := schema.ParseGlossType(g.Type)
		if err != nil {
			return Gloss{}, fmt.Errorf("gloss %q: %w", g.Text, err)
		}
		out.Type = &t
	}
	return out, nil
}

func convertExamples(examples []ExampleElement) ([]Example, error) {
	out := make([]Example, 0, len(examples))
	for _, ex := range examples {
		sourceType, err := schema.ParseExampleSourceType(ex.SourceType)
		if err != nil {
			return nil, fmt.Errorf("example %q: %w", ex.Source, err)
		}
		sentences := make([]ExampleSentence, 0, len(ex.Sentences))
		for _, s := range ex.Sentences {
			sentences = append(sentences, ExampleSentence{
				Lang: s.Lang,
				Text: s.Text,
			})
		}
		out = append(out, Example{
			Source: ExampleSource{
				Type:  sourceType,
				Value: ex.Source,
			},
			Text:      ex.Text,
			Sentences: sentences,
		})
	}
	return out, nil
}
