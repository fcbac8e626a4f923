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
	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/tagstream"
)

const (
	rootTag     = "JMnedict"
	defaultLang = "eng"
)

// Grammar reads a JMnedict document one entry at a time.
type Grammar struct{}

// ParseMetadata implements [jmdict.Grammar.ParseMetadata].
func (Grammar) ParseMetadata(r *tagstream.Reader) (*metadata.Metadata, error) {
	return metadata.ParseNameHeader(r)
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
		e.Translations, err = tagstream.NonEmptyTagList(r, "trans", func(tagstream.StartTag) (TranslationElement, error) {
			return parseTranslation(r)
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
	if re.Restrictions, err = tagstream.TextTagList(r, "re_restr"); err != nil {
		return re, err
	}
	if re.Info, err = tagstream.TextTagList(r, "re_inf"); err != nil {
		return re, err
	}
	re.Priorities, err = tagstream.TextTagList(r, "re_pri")
	return re, err
}

func parseTranslation(r *tagstream.Reader) (TranslationElement, error) {
	var tr TranslationElement
	var err error
	if tr.NameTypes, err = tagstream.TextTagList(r, "name_type"); err != nil {
		return tr, err
	}
	if tr.Xrefs, err = tagstream.TextTagList(r, "xref"); err != nil {
		return tr, err
	}
	tr.Details, err = tagstream.TagList(r, "trans_det", func(start tagstream.StartTag) (DetailElement, error) {
		text, err := r.Text("text of <trans_det>")
		return DetailElement{
			Lang: start.AttrOr("xml:lang", defaultLang),
			Text: text,
		}, err
	})
	return tr, err
}
