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
	"fmt"

	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/schema"
)

// Convert converts a parsed entry into a Name. Convert is a pure function of
// its arguments.
func Convert(e *Entry, meta *metadata.Metadata) (*Name, error) {
	n, err := convert(e, meta)
	if err != nil {
		return nil, &schema.ConversionError{EntryID: e.Seq, Err: err}
	}
	return n, nil
}

func convert(e *Entry, meta *metadata.Metadata) (*Name, error) {
	n := &Name{
		ID:          e.Seq,
		Kanji:       make([]Kanji, 0, len(e.Kanji)),
		Kana:        make([]Kana, 0, len(e.Readings)),
		Translation: make([]Translation, 0, len(e.Translations)),
	}

	for _, k := range e.Kanji {
		tags, err := schema.Tags(meta, k.Info)
		if err != nil {
			return nil, fmt.Errorf("kanji %q: %w", k.Text, err)
		}
		n.Kanji = append(n.Kanji, Kanji{Text: k.Text, Tags: tags})
	}

	for _, r := range e.Readings {
		tags, err := schema.Tags(meta, r.Info)
		if err != nil {
			return nil, fmt.Errorf("kana %q: %w", r.Text, err)
		}
		n.Kana = append(n.Kana, Kana{
			Text:           r.Text,
			Tags:           tags,
			AppliesToKanji: schema.AppliesTo(r.Restrictions),
		})
	}

	for i, tr := range e.Translations {
		types, err := schema.Tags(meta, tr.NameTypes)
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", i+1, err)
		}
		related, err := schema.Xrefs(tr.Xrefs)
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", i+1, err)
		}
		texts := make([]TranslationText, 0, len(tr.Details))
		for _, d := range tr.Details {
			texts = append(texts, TranslationText{Lang: d.Lang, Text: d.Text})
		}
		n.Translation = append(n.Translation, Translation{
			Type:        types,
			Related:     related,
			Translation: texts,
		})
	}

	return n, nil
}
