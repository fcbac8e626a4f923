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
	"github.com/ianlewis/go-jmdict/schema"
)

// Character is a converted kanjidic2 character.
type Character struct {
	Literal              string                `json:"literal"`
	Codepoints           []TypedTag            `json:"codepoints"`
	Radicals             []TypedTag            `json:"radicals"`
	Misc                 Misc                  `json:"misc"`
	DictionaryReferences []DictionaryReference `json:"dictionaryReferences"`
	QueryCodes           []QueryCode           `json:"queryCodes"`
	ReadingMeaning       *ReadingMeaning       `json:"readingMeaning"`
}

// TypedTag is a value qualified by a verbatim type tag.
type TypedTag struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Misc holds miscellaneous character properties. Nil pointers mean the
// property is not given.
type Misc struct {
	Grade        *int       `json:"grade"`
	StrokeCounts []int      `json:"strokeCounts"`
	Variants     []TypedTag `json:"variants"`
	Frequency    *int       `json:"frequency"`
	RadicalNames []string   `json:"radicalNames"`
	JLPTLevel    *int       `json:"jlptLevel"`
}

// DictionaryReference is an index number in a published dictionary.
type DictionaryReference struct {
	Type      string     `json:"type"`
	Morohashi *Morohashi `json:"morohashi"`
	Value     string     `json:"value"`
}

// Morohashi is the volume and page of a Dai Kan-Wa Jiten reference.
type Morohashi struct {
	Volume int `json:"volume"`
	Page   int `json:"page"`
}

// QueryCode is a lookup code such as a SKIP code.
type QueryCode struct {
	Type                  string  `json:"type"`
	SkipMisclassification *string `json:"skipMisclassification"`
	Value                 string  `json:"value"`
}

// ReadingMeaning holds the readings and meanings of a character.
type ReadingMeaning struct {
	Groups []ReadingMeaningGroup `json:"groups"`
	Nanori []string              `json:"nanori"`
}

// ReadingMeaningGroup is a group of readings and their meanings.
type ReadingMeaningGroup struct {
	Readings []Reading `json:"readings"`
	Meanings []Meaning `json:"meanings"`
}

// Reading is a reading of a character.
type Reading struct {
	Type   string  `json:"type"`
	OnType *string `json:"onType"`
	Status *string `json:"status"`
	Value  string  `json:"value"`
}

// Meaning is a meaning in one language.
type Meaning struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// AllLanguages returns the languages of all meanings.
func (c *Character) AllLanguages() schema.Languages {
	langs := schema.Languages{}
	if c.ReadingMeaning == nil {
		return langs
	}
	for _, g := range c.ReadingMeaning.Groups {
		for _, m := range g.Meanings {
			langs.Add(m.Lang)
		}
	}
	return langs
}

// IsCommon always returns false. Characters have no common flag.
func (*Character) IsCommon() bool {
	return false
}

// Project returns a copy of the character with only meanings in the given
// languages. Groups and readings are kept.
func (c *Character) Project(langs schema.Languages) *Character {
	if langs.IsAll() || c.ReadingMeaning == nil {
		return c
	}
	out := *c
	rm := *c.ReadingMeaning
	rm.Groups = make([]ReadingMeaningGroup, 0, len(c.ReadingMeaning.Groups))
	for _, g := range c.ReadingMeaning.Groups {
		meanings := make([]Meaning, 0, len(g.Meanings))
		for _, m := range g.Meanings {
			if langs.Accepts(m.Lang) {
				meanings = append(meanings, m)
			}
		}
		g.Meanings = meanings
		rm.Groups = append(rm.Groups, g)
	}
	out.ReadingMeaning = &rm
	return &out
}
