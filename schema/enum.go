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

package schema

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Gender is the grammatical gender of a gloss.
type Gender string

const (
	// GenderMasculine is masculine gender.
	GenderMasculine Gender = "masculine"

	// GenderFeminine is feminine gender.
	GenderFeminine Gender = "feminine"

	// GenderNeuter is neuter gender.
	GenderNeuter Gender = "neuter"
)

// GlossType is the kind of a gloss.
type GlossType string

const (
	// GlossLiteral is a literal translation.
	GlossLiteral GlossType = "literal"

	// GlossFigurative is a figurative translation.
	GlossFigurative GlossType = "figurative"

	// GlossExplanation is an explanation rather than a translation.
	GlossExplanation GlossType = "explanation"

	// GlossTrademark is a trademark.
	GlossTrademark GlossType = "trademark"
)

// ExampleSourceType is the corpus an example sentence comes from.
type ExampleSourceType string

const (
	// ExampleSourceTatoeba is the Tatoeba corpus.
	ExampleSourceTatoeba ExampleSourceType = "tatoeba"
)

var (
	genders = newEnum("gender", map[Gender][]string{
		GenderMasculine: {"m", "mas", "masc", "masculine"},
		GenderFeminine:  {"f", "fem", "feminine"},
		GenderNeuter:    {"n", "neu", "neut", "neuter"},
	})

	glossTypes = newEnum("gloss type", map[GlossType][]string{
		GlossLiteral:     {"lit", "literal"},
		GlossFigurative:  {"fig", "figurative"},
		GlossExplanation: {"expl", "explanation"},
		GlossTrademark:   {"tm", "trademark"},
	})

	exampleSources = newEnum("example source", map[ExampleSourceType][]string{
		ExampleSourceTatoeba: {"tat", "tatoeba"},
	})
)

// ParseGender maps a free-text gender attribute onto a Gender.
func ParseGender(s string) (Gender, error) {
	return genders.parse(s)
}

// ParseGlossType maps a free-text gloss type attribute onto a GlossType.
func ParseGlossType(s string) (GlossType, error) {
	return glossTypes.parse(s)
}

// ParseExampleSourceType maps a free-text example source attribute onto an
// ExampleSourceType.
func ParseExampleSourceType(s string) (ExampleSourceType, error) {
	return exampleSources.parse(s)
}

// enum maps case-folded synonyms onto enumeration values.
type enum[T ~string] struct {
	name   string
	values map[string]T
}

func newEnum[T ~string](name string, synonyms map[T][]string) *enum[T] {
	e := &enum[T]{
		name:   name,
		values: map[string]T{},
	}
	for v, names := range synonyms {
		for _, n := range names {
			e.values[fold(n)] = v
		}
	}
	return e
}

func (e *enum[T]) parse(s string) (T, error) {
	v, ok := e.values[fold(s)]
	if !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, e.name, s)
	}
	return v, nil
}

// fold returns the case-folded form of s with surrounding space and a
// trailing period removed, so "Masc." matches "masc".
func fold(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	return cases.Fold().String(s)
}
