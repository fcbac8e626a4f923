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
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict/metadata"
)

func TestIsCommon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priorities []string
		expected   bool
	}{
		{priorities: nil, expected: false},
		{priorities: []string{"news2", "nf12"}, expected: false},
		{priorities: []string{"ichi2", "gai2"}, expected: false},
		{priorities: []string{"ichi1"}, expected: true},
		{priorities: []string{"nf01", "news1"}, expected: true},
		{priorities: []string{"spec1"}, expected: true},
		{priorities: []string{"spec2"}, expected: true},
		{priorities: []string{"gai1"}, expected: true},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.priorities), func(t *testing.T) {
			t.Parallel()

			if got := IsCommon(test.priorities); got != test.expected {
				t.Errorf("IsCommon(%v) = %v, want %v", test.priorities, got, test.expected)
			}
		})
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	meta := metadata.New(nil, map[string]string{"n": "noun", "v5uru": "Godan verb"}, "2024-01-01")

	tags, err := Tags(meta, []string{"v5uru", "n"})
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if diff := cmp.Diff([]string{"v5uru", "n"}, tags); diff != "" {
		t.Errorf("Tags (-want, +got):\n%s", diff)
	}

	tags, err = Tags(meta, nil)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if tags == nil || len(tags) != 0 {
		t.Errorf("Tags(nil) = %#v, want empty non-nil", tags)
	}

	if _, err := Tags(meta, []string{"adj-i"}); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("unexpected error; want: %v, got: %v", ErrUnknownTag, err)
	}
}

func TestAppliesTo(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{"*"}, AppliesTo(nil)); diff != "" {
		t.Errorf("AppliesTo(nil) (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"彼"}, AppliesTo([]string{"彼"})); diff != "" {
		t.Errorf("AppliesTo (-want, +got):\n%s", diff)
	}
}

func TestParseGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Gender
		err      error
	}{
		{input: "m", expected: GenderMasculine},
		{input: "mas", expected: GenderMasculine},
		{input: "Masculine", expected: GenderMasculine},
		{input: "MASC.", expected: GenderMasculine},
		{input: "fem", expected: GenderFeminine},
		{input: "f", expected: GenderFeminine},
		{input: "neut", expected: GenderNeuter},
		{input: "plural", err: ErrUnknownEnumValue},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGender(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.err, err)
			}
			if got != test.expected {
				t.Errorf("ParseGender(%q) = %q, want %q", test.input, got, test.expected)
			}
		})
	}
}

func TestParseGlossType(t *testing.T) {
	t.Parallel()

	tests := map[string]GlossType{
		"lit":         GlossLiteral,
		"fig":         GlossFigurative,
		"expl":        GlossExplanation,
		"tm":          GlossTrademark,
		"Explanation": GlossExplanation,
	}
	for input, expected := range tests {
		got, err := ParseGlossType(input)
		if err != nil {
			t.Errorf("ParseGlossType(%q): %v", input, err)
			continue
		}
		if got != expected {
			t.Errorf("ParseGlossType(%q) = %q, want %q", input, got, expected)
		}
	}

	if _, err := ParseGlossType("poetic"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("unexpected error; want: %v, got: %v", ErrUnknownEnumValue, err)
	}
	if got, err := ParseExampleSourceType("tat"); err != nil || got != ExampleSourceTatoeba {
		t.Errorf("ParseExampleSourceType(tat) = %q, %v", got, err)
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	eng := NewLanguages("eng")
	all := NewLanguages(AllLanguages)
	entry := NewLanguages("ger", "eng")

	if !eng.Intersects(entry) {
		t.Errorf("expected %v to intersect %v", eng.Sorted(), entry.Sorted())
	}
	if NewLanguages("fre").Intersects(entry) {
		t.Errorf("did not expect fre to intersect %v", entry.Sorted())
	}
	if !all.Accepts("hun") || eng.Accepts("hun") {
		t.Errorf("unexpected Accepts results")
	}
	if diff := cmp.Diff([]string{"eng", "ger"}, entry.Sorted()); diff != "" {
		t.Errorf("Sorted (-want, +got):\n%s", diff)
	}
}

func TestConversionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", &ConversionError{EntryID: "1000", Err: cause})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("expected errors.Is(err, ErrConversion)")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is(err, cause)")
	}
	var cerr *ConversionError
	if !errors.As(err, &cerr) || cerr.EntryID != "1000" {
		t.Errorf("errors.As = %v", cerr)
	}
}
