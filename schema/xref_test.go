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
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestXref_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xref Xref
		json string
	}{
		{
			name: "headword",
			xref: Xref{Headword: "丸"},
			json: `["丸"]`,
		},
		{
			name: "headword and reading",
			xref: Xref{Headword: "丸", Reading: "まる"},
			json: `["丸","まる"]`,
		},
		{
			name: "headword and sense",
			xref: Xref{Headword: "丸", Sense: 2},
			json: `["丸",2]`,
		},
		{
			name: "headword, reading and sense",
			xref: Xref{Headword: "丸", Reading: "まる", Sense: 1},
			json: `["丸","まる",1]`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := json.Marshal(test.xref)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if diff := cmp.Diff(test.json, string(b)); diff != "" {
				t.Errorf("Marshal (-want, +got):\n%s", diff)
			}

			var got Xref
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(test.xref, got); diff != "" {
				t.Errorf("Unmarshal (-want, +got):\n%s", diff)
			}

			parsed, err := ParseXref(test.xref.String())
			if err != nil {
				t.Fatalf("ParseXref: %v", err)
			}
			if diff := cmp.Diff(test.xref, parsed); diff != "" {
				t.Errorf("ParseXref (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestXref_UnmarshalInvalid(t *testing.T) {
	t.Parallel()

	tests := []string{
		`[]`,
		`["丸","まる",1,2]`,
		`["丸","まる","まる"]`,
		`[1]`,
		`["丸",0]`,
		`["丸",1,"まる"]`,
		`"丸"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			var x Xref
			err := json.Unmarshal([]byte(input), &x)
			if !errors.Is(err, ErrInvalidXref) {
				t.Fatalf("unexpected error; want: %v, got: %v", ErrInvalidXref, err)
			}
		})
	}
}

func TestParseXref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Xref
		err      error
	}{
		{input: "彼", expected: Xref{Headword: "彼"}},
		{input: "彼・かれ", expected: Xref{Headword: "彼", Reading: "かれ"}},
		{input: "彼・3", expected: Xref{Headword: "彼", Sense: 3}},
		{input: "彼・かれ・3", expected: Xref{Headword: "彼", Reading: "かれ", Sense: 3}},
		{input: "", err: ErrInvalidXref},
		{input: "a・b・c", err: ErrInvalidXref},
		{input: "彼・0", err: ErrInvalidXref},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseXref(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("ParseXref (-want, +got):\n%s", diff)
			}
		})
	}
}
