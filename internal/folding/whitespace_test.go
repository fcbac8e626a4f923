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

package folding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "date comment",
			input:    " JMdict created: 2024-03-15 ",
			expected: "JMdict created: 2024-03-15",
		},
		{
			name:     "multi-line revision comment",
			input:    " Rev 1.09\n\tAdded the g_type attribute to gloss.\n",
			expected: "Rev 1.09 Added the g_type attribute to gloss.",
		},
		{
			name:     "japanese text",
			input:    "　日本語　 テキスト ",
			expected: "日本語 テキスト",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Whitespace(test.input)); diff != "" {
				t.Errorf("Whitespace (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceFolder_Reader(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("word  \n ", 2048)
	r := transform.NewReader(strings.NewReader(input), &WhitespaceFolder{})
	var b strings.Builder
	if _, err := b.ReadFrom(r); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	expected := strings.TrimSuffix(strings.Repeat("word ", 2048), " ")
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("folded (-want, +got):\n%s", diff)
	}
}
