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
	"maps"
	"slices"
)

// AllLanguages is the language wildcard accepted by sinks.
const AllLanguages = "all"

// Languages is a set of language codes.
type Languages map[string]struct{}

// NewLanguages returns a set of the given codes.
func NewLanguages(codes ...string) Languages {
	l := make(Languages, len(codes))
	for _, c := range codes {
		l.Add(c)
	}
	return l
}

// Add adds a code to the set.
func (l Languages) Add(code string) {
	l[code] = struct{}{}
}

// Has reports whether the set contains the code.
func (l Languages) Has(code string) bool {
	_, ok := l[code]
	return ok
}

// IsAll reports whether the set contains the "all" wildcard.
func (l Languages) IsAll() bool {
	return l.Has(AllLanguages)
}

// Intersects reports whether the two sets share a code.
func (l Languages) Intersects(other Languages) bool {
	a, b := l, other
	if len(a) > len(b) {
		a, b = b, a
	}
	for c := range a {
		if b.Has(c) {
			return true
		}
	}
	return false
}

// Accepts reports whether text in the language code passes a filter by this
// set. The "all" wildcard accepts every language.
func (l Languages) Accepts(code string) bool {
	return l.IsAll() || l.Has(code)
}

// Sorted returns the codes in sorted order.
func (l Languages) Sorted() []string {
	return slices.Sorted(maps.Keys(l))
}
