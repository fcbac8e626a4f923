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

package jmdict

import (
	"maps"
	"slices"

	"github.com/ianlewis/go-jmdict/schema"
)

// Tally accumulates per-run record counts. It is passed to every
// [Observer.OnEntry] call.
type Tally struct {
	// Entries is the number of entries read.
	Entries int

	// Converted is the number of records converted.
	Converted int

	// Common is the number of converted records that are common.
	Common int

	// Languages maps language codes to the number of converted records
	// with a translation in that language.
	Languages map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{
		Languages: map[string]int{},
	}
}

// Add counts a converted record.
func (t *Tally) Add(langs schema.Languages, common bool) {
	t.Converted++
	if common {
		t.Common++
	}
	for l := range langs {
		t.Languages[l]++
	}
}

// LanguageCodes returns the tallied language codes in sorted order.
func (t *Tally) LanguageCodes() []string {
	return slices.Sorted(maps.Keys(t.Languages))
}
