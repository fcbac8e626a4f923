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

// Entry is a parsed kanjidic2 <character>.
type Entry struct {
	Literal              string
	Codepoints           []TypedValue
	Radicals             []TypedValue
	Misc                 MiscElement
	DictionaryReferences []DictionaryReferenceElement
	QueryCodes           []QueryCodeElement

	// ReadingMeaning is nil when <reading_meaning> is absent.
	ReadingMeaning *ReadingMeaningElement
}

// TypedValue is an element whose text is qualified by a type attribute,
// e.g. <cp_value cp_type="ucs">4e9c</cp_value>.
type TypedValue struct {
	Type  string
	Value string
}

// MiscElement is <misc>. Optional text elements are "" when absent.
type MiscElement struct {
	Grade        string
	StrokeCounts []string
	Variants     []TypedValue
	Frequency    string
	RadicalNames []string
	JLPT         string
}

// DictionaryReferenceElement is a <dic_ref>. Volume and Page are the raw
// m_vol and m_page attributes.
type DictionaryReferenceElement struct {
	Type   string
	Volume string
	Page   string
	Value  string
}

// QueryCodeElement is a <q_code>.
type QueryCodeElement struct {
	Type          string
	Misclassified string
	Value         string
}

// ReadingMeaningElement is <reading_meaning>.
type ReadingMeaningElement struct {
	Groups []GroupElement
	Nanori []string
}

// GroupElement is an <rmgroup>.
type GroupElement struct {
	Readings []ReadingElement
	Meanings []MeaningElement
}

// ReadingElement is a <reading>.
type ReadingElement struct {
	Type   string
	OnType string
	Status string
	Value  string
}

// MeaningElement is a <meaning>.
type MeaningElement struct {
	Lang  string
	Value string
}
