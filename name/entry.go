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

// Entry is a parsed JMnedict <entry>.
type Entry struct {
	Seq          string
	Kanji        []KanjiElement
	Readings     []ReadingElement
	Translations []TranslationElement
}

// KanjiElement is a <k_ele>.
type KanjiElement struct {
	Text       string
	Info       []string
	Priorities []string
}

// ReadingElement is an <r_ele>.
type ReadingElement struct {
	Text         string
	Restrictions []string
	Info         []string
	Priorities   []string
}

// TranslationElement is a <trans> group.
type TranslationElement struct {
	NameTypes []string
	Xrefs     []string
	Details   []DetailElement
}

// DetailElement is a <trans_det> translation text.
type DetailElement struct {
	Lang string
	Text string
}
