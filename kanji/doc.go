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

// Package kanji reads kanjidic2, the kanji character dictionary, and
// converts its entries into [Character] records.
//
// The source grammar is:
//
//	kanjidic2:       header, character*
//	character:       literal, codepoint, radical, misc, dic_number?,
//	                 query_code?, reading_meaning?
//	misc:            grade?, stroke_count+, variant*, freq?, rad_name*, jlpt?
//	reading_meaning: rmgroup*, nanori*
//	rmgroup:         reading*, meaning*
//
// kanjidic2 declares no entities. Attribute values such as codepoint and
// reading types are used as tags verbatim.
package kanji
