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

// Package word reads JMdict, the Japanese-English word dictionary, and
// converts its entries into [Word] and [WordWithExamples] records.
//
// The source grammar is:
//
//	JMdict:  entry*
//	entry:   ent_seq, k_ele*, r_ele+, sense+
//	k_ele:   keb, ke_inf*, ke_pri*
//	r_ele:   reb, re_nokanji?, re_restr*, re_inf*, re_pri*
//	sense:   (stagk | stagr | pos | xref | ant | field | misc | s_inf |
//	          lsource | dial | gloss | example)*
//	example: ex_srce, ex_text, ex_sent+
package word
