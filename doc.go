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

// Package jmdict converts the JMdict family of Japanese dictionary releases
// into normalized JSON in a single forward pass.
//
// Three releases are supported:
//  1. JMdict, the Japanese-English word dictionary. See package word.
//  2. JMnedict, the Japanese proper name dictionary. See package name.
//  3. kanjidic2, the kanji character dictionary. See package kanji.
//
// A [Driver] reads the release metadata and then one entry at a time,
// handing each parsed entry to a list of [Observer] values. A
// [ConvertObserver] converts entries and writes them to any number of
// differently filtered JSON outputs. A [ReportObserver] prints the metadata
// and a per-language tally of the records.
//
// More info on the dictionary formats can be found at this URL:
// https://www.edrdg.org/jmdict/j_jmdict.html
package jmdict
