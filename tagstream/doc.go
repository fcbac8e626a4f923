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

// Package tagstream implements a pull reader over a flat stream of XML-like
// events.
//
// A [Source] produces events: start tags, end tags, character data, comments
// and the DTD declaration. [XMLSource] is a Source backed by [encoding/xml].
// [Reader] wraps a Source and provides the primitives that entry grammars are
// built from:
//  1. OpenTag / CloseTag assert and consume a tag with an exact name.
//  2. Text / TextTag read character data.
//  3. MaybeTag reads an optional tag.
//  4. TagList / NonEmptyTagList read a run of same-named sibling tags.
//  5. MixedTagList reads a run of sibling tags, dispatching on the tag name.
//
// Whitespace-only character data and comments between tags are skipped by
// every primitive except Next and PeekRaw.
package tagstream
