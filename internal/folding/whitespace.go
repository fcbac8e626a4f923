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

// Package folding implements text folding used when reading free-form
// comment text from dictionary headers.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder is a [transform.Transformer] that trims leading and
// trailing whitespace and collapses every internal whitespace span, including
// line breaks, into a single ASCII space.
type WhitespaceFolder struct {
	// started is true after the first non-whitespace rune.
	started bool

	// pending is true while inside an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if w.started {
				w.pending = true
			}
			continue
		}

		need := utf8.RuneLen(c)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		w.started = true
		nSrc += size
		// RuneError may have been decoded from a single invalid byte so the
		// encoded length is used rather than size.
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}

// Whitespace returns s with whitespace folded by a [WhitespaceFolder].
func Whitespace(s string) string {
	folded, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// The folder never returns errors other than short buffer errors
		// which transform.String handles.
		return s
	}
	return folded
}
