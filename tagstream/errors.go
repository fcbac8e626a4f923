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

package tagstream

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedEvent indicates that the stream did not match the grammar.
	ErrUnexpectedEvent = errors.New("unexpected event")

	// ErrEmptyChildrenList indicates that a required list of child tags was
	// empty.
	ErrEmptyChildrenList = errors.New("empty children list")

	// ErrMissingAttribute indicates that a required attribute was not present.
	ErrMissingAttribute = errors.New("missing attribute")
)

// TokenizationError is returned when the source document is not well-formed.
type TokenizationError struct {
	Position
	Err error
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("%v: malformed source: %v", e.Position, e.Err)
}

func (e *TokenizationError) Unwrap() error {
	return e.Err
}

// ParsingError is returned when the event stream does not match the grammar
// being read. Event is nil when the end of the document was reached.
type ParsingError struct {
	// Event is the offending event.
	Event Event

	// Expected are the kinds of events that would have been accepted.
	Expected []Kind

	// Context describes what was being read.
	Context string

	Position

	// Err is the underlying cause. It defaults to ErrUnexpectedEvent.
	Err error
}

func (e *ParsingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %s", e.Position, e.Context)
	if len(e.Expected) > 0 {
		kinds := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			kinds[i] = k.String()
		}
		fmt.Fprintf(&b, ": expected %s", strings.Join(kinds, " or "))
	}
	got := "end of document"
	if e.Event != nil {
		got = e.Event.String()
	}
	fmt.Fprintf(&b, ", got %s", got)
	if e.Err != nil && !errors.Is(e.Err, ErrUnexpectedEvent) {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParsingError) Unwrap() error {
	if e.Err == nil {
		return ErrUnexpectedEvent
	}
	return e.Err
}
