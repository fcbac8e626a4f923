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
	"io"
	"strings"
)

// Reader reads typed values from a [Source]. It buffers at most one event of
// lookahead.
type Reader struct {
	src    Source
	peeked Event
	err    error

	// last is the position of the last event read and is used for errors at
	// the end of the document.
	last Position
}

// NewReader returns a new Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Next consumes and returns the next event, including whitespace and
// comments. It returns io.EOF at the end of the document.
func (r *Reader) Next() (Event, error) {
	if r.peeked != nil {
		e := r.peeked
		r.peeked = nil
		return e, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	e, err := r.src.Next()
	if err != nil {
		// Errors from the source are sticky.
		r.err = err
		return nil, err
	}
	r.last = e.Pos()
	return e, nil
}

// PeekRaw returns the next event without consuming it, including whitespace
// and comments.
func (r *Reader) PeekRaw() (Event, error) {
	if r.peeked != nil {
		return r.peeked, nil
	}
	e, err := r.Next()
	if err != nil {
		return nil, err
	}
	r.peeked = e
	return e, nil
}

// Peek skips whitespace and comments and returns the next significant event
// without consuming it. It returns io.EOF at the end of the document.
func (r *Reader) Peek() (Event, error) {
	for {
		e, err := r.PeekRaw()
		if err != nil {
			return nil, err
		}
		if !skippable(e) {
			return e, nil
		}
		r.peeked = nil
	}
}

// SkipSpace consumes whitespace and comments.
func (r *Reader) SkipSpace() error {
	_, err := r.Peek()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func skippable(e Event) bool {
	switch t := e.(type) {
	case Comment:
		return true
	case Characters:
		return t.IsSpace()
	default:
		return false
	}
}

// unexpected returns a ParsingError for the event e which may be nil.
func (r *Reader) unexpected(e Event, context string, expected ...Kind) *ParsingError {
	pos := r.last
	if e != nil {
		pos = e.Pos()
	}
	return &ParsingError{
		Event:    e,
		Expected: expected,
		Context:  context,
		Position: pos,
	}
}

// peekSignificant is Peek with io.EOF reported as a nil event.
func (r *Reader) peekSignificant() (Event, error) {
	e, err := r.Peek()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return e, err
}

// OpenTag consumes the opening tag with the given name.
func (r *Reader) OpenTag(name string) (StartTag, error) {
	e, err := r.peekSignificant()
	if err != nil {
		return StartTag{}, err
	}
	start, ok := e.(StartTag)
	if !ok || start.Name != name {
		return StartTag{}, r.unexpected(e, fmt.Sprintf("opening <%s>", name), KindStartTag)
	}
	r.peeked = nil
	return start, nil
}

// CloseTag consumes the closing tag with the given name.
func (r *Reader) CloseTag(name string) error {
	e, err := r.peekSignificant()
	if err != nil {
		return err
	}
	end, ok := e.(EndTag)
	if !ok || end.Name != name {
		return r.unexpected(e, fmt.Sprintf("closing </%s>", name), KindEndTag)
	}
	r.peeked = nil
	return nil
}

// IsOpenTag reports whether the next significant event is an opening tag with
// the given name. It does not consume anything but whitespace and comments.
func (r *Reader) IsOpenTag(name string) (bool, error) {
	e, err := r.peekSignificant()
	if err != nil {
		return false, err
	}
	start, ok := e.(StartTag)
	return ok && start.Name == name, nil
}

// Text reads character data up to the next closing tag, which is not
// consumed. Comments are dropped. The text is returned verbatim and may be
// empty.
func (r *Reader) Text(context string) (string, error) {
	var b strings.Builder
	for {
		e, err := r.PeekRaw()
		if errors.Is(err, io.EOF) {
			return "", r.unexpected(nil, context, KindCharacters, KindEndTag)
		}
		if err != nil {
			return "", err
		}
		switch t := e.(type) {
		case Characters:
			b.WriteString(t.Text)
		case Comment:
		case EndTag:
			return b.String(), nil
		default:
			return "", r.unexpected(e, context, KindCharacters, KindEndTag)
		}
		r.peeked = nil
	}
}

// TextTag reads a tag that contains only character data and returns the
// text.
func (r *Reader) TextTag(name string) (string, error) {
	if _, err := r.OpenTag(name); err != nil {
		return "", err
	}
	text, err := r.Text(fmt.Sprintf("text of <%s>", name))
	if err != nil {
		return "", err
	}
	if err := r.CloseTag(name); err != nil {
		return "", err
	}
	return text, nil
}

// Element reads a whole element: the opening tag, the content via fn and the
// closing tag. fn receives the opening tag.
func (r *Reader) Element(name string, fn func(StartTag) error) error {
	start, err := r.OpenTag(name)
	if err != nil {
		return err
	}
	if fn != nil {
		if err := fn(start); err != nil {
			return err
		}
	}
	return r.CloseTag(name)
}

// MaybeTag reads the element with the given name if it is next. It reports
// whether the element was present.
func (r *Reader) MaybeTag(name string, fn func(StartTag) error) (bool, error) {
	ok, err := r.IsOpenTag(name)
	if err != nil || !ok {
		return false, err
	}
	return true, r.Element(name, fn)
}

// MaybeTextTag reads an optional text-only element.
func (r *Reader) MaybeTextTag(name string) (string, bool, error) {
	var text string
	ok, err := r.MaybeTag(name, func(StartTag) error {
		var err error
		text, err = r.Text(fmt.Sprintf("text of <%s>", name))
		return err
	})
	return text, ok, err
}

// MixedTagList reads consecutive sibling elements of any of the names in
// handlers, in any order, dispatching each to its handler. It stops at the
// first closing tag or the end of the document. An element with no handler is
// an error.
func (r *Reader) MixedTagList(context string, handlers map[string]func(StartTag) error) error {
	for {
		e, err := r.peekSignificant()
		if err != nil {
			return err
		}
		start, ok := e.(StartTag)
		if !ok {
			if _, isEnd := e.(EndTag); isEnd || e == nil {
				return nil
			}
			return r.unexpected(e, context, KindStartTag, KindEndTag)
		}
		handler, ok := handlers[start.Name]
		if !ok {
			return r.unexpected(e, fmt.Sprintf("%s: unknown tag <%s>", context, start.Name), KindStartTag, KindEndTag)
		}
		if err := r.Element(start.Name, handler); err != nil {
			return err
		}
	}
}

// End checks that the document has no further significant events.
func (r *Reader) End() error {
	e, err := r.peekSignificant()
	if err != nil {
		return err
	}
	if e != nil {
		return r.unexpected(e, "end of document")
	}
	return nil
}

// TagList reads zero or more consecutive sibling elements with the given
// name. fn reads the content of each element.
func TagList[T any](r *Reader, name string, fn func(StartTag) (T, error)) ([]T, error) {
	var items []T
	for {
		ok, err := r.IsOpenTag(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		var item T
		if err := r.Element(name, func(start StartTag) error {
			var err error
			item, err = fn(start)
			return err
		}); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// NonEmptyTagList is like [TagList] but at least one element is required.
func NonEmptyTagList[T any](r *Reader, name string, fn func(StartTag) (T, error)) ([]T, error) {
	e, err := r.peekSignificant()
	if err != nil {
		return nil, err
	}
	items, err := TagList(r, name, fn)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		perr := r.unexpected(e, fmt.Sprintf("list of <%s>", name), KindStartTag)
		perr.Err = ErrEmptyChildrenList
		return nil, perr
	}
	return items, nil
}

// TextTagList reads zero or more consecutive text-only elements.
func TextTagList(r *Reader, name string) ([]string, error) {
	return TagList(r, name, func(StartTag) (string, error) {
		return r.Text(fmt.Sprintf("text of <%s>", name))
	})
}

// RequireAttr returns the value of a required attribute.
func RequireAttr(t StartTag, name string) (string, error) {
	v, ok := t.Attr(name)
	if !ok {
		return "", &ParsingError{
			Event:    t,
			Context:  fmt.Sprintf("attribute %q of <%s>", name, t.Name),
			Position: t.Position,
			Err:      ErrMissingAttribute,
		}
	}
	return v, nil
}
