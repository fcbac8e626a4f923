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
	"fmt"
	"strings"
)

// Kind is the kind of an [Event].
type Kind int

const (
	// KindStartTag is an opening tag.
	KindStartTag Kind = iota + 1

	// KindEndTag is a closing tag.
	KindEndTag

	// KindCharacters is character data.
	KindCharacters

	// KindComment is a comment.
	KindComment

	// KindDTD is the document type declaration.
	KindDTD
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindStartTag:
		return "start-tag"
	case KindEndTag:
		return "end-tag"
	case KindCharacters:
		return "characters"
	case KindComment:
		return "comment"
	case KindDTD:
		return "dtd"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Position is a line and column in the source document. Both are 1-based.
type Position struct {
	Line   int
	Column int
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Event is a single item in the tag stream. The concrete type is one of
// [StartTag], [EndTag], [Characters], [Comment] or [DTD].
type Event interface {
	// Kind returns the kind of event.
	Kind() Kind

	// Pos returns the location of the event in the source.
	Pos() Position

	fmt.Stringer

	isEvent()
}

// Attr is a tag attribute. Attributes in the xml namespace keep their "xml:"
// prefix (e.g. "xml:lang").
type Attr struct {
	Name  string
	Value string
}

// StartTag is an opening tag.
type StartTag struct {
	Name  string
	Attrs []Attr
	Position
}

// Attr returns the value of the named attribute.
func (t StartTag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute or def if the attribute is
// not present.
func (t StartTag) AttrOr(name, def string) string {
	if v, ok := t.Attr(name); ok {
		return v
	}
	return def
}

// Kind implements [Event.Kind].
func (StartTag) Kind() Kind { return KindStartTag }

// Pos implements [Event.Pos].
func (t StartTag) Pos() Position { return t.Position }

func (t StartTag) String() string { return "<" + t.Name + ">" }

func (StartTag) isEvent() {}

// EndTag is a closing tag.
type EndTag struct {
	Name string
	Position
}

// Kind implements [Event.Kind].
func (EndTag) Kind() Kind { return KindEndTag }

// Pos implements [Event.Pos].
func (t EndTag) Pos() Position { return t.Position }

func (t EndTag) String() string { return "</" + t.Name + ">" }

func (EndTag) isEvent() {}

// Characters is character data with entity references already expanded.
type Characters struct {
	Text string
	Position
}

// Kind implements [Event.Kind].
func (Characters) Kind() Kind { return KindCharacters }

// Pos implements [Event.Pos].
func (c Characters) Pos() Position { return c.Position }

func (c Characters) String() string {
	const maxLen = 32
	text := c.Text
	if r := []rune(text); len(r) > maxLen {
		text = string(r[:maxLen]) + "..."
	}
	return fmt.Sprintf("characters %q", text)
}

// IsSpace reports whether the character data consists only of whitespace.
func (c Characters) IsSpace() bool {
	return strings.TrimSpace(c.Text) == ""
}

func (Characters) isEvent() {}

// Comment is a comment. Text excludes the "<!--" and "-->" delimiters.
type Comment struct {
	Text string
	Position
}

// Kind implements [Event.Kind].
func (Comment) Kind() Kind { return KindComment }

// Pos implements [Event.Pos].
func (c Comment) Pos() Position { return c.Position }

func (Comment) String() string { return "comment" }

func (Comment) isEvent() {}

// EntityDecl is an internal general entity declaration from the DTD.
type EntityDecl struct {
	Name  string
	Value string
}

// DTD is the document type declaration. Raw holds the declaration text
// including any comments inside the internal subset.
type DTD struct {
	Raw      string
	Entities []EntityDecl
	Position
}

// Kind implements [Event.Kind].
func (DTD) Kind() Kind { return KindDTD }

// Pos implements [Event.Pos].
func (d DTD) Pos() Position { return d.Position }

func (DTD) String() string { return "<!DOCTYPE>" }

func (DTD) isEvent() {}
