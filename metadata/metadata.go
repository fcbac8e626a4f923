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

// Package metadata reads the header of a dictionary release: the format
// revisions, the entity declarations and the creation date.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-jmdict/internal/folding"
	"github.com/ianlewis/go-jmdict/tagstream"
)

var (
	// ErrMissingDTD indicates that the document has no DTD declaration.
	ErrMissingDTD = errors.New("missing DTD")

	// ErrMissingDate indicates that the creation date could not be read.
	ErrMissingDate = errors.New("missing creation date")

	// ErrMissingRevision indicates that a revision comment had no revision.
	ErrMissingRevision = errors.New("missing revision")
)

var dtdRevisionRegex = regexp.MustCompile(`<!--\s*Rev\s+(\S+)`)

// Metadata is the header information of a dictionary release. It is built
// once per run and must not be modified afterwards.
type Metadata struct {
	// Revisions are the format revisions in document order.
	Revisions []string

	// Entities maps entity names to their expansion text.
	Entities map[string]string

	// Date is the creation date of the release.
	Date string
}

// New returns a new Metadata with copies of the given values.
func New(revisions []string, entities map[string]string, date string) *Metadata {
	m := &Metadata{
		Revisions: slices.Clone(revisions),
		Entities:  maps.Clone(entities),
		Date:      date,
	}
	if m.Revisions == nil {
		m.Revisions = []string{}
	}
	if m.Entities == nil {
		m.Entities = map[string]string{}
	}
	return m
}

// Entity returns the expansion of the named entity.
func (m *Metadata) Entity(name string) (string, bool) {
	v, ok := m.Entities[name]
	return v, ok
}

// EntityNames returns the entity names in sorted order.
func (m *Metadata) EntityNames() []string {
	return slices.Sorted(maps.Keys(m.Entities))
}

// ParseWordHeader reads the header of a JMdict document: a run of revision
// comments, the DTD and the creation date comment. The reader is left before
// the root element.
func ParseWordHeader(r *tagstream.Reader) (*Metadata, error) {
	var revisions []string
	var dtd *tagstream.DTD
	for dtd == nil {
		e, err := nextNonSpace(r, "revision comments")
		if err != nil {
			return nil, err
		}
		switch t := e.(type) {
		case tagstream.Comment:
			rev, err := revisionFromComment(t.Text)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", t.Position, err)
			}
			revisions = append(revisions, rev)
		case tagstream.DTD:
			dtd = &t
		default:
			return nil, unexpected(e, "JMdict header", tagstream.KindComment, tagstream.KindDTD)
		}
	}

	date, err := readDateComment(r)
	if err != nil {
		return nil, err
	}

	return New(revisions, entityMap(dtd.Entities), date), nil
}

// ParseNameHeader reads the header of a JMnedict document. Revisions are
// recorded as comments inside the DTD.
func ParseNameHeader(r *tagstream.Reader) (*Metadata, error) {
	dtd, err := readDTD(r)
	if err != nil {
		return nil, err
	}

	var revisions []string
	for _, m := range dtdRevisionRegex.FindAllStringSubmatch(dtd.Raw, -1) {
		revisions = append(revisions, m[1])
	}

	date, err := readDateComment(r)
	if err != nil {
		return nil, err
	}

	return New(revisions, entityMap(dtd.Entities), date), nil
}

// ParseKanjiHeader reads the header of a kanjidic2 document. The header is
// an element inside the root element so the opening root tag is consumed.
// The revisions are the file version followed by the database version.
func ParseKanjiHeader(r *tagstream.Reader) (*Metadata, error) {
	dtd, err := readDTD(r)
	if err != nil {
		return nil, err
	}

	if _, err := r.OpenTag("kanjidic2"); err != nil {
		return nil, fmt.Errorf("reading kanjidic2 header: %w", err)
	}

	var fileVersion, dbVersion, date string
	err = r.Element("header", func(tagstream.StartTag) error {
		var err error
		if fileVersion, err = r.TextTag("file_version"); err != nil {
			return err
		}
		if dbVersion, err = r.TextTag("database_version"); err != nil {
			return err
		}
		date, err = r.TextTag("date_of_creation")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading kanjidic2 header: %w", err)
	}

	return New([]string{fileVersion, dbVersion}, entityMap(dtd.Entities), date), nil
}

// readDTD skips comments and whitespace and reads the DTD.
func readDTD(r *tagstream.Reader) (tagstream.DTD, error) {
	e, err := r.Peek()
	if errors.Is(err, io.EOF) {
		return tagstream.DTD{}, ErrMissingDTD
	}
	if err != nil {
		return tagstream.DTD{}, err
	}
	dtd, ok := e.(tagstream.DTD)
	if !ok {
		return tagstream.DTD{}, fmt.Errorf("%w: %v", ErrMissingDTD, unexpected(e, "document type declaration", tagstream.KindDTD))
	}
	if _, err := r.Next(); err != nil {
		return tagstream.DTD{}, err
	}
	return dtd, nil
}

// readDateComment reads the comment that follows the DTD and returns the
// text after its last colon.
func readDateComment(r *tagstream.Reader) (string, error) {
	e, err := nextNonSpace(r, "creation date comment")
	if err != nil {
		return "", err
	}
	c, ok := e.(tagstream.Comment)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrMissingDate, unexpected(e, "creation date comment", tagstream.KindComment))
	}
	text := folding.Whitespace(c.Text)
	i := strings.LastIndexByte(text, ':')
	if i < 0 {
		return "", fmt.Errorf("%v: %w: %q", c.Position, ErrMissingDate, text)
	}
	date := strings.TrimSpace(text[i+1:])
	if date == "" {
		return "", fmt.Errorf("%v: %w: %q", c.Position, ErrMissingDate, text)
	}
	return date, nil
}

// revisionFromComment returns the last token of the first line of a
// revision comment, e.g. "1.09" for "Rev 1.09".
func revisionFromComment(text string) (string, error) {
	firstLine := strings.TrimSpace(text)
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	fields := strings.Fields(folding.Whitespace(firstLine))
	if len(fields) == 0 {
		return "", ErrMissingRevision
	}
	return fields[len(fields)-1], nil
}

// nextNonSpace consumes and returns the next event that is not whitespace.
func nextNonSpace(r *tagstream.Reader, context string) (tagstream.Event, error) {
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil, unexpected(nil, context)
		}
		if err != nil {
			return nil, err
		}
		if c, ok := e.(tagstream.Characters); ok && c.IsSpace() {
			continue
		}
		return e, nil
	}
}

func unexpected(e tagstream.Event, context string, expected ...tagstream.Kind) *tagstream.ParsingError {
	var pos tagstream.Position
	if e != nil {
		pos = e.Pos()
	}
	return &tagstream.ParsingError{
		Event:    e,
		Expected: expected,
		Context:  context,
		Position: pos,
	}
}

// entityMap builds the entity map. Character references in the expansion
// text are decoded.
func entityMap(decls []tagstream.EntityDecl) map[string]string {
	entities := make(map[string]string, len(decls))
	for _, d := range decls {
		entities[d.Name] = html2text.HTMLEntitiesToText(d.Value)
	}
	return entities
}
