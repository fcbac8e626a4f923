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
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	entityDeclRegex = regexp.MustCompile(`<!ENTITY\s+([^\s%]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
	dtdCommentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Source produces the events of a document in order. Next returns io.EOF
// after the last event.
type Source interface {
	Next() (Event, error)
}

// recorder is an io.ByteReader that keeps a copy of the bytes read while
// recording is on. The xml.Decoder drops comments from directives so the DTD
// text is recovered from the recording.
type recorder struct {
	r         *bufio.Reader
	buf       bytes.Buffer
	recording bool
}

func (r *recorder) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if r.recording {
		r.buf.Write(p[:n])
	}
	//nolint:wrapcheck // error should not be wrapped
	return n, err
}

func (r *recorder) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err == nil && r.recording {
		r.buf.WriteByte(b)
	}
	//nolint:wrapcheck // error should not be wrapped
	return b, err
}

// XMLSource is a [Source] that tokenizes an XML document with
// [encoding/xml]. Entities declared in the DTD are expanded to their own
// name so that "&v5;" is read as the character data "v5". The processing
// instruction is dropped.
type XMLSource struct {
	d   *xml.Decoder
	rec *recorder
}

// NewXMLSource returns a new XMLSource reading from r.
func NewXMLSource(r io.Reader) *XMLSource {
	rec := &recorder{
		r:         bufio.NewReader(r),
		recording: true,
	}
	d := xml.NewDecoder(rec)
	d.Strict = true
	d.Entity = map[string]string{}
	return &XMLSource{
		d:   d,
		rec: rec,
	}
}

// Next implements [Source.Next].
func (s *XMLSource) Next() (Event, error) {
	for {
		line, col := s.d.InputPos()
		pos := Position{Line: line, Column: col}
		s.rec.buf.Reset()

		tok, err := s.d.Token()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				pos.Line = syntaxErr.Line
			}
			return nil, &TokenizationError{Position: pos, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// Only the prolog needs to be recorded.
			s.rec.recording = false
			s.rec.buf.Reset()
			start := StartTag{
				Name:     t.Name.Local,
				Position: pos,
			}
			for _, a := range t.Attr {
				start.Attrs = append(start.Attrs, Attr{
					Name:  attrName(a.Name),
					Value: a.Value,
				})
			}
			return start, nil
		case xml.EndElement:
			return EndTag{Name: t.Name.Local, Position: pos}, nil
		case xml.CharData:
			return Characters{Text: string(t), Position: pos}, nil
		case xml.Comment:
			return Comment{Text: string(t), Position: pos}, nil
		case xml.Directive:
			if !bytes.HasPrefix(t, []byte("DOCTYPE")) {
				continue
			}
			raw := s.rec.buf.String()
			if raw == "" {
				raw = string(t)
			}
			dtd := DTD{
				Raw:      raw,
				Entities: parseEntityDecls(raw),
				Position: pos,
			}
			for _, e := range dtd.Entities {
				s.d.Entity[e.Name] = e.Name
			}
			return dtd, nil
		default:
			// xml.ProcInst
			continue
		}
	}
}

func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case xmlNamespace, "xml":
		return "xml:" + n.Local
	default:
		return n.Space + ":" + n.Local
	}
}

// parseEntityDecls returns the internal general entity declarations in the
// DTD text, in declaration order. Declarations inside comments are ignored.
func parseEntityDecls(raw string) []EntityDecl {
	text := dtdCommentRegex.ReplaceAllString(raw, " ")
	var decls []EntityDecl
	for _, m := range entityDeclRegex.FindAllStringSubmatch(text, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		decls = append(decls, EntityDecl{
			Name:  m[1],
			Value: value,
		})
	}
	return decls
}
