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

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// xrefSeparator separates the parts of a cross reference in the source.
const xrefSeparator = "・"

// Xref is a reference to another record, optionally scoped to a reading
// and/or a sense. The zero Reading and Sense mean "not given", so an Xref
// always has one of the four shapes:
//
//	(headword)
//	(headword, reading)
//	(headword, sense)
//	(headword, reading, sense)
//
// Sense indexes are 1-based.
type Xref struct {
	Headword string
	Reading  string
	Sense    int
}

// ParseXref parses the source form of a cross reference, e.g. "丸・まる・1".
func ParseXref(text string) (Xref, error) {
	parts := strings.Split(text, xrefSeparator)
	if parts[0] == "" {
		return Xref{}, fmt.Errorf("%w: %q", ErrInvalidXref, text)
	}

	var x Xref
	if n := len(parts); n > 1 {
		if sense, err := strconv.Atoi(parts[n-1]); err == nil {
			if sense < 1 {
				return Xref{}, fmt.Errorf("%w: sense %d in %q", ErrInvalidXref, sense, text)
			}
			x.Sense = sense
			parts = parts[:n-1]
		}
	}

	switch len(parts) {
	case 1:
		x.Headword = parts[0]
	case 2:
		if parts[1] == "" {
			return Xref{}, fmt.Errorf("%w: %q", ErrInvalidXref, text)
		}
		x.Headword, x.Reading = parts[0], parts[1]
	default:
		return Xref{}, fmt.Errorf("%w: too many parts in %q", ErrInvalidXref, text)
	}
	return x, nil
}

// MarshalJSON encodes the Xref as an array of one to three elements.
func (x Xref) MarshalJSON() ([]byte, error) {
	if x.Headword == "" || x.Sense < 0 {
		return nil, fmt.Errorf("%w: %#v", ErrInvalidXref, x)
	}
	parts := []any{x.Headword}
	if x.Reading != "" {
		parts = append(parts, x.Reading)
	}
	if x.Sense > 0 {
		parts = append(parts, x.Sense)
	}
	//nolint:wrapcheck // error should not be wrapped
	return json.Marshal(parts)
}

// UnmarshalJSON decodes an array of one to three elements. The second element
// of a two element array is a reading when it is a string and a sense index
// when it is a number.
func (x *Xref) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidXref, err)
	}

	var out Xref
	switch len(parts) {
	case 1, 2, 3:
	default:
		return fmt.Errorf("%w: %d elements", ErrInvalidXref, len(parts))
	}

	if err := unmarshalString(parts[0], &out.Headword); err != nil {
		return err
	}

	switch len(parts) {
	case 2:
		if isJSONString(parts[1]) {
			if err := unmarshalString(parts[1], &out.Reading); err != nil {
				return err
			}
		} else if err := unmarshalSense(parts[1], &out.Sense); err != nil {
			return err
		}
	case 3:
		if err := unmarshalString(parts[1], &out.Reading); err != nil {
			return err
		}
		if err := unmarshalSense(parts[2], &out.Sense); err != nil {
			return err
		}
	}

	*x = out
	return nil
}

func isJSONString(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '"'
}

func unmarshalString(raw json.RawMessage, s *string) error {
	if !isJSONString(raw) {
		return fmt.Errorf("%w: expected string, got %s", ErrInvalidXref, raw)
	}
	if err := json.Unmarshal(raw, s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidXref, err)
	}
	if *s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidXref)
	}
	return nil
}

func unmarshalSense(raw json.RawMessage, sense *int) error {
	if err := json.Unmarshal(raw, sense); err != nil {
		return fmt.Errorf("%w: expected sense index, got %s", ErrInvalidXref, raw)
	}
	if *sense < 1 {
		return fmt.Errorf("%w: sense %d", ErrInvalidXref, *sense)
	}
	return nil
}

// String returns the source form of the Xref.
func (x Xref) String() string {
	parts := []string{x.Headword}
	if x.Reading != "" {
		parts = append(parts, x.Reading)
	}
	if x.Sense > 0 {
		parts = append(parts, strconv.Itoa(x.Sense))
	}
	return strings.Join(parts, xrefSeparator)
}
