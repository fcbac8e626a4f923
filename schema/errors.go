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
	"errors"
	"fmt"
)

var (
	// ErrConversion is the parent error of all conversion errors.
	ErrConversion = errors.New("conversion error")

	// ErrUnknownTag indicates a tag that is not declared as an entity.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrUnknownEnumValue indicates an attribute value that could not be
	// mapped onto its enumeration.
	ErrUnknownEnumValue = errors.New("unknown enumeration value")

	// ErrInvalidXref indicates a malformed cross reference.
	ErrInvalidXref = errors.New("invalid xref")
)

// ConversionError is a semantic rule violation found while converting a
// record. EntryID identifies the record in the source.
type ConversionError struct {
	EntryID string
	Err     error
}

// NewConversionError returns a new ConversionError for the given record.
func NewConversionError(entryID string, format string, args ...any) *ConversionError {
	return &ConversionError{
		EntryID: entryID,
		Err:     fmt.Errorf(format, args...),
	}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting entry %q: %v", e.EntryID, e.Err)
}

// Unwrap supports errors.Is(err, ErrConversion) as well as matching the
// underlying cause.
func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}
