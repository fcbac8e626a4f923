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
	"fmt"
	"slices"

	"github.com/ianlewis/go-jmdict/metadata"
)

// Wildcard is the restriction value meaning "applies to all".
const Wildcard = "*"

// commonPriorities are the priority markers that make a spelling or reading
// common.
var commonPriorities = []string{"news1", "ichi1", "spec1", "spec2", "gai1"}

// IsCommon reports whether any of the priority markers marks a spelling or
// reading as common.
func IsCommon(priorities []string) bool {
	for _, p := range priorities {
		if slices.Contains(commonPriorities, p) {
			return true
		}
	}
	return false
}

// Tags checks that every code is declared as an entity and returns the codes.
// The result is never nil.
func Tags(meta *metadata.Metadata, codes []string) ([]string, error) {
	tags := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := meta.Entity(c); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, c)
		}
		tags = append(tags, c)
	}
	return tags, nil
}

// Verbatim returns the values as literal tags. It is used for sources without
// entity indirection. The result is never nil.
func Verbatim(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

// AppliesTo normalizes a restriction list: an empty list becomes the wildcard
// list ["*"].
func AppliesTo(restrictions []string) []string {
	if len(restrictions) == 0 {
		return []string{Wildcard}
	}
	return slices.Clone(restrictions)
}

// Xrefs parses source cross references. The result is never nil.
func Xrefs(texts []string) ([]Xref, error) {
	xrefs := make([]Xref, 0, len(texts))
	for _, text := range texts {
		x, err := ParseXref(text)
		if err != nil {
			return nil, err
		}
		xrefs = append(xrefs, x)
	}
	return xrefs, nil
}
