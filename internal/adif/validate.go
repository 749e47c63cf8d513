// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adif

import "strings"

// ValidationResult summarizes a structural check of generated ADIF text.
type ValidationResult struct {
	// Valid is true when the header is present and at least one record
	// was emitted.
	Valid bool `json:"valid" yaml:"valid"`

	// HeaderFound reports whether an ADIF_VER header field exists.
	HeaderFound bool `json:"header_found" yaml:"header_found"`

	// Records is the number of <EOR> terminators found.
	Records int `json:"records" yaml:"records"`
}

// Validate performs a format-only check of ADIF content: header
// presence and record count. It makes no claim about radio semantics.
func Validate(content string) ValidationResult {
	r := ValidationResult{
		HeaderFound: strings.Contains(content, "<ADIF_VER:"),
		Records:     strings.Count(content, "<EOR>"),
	}
	r.Valid = r.HeaderFound && r.Records > 0
	return r
}
