// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParserConfig holds settings for the Cabrillo parsing stage.
type ParserConfig struct {
	// IncludeXQSO controls whether X-QSO lines are kept in the parsed
	// log (they are always excluded from ADIF emission).
	IncludeXQSO bool `json:"include_xqso" yaml:"include_xqso"`

	// MaxWarnings caps the number of warnings retained per file
	// (default 1000); further issues are counted but not stored.
	MaxWarnings int `json:"max_warnings" yaml:"max_warnings"`
}

// ADIFConfig holds settings for the ADIF emission stage.
type ADIFConfig struct {
	// ProgramID is the PROGRAMID header value (default "cabrillo2adif").
	ProgramID string `json:"program_id" yaml:"program_id"`

	// ProgramVersion is the PROGRAMVERSION header value.
	ProgramVersion string `json:"program_version" yaml:"program_version"`
}

// ReportFormat selects the conversion report serialization.
type ReportFormat string

const (
	ReportNone ReportFormat = ""
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ConvertConfig holds settings for the conversion session.
type ConvertConfig struct {
	ADIF ADIFConfig `json:"adif" yaml:"adif"`

	Parser ParserConfig `json:"parser" yaml:"parser"`

	// OutputDir is the default directory for .adi output when the
	// caller does not name an output file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Force overwrites existing output files instead of skipping.
	Force bool `json:"force" yaml:"force"`

	// Report selects an optional conversion report written next to
	// the output file: yaml, json, or empty for none.
	Report ReportFormat `json:"report,omitempty" yaml:"report,omitempty"`

	// Language selects the message language for status output
	// ("en" or "de").
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// LogbookConfig holds settings for the local logbook store.
type LogbookConfig struct {
	// Dir is the directory containing logbook.db.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
