// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a Cabrillo-to-ADIF conversion: read the input,
// parse it, generate ADIF, and write the output atomically. Each
// conversion is a single stateless pass; a Session holds no state
// across files.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ertig3/cabrillo2adif/internal/adif"
	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/internal/i18n"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

// Status is the outcome of one file conversion.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Session holds the transient state of one conversion: the input path,
// the parsed log, and all warnings gathered while parsing and
// generating. A Session is created per input file and discarded after.
type Session struct {
	// InputPath is the Cabrillo source file.
	InputPath string

	// OutputPath is the .adi destination, derived when not set.
	OutputPath string

	// Log is the parsed Cabrillo log; nil until Run parses it.
	Log *cabrillo.Log

	// Warnings merges parser and generator warnings in line order.
	Warnings []types.Warning

	cfg  types.ConvertConfig
	lang *i18n.Translator
}

// NewSession prepares a conversion of inputPath. An empty outputPath is
// derived from the input filename: the base name with an .adi extension,
// placed in cfg.OutputDir when set, otherwise next to the input.
func NewSession(cfg types.ConvertConfig, inputPath, outputPath string) *Session {
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		dir := cfg.OutputDir
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}
		outputPath = filepath.Join(dir, base+".adi")
	}
	return &Session{
		InputPath:  inputPath,
		OutputPath: outputPath,
		cfg:        cfg,
		lang:       i18n.New(cfg.Language),
	}
}

// Run executes the conversion, printing a status line to w. An existing
// output file is skipped unless cfg.Force is set. A failed conversion
// leaves no partial output behind.
func (s *Session) Run(w io.Writer) (Status, error) {
	if !s.cfg.Force {
		if _, err := os.Stat(s.OutputPath); err == nil {
			fmt.Fprintf(w, "%s: %s (already exists)\n", s.lang.T("status_skipped"), s.OutputPath)
			return StatusSkipped, nil
		}
	}

	log, err := cabrillo.ParseFile(s.InputPath, s.cfg.Parser)
	if err != nil {
		fmt.Fprintf(w, "%s: %s (%v)\n", s.lang.T("status_failed"), s.InputPath, err)
		return StatusFailed, err
	}
	s.Log = log
	s.Warnings = append(s.Warnings, log.Warnings...)

	records := log.Records()
	if len(records) == 0 {
		err := fmt.Errorf("%s: %s", s.InputPath, s.lang.T("no_qsos"))
		fmt.Fprintf(w, "%s: %s\n", s.lang.T("status_failed"), err)
		return StatusFailed, err
	}

	content, genWarnings := adif.NewGenerator(s.cfg.ADIF).Generate(log.Info, records)
	s.Warnings = append(s.Warnings, genWarnings...)

	if err := writeAtomic(s.OutputPath, content); err != nil {
		fmt.Fprintf(w, "%s: %s (%v)\n", s.lang.T("status_failed"), s.OutputPath, err)
		return StatusFailed, err
	}

	fmt.Fprintf(w, "%s: %s -> %s (%d %s, %d %s)\n",
		s.lang.T("status_converted"), filepath.Base(s.InputPath), s.OutputPath,
		len(records), s.lang.T("status_qsos"),
		len(s.Warnings), s.lang.T("status_warnings"))

	if s.cfg.Report != types.ReportNone {
		path, err := s.writeReport()
		if err != nil {
			return StatusFailed, err
		}
		fmt.Fprintf(w, "%s: %s\n", s.lang.T("report_written"), path)
	}

	return StatusConverted, nil
}

// writeAtomic writes content to path via a temp file in the destination
// directory and a rename, so a failed write cannot leave a truncated
// output file.
func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming output into place: %w", err)
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each input file in turn, printing per-file
// status to w and a summary line at the end. Output paths are always
// derived; use a single Session for explicit output naming.
func ConvertBatch(cfg types.ConvertConfig, inputs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		status, _ := NewSession(cfg, in, "").Run(w)
		switch status {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}

	tr := i18n.New(cfg.Language)
	fmt.Fprintf(w, "\n%s: %d %s, %d %s, %d %s (%s: %d)\n",
		tr.T("summary_prefix"),
		result.Converted, tr.T("summary_converted"),
		result.Skipped, tr.T("summary_skipped"),
		result.Failed, tr.T("summary_failed"),
		tr.T("summary_total"), result.Total())
	return result
}
