// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ertig3/cabrillo2adif/pkg/types"
)

// Report is the optional machine-readable summary of a conversion,
// written next to the output file.
type Report struct {
	Input       string          `json:"input" yaml:"input"`
	Output      string          `json:"output" yaml:"output"`
	Contest     string          `json:"contest,omitempty" yaml:"contest,omitempty"`
	Callsign    string          `json:"callsign,omitempty" yaml:"callsign,omitempty"`
	QSOs        int             `json:"qsos" yaml:"qsos"`
	Rejected    int             `json:"rejected" yaml:"rejected"`
	Warnings    []types.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
}

// writeReport serializes the session outcome as YAML or JSON at
// <output>.report.<ext> and returns the path written.
func (s *Session) writeReport() (string, error) {
	rep := Report{
		Input:       s.InputPath,
		Output:      s.OutputPath,
		Contest:     s.Log.Info.Contest,
		Callsign:    s.Log.Info.Callsign,
		QSOs:        len(s.Log.Records()),
		Rejected:    s.Log.Rejected,
		Warnings:    s.Warnings,
		GeneratedAt: time.Now().UTC(),
	}

	var (
		data []byte
		err  error
		path string
	)
	switch s.cfg.Report {
	case types.ReportYAML:
		path = s.OutputPath + ".report.yaml"
		data, err = yaml.Marshal(rep)
	case types.ReportJSON:
		path = s.OutputPath + ".report.json"
		data, err = json.MarshalIndent(rep, "", "  ")
	default:
		return "", fmt.Errorf("unsupported report format %q: use yaml or json", s.cfg.Report)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
