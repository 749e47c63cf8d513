// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/ertig3/cabrillo2adif/pkg/types"
)

const sampleLog = `START-OF-LOG: 3.0
CONTEST: CQ-WW-CW
CALLSIGN: CALL1
QSO: 14000 CW 2025-09-01 1200 CALL1 599 001 CALL2 599 002
QSO: 7025 CW 2025-09-01 1203 CALL1 599 002 K1AA 599 005
END-OF-LOG:
`

// writeInput drops a Cabrillo fixture into a temp dir and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contest.cbr")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSessionRun(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		cfg        types.ConvertConfig
		preCreate  bool // create the output file before running
		wantStatus Status
		wantErr    bool
		wantLog    string
	}{
		{
			name:       "successful conversion",
			content:    sampleLog,
			wantStatus: StatusConverted,
			wantLog:    "converted:",
		},
		{
			name:       "skip existing output",
			content:    sampleLog,
			preCreate:  true,
			wantStatus: StatusSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "force overwrites existing output",
			content:    sampleLog,
			cfg:        types.ConvertConfig{Force: true},
			preCreate:  true,
			wantStatus: StatusConverted,
			wantLog:    "converted:",
		},
		{
			name:       "no QSOs is fatal",
			content:    "START-OF-LOG: 3.0\nCONTEST: CQ-WW-CW\nEND-OF-LOG:\n",
			wantStatus: StatusFailed,
			wantErr:    true,
			wantLog:    "no QSOs found",
		},
		{
			name:       "german status line",
			content:    sampleLog,
			cfg:        types.ConvertConfig{Language: "de"},
			wantStatus: StatusConverted,
			wantLog:    "konvertiert:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeInput(t, tt.content)
			out := filepath.Join(filepath.Dir(in), "contest.adi")

			if tt.preCreate {
				if err := os.WriteFile(out, []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var log bytes.Buffer
			s := NewSession(tt.cfg, in, out)
			status, err := s.Run(&log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
		})
	}
}

func TestSessionOutputContent(t *testing.T) {
	in := writeInput(t, sampleLog)
	var log bytes.Buffer
	s := NewSession(types.ConvertConfig{}, in, "")

	if _, err := s.Run(&log); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if got := strings.Count(content, "<EOR>"); got != 2 {
		t.Errorf("output has %d records, want 2", got)
	}
	for _, want := range []string{"<ADIF_VER:5>3.1.4", "<EOH>", "<BAND:3>20M", "<MODE:2>CW", "<QSO_DATE:8>20250901", "<TIME_ON:4>1200"} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// Records follow input order.
	if strings.Index(content, ">CALL2") > strings.Index(content, ">K1AA") {
		t.Error("records not in input order")
	}
}

func TestSessionDerivedOutputPath(t *testing.T) {
	in := writeInput(t, sampleLog)
	outDir := t.TempDir()

	s := NewSession(types.ConvertConfig{OutputDir: outDir}, in, "")
	want := filepath.Join(outDir, "contest.adi")
	if s.OutputPath != want {
		t.Fatalf("OutputPath = %q, want %q", s.OutputPath, want)
	}

	var log bytes.Buffer
	if _, err := s.Run(&log); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("derived output not written: %v", err)
	}
}

func TestSessionNoPartialOutput(t *testing.T) {
	in := writeInput(t, "START-OF-LOG: 3.0\nEND-OF-LOG:\n")
	out := filepath.Join(filepath.Dir(in), "empty.adi")

	var log bytes.Buffer
	if _, err := NewSession(types.ConvertConfig{}, in, out).Run(&log); err == nil {
		t.Fatal("expected error for log without QSOs")
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("failed conversion left output file behind")
	}
	// No stray temp files either.
	entries, err := os.ReadDir(filepath.Dir(in))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") || strings.Contains(e.Name(), ".adi.") {
			t.Errorf("stray temp file %s", e.Name())
		}
	}
}

func TestSessionMissingInput(t *testing.T) {
	var log bytes.Buffer
	s := NewSession(types.ConvertConfig{}, filepath.Join(t.TempDir(), "nope.cbr"), "")
	status, err := s.Run(&log)
	if status != StatusFailed || err == nil {
		t.Fatalf("status = %q, err = %v; want failed with error", status, err)
	}
}

func TestSessionWarningsCollected(t *testing.T) {
	content := sampleLog + "QSO: 14000 RY 2025-09-01 1210 CALL1 599 003 JA1BB 599 004\nbogus line\n"
	in := writeInput(t, content)

	var log bytes.Buffer
	s := NewSession(types.ConvertConfig{}, in, "")
	if _, err := s.Run(&log); err != nil {
		t.Fatal(err)
	}

	// One parse warning (bogus line) plus one emit warning (mode RY).
	if len(s.Warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(s.Warnings), s.Warnings)
	}
	// All valid records still converted.
	data, _ := os.ReadFile(s.OutputPath)
	if got := strings.Count(string(data), "<EOR>"); got != 3 {
		t.Errorf("output has %d records, want 3", got)
	}
}

func TestSessionReport(t *testing.T) {
	formats := []struct {
		format types.ReportFormat
		ext    string
	}{
		{types.ReportYAML, ".report.yaml"},
		{types.ReportJSON, ".report.json"},
	}

	for _, f := range formats {
		t.Run(string(f.format), func(t *testing.T) {
			in := writeInput(t, sampleLog)
			var log bytes.Buffer
			s := NewSession(types.ConvertConfig{Report: f.format}, in, "")
			if _, err := s.Run(&log); err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(s.OutputPath + f.ext)
			if err != nil {
				t.Fatal(err)
			}

			var rep Report
			if f.format == types.ReportJSON {
				err = json.Unmarshal(data, &rep)
			} else {
				err = yaml.Unmarshal(data, &rep)
			}
			if err != nil {
				t.Fatal(err)
			}
			if rep.QSOs != 2 || rep.Contest != "CQ-WW-CW" || rep.Callsign != "CALL1" {
				t.Errorf("unexpected report: %+v", rep)
			}
		})
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.cbr")
	empty := filepath.Join(dir, "b.cbr")
	if err := os.WriteFile(good, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(empty, []byte("START-OF-LOG: 3.0\nEND-OF-LOG:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result := ConvertBatch(types.ConvertConfig{}, []string{good, empty, good}, &log)

	// Second pass over "good" skips the existing output.
	if result.Converted != 1 || result.Skipped != 1 || result.Failed != 1 {
		t.Errorf("result = %+v, want 1/1/1", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if result.Total() != 3 {
		t.Errorf("Total() = %d, want 3", result.Total())
	}
	if !strings.Contains(log.String(), "Conversion summary: 1 converted, 1 skipped, 1 failed (total: 3)") {
		t.Errorf("missing summary line in %q", log.String())
	}
}
