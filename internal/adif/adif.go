// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package adif serializes parsed contest logs as ADIF 3.1.4 text: a
// header block closed by <EOH>, then one <TAG:len>value record per QSO
// closed by <EOR>. The field mapping is a fixed table; no field is
// renamed outside it.
package adif

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ertig3/cabrillo2adif/internal/band"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

// Version is the emitted ADIF specification version.
const Version = "3.1.4"

// stateCode matches two-letter region codes used for the MY_STATE
// heuristic on Cabrillo LOCATION values.
var stateCode = regexp.MustCompile(`^[A-Z]{2}$`)

// Generator emits ADIF text for parsed logs. The zero value is not
// usable; construct with NewGenerator.
type Generator struct {
	cfg types.ADIFConfig

	// now is stubbed in tests for a stable CREATED_TIMESTAMP.
	now func() time.Time
}

// NewGenerator returns a Generator with defaults applied.
func NewGenerator(cfg types.ADIFConfig) *Generator {
	if cfg.ProgramID == "" {
		cfg.ProgramID = "cabrillo2adif"
	}
	if cfg.ProgramVersion == "" {
		cfg.ProgramVersion = "0.9"
	}
	return &Generator{cfg: cfg, now: time.Now}
}

// Field renders one ADIF field as <NAME:len>value. An empty value
// renders nothing.
func Field(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<%s:%d>%s", name, len(value), value)
}

// Generate serializes the contest header and QSO records. It returns
// the full ADIF text plus warnings for tokens that fell outside the
// band or mode tables and for records skipped for a missing callsign.
// Every input QSO with a worked callsign yields exactly one record, in
// input order.
func (g *Generator) Generate(info types.ContestInfo, qsos []types.QSO) (string, []types.Warning) {
	var b strings.Builder
	var warnings []types.Warning

	g.writeHeader(&b, info)

	for _, q := range qsos {
		warnings = append(warnings, g.writeRecord(&b, q)...)
	}

	return b.String(), warnings
}

// writeHeader emits the banner, program identification, and the
// Cabrillo header metadata, closed by <EOH>.
func (g *Generator) writeHeader(b *strings.Builder, info types.ContestInfo) {
	now := g.now().UTC()

	fmt.Fprintf(b, "ADIF export generated by %s %s\n", g.cfg.ProgramID, g.cfg.ProgramVersion)
	fmt.Fprintf(b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05 UTC"))

	line := func(name, value string) {
		if f := Field(name, value); f != "" {
			b.WriteString(f)
			b.WriteString("\n")
		}
	}

	line("ADIF_VER", Version)
	line("PROGRAMID", g.cfg.ProgramID)
	line("PROGRAMVERSION", g.cfg.ProgramVersion)
	line("CREATED_TIMESTAMP", now.Format("20060102 150405"))

	line("CONTEST_ID", info.Contest)
	line("STATION_CALLSIGN", info.Callsign)
	line("CATEGORY_OPERATOR", info.CategoryOperator)
	line("CATEGORY_TRANSMITTER", info.CategoryTransmitter)
	line("CATEGORY_POWER", info.CategoryPower)
	line("CATEGORY_BAND", info.CategoryBand)
	line("CATEGORY_MODE", info.CategoryMode)
	line("CLAIMED_SCORE", info.ClaimedScore)
	line("NAME", info.Name)
	line("EMAIL", info.Email)
	line("APP_C2A_CLUB", info.Club)

	if info.Location != "" {
		loc := strings.ToUpper(info.Location)
		line("APP_C2A_LOCATION", loc)
		if stateCode.MatchString(loc) {
			line("MY_STATE", loc)
		}
	}

	if addr := joinNonEmpty(info.Address, ", "); addr != "" {
		line("ADDRESS", addr)
	}

	line("APP_C2A_CREATED_BY", info.CreatedBy)

	if primary, all := splitOperators(info.Operators); primary != "" {
		line("OPERATOR", primary)
		if len(all) > 1 {
			line("OPERATORS", strings.Join(all, ","))
		}
	}

	b.WriteString("<EOH>\n\n")
}

// writeRecord emits one QSO record terminated by <EOR>. A QSO without a
// worked callsign is skipped with a warning.
func (g *Generator) writeRecord(b *strings.Builder, q types.QSO) []types.Warning {
	if q.DXCall == "" {
		return []types.Warning{{Line: q.Line, Message: "record skipped: missing worked callsign", Raw: q.RawLine}}
	}

	var warnings []types.Warning
	fields := []string{Field("CALL", strings.ToUpper(q.DXCall))}

	add := func(name, value string) {
		if f := Field(name, value); f != "" {
			fields = append(fields, f)
		}
	}

	if q.Date != "" {
		add("QSO_DATE", strings.ReplaceAll(q.Date, "-", ""))
	}
	add("TIME_ON", q.Time)

	if q.Frequency != "" {
		if mhz, ok := band.MHz(q.Frequency); ok {
			add("FREQ", formatMHz(mhz))
		}
		if bd, ok := band.FromFrequency(q.Frequency); ok {
			add("BAND", string(bd))
		} else {
			warnings = append(warnings, types.Warning{
				Line:    q.Line,
				Message: fmt.Sprintf("frequency %q outside band plan, BAND omitted", q.Frequency),
				Raw:     q.RawLine,
			})
		}
	}

	if q.Mode != "" {
		mode, known := MapMode(q.Mode)
		add("MODE", mode)
		if !known {
			warnings = append(warnings, types.Warning{
				Line:    q.Line,
				Message: fmt.Sprintf("unsupported mode %q passed through", q.Mode),
				Raw:     q.RawLine,
			})
		}
	}

	add("RST_SENT", q.RSTSent)
	add("RST_RCVD", q.RSTRcvd)
	add("STX_STRING", q.ExchangeSent)
	add("SRX_STRING", q.ExchangeRcvd)
	add("STATION_CALLSIGN", strings.ToUpper(q.MyCall))
	add("APP_C2A_TXID", q.TransmitterID)

	b.WriteString(strings.Join(fields, " "))
	b.WriteString(" <EOR>\n")
	return warnings
}

// formatMHz renders a frequency in MHz with trailing zeros trimmed.
func formatMHz(mhz float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.6f", mhz), "0")
	return strings.TrimRight(s, ".")
}

// joinNonEmpty joins the non-blank elements of parts with sep.
func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// splitOperators splits a Cabrillo OPERATORS value on whitespace,
// commas, or semicolons, uppercases, and deduplicates preserving order.
// The first operator is the primary.
func splitOperators(raw string) (string, []string) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == ';'
	})
	seen := make(map[string]bool, len(tokens))
	var ops []string
	for _, t := range tokens {
		op := strings.ToUpper(strings.TrimSpace(t))
		if op == "" || seen[op] {
			continue
		}
		seen[op] = true
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return "", nil
	}
	return ops[0], ops
}
