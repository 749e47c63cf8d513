// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cabrillo parses Cabrillo 2.0/3.0 contest log files into an
// ordered sequence of QSO records plus header metadata. Malformed or
// unrecognized lines are recorded as warnings and skipped; parsing only
// fails when the input itself cannot be read.
package cabrillo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ertig3/cabrillo2adif/pkg/types"
)

// defaultMaxWarnings bounds stored warnings per file; issues beyond the
// cap are still counted in Log.WarningsDropped.
const defaultMaxWarnings = 1000

// dateLayouts lists the accepted QSO date formats, tried in order.
var dateLayouts = []string{"2006-01-02", "20060102", "01/02/2006", "02.01.2006"}

// Log is the result of parsing one Cabrillo file.
type Log struct {
	// Info holds the header metadata (CONTEST, CALLSIGN, CATEGORY-*, ...).
	Info types.ContestInfo

	// QSOs holds the recognized contacts in original log order.
	QSOs []types.QSO

	// Warnings lists recoverable issues encountered while parsing.
	Warnings []types.Warning

	// WarningsDropped counts warnings discarded past the storage cap.
	WarningsDropped int

	// Rejected counts QSO lines that could not be parsed into a record.
	Rejected int
}

// Records returns the QSOs eligible for ADIF emission, excluding X-QSO
// entries.
func (l *Log) Records() []types.QSO {
	out := make([]types.QSO, 0, len(l.QSOs))
	for _, q := range l.QSOs {
		if !q.Excluded {
			out = append(out, q)
		}
	}
	return out
}

type parser struct {
	cfg types.ParserConfig
	log *Log
}

// ParseFile reads and parses the Cabrillo file at path. A missing or
// unreadable file is a fatal error; everything past that is best-effort.
func ParseFile(path string, cfg types.ParserConfig) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cabrillo file %s: %w", path, err)
	}
	return Parse(strings.NewReader(decode(data)), cfg)
}

// Parse parses Cabrillo text from r.
func Parse(r io.Reader, cfg types.ParserConfig) (*Log, error) {
	if cfg.MaxWarnings <= 0 {
		cfg.MaxWarnings = defaultMaxWarnings
	}
	p := &parser{cfg: cfg, log: &Log{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p.parseLine(lineNum, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cabrillo input: %w", err)
	}

	return p.log, nil
}

// decode returns the file contents as a UTF-8 string. Contest logs are
// often exported in Latin-1 or CP1252; when the bytes are not valid
// UTF-8 each byte is widened to its Latin-1 code point, which keeps the
// ASCII log structure intact either way.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

func (p *parser) parseLine(lineNum int, line string) {
	upper := strings.ToUpper(line)
	switch {
	case strings.HasPrefix(upper, "QSO:"):
		p.parseQSO(lineNum, line, line[len("QSO:"):], false)
	case strings.HasPrefix(upper, "X-QSO:"):
		p.parseQSO(lineNum, line, line[len("X-QSO:"):], true)
	default:
		p.parseHeader(lineNum, line)
	}
}

// minQSOTokens is the fewest tokens a QSO line may carry and still be
// parsed: freq mode date time mycall rst-s.
const minQSOTokens = 6

// parseQSO tokenizes one QSO/X-QSO line into a record. Field order is
// the standard Cabrillo layout; short lines parse the fields that are
// present as long as both callsigns survive.
func (p *parser) parseQSO(lineNum int, raw, data string, excluded bool) {
	if excluded && !p.cfg.IncludeXQSO {
		p.warn(lineNum, "X-QSO line excluded", raw)
		return
	}

	parts := strings.Fields(data)
	if len(parts) < minQSOTokens {
		p.warnf(lineNum, raw, "QSO line has %d fields, need at least %d", len(parts), minQSOTokens)
		p.log.Rejected++
		return
	}

	field := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	q := types.QSO{
		Frequency:    field(0),
		Mode:         strings.ToUpper(field(1)),
		Date:         field(2),
		Time:         field(3),
		MyCall:       strings.ToUpper(field(4)),
		RSTSent:      field(5),
		ExchangeSent: field(6),
		DXCall:       strings.ToUpper(field(7)),
		RSTRcvd:      field(8),
		ExchangeRcvd: field(9),
		Excluded:     excluded,
		Line:         lineNum,
		RawLine:      raw,
	}
	if len(parts) > 10 {
		q.TransmitterID = parts[10]
	}

	if q.DXCall == "" {
		p.warn(lineNum, "QSO line missing worked callsign", raw)
		p.log.Rejected++
		return
	}
	if q.MyCall == "" {
		p.warn(lineNum, "QSO line missing station callsign", raw)
		p.log.Rejected++
		return
	}

	if q.Frequency != "" {
		if _, err := strconv.ParseFloat(q.Frequency, 64); err != nil {
			p.warnf(lineNum, raw, "invalid frequency %q", q.Frequency)
			q.Frequency = ""
		}
	}

	if q.Date != "" {
		if norm, ok := normalizeDate(q.Date); ok {
			q.Date = norm
		} else {
			p.warnf(lineNum, raw, "invalid date %q", q.Date)
			q.Date = ""
		}
	}

	if q.Time != "" {
		if norm, ok := normalizeTime(q.Time); ok {
			q.Time = norm
		} else {
			p.warnf(lineNum, raw, "invalid time %q", q.Time)
			q.Time = ""
		}
	}

	p.log.QSOs = append(p.log.QSOs, q)
}

// normalizeDate parses a date token in any accepted layout and returns
// it as YYYY-MM-DD.
func normalizeDate(token string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// normalizeTime parses HHMM or HH:MM (minutes optionally short, e.g.
// "945") and returns zero-padded HHMM.
func normalizeTime(token string) (string, bool) {
	clean := strings.ReplaceAll(token, ":", "")
	if len(clean) < 3 || len(clean) > 4 {
		return "", false
	}
	clean = strings.Repeat("0", 4-len(clean)) + clean
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	hour, _ := strconv.Atoi(clean[:2])
	minute, _ := strconv.Atoi(clean[2:])
	if hour > 23 || minute > 59 {
		return "", false
	}
	return clean, true
}

func (p *parser) warn(lineNum int, msg, raw string) {
	if len(p.log.Warnings) >= p.cfg.MaxWarnings {
		p.log.WarningsDropped++
		return
	}
	p.log.Warnings = append(p.log.Warnings, types.Warning{Line: lineNum, Message: msg, Raw: raw})
}

func (p *parser) warnf(lineNum int, raw, format string, args ...any) {
	p.warn(lineNum, fmt.Sprintf(format, args...), raw)
}
