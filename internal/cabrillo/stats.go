// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cabrillo

import (
	"sort"

	"github.com/ertig3/cabrillo2adif/internal/band"
)

// Stats summarizes a parsed log.
type Stats struct {
	Contest  string   `json:"contest" yaml:"contest"`
	Callsign string   `json:"callsign" yaml:"callsign"`
	QSOs     int      `json:"qsos" yaml:"qsos"`
	Rejected int      `json:"rejected" yaml:"rejected"`
	Warnings int      `json:"warnings" yaml:"warnings"`
	Bands    []string `json:"bands" yaml:"bands"`
	Modes    []string `json:"modes" yaml:"modes"`
}

// Stats computes per-log statistics: QSO count and the distinct bands
// and modes worked. Frequencies outside the band plan simply do not
// contribute a band.
func (l *Log) Stats() Stats {
	bands := make(map[string]bool)
	modes := make(map[string]bool)

	for _, q := range l.QSOs {
		if q.Mode != "" {
			modes[q.Mode] = true
		}
		if q.Frequency != "" {
			if b, ok := band.FromFrequency(q.Frequency); ok {
				bands[string(b)] = true
			}
		}
	}

	s := Stats{
		Contest:  l.Info.Contest,
		Callsign: l.Info.Callsign,
		QSOs:     len(l.QSOs),
		Rejected: l.Rejected,
		Warnings: len(l.Warnings) + l.WarningsDropped,
		Bands:    keys(bands),
		Modes:    keys(modes),
	}
	return s
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
