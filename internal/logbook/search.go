// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for logbook searches.
type QueryOptions struct {
	// Query is an FTS5 search string over callsigns and exchanges.
	Query string

	// Band filters by ADIF band name (e.g. "20M").
	Band string

	// Mode filters by ADIF mode (e.g. "CW", "SSB").
	Mode string

	// Contest filters by the Cabrillo CONTEST header value.
	Contest string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Band == "" && q.Mode == "" && q.Contest == ""
}

// QueryResult is one matched QSO with its log's provenance.
type QueryResult struct {
	Call     string `json:"call" yaml:"call"`
	Band     string `json:"band,omitempty" yaml:"band,omitempty"`
	Mode     string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Freq     string `json:"freq,omitempty" yaml:"freq,omitempty"`
	RSTSent  string `json:"rst_sent,omitempty" yaml:"rst_sent,omitempty"`
	RSTRcvd  string `json:"rst_rcvd,omitempty" yaml:"rst_rcvd,omitempty"`
	ExchSent string `json:"exch_sent,omitempty" yaml:"exch_sent,omitempty"`
	ExchRcvd string `json:"exch_rcvd,omitempty" yaml:"exch_rcvd,omitempty"`
	Contest  string `json:"contest,omitempty" yaml:"contest,omitempty"`
	Station  string `json:"station,omitempty" yaml:"station,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Search queries the logbook with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// filter-only queries come back in log and contact order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT q.call, q.band, q.mode, q.qso_date, q.time_on, q.freq,
				q.rst_sent, q.rst_rcvd, q.exch_sent, q.exch_rcvd,
				l.contest, l.callsign, l.source_path
			FROM qsos_fts
			JOIN qsos q ON q.rowid = qsos_fts.rowid
			JOIN logs l ON q.log_id = l.id
			WHERE qsos_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT q.call, q.band, q.mode, q.qso_date, q.time_on, q.freq,
				q.rst_sent, q.rst_rcvd, q.exch_sent, q.exch_rcvd,
				l.contest, l.callsign, l.source_path
			FROM qsos q
			JOIN logs l ON q.log_id = l.id
			WHERE 1=1`)
	}

	if opts.Band != "" {
		qb.WriteString(` AND q.band = ?`)
		args = append(args, strings.ToUpper(opts.Band))
	}
	if opts.Mode != "" {
		qb.WriteString(` AND q.mode = ?`)
		args = append(args, strings.ToUpper(opts.Mode))
	}
	if opts.Contest != "" {
		qb.WriteString(` AND l.contest = ?`)
		args = append(args, opts.Contest)
	}

	if useFTS {
		qb.WriteString(` ORDER BY qsos_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY q.log_id, q.seq`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying logbook: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		if err := rows.Scan(
			&r.Call, &r.Band, &r.Mode, &r.Date, &r.Time, &r.Freq,
			&r.RSTSent, &r.RSTRcvd, &r.ExchSent, &r.ExchRcvd,
			&r.Contest, &r.Station, &r.Source,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
