// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

const sampleLog = `START-OF-LOG: 3.0
CONTEST: CQ-WW-CW
CALLSIGN: DL1ABC
QSO: 14000 CW 2025-09-01 1200 DL1ABC 599 001 K1AA 599 002
QSO: 7025 CW 2025-09-01 1203 DL1ABC 599 002 JA1BB 599 005
QSO: 14250 PH 2025-09-01 1210 DL1ABC 59 003 VK3CC 59 011
END-OF-LOG:
`

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.LogbookConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func parseSample(t *testing.T) *cabrillo.Log {
	t.Helper()
	log, err := cabrillo.Parse(strings.NewReader(sampleLog), types.ParserConfig{})
	require.NoError(t, err)
	return log
}

func ingestSample(t *testing.T, s *Store, source string) {
	t.Helper()
	n, err := s.Ingest(context.Background(), source, parseSample(t))
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestIngestAndSearchFilters(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s, "/logs/cqww.cbr")

	tests := []struct {
		name      string
		opts      QueryOptions
		wantCalls []string
	}{
		{
			name:      "filter by band",
			opts:      QueryOptions{Band: "20M"},
			wantCalls: []string{"K1AA", "VK3CC"},
		},
		{
			name:      "filter by mode uses mapped ADIF mode",
			opts:      QueryOptions{Mode: "SSB"},
			wantCalls: []string{"VK3CC"},
		},
		{
			name:      "band and mode combined",
			opts:      QueryOptions{Band: "20M", Mode: "CW"},
			wantCalls: []string{"K1AA"},
		},
		{
			name:      "filter by contest",
			opts:      QueryOptions{Contest: "CQ-WW-CW"},
			wantCalls: []string{"K1AA", "JA1BB", "VK3CC"},
		},
		{
			name:      "full-text search by callsign",
			opts:      QueryOptions{Query: "JA1BB"},
			wantCalls: []string{"JA1BB"},
		},
		{
			name:      "no match",
			opts:      QueryOptions{Band: "160M"},
			wantCalls: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Search(context.Background(), tt.opts)
			require.NoError(t, err)

			var calls []string
			for _, r := range results {
				calls = append(calls, r.Call)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestSearchProvenance(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s, "/logs/cqww.cbr")

	results, err := s.Search(context.Background(), QueryOptions{Query: "K1AA"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "K1AA", r.Call)
	assert.Equal(t, "20M", r.Band)
	assert.Equal(t, "CW", r.Mode)
	assert.Equal(t, "2025-09-01", r.Date)
	assert.Equal(t, "1200", r.Time)
	assert.Equal(t, "CQ-WW-CW", r.Contest)
	assert.Equal(t, "DL1ABC", r.Station)
	assert.Equal(t, "/logs/cqww.cbr", r.Source)
}

func TestReingestReplaces(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s, "/logs/cqww.cbr")
	ingestSample(t, s, "/logs/cqww.cbr")

	results, err := s.Search(context.Background(), QueryOptions{Contest: "CQ-WW-CW", MaxResults: 100})
	require.NoError(t, err)
	assert.Len(t, results, 3, "re-ingest must replace, not duplicate")

	// FTS index must not hold stale rows either.
	results, err = s.Search(context.Background(), QueryOptions{Query: "K1AA"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchMaxResults(t *testing.T) {
	s, err := NewStore(types.LogbookConfig{Dir: t.TempDir(), MaxResults: 2})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Ingest(context.Background(), "/logs/cqww.cbr", parseSample(t))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), QueryOptions{Contest: "CQ-WW-CW"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.True(t, QueryOptions{MaxResults: 5}.IsEmpty())
	assert.False(t, QueryOptions{Band: "20M"}.IsEmpty())
	assert.False(t, QueryOptions{Query: "K1AA"}.IsEmpty())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.LogbookConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Ingest(context.Background(), "/logs/cqww.cbr", parseSample(t))
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		path, err := s.ExportYAML(context.Background(), QueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "export.yaml"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var results []QueryResult
		require.NoError(t, yaml.Unmarshal(data, &results))
		assert.Len(t, results, 3)
	})

	t.Run("json filtered", func(t *testing.T) {
		path, err := s.ExportJSON(context.Background(), QueryOptions{Band: "40M"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var results []QueryResult
		require.NoError(t, json.Unmarshal(data, &results))
		require.Len(t, results, 1)
		assert.Equal(t, "JA1BB", results[0].Call)
	})
}
