// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 1000000

// ExportYAML writes the logbook (or a filtered subset) to
// <dir>/export.yaml and returns the path written.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ExportJSON writes the logbook (or a filtered subset) to
// <dir>/export.json and returns the path written.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func (s *Store) exportResults(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return results, nil
}
