package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// ReportStore persists and retrieves scan results so a scan can be
// re-examined (or diffed in CI) without re-reading the source tree.
type ReportStore interface {
	SaveResults(path m.Path, results []m.ScanResult) error
	LoadResults(path m.Path) ([]m.ScanResult, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation backed by a
// JSON file.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveResults(path m.Path, results []m.ScanResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return os.WriteFile(string(path), append(data, '\n'), 0o600)
}

func (rs *reportStore) LoadResults(path m.Path) ([]m.ScanResult, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var results []m.ScanResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decode results from %s: %w", path, err)
	}

	return results, nil
}
