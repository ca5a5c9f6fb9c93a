// Package storage writes and reads dataset artifacts and export files
// under the output directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/export"
)

// LatestDatasetName is the pointer to the most recent validated dataset.
// query and export default to it when no explicit input is given.
const LatestDatasetName = "latest.json"

type Storage struct {
	outputDir string
}

// New creates a Storage rooted at outputDir, creating it if needed.
func New(outputDir string) (*Storage, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return &Storage{outputDir: outputDir}, nil
}

// Dir returns the output directory path.
func (s *Storage) Dir() string {
	return s.outputDir
}

// SaveDataset writes the validated dataset as a timestamped JSON artifact
// and refreshes the latest-dataset pointer. Returns the artifact path.
func (s *Storage) SaveDataset(data *models.ScrapedData) (string, error) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal dataset: %w", err)
	}

	name := fmt.Sprintf("dataset-%s.json", time.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return "", fmt.Errorf("failed to save dataset %s: %w", path, err)
	}

	latest := filepath.Join(s.outputDir, LatestDatasetName)
	if err := os.WriteFile(latest, encoded, 0644); err != nil {
		return "", fmt.Errorf("failed to update %s: %w", latest, err)
	}

	return path, nil
}

// LoadDataset reads a dataset artifact. An empty path loads the latest one.
func (s *Storage) LoadDataset(path string) (*models.ScrapedData, error) {
	if path == "" {
		path = filepath.Join(s.outputDir, LatestDatasetName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var data models.ScrapedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if data.Products == nil {
		data.Products = []models.Product{}
	}
	if data.QAItems == nil {
		data.QAItems = []models.QAItem{}
	}
	return &data, nil
}

// DeliverExport writes an export file into the output directory with its
// exact content and returns the written path.
func (s *Storage) DeliverExport(f export.File) (string, error) {
	path := filepath.Join(s.outputDir, f.Filename)
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}
	return path, nil
}

// HasLatest reports whether a latest-dataset pointer exists.
func (s *Storage) HasLatest() bool {
	_, err := os.Stat(filepath.Join(s.outputDir, LatestDatasetName))
	return err == nil
}
