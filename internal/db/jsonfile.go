// Package db provides the JSON-file storage implementation.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

const tmpSuffix = ".tmp"

// JSONFile implements schedule.Repository over a single timetable document
// on disk. The document is an array of clinic objects; saves overwrite the
// whole file.
type JSONFile struct {
	path string
}

// New creates a repository backed by the given file path. The file does not
// need to exist yet.
func New(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the document file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the full document. A missing file loads as an empty document.
func (f *JSONFile) Load(_ context.Context) ([]*schedule.Clinic, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading timetable: %w", err)
	}

	var clinics []*schedule.Clinic
	if err := json.Unmarshal(data, &clinics); err != nil {
		return nil, fmt.Errorf("parsing timetable: %w", err)
	}
	return clinics, nil
}

// Save overwrites the document. The data is written to a temp file in the
// same directory and renamed into place, so readers never observe a partial
// document.
func (f *JSONFile) Save(_ context.Context, clinics []*schedule.Clinic) error {
	if clinics == nil {
		clinics = []*schedule.Clinic{}
	}

	data, err := json.MarshalIndent(clinics, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling timetable: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp := f.path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing timetable: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing timetable: %w", err)
	}
	return nil
}

// Close releases resources. A file repository holds none between calls.
func (f *JSONFile) Close() error {
	return nil
}
