// Package storage handles the run's file I/O: loading the recipient
// and event collections and writing the per-stage output documents.
// Everything is written wholesale; there is no cross-run state.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fundingforward/outreach/internal/domain"
)

// Store writes output documents under a base output directory.
type Store struct {
	outputDir string
}

// New creates a Store rooted at outputDir. The directory is created on
// first write, not here, so a dry decision run needs no filesystem.
func New(outputDir string) *Store {
	return &Store{outputDir: outputDir}
}

// OutputDir returns the base output directory.
func (s *Store) OutputDir() string { return s.outputDir }

// LoadRecipients reads the recipients collection. Records stay raw JSON
// objects so the validator sees exactly what was in the file.
func LoadRecipients(path string) ([]domain.Recipient, error) {
	var recipients []domain.Recipient
	if err := loadJSON(path, &recipients); err != nil {
		return nil, fmt.Errorf("loading recipients: %w", err)
	}
	return recipients, nil
}

// LoadEvents reads the events collection.
func LoadEvents(path string) ([]domain.Event, error) {
	var events []domain.Event
	if err := loadJSON(path, &events); err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	return events, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteStageOutput writes one stage's document to
// day_<stage>_emails.json, replacing any previous run's file.
func (s *Store) WriteStageOutput(out domain.StageOutput) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.outputDir, fmt.Sprintf("day_%s_emails.json", out.Stage))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing stage output: %w", err)
	}
	return path, nil
}
