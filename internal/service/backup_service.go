package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rajdesai17/finplay/internal/models"
	"github.com/rajdesai17/finplay/internal/repository"
)

// BackupVersion identifies the backup payload layout.
const BackupVersion = 1

// BackupData is a full portable snapshot: the progression state plus the
// complete run history.
type BackupData struct {
	Version    int                    `json:"version"`
	ExportedAt time.Time              `json:"exported_at"`
	Progress   models.UserState       `json:"progress"`
	Runs       []models.SimulationRun `json:"runs"`
}

// BackupService exports and restores full snapshots of the user's data.
type BackupService struct {
	progression *ProgressionService
	runs        *repository.RunRepository
}

// NewBackupService creates a new backup service
func NewBackupService(progression *ProgressionService, runs *repository.RunRepository) *BackupService {
	return &BackupService{progression: progression, runs: runs}
}

// Export captures the current progression state and run history.
func (s *BackupService) Export() (BackupData, error) {
	runs, err := s.runs.All()
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to export runs: %w", err)
	}
	return BackupData{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
		Progress:   s.progression.State(),
		Runs:       runs,
	}, nil
}

// ExportToWriter writes the backup as indented JSON.
func (s *BackupService) ExportToWriter(w io.Writer) error {
	data, err := s.Export()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import replaces the live progression state and run history with the
// backup's contents. The imported progress goes through the normal catalog
// merge, so backups from older versions load cleanly.
func (s *BackupService) Import(data BackupData) error {
	if data.Version != BackupVersion {
		return fmt.Errorf("unsupported backup version %d", data.Version)
	}

	progress := data.Progress
	if _, err := s.progression.Restore(&progress); err != nil {
		return err
	}

	if err := s.runs.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear run history: %w", err)
	}
	for _, run := range data.Runs {
		if err := s.runs.Record(run); err != nil {
			return fmt.Errorf("failed to import run %s: %w", run.ID, err)
		}
	}
	return nil
}

// ImportFromReader decodes a JSON backup and imports it.
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}
	return s.Import(data)
}
