package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rajdesai17/finplay/internal/database"
	"github.com/rajdesai17/finplay/internal/models"
)

// SaveSlotKey is the fixed application-scoped identifier for the single
// progress snapshot. It matches the storage key the web client uses, so
// imported save data keeps its meaning.
const SaveSlotKey = "finplay_user"

// ProgressRepository persists the UserState snapshot in a single save slot.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Save serializes the full snapshot into the save slot, replacing any
// previous payload.
func (r *ProgressRepository) Save(state models.UserState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}

	query := r.db.Dialect.UpsertSaveSlot()
	if _, err := r.db.Exec(query, SaveSlotKey, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write save slot: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. It returns nil when the slot is
// absent or its payload does not parse; the caller treats both the same
// way and falls back to the default state. Load never returns an error for
// corrupt data.
func (r *ProgressRepository) Load() *models.UserState {
	var payload string
	query := `SELECT payload FROM save_slots WHERE slot_key = ?`
	if err := r.db.QueryRow(query, SaveSlotKey).Scan(&payload); err != nil {
		// Unreadable storage degrades to a fresh state, same as absent
		return nil
	}

	var state models.UserState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil
	}
	return &state
}

// Delete removes the save slot.
func (r *ProgressRepository) Delete() error {
	query := `DELETE FROM save_slots WHERE slot_key = ?`
	_, err := r.db.Exec(query, SaveSlotKey)
	return err
}
