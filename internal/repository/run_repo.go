package repository

import (
	"fmt"

	"github.com/rajdesai17/finplay/internal/database"
	"github.com/rajdesai17/finplay/internal/models"
)

// RunRepository records completed simulation runs and serves the report
// card aggregates.
type RunRepository struct {
	db *database.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *database.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Record inserts a completed run.
func (r *RunRepository) Record(run models.SimulationRun) error {
	query := `INSERT INTO simulation_runs (id, simulation_id, score, xp_awarded, cashback_awarded, badge_awarded, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, run.ID, run.SimulationID, run.Score, run.XPAwarded,
		run.CashbackAwarded, run.BadgeAwarded, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (r *RunRepository) Recent(limit int) ([]models.SimulationRun, error) {
	query := `SELECT id, simulation_id, score, xp_awarded, cashback_awarded, badge_awarded, completed_at
		FROM simulation_runs ORDER BY completed_at DESC LIMIT ?`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.SimulationRun
	for rows.Next() {
		var run models.SimulationRun
		if err := rows.Scan(&run.ID, &run.SimulationID, &run.Score, &run.XPAwarded,
			&run.CashbackAwarded, &run.BadgeAwarded, &run.CompletedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// All returns every recorded run, oldest first. Used by backup export.
func (r *RunRepository) All() ([]models.SimulationRun, error) {
	query := `SELECT id, simulation_id, score, xp_awarded, cashback_awarded, badge_awarded, completed_at
		FROM simulation_runs ORDER BY completed_at ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.SimulationRun
	for rows.Next() {
		var run models.SimulationRun
		if err := rows.Scan(&run.ID, &run.SimulationID, &run.Score, &run.XPAwarded,
			&run.CashbackAwarded, &run.BadgeAwarded, &run.CompletedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Summaries aggregates run history per simulation.
func (r *RunRepository) Summaries() ([]models.SimulationSummary, error) {
	query := `SELECT simulation_id, COUNT(*), MAX(score), SUM(xp_awarded), SUM(cashback_awarded)
		FROM simulation_runs GROUP BY simulation_id ORDER BY simulation_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.SimulationSummary
	for rows.Next() {
		var s models.SimulationSummary
		if err := rows.Scan(&s.SimulationID, &s.Runs, &s.BestScore, &s.TotalXP,
			&s.TotalCashback); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Timestamps are read from the plain column rather than MAX() so the
	// driver's DATETIME conversion applies
	lastQuery := `SELECT completed_at FROM simulation_runs WHERE simulation_id = ?
		ORDER BY completed_at DESC LIMIT 1`
	for i := range summaries {
		if err := r.db.QueryRow(lastQuery, summaries[i].SimulationID).Scan(&summaries[i].LastPlayed); err != nil {
			return nil, err
		}
	}
	return summaries, nil
}

// Count returns the total number of recorded runs.
func (r *RunRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM simulation_runs`).Scan(&count)
	return count, err
}

// DeleteAll removes all run history. Used by the reset lifecycle and by
// backup restore.
func (r *RunRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM simulation_runs`)
	return err
}
