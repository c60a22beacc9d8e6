package models

import "time"

// SimulationRun records one completed play of a simulation and the reward
// it granted.
type SimulationRun struct {
	ID              string    `json:"id"`
	SimulationID    string    `json:"simulation_id"`
	Score           int       `json:"score"`
	XPAwarded       int       `json:"xp_awarded"`
	CashbackAwarded int       `json:"cashback_awarded"`
	BadgeAwarded    string    `json:"badge_awarded,omitempty"`
	CompletedAt     time.Time `json:"completed_at"`
}

// SimulationSummary aggregates run history for one simulation.
type SimulationSummary struct {
	SimulationID  string    `json:"simulation_id"`
	Runs          int       `json:"runs"`
	BestScore     int       `json:"best_score"`
	TotalXP       int       `json:"total_xp"`
	TotalCashback int       `json:"total_cashback"`
	LastPlayed    time.Time `json:"last_played"`
}

// ReportCard is the progress read model shown on the report screen.
type ReportCard struct {
	TotalRuns  int                 `json:"total_runs"`
	Summaries  []SimulationSummary `json:"summaries"`
	RecentRuns []SimulationRun     `json:"recent_runs"`
}
