package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rajdesai17/finplay/internal/content"
	"github.com/rajdesai17/finplay/internal/models"
	"github.com/rajdesai17/finplay/internal/repository"
)

// ErrUnknownSimulation is returned when a completion names a simulation id
// that is not in the content catalog.
var ErrUnknownSimulation = errors.New("unknown simulation")

// CompletionResult is what a finished simulation run produces: the reward
// that was granted and the progression state after applying it.
type CompletionResult struct {
	Reward models.Reward    `json:"reward"`
	State  models.UserState `json:"state"`
}

// SimulationService turns finished simulation outcomes into rewards and
// keeps the run history behind the report card.
type SimulationService struct {
	progression *ProgressionService
	runs        *repository.RunRepository
}

// NewSimulationService creates a new simulation service
func NewSimulationService(progression *ProgressionService, runs *repository.RunRepository) *SimulationService {
	return &SimulationService{progression: progression, runs: runs}
}

// List returns the playable simulation catalog.
func (s *SimulationService) List() []content.Simulation {
	return content.Simulations()
}

// Complete grades a finished run with the simulation's reward rule, applies
// the reward and records the run. A failure to record the run is logged but
// does not undo the reward; history is advisory, progression is not.
func (s *SimulationService) Complete(simulationID string, outcome content.Outcome) (CompletionResult, error) {
	sim, ok := content.Find(simulationID)
	if !ok {
		return CompletionResult{}, fmt.Errorf("%w: %s", ErrUnknownSimulation, simulationID)
	}

	reward := sim.Reward(outcome)
	state, err := s.progression.ApplyReward(reward)
	if err != nil {
		return CompletionResult{}, err
	}

	run := models.SimulationRun{
		ID:              uuid.NewString(),
		SimulationID:    sim.ID,
		Score:           outcome.Score,
		XPAwarded:       reward.XP,
		CashbackAwarded: reward.Cashback,
		BadgeAwarded:    reward.BadgeID,
		CompletedAt:     time.Now().UTC(),
	}
	if err := s.runs.Record(run); err != nil {
		log.Printf("Failed to record run for %s: %v", sim.ID, err)
	}

	return CompletionResult{Reward: reward, State: state}, nil
}

// Report builds the report card from the recorded run history.
func (s *SimulationService) Report() (models.ReportCard, error) {
	count, err := s.runs.Count()
	if err != nil {
		return models.ReportCard{}, fmt.Errorf("failed to count runs: %w", err)
	}
	summaries, err := s.runs.Summaries()
	if err != nil {
		return models.ReportCard{}, fmt.Errorf("failed to summarize runs: %w", err)
	}
	recent, err := s.runs.Recent(10)
	if err != nil {
		return models.ReportCard{}, fmt.Errorf("failed to load recent runs: %w", err)
	}

	return models.ReportCard{
		TotalRuns:  count,
		Summaries:  summaries,
		RecentRuns: recent,
	}, nil
}

// ResetHistory deletes all recorded runs. Used by the reset lifecycle.
func (s *SimulationService) ResetHistory() error {
	return s.runs.DeleteAll()
}
