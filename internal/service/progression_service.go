// Package service wires the progression engine, simulation content and
// repositories into the operations the HTTP handlers expose.
package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rajdesai17/finplay/internal/models"
	"github.com/rajdesai17/finplay/internal/progression"
	"github.com/rajdesai17/finplay/internal/repository"
)

// ProgressionService owns the live UserState and the pending reward
// notification. All mutations go through it; every successful mutation is
// written through to the save slot.
type ProgressionService struct {
	mu       sync.Mutex
	state    models.UserState
	notifier *progression.Notifier

	repo         *repository.ProgressRepository
	dismissAfter time.Duration
	dismissTimer *time.Timer
	dismissGen   int
}

// NewProgressionService loads the persisted snapshot (if any) and builds
// the live state from it. dismissAfter is how long a posted reward stays
// visible before it is dismissed automatically; zero or negative disables
// auto-dismiss.
func NewProgressionService(repo *repository.ProgressRepository, dismissAfter time.Duration) *ProgressionService {
	return &ProgressionService{
		state:        progression.Initialize(repo.Load()),
		notifier:     progression.NewNotifier(),
		repo:         repo,
		dismissAfter: dismissAfter,
	}
}

// State returns a snapshot of the current progression state.
func (s *ProgressionService) State() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ApplyReward applies the reward to the live state, posts the notification
// and writes the new state through to storage. A storage failure does not
// roll back the in-memory state; it is logged and the snapshot is written
// again on the next mutation.
func (s *ProgressionService) ApplyReward(reward models.Reward) (models.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := progression.ApplyReward(s.state, reward)
	if err != nil {
		return models.UserState{}, fmt.Errorf("failed to apply reward: %w", err)
	}
	s.state = next

	s.notifier.Post(reward)
	s.scheduleAutoDismiss()

	if err := s.repo.Save(s.state); err != nil {
		log.Printf("Failed to persist progress: %v", err)
	}
	return s.state.Clone(), nil
}

// CurrentReward returns the pending reward notification, if one is showing.
func (s *ProgressionService) CurrentReward() (models.Reward, bool) {
	return s.notifier.Current()
}

// DismissReward clears the pending notification and reports whether one
// was showing.
func (s *ProgressionService) DismissReward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopDismissTimer()
	return s.notifier.Dismiss()
}

// Reset discards all progression: the live state returns to its default
// and the save slot is deleted. Any pending notification is dismissed.
func (s *ProgressionService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopDismissTimer()
	s.notifier.Dismiss()
	s.state = progression.DefaultState()

	if err := s.repo.Delete(); err != nil {
		return fmt.Errorf("failed to clear save slot: %w", err)
	}
	return nil
}

// Restore replaces the live state with an imported snapshot. The snapshot
// goes through the same catalog merge as a normal load, so stale or partial
// badge lists are tolerated.
func (s *ProgressionService) Restore(persisted *models.UserState) (models.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopDismissTimer()
	s.notifier.Dismiss()
	s.state = progression.Initialize(persisted)

	if err := s.repo.Save(s.state); err != nil {
		return models.UserState{}, fmt.Errorf("failed to persist restored progress: %w", err)
	}
	return s.state.Clone(), nil
}

// scheduleAutoDismiss arms the dismiss timer for the reward just posted,
// replacing any timer armed for an earlier reward. Caller holds s.mu.
func (s *ProgressionService) scheduleAutoDismiss() {
	s.stopDismissTimer()
	if s.dismissAfter <= 0 {
		return
	}
	gen := s.dismissGen
	s.dismissTimer = time.AfterFunc(s.dismissAfter, func() {
		s.autoDismiss(gen)
	})
}

// autoDismiss runs when the dismiss timer fires. The generation check
// drops callbacks from a timer that was replaced after it already fired.
func (s *ProgressionService) autoDismiss(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.dismissGen {
		return
	}
	s.dismissTimer = nil
	s.notifier.Dismiss()
}

// stopDismissTimer cancels the armed timer, if any. Caller holds s.mu.
func (s *ProgressionService) stopDismissTimer() {
	s.dismissGen++
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
}
