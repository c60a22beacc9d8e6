package models

// UserState is the canonical progression snapshot. Level is always derived
// from XP and is stored only for display and save-file compatibility; it is
// recomputed whenever the snapshot is loaded or mutated.
type UserState struct {
	XP       int     `json:"xp"`
	Level    int     `json:"level"`
	Cashback int     `json:"cashback"`
	Badges   []Badge `json:"badges"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the canonical badge slice to mutation.
func (s UserState) Clone() UserState {
	cp := s
	cp.Badges = make([]Badge, len(s.Badges))
	copy(cp.Badges, s.Badges)
	return cp
}

// LevelProgress returns the XP earned within the current level (0-99),
// used by progress displays.
func (s UserState) LevelProgress() int {
	return s.XP % 100
}

// EarnedBadges returns only the badges the user has unlocked.
func (s UserState) EarnedBadges() []Badge {
	var earned []Badge
	for _, b := range s.Badges {
		if b.Earned {
			earned = append(earned, b)
		}
	}
	return earned
}
