// Package progression implements the reward/progression engine: deriving
// level from XP, applying reward deltas, merging the badge catalog against
// persisted data, and tracking the single pending reward notification.
package progression

import (
	"errors"

	"github.com/rajdesai17/finplay/internal/catalog"
	"github.com/rajdesai17/finplay/internal/models"
)

// ErrInvalidReward is returned when a reward carries negative XP or
// cashback. Both values only ever add; a negative delta would break the
// monotonicity of the user's progress.
var ErrInvalidReward = errors.New("reward xp and cashback must be non-negative")

// LevelForXP derives the level from total XP. Every 100 XP is one level,
// starting at level 1, with no cap.
func LevelForXP(xp int) int {
	return xp/100 + 1
}

// DefaultState returns the zero-progress state with the full unearned
// badge catalog.
func DefaultState() models.UserState {
	return models.UserState{
		XP:       0,
		Level:    1,
		Cashback: 0,
		Badges:   catalog.Badges(),
	}
}

// Initialize builds the live state from an optional persisted snapshot.
// A nil snapshot (absent or unreadable save data) yields the default state.
//
// The badge merge is a two-step algorithm: start from the full current
// catalog with every badge unearned, then overlay the earned flag of each
// persisted entry whose id matches a catalog id. Persisted ids that are no
// longer in the catalog are dropped; catalog ids missing from the snapshot
// stay unearned. This lets the catalog grow across versions without
// breaking old save data.
//
// XP and cashback are taken from the snapshot (negative values in a
// tampered snapshot reset to zero); level is always recomputed from XP.
func Initialize(persisted *models.UserState) models.UserState {
	if persisted == nil {
		return DefaultState()
	}

	earned := make(map[string]bool, len(persisted.Badges))
	for _, b := range persisted.Badges {
		if b.Earned {
			earned[b.ID] = true
		}
	}

	badges := catalog.Badges()
	for i := range badges {
		if earned[badges[i].ID] {
			badges[i].Earned = true
		}
	}

	xp := persisted.XP
	if xp < 0 {
		xp = 0
	}
	cashback := persisted.Cashback
	if cashback < 0 {
		cashback = 0
	}

	return models.UserState{
		XP:       xp,
		Level:    LevelForXP(xp),
		Cashback: cashback,
		Badges:   badges,
	}
}

// ApplyReward is the single legal state transition. It returns a new
// UserState with the reward's XP and cashback added, the level recomputed,
// and the named badge (if any) marked earned. The input state is not
// modified.
//
// Earning an already-earned badge is a no-op, as is naming a badge id
// outside the catalog; neither is an error. A zero reward is legal.
func ApplyReward(current models.UserState, reward models.Reward) (models.UserState, error) {
	if reward.XP < 0 || reward.Cashback < 0 {
		return models.UserState{}, ErrInvalidReward
	}

	next := current.Clone()
	next.XP += reward.XP
	next.Level = LevelForXP(next.XP)
	next.Cashback += reward.Cashback

	if reward.BadgeID != "" {
		for i := range next.Badges {
			if next.Badges[i].ID == reward.BadgeID {
				next.Badges[i].Earned = true
				break
			}
		}
	}

	return next, nil
}
