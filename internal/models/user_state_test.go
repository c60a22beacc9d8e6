package models

import "testing"

func TestCloneIsDeep(t *testing.T) {
	original := UserState{
		XP:     50,
		Level:  1,
		Badges: []Badge{{ID: "budget-boss"}, {ID: "tax-ninja"}},
	}

	cp := original.Clone()
	cp.Badges[0].Earned = true

	if original.Badges[0].Earned {
		t.Error("Mutating the clone's badges leaked into the original")
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 0},
		{45, 45},
		{99, 99},
		{100, 0},
		{155, 55},
	}

	for _, tt := range tests {
		s := UserState{XP: tt.xp}
		if got := s.LevelProgress(); got != tt.want {
			t.Errorf("LevelProgress() with XP %d = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestEarnedBadges(t *testing.T) {
	s := UserState{
		Badges: []Badge{
			{ID: "budget-boss", Earned: true},
			{ID: "tax-ninja"},
			{ID: "barter-king", Earned: true},
		},
	}

	earned := s.EarnedBadges()
	if len(earned) != 2 {
		t.Fatalf("EarnedBadges() returned %d, want 2", len(earned))
	}
	if earned[0].ID != "budget-boss" || earned[1].ID != "barter-king" {
		t.Errorf("EarnedBadges() = %v, wrong ids", earned)
	}
}

func TestRewardIsZero(t *testing.T) {
	if !(Reward{}).IsZero() {
		t.Error("Empty reward not reported as zero")
	}
	if (Reward{XP: 1}).IsZero() {
		t.Error("Reward with XP reported as zero")
	}
	if (Reward{BadgeID: "tax-ninja"}).IsZero() {
		t.Error("Badge-only reward reported as zero")
	}
}
