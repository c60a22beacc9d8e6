package models

// Reward is an ephemeral instruction produced by a simulation on
// completion. It is applied to the UserState and shown as a notification;
// it is never persisted. BadgeID optionally names a catalog badge to mark
// earned; ids outside the catalog are ignored.
type Reward struct {
	XP       int    `json:"xp"`
	Cashback int    `json:"cashback"`
	BadgeID  string `json:"badge,omitempty"`
}

// IsZero reports whether the reward grants nothing. Zero rewards are legal
// and still produce a notification.
func (r Reward) IsZero() bool {
	return r.XP == 0 && r.Cashback == 0 && r.BadgeID == ""
}
