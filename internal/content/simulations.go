// Package content defines the simulation catalog and its reward rules.
// The point weights and thresholds are game-design constants; they are
// data, not derived values.
package content

import (
	"math"

	"github.com/rajdesai17/finplay/internal/catalog"
	"github.com/rajdesai17/finplay/internal/models"
)

// Simulation categories shown in the UI.
const (
	CategorySimulation = "simulation"
	CategoryGame       = "game"
)

// EMIPurchaseCount is the number of purchase decisions in the EMI
// challenge; the final grade is the average decision score (0-10 each).
const EMIPurchaseCount = 5

// Outcome carries the raw result a simulation reports on completion. Each
// rule reads only the fields its game produces; the rest stay zero.
type Outcome struct {
	// Score is the game's primary metric: decision points for the EMI
	// challenge (total across purchases), correct answers for the scam
	// games, coins banked for the piggy bank, trades for the barter game.
	Score int `json:"score"`

	// Budget simulation
	Savings        int `json:"savings,omitempty"`
	SavingsPercent int `json:"savings_percent,omitempty"`

	// Freelancer life
	Balance  int  `json:"balance,omitempty"`
	Earned   int  `json:"earned,omitempty"`
	Projects int  `json:"projects,omitempty"`
	Bankrupt bool `json:"bankrupt,omitempty"`

	// Side hustle builder
	ROI    int `json:"roi,omitempty"`
	Profit int `json:"profit,omitempty"`

	// Tax return
	Accuracy int `json:"accuracy,omitempty"`
}

// RewardRule converts a raw outcome into the reward to apply.
type RewardRule func(Outcome) models.Reward

// Simulation is one playable learning module.
type Simulation struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Reward      RewardRule `json:"-"`
}

// Simulations returns the full content catalog.
func Simulations() []Simulation {
	return []Simulation{
		{
			ID: "budget", Name: "Budget Builder", Icon: "📊",
			Description: "Split a monthly salary across needs, wants and savings",
			Category:    CategorySimulation,
			Reward:      budgetReward,
		},
		{
			ID: "emi-challenge", Name: "EMI Challenge", Icon: "💳",
			Description: "Cash, EMI or skip? Five purchase decisions against a fixed budget",
			Category:    CategorySimulation,
			Reward:      emiReward,
		},
		{
			ID: "freelancer-life", Name: "Freelancer Life", Icon: "💼",
			Description: "Survive six months of irregular freelance income",
			Category:    CategorySimulation,
			Reward:      freelancerReward,
		},
		{
			ID: "side-hustle", Name: "Side Hustle Builder", Icon: "🚀",
			Description: "Invest in a small business and grow its return",
			Category:    CategorySimulation,
			Reward:      sideHustleReward,
		},
		{
			ID: "tax-return", Name: "Tax Return Game", Icon: "🧾",
			Description: "File a simple tax return and get the numbers right",
			Category:    CategorySimulation,
			Reward:      taxReturnReward,
		},
		{
			ID: "upi-scam-alert", Name: "UPI Scam Alert", Icon: "🛡️",
			Description: "Spot fraudulent payment requests before they cost you",
			Category:    CategorySimulation,
			Reward:      upiScamReward,
		},
		{
			ID: "spot-the-scam", Name: "Spot the Scam", Icon: "🔍",
			Description: "Pick the scam out of real-looking messages",
			Category:    CategoryGame,
			Reward:      spotTheScamReward,
		},
		{
			ID: "barter-mela", Name: "Barter Mela", Icon: "👑",
			Description: "Trade your way up at the village fair",
			Category:    CategoryGame,
			Reward:      barterReward,
		},
		{
			ID: "piggy-bank", Name: "Piggy Bank Builder", Icon: "🐷",
			Description: "Drop coins until the savings goal is reached",
			Category:    CategoryGame,
			Reward:      piggyBankReward,
		},
	}
}

// Find returns the simulation with the given id.
func Find(id string) (Simulation, bool) {
	for _, sim := range Simulations() {
		if sim.ID == id {
			return sim, true
		}
	}
	return Simulation{}, false
}

// budgetReward: 75/50/25 XP by savings rate, cashback is a tenth of the
// amount saved, badge at a 20% savings rate.
func budgetReward(o Outcome) models.Reward {
	xp := 25
	switch {
	case o.SavingsPercent >= 20:
		xp = 75
	case o.SavingsPercent >= 10:
		xp = 50
	}

	reward := models.Reward{XP: xp, Cashback: o.Savings / 10}
	if o.SavingsPercent >= 20 {
		reward.BadgeID = catalog.BadgeBudgetBoss
	}
	return reward
}

// emiReward grades the average decision score on a 0-10 scale; 8+ earns
// the badge.
func emiReward(o Outcome) models.Reward {
	avg := float64(o.Score) / EMIPurchaseCount

	reward := models.Reward{
		XP:       int(math.Round(avg * 10)),
		Cashback: int(math.Round(avg * 5)),
	}
	if avg >= 8 {
		reward.BadgeID = catalog.BadgeBudgetBoss
	}
	return reward
}

// freelancerReward: going bankrupt pays a small consolation; surviving six
// months is scored on closing balance plus everything invoiced.
func freelancerReward(o Outcome) models.Reward {
	if o.Bankrupt {
		return models.Reward{XP: 20, Cashback: 5}
	}

	finalScore := o.Balance + o.Earned
	reward := models.Reward{
		XP:       clamp(finalScore/1000, 50, 100),
		Cashback: finalScore / 1000,
	}
	if finalScore >= 100000 && o.Projects >= 3 {
		reward.BadgeID = catalog.BadgeSideHustler
	}
	return reward
}

func sideHustleReward(o Outcome) models.Reward {
	reward := models.Reward{
		XP:       clamp(o.ROI, 50, 100),
		Cashback: o.Profit / 100,
	}
	if o.ROI >= 100 && o.Balance >= 80000 {
		reward.BadgeID = catalog.BadgeSideHustler
	}
	return reward
}

// taxReturnReward pays XP equal to the filing accuracy percentage.
func taxReturnReward(o Outcome) models.Reward {
	reward := models.Reward{
		XP:       o.Accuracy,
		Cashback: int(math.Round(float64(o.Accuracy) / 2)),
	}
	if o.Accuracy >= 80 {
		reward.BadgeID = catalog.BadgeTaxNinja
	}
	return reward
}

// upiScamReward: Score is correct answers out of 5; 4+ earns the badge.
func upiScamReward(o Outcome) models.Reward {
	reward := models.Reward{XP: o.Score * 20, Cashback: o.Score * 15}
	if o.Score >= 4 {
		reward.BadgeID = catalog.BadgeUPIShield
	}
	return reward
}

// spotTheScamReward: Score is correct answers out of 3; 2+ earns the badge.
func spotTheScamReward(o Outcome) models.Reward {
	reward := models.Reward{XP: o.Score * 15, Cashback: o.Score * 10}
	if o.Score >= 2 {
		reward.BadgeID = catalog.BadgeUPIShield
	}
	return reward
}

// barterReward is flat: the game only completes once three trades landed
// with enough inventory value.
func barterReward(o Outcome) models.Reward {
	return models.Reward{XP: 40, Cashback: 20, BadgeID: catalog.BadgeBarterKing}
}

// piggyBankReward is flat: the game only completes when the goal is hit.
func piggyBankReward(o Outcome) models.Reward {
	return models.Reward{XP: 30, Cashback: 25, BadgeID: catalog.BadgeSavingsStar}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
