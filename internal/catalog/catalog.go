// Package catalog defines the fixed badge catalog. The set of badge ids is
// closed at build time: persisted snapshots and rewards can only reference
// ids listed here, and anything else is dropped on load.
package catalog

import "github.com/rajdesai17/finplay/internal/models"

// Badge ids referenced by simulation content.
const (
	BadgeBudgetBoss  = "budget-boss"
	BadgeUPIShield   = "upi-shield"
	BadgeTaxNinja    = "tax-ninja"
	BadgeSideHustler = "side-hustler"
	BadgeSavingsStar = "savings-star"
	BadgeBarterKing  = "barter-king"
)

// Badges returns a fresh copy of the full catalog with nothing earned.
func Badges() []models.Badge {
	return []models.Badge{
		{ID: BadgeBudgetBoss, Name: "Budget Boss", Icon: "💰", Description: "Master of budgeting"},
		{ID: BadgeUPIShield, Name: "UPI Shield", Icon: "🛡️", Description: "Fraud detector extraordinaire"},
		{ID: BadgeTaxNinja, Name: "Tax Ninja", Icon: "🥷", Description: "Tax return champion"},
		{ID: BadgeSideHustler, Name: "Side Hustler", Icon: "🚀", Description: "Business building pro"},
		{ID: BadgeSavingsStar, Name: "Savings Star", Icon: "⭐", Description: "Piggy bank champion"},
		{ID: BadgeBarterKing, Name: "Barter King", Icon: "👑", Description: "Trading master"},
	}
}

// Contains reports whether id is part of the catalog.
func Contains(id string) bool {
	for _, b := range Badges() {
		if b.ID == id {
			return true
		}
	}
	return false
}
