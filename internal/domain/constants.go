package domain

import "time"

// Session defaults
const (
	// StartingBalance is the balance every new session receives.
	StartingBalance = 45750

	// DefaultUserName is used when the stub login carries no name.
	DefaultUserName = "Trader"
)

// Rarity sale values. Selling an inventory item credits exactly this amount.
const (
	SaleValueCommon    = 50
	SaleValueRare      = 150
	SaleValueEpic      = 400
	SaleValueLegendary = 1200
)

// Profile levelling
const (
	// CasesPerLevel is how many opened cases make up one trading level.
	CasesPerLevel = 10

	// LevelProgressStep is the progress-bar percentage granted per opened case.
	LevelProgressStep = 100 / CasesPerLevel
)

// Currency display
const (
	CurrencySymbol = "₽"
	CurrencyCode   = "RUB"
)

// Top-up quick amounts offered next to the amount field.
var TopUpQuickAmounts = []int{500, 1000, 5000}

// DefaultRevealDelay is how long a case opening withholds its result.
const DefaultRevealDelay = 5 * time.Second
