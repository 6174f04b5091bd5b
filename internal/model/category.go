package model

// Well-known categories used by the built-in simulation. Gameplay data may
// introduce any other string; the ledger never rejects an unknown category.
const (
	// Income.
	CategoryDrinks        = "Drinks"
	CategoryFood          = "Food"
	CategoryTips          = "Tips"
	CategoryEntertainment = "Entertainment"
	CategoryGambling      = "Gambling"
	CategoryBlackmail     = "Blackmail"
	CategoryContraband    = "Contraband"
	CategoryInvestment    = "Investment"

	// Expenses.
	CategorySalaries = "Salaries"
	CategoryRent     = "Rent"
	CategoryBribes   = "Bribes"
)
