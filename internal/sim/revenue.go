package sim

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/venue-sim/internal/model"
	"github.com/Veraticus/venue-sim/internal/staff"
)

// Earning says what a completed task of one family brings in.
type Earning struct {
	Category string
	Base     float64
	Illegal  bool
}

var earnings = map[string]Earning{
	staff.FamilyCustomerInteraction: {Category: model.CategoryTips, Base: 40},
	staff.FamilyDrinkService:        {Category: model.CategoryDrinks, Base: 25},
	staff.FamilyMusicPerformance:    {Category: model.CategoryEntertainment, Base: 120},
	staff.FamilyFoodPreparation:     {Category: model.CategoryFood, Base: 35},
	staff.FamilyGambling:            {Category: model.CategoryGambling, Base: 200, Illegal: true},
	staff.FamilyBlackmail:           {Category: model.CategoryBlackmail, Base: 300, Illegal: true},
	staff.FamilySubstanceSale:       {Category: model.CategoryContraband, Base: 150, Illegal: true},
}

// EarningFor returns the earning entry of a task family. Families that
// earn nothing, such as patrols, report false.
func EarningFor(family string) (Earning, bool) {
	e, ok := earnings[family]
	return e, ok
}

// Amount scales the base earning by a performance score: a score of 0 pays
// half, a score of 5 pays the base and a score of 10 pays half again.
// Results are rounded to whole currency units.
func (e Earning) Amount(score float64) float64 {
	scaled := decimal.NewFromFloat(e.Base).
		Mul(decimal.NewFromFloat(0.5 + score/10)).
		Round(0)
	return scaled.InexactFloat64()
}

// RoundWhole rounds an amount to whole currency units.
func RoundWhole(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}
