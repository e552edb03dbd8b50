package utils

import (
	"errors"
	"math"
)

// ErrInvalidPortion flags a portion that is zero, negative, NaN or infinite.
var ErrInvalidPortion = errors.New("portion must be a positive, finite number of grams")

// Totals is an absolute nutrition amount: kcal for Calories, grams for
// the macros.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// SumItems adds totals element-wise. An empty slice yields all zeros.
func SumItems(items []Totals) Totals {
	var sum Totals
	for _, it := range items {
		sum.Calories += it.Calories
		sum.Protein += it.Protein
		sum.Carbs += it.Carbs
		sum.Fat += it.Fat
	}
	return sum
}

// Round rounds each field to the nearest integer, half away from zero.
// Stored entry totals are always integers; this is the single rounding
// step applied per write.
func Round(t Totals) Totals {
	return Totals{
		Calories: math.Round(t.Calories),
		Protein:  math.Round(t.Protein),
		Carbs:    math.Round(t.Carbs),
		Fat:      math.Round(t.Fat),
	}
}

// ValidatePortion rejects zero, negative, NaN and infinite portions with
// ErrInvalidPortion.
func ValidatePortion(p float64) error {
	if p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p) {
		return nil
	}
	return ErrInvalidPortion
}

// Rescale multiplies each field by newPortion/originalPortion and rounds
// the result. Both portions must be positive and finite.
func Rescale(t Totals, originalPortion, newPortion float64) (Totals, error) {
	if err := ValidatePortion(originalPortion); err != nil {
		return Totals{}, err
	}
	if err := ValidatePortion(newPortion); err != nil {
		return Totals{}, err
	}
	factor := newPortion / originalPortion
	return Round(Totals{
		Calories: t.Calories * factor,
		Protein:  t.Protein * factor,
		Carbs:    t.Carbs * factor,
		Fat:      t.Fat * factor,
	}), nil
}

// PerHundredGrams converts the totals of portionGrams grams into a per-100g
// density. The result is NOT rounded: catalog values keep full precision so
// repeated rescaling never accumulates more than one rounding step.
func PerHundredGrams(t Totals, portionGrams float64) (Totals, error) {
	if err := ValidatePortion(portionGrams); err != nil {
		return Totals{}, err
	}
	return Totals{
		Calories: t.Calories / portionGrams * 100,
		Protein:  t.Protein / portionGrams * 100,
		Carbs:    t.Carbs / portionGrams * 100,
		Fat:      t.Fat / portionGrams * 100,
	}, nil
}
