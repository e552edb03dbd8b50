package services

import (
	"errors"

	"foodlog/models"
	"foodlog/repositories"
	"foodlog/utils"

	"github.com/google/uuid"
)

type FoodCatalogService struct {
	foods *repositories.FoodRepository
}

func NewFoodCatalogService(foods *repositories.FoodRepository) *FoodCatalogService {
	return &FoodCatalogService{foods: foods}
}

// ResolveOrCreate returns the catalog record for name, creating it from the
// logged totals when the name has never been seen. An existing record is
// returned unchanged: its per-100g values are authoritative and this logging
// event's numbers never update them.
//
// Two concurrent first logs of the same name race on the insert; the unique
// index on name makes the loser fail, and we re-read the winner's row.
func (s *FoodCatalogService) ResolveOrCreate(name string, portionGrams float64, totals utils.Totals) (*models.FoodRecord, error) {
	// a bad portion fails regardless of whether the name already exists
	if err := utils.ValidatePortion(portionGrams); err != nil {
		return nil, err
	}

	food, err := s.foods.FindByName(name)
	if err == nil {
		return food, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	per100, err := utils.PerHundredGrams(totals, portionGrams)
	if err != nil {
		return nil, err
	}

	food = &models.FoodRecord{
		ID:              uuid.NewString(),
		Name:            name,
		Category:        models.CategoryUserCreated,
		CaloriesPer100g: per100.Calories,
		ProteinPer100g:  per100.Protein,
		CarbsPer100g:    per100.Carbs,
		FatPer100g:      per100.Fat,
	}
	if createErr := s.foods.Create(food); createErr != nil {
		// lost the insert race: the row should exist now
		if existing, findErr := s.foods.FindByName(name); findErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return food, nil
}

// FindByName is a read-only exact-name lookup for display purposes.
func (s *FoodCatalogService) FindByName(name string) (*models.FoodRecord, error) {
	return s.foods.FindByName(name)
}
