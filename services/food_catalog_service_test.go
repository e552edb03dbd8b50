package services

import (
	"testing"

	"foodlog/models"
	"foodlog/repositories"
	"foodlog/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreate_CreatesNormalizedRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodCatalogService(repositories.NewFoodRepository(db))

	food, err := svc.ResolveOrCreate("Banana", 120, utils.Totals{
		Calories: 107, Protein: 1.3, Carbs: 27.4, Fat: 0.4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, food.ID)
	assert.Equal(t, "Banana", food.Name)
	assert.Equal(t, models.CategoryUserCreated, food.Category)
	assert.InDelta(t, 107.0/120.0*100, food.CaloriesPer100g, 1e-9)
	assert.InDelta(t, 1.3/120.0*100, food.ProteinPer100g, 1e-9)
	assert.InDelta(t, 27.4/120.0*100, food.CarbsPer100g, 1e-9)
	assert.InDelta(t, 0.4/120.0*100, food.FatPer100g, 1e-9)

	var count int64
	db.Model(&models.FoodRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveOrCreate_ExistingRecordStaysAuthoritative(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodCatalogService(repositories.NewFoodRepository(db))

	first, err := svc.ResolveOrCreate("Banana", 120, utils.Totals{Calories: 107})
	require.NoError(t, err)

	// a later log with different numbers must not touch the stored density
	second, err := svc.ResolveOrCreate("Banana", 60, utils.Totals{Calories: 999})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CaloriesPer100g, second.CaloriesPer100g)

	var count int64
	db.Model(&models.FoodRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveOrCreate_InvalidPortion(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodCatalogService(repositories.NewFoodRepository(db))

	_, err := svc.ResolveOrCreate("Banana", 0, utils.Totals{Calories: 107})
	assert.ErrorIs(t, err, utils.ErrInvalidPortion)

	_, err = svc.ResolveOrCreate("Banana", -10, utils.Totals{Calories: 107})
	assert.ErrorIs(t, err, utils.ErrInvalidPortion)

	var count int64
	db.Model(&models.FoodRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestResolveOrCreate_InvalidPortionFailsForExistingName(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodCatalogService(repositories.NewFoodRepository(db))

	_, err := svc.ResolveOrCreate("Banana", 120, utils.Totals{Calories: 107})
	require.NoError(t, err)

	// the bad portion is rejected before the name lookup
	_, err = svc.ResolveOrCreate("Banana", -10, utils.Totals{Calories: 107})
	assert.ErrorIs(t, err, utils.ErrInvalidPortion)

	_, err = svc.ResolveOrCreate("Banana", 0, utils.Totals{Calories: 107})
	assert.ErrorIs(t, err, utils.ErrInvalidPortion)
}

func TestResolveOrCreate_InsertConflictFallsBackToLookup(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFoodRepository(db)
	svc := NewFoodCatalogService(repo)

	// simulate the losing writer: the row appears between lookup and insert
	winner := &models.FoodRecord{ID: "w", Name: "Banana", Category: models.CategoryUserCreated, CaloriesPer100g: 89}
	require.NoError(t, repo.Create(winner))

	loser := &models.FoodRecord{ID: "l", Name: "Banana", Category: models.CategoryUserCreated, CaloriesPer100g: 90}
	err := repo.Create(loser)
	require.Error(t, err, "unique index on name must reject the duplicate")

	food, err := svc.ResolveOrCreate("Banana", 120, utils.Totals{Calories: 107})
	require.NoError(t, err)
	assert.Equal(t, "w", food.ID)
	assert.Equal(t, 89.0, food.CaloriesPer100g)
}
