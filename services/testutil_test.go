package services

import (
	"fmt"
	"testing"

	"foodlog/models"
	"foodlog/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database and migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodRecord{},
		&models.DiaryEntry{},
	)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, target int) *models.User {
	t.Helper()

	user := &models.User{
		Email:              fmt.Sprintf("%s@example.com", t.Name()),
		Password:           "x",
		FullName:           "Test User",
		DailyCalorieTarget: target,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newDiaryService(db *gorm.DB) *DiaryService {
	userRepo := repositories.NewUserRepository(db)
	foodRepo := repositories.NewFoodRepository(db)
	diaryRepo := repositories.NewDiaryRepository(db)
	catalog := NewFoodCatalogService(foodRepo)
	return NewDiaryService(diaryRepo, userRepo, catalog, nil)
}

func grams(v float64) *float64 {
	return &v
}

func appleItem() DiaryItemRequest {
	it := DiaryItemRequest{
		FoodName: "Apple",
		PortionG: grams(150),
		Calories: 78,
	}
	it.Macros.Protein = 0.3
	it.Macros.Carbs = 21
	it.Macros.Fat = 0.3
	return it
}
