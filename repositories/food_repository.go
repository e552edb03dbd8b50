package repositories

import (
	"errors"

	"foodlog/models"

	"gorm.io/gorm"
)

type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// FindByName looks a food up by exact name. Name carries a unique index,
// so at most one row matches.
func (r *FoodRepository) FindByName(name string) (*models.FoodRecord, error) {
	var food models.FoodRecord
	err := r.db.Where("name = ?", name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(food *models.FoodRecord) error {
	return r.db.Create(food).Error
}
