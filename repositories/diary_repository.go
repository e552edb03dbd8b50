package repositories

import (
	"errors"

	"foodlog/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row the caller named does not exist.
var ErrNotFound = errors.New("record not found")

type DiaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

func (r *DiaryRepository) Create(entry *models.DiaryEntry) error {
	return r.db.Create(entry).Error
}

func (r *DiaryRepository) GetByID(id string) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := r.db.
		Preload("Food").
		Where("id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUserAndDate returns a user's entries for one calendar date,
// oldest first (the order meals were logged), with the linked food joined.
func (r *DiaryRepository) ListByUserAndDate(userID uint, date string) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.db.
		Preload("Food").
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *DiaryRepository) Save(entry *models.DiaryEntry) error {
	return r.db.Save(entry).Error
}

func (r *DiaryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.DiaryEntry{}).Error
}
