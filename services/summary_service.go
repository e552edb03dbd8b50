package services

import (
	"errors"

	"foodlog/models"
	"foodlog/repositories"
)

// DefaultCalorieTarget is used when the profile carries no target.
const DefaultCalorieTarget = 2000

type TotalNutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type DailySummary struct {
	Date           string              `json:"date"`
	Entries        []models.DiaryEntry `json:"entries"`
	TotalNutrition TotalNutrition      `json:"total_nutrition"`
	TargetCalories int                 `json:"target_calories"`
}

type SummaryService struct {
	diary *DiaryService
	users *repositories.UserRepository
}

func NewSummaryService(diary *DiaryService, users *repositories.UserRepository) *SummaryService {
	return &SummaryService{diary: diary, users: users}
}

// GetDailySummary aggregates one day of entries against the user's calorie
// target. Entry totals are already-rounded integers, so the sum is exact;
// nothing is recomputed from portions and nothing is written.
func (s *SummaryService) GetDailySummary(userID uint, date string) (*DailySummary, error) {
	entries, err := s.diary.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}

	var total TotalNutrition
	for _, e := range entries {
		total.Calories += e.Calories
		total.Protein += e.Protein
		total.Carbs += e.Carbs
		total.Fat += e.Fat
	}

	target := DefaultCalorieTarget
	user, err := s.users.FindByID(userID)
	switch {
	case err == nil && user.DailyCalorieTarget > 0:
		target = user.DailyCalorieTarget
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	return &DailySummary{
		Date:           date,
		Entries:        entries,
		TotalNutrition: total,
		TargetCalories: target,
	}, nil
}
