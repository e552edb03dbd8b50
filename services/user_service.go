package services

import (
	"errors"

	"foodlog/models"
	"foodlog/repositories"
)

type ProfileInput struct {
	FullName           *string `json:"full_name"`
	DailyCalorieTarget *int    `json:"daily_calorie_target" binding:"omitempty,gt=0"`
}

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profileView(user), nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (map[string]interface{}, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.DailyCalorieTarget != nil {
		user.DailyCalorieTarget = *input.DailyCalorieTarget
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return profileView(user), nil
}

func profileView(user *models.User) map[string]interface{} {
	target := user.DailyCalorieTarget
	if target <= 0 {
		target = DefaultCalorieTarget
	}
	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"full_name":            user.FullName,
		"daily_calorie_target": target,
	}
}
