package services

import (
	"errors"

	"foodlog/models"
	"foodlog/repositories"
	"foodlog/utils"
)

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	return s.users.Create(&user)
}

// Authenticate checks the credentials and returns a signed JWT.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
