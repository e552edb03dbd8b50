package services

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEntryNotFound = errors.New("diary entry not found")
)
