package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email              string `gorm:"uniqueIndex;not null" json:"email"`
    Password           string `gorm:"not null" json:"-"`
    FullName           string `json:"full_name"`
    DailyCalorieTarget int    `json:"daily_calorie_target"` // kcal; 0 means unset
}
