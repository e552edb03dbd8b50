package models

import "time"

// Catalog categories. Records created implicitly from a recognized
// meal item are tagged USER_CREATED.
const CategoryUserCreated = "USER_CREATED"

// FoodRecord is a named food with nutrition normalized to 100g.
// Per-100g values keep full float precision and are never mutated
// after creation; later logs of the same name reuse them as-is.
type FoodRecord struct {
    ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
    Name     string `gorm:"uniqueIndex;not null" json:"name"`
    Category string `json:"category"`

    CaloriesPer100g float64 `json:"calories_per_100g"`
    ProteinPer100g  float64 `json:"protein_per_100g"`
    CarbsPer100g    float64 `json:"carbs_per_100g"`
    FatPer100g      float64 `json:"fat_per_100g"`

    CreatedAt time.Time `json:"created_at"`
}
