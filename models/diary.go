package models

import "time"

// Meal types accepted on a diary entry.
const (
    MealBreakfast = "BREAKFAST"
    MealLunch     = "LUNCH"
    MealDinner    = "DINNER"
    MealSnack     = "SNACK"
)

// DiaryEntry is one logged meal-item-group: the nutrition snapshot of
// exactly Portion grams of whatever was eaten. Calories/Protein/Carbs/Fat
// are absolute integer totals for the entry, kept consistent with Portion
// on every write (a portion change rescales them proportionally).
type DiaryEntry struct {
    ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
    UserID uint   `gorm:"index:idx_diary_user_date;not null" json:"user_id"`

    // Set only for single-item entries that came through image
    // recognition; multi-item and note-only entries have no catalog link.
    FoodID *string     `gorm:"type:varchar(36)" json:"food_id,omitempty"`
    Food   *FoodRecord `gorm:"foreignKey:FoodID" json:"food,omitempty"`

    MealType string  `gorm:"not null" json:"meal_type"`
    Date     string  `gorm:"type:varchar(10);index:idx_diary_user_date;not null" json:"date"` // YYYY-MM-DD, exact-match key
    Portion  float64 `json:"portion_g"`                                                       // grams, > 0

    Calories int `json:"calories"`
    Protein  int `json:"protein"`
    Carbs    int `json:"carbs"`
    Fat      int `json:"fat"`

    Note string `json:"note,omitempty"`

    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
