package models

import "gorm.io/gorm"

// Meal category names, also used as constraint names in the optimization model.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
)

// Meal is a catalog row as stored in Postgres. Seeded once from the embedded
// catalog files; never updated afterwards.
type Meal struct {
	gorm.Model
	Name          string  `gorm:"uniqueIndex:idx_meal_name_category;not null" json:"name"`
	Category      string  `gorm:"uniqueIndex:idx_meal_name_category;not null" json:"category"` // breakfast|lunch|dinner
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	Kcal          float64 `json:"kcal"`
	Cost          float64 `json:"cost"`
	IsVegan       bool    `json:"is_vegan"`
	IsLactoseFree bool    `json:"is_lactose_free"`
	IsGlutenFree  bool    `json:"is_gluten_free"`
}

// MealRecord is the in-memory catalog entry handed to the planner. Exactly one
// of the category flags is true. Records are immutable after load; downstream
// components reference them by MealID only.
type MealRecord struct {
	MealID        int     `json:"meal_id"`
	Name          string  `json:"name"`
	Breakfast     bool    `json:"breakfast,omitempty"`
	Lunch         bool    `json:"lunch,omitempty"`
	Dinner        bool    `json:"dinner,omitempty"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	Kcal          float64 `json:"kcal"`
	Cost          float64 `json:"cost"`
	IsVegan       bool    `json:"is_vegan"`
	IsLactoseFree bool    `json:"is_lactose_free"`
	IsGlutenFree  bool    `json:"is_gluten_free"`
}

// CategoryName returns the name of the single category flag set on the record.
func (m MealRecord) CategoryName() string {
	switch {
	case m.Breakfast:
		return CategoryBreakfast
	case m.Lunch:
		return CategoryLunch
	default:
		return CategoryDinner
	}
}

// Catalog indexes the merged meal catalog by MealID.
type Catalog map[int]MealRecord
