package models

import "gorm.io/gorm"

// DayTotals holds a day's summed nutrition, floored to whole units.
// Cost is the floored sum of the three meals doubled: catalog costs are
// per-serving half-scale units.
type DayTotals struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
	Kcal    int `json:"kcal"`
	Cost    int `json:"cost"`
}

// DayPlan is one calendar day of the weekly plan.
type DayPlan struct {
	Breakfast MealRecord `json:"breakfast"`
	Lunch     MealRecord `json:"lunch"`
	Dinner    MealRecord `json:"dinner"`
	Total     DayTotals  `json:"total"`
}

// WeekPlan is the outcome of one solve: either Feasible=false and no days,
// or exactly seven DayPlan entries.
type WeekPlan struct {
	Feasible  bool      `json:"feasible"`
	Objective float64   `json:"objective,omitempty"`
	Days      []DayPlan `json:"days,omitempty"`
}

// WeeklyTotals sums the day totals over the whole plan.
func (w WeekPlan) WeeklyTotals() DayTotals {
	var t DayTotals
	for _, d := range w.Days {
		t.Protein += d.Total.Protein
		t.Carbs += d.Total.Carbs
		t.Fat += d.Total.Fat
		t.Kcal += d.Total.Kcal
		t.Cost += d.Total.Cost
	}
	return t
}

// PlanRun persists one solve outcome for the history endpoint. Days are stored
// serialized; the catalog they reference is immutable so the snapshot stays valid.
type PlanRun struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Objective string `gorm:"not null"` // "cost" | "calorie"
	Feasible  bool
	WeekKcal  int
	WeekCost  int
	DaysJSON  string `gorm:"type:text"`
}
