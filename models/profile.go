package models

// PlanProfile is the per-run planning input. Built from one request, read-only,
// discarded after the run. Body metrics may be omitted; the planner controller
// fills them from the stored account profile.
type PlanProfile struct {
	WeightKg      float64     `json:"weight" binding:"omitempty,gt=0"`
	HeightCm      float64     `json:"height" binding:"omitempty,gt=0"`
	Age           int         `json:"age" binding:"omitempty,gt=0"`
	Sex           string      `json:"sex" binding:"omitempty,oneof=m f"`
	ActivityLevel string      `json:"activity_level" binding:"omitempty,oneof=low moderate high"`
	Target        string      `json:"target" binding:"required,oneof=loose gain maintain"`
	WealthLevel   string      `json:"wealth_level" binding:"required,oneof=student average elon_musk"`
	Preferences   Preferences `json:"preferences"`
}

// Preferences are the dietary restrictions applied before model construction.
type Preferences struct {
	Meatless    bool `json:"meatless"`
	LactoseFree bool `json:"lactose_free"`
	GlutenFree  bool `json:"gluten_free"`
}

// NutritionTarget is the weekly calorie window derived from a profile.
// For target=maintain only Min is set; otherwise Max = Min + 1000.
type NutritionTarget struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// CostTarget is the weekly spending ceiling derived from the wealth level.
type CostTarget struct {
	Max float64 `json:"max"`
}
