package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/solver"
	"github.com/190014uewroc/dAIet/utils"
)

// activityAddends is the flat daily kcal adjustment per activity level.
// A flat addend, not a TDEE multiplier. Also the source of truth for valid levels.
var activityAddends = map[string]float64{
	"low":      150,
	"moderate": 300,
	"high":     450,
}

// costCeilings is the weekly spending ceiling per wealth level.
var costCeilings = map[string]float64{
	"student":   300,
	"average":   500,
	"elon_musk": 2000,
}

const (
	targetOffsetKcal = 500  // daily offset applied for loose/gain targets
	targetWindow     = 1000 // width of the weekly calorie window when bounded above
)

// BMR estimates resting energy expenditure via Mifflin-St Jeor.
func BMR(p models.PlanProfile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == "m" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// MaintenanceKcal is the daily maintenance intake: BMR plus the activity
// addend, rounded up to the nearest 10 kcal.
func MaintenanceKcal(p models.PlanProfile) float64 {
	return math.Ceil((BMR(p)+activityAddends[p.ActivityLevel])/10) * 10
}

// Calories derives the weekly calorie window from a profile. Maintain has no
// upper bound; loose and gain shift maintenance by 500 kcal/day and close the
// window 1000 kcal above its floor.
func Calories(p models.PlanProfile) models.NutritionTarget {
	maintenance := MaintenanceKcal(p)
	switch p.Target {
	case "loose":
		min := (maintenance - targetOffsetKcal) * 7
		max := min + targetWindow
		return models.NutritionTarget{Min: &min, Max: &max}
	case "gain":
		min := (maintenance + targetOffsetKcal) * 7
		max := min + targetWindow
		return models.NutritionTarget{Min: &min, Max: &max}
	default: // maintain
		min := maintenance * 7
		return models.NutritionTarget{Min: &min}
	}
}

// Cost maps a wealth level to its weekly spending ceiling.
func Cost(wealthLevel string) models.CostTarget {
	return models.CostTarget{Max: costCeilings[wealthLevel]}
}

// MealTypeCounts fixes each meal category to exactly seven picks: one
// breakfast, lunch and dinner per day. Not configurable.
func MealTypeCounts() map[string]solver.Bound {
	counts := make(map[string]solver.Bound, 3)
	for _, cat := range []string{models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner} {
		counts[cat] = solver.Bound{Min: solver.Float(7), Max: solver.Float(7)}
	}
	return counts
}

// ProfileSummary is the derived-metrics block returned alongside the plans.
type ProfileSummary struct {
	BMI             float64 `json:"bmi"`
	BMICategory     string  `json:"bmi_category"`
	MaintenanceKcal float64 `json:"maintenance_kcal"`
}

// Summarize computes BMI and maintenance intake for the response header.
func Summarize(p models.PlanProfile) ProfileSummary {
	h := p.HeightCm / 100.0
	bmi := p.WeightKg / (h * h)
	return ProfileSummary{
		BMI:             math.Round(bmi*10) / 10,
		BMICategory:     bmiCategory(bmi),
		MaintenanceKcal: MaintenanceKcal(p),
	}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// FillProfileDefaults substitutes stored account metrics for body fields the
// request left out. Target, wealth level and preferences are always taken
// from the request.
func FillProfileDefaults(p *models.PlanProfile, u models.User) {
	if p.WeightKg == 0 {
		p.WeightKg = u.WeightKg
	}
	if p.HeightCm == 0 {
		p.HeightCm = u.HeightCm
	}
	if p.Sex == "" {
		p.Sex = u.Sex
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = u.ActivityLevel
	}
	if p.Age == 0 && !u.Birthday.IsZero() {
		p.Age = utils.AgeYears(u.Birthday)
	}
}

// ValidateProfile checks that a merged profile is complete enough to plan.
func ValidateProfile(p models.PlanProfile) error {
	var missing []string
	if p.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if p.HeightCm <= 0 {
		missing = append(missing, "height")
	}
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.Sex == "" {
		missing = append(missing, "sex")
	}
	if _, ok := activityAddends[p.ActivityLevel]; !ok {
		missing = append(missing, "activity_level")
	}
	if _, ok := costCeilings[p.WealthLevel]; !ok {
		missing = append(missing, "wealth_level")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete profile: %s", strings.Join(missing, ", "))
	}
	switch p.Target {
	case "loose", "gain", "maintain":
		return nil
	default:
		return errors.New("target must be one of loose, gain, maintain")
	}
}
