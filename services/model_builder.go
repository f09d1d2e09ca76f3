package services

import (
	"math"
	"strconv"

	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/solver"
)

// Attribute names shared between catalog encoding and constraints.
const (
	attrKcal     = "kcal"
	attrCost     = "cost"
	attrKcalDiff = "kcal_diff"
)

const mealsPerWeek = 21 // 3 meals × 7 days

// baseModel encodes what both solve variants share: one integer decision
// variable per meal carrying its kcal/cost and category membership, a
// self-selector capping each meal at a single pick, and the fixed 7/7/7
// category counts. The objective and remaining constraints are added by the
// variant builders.
func baseModel(catalog models.Catalog) solver.Model {
	m := solver.Model{
		OpType:      solver.OpMin,
		Constraints: make(map[string]solver.Bound),
		Variables:   make(map[string]map[string]float64),
		Ints:        make(map[string]bool),
	}
	for name, bound := range MealTypeCounts() {
		m.Constraints[name] = bound
	}
	for id, rec := range catalog {
		v := strconv.Itoa(id)
		attrs := map[string]float64{
			attrKcal: rec.Kcal,
			attrCost: rec.Cost,
			v:        1, // self-selector; with the cap below this makes the domain {0,1}
		}
		attrs[rec.CategoryName()] = 1
		m.Variables[v] = attrs
		m.Ints[v] = true
		m.Constraints[v] = solver.Bound{Max: solver.Float(1)}
	}
	return m
}

// BuildCostModel is the first solve variant: cheapest plan inside the calorie
// window and under the wealth-level spending ceiling.
func BuildCostModel(catalog models.Catalog, nutrition models.NutritionTarget, cost models.CostTarget) solver.Model {
	m := baseModel(catalog)
	m.Optimize = attrCost
	m.Constraints[attrKcal] = solver.Bound{Min: nutrition.Min, Max: nutrition.Max}
	m.Constraints[attrCost] = solver.Bound{Max: solver.Float(cost.Max)}
	return m
}

// BuildCalorieModel is the second solve variant: minimize total deviation from
// the per-meal calorie target with cost left unconstrained. The deviation
// weight is derived here per run, not stored in the catalog.
func BuildCalorieModel(catalog models.Catalog, nutrition models.NutritionTarget) solver.Model {
	m := baseModel(catalog)
	m.Optimize = attrKcalDiff
	m.Constraints[attrKcal] = solver.Bound{Min: nutrition.Min, Max: nutrition.Max}

	per := perMealKcal(nutrition)
	for id, rec := range catalog {
		m.Variables[strconv.Itoa(id)][attrKcalDiff] = math.Abs(rec.Kcal - per)
	}
	return m
}

// perMealKcal spreads the weekly target over the 21 meal slots. With an open
// window (maintain) the floor is the target; otherwise the window midpoint.
func perMealKcal(nutrition models.NutritionTarget) float64 {
	if nutrition.Min == nil {
		return 0
	}
	weekly := *nutrition.Min
	if nutrition.Max != nil {
		weekly = (*nutrition.Min + *nutrition.Max) / 2
	}
	return weekly / mealsPerWeek
}
