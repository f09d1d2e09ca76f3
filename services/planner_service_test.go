package services

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/solver"
)

// stubSolver returns canned results in call order.
type stubSolver struct {
	results []solver.Result
	calls   int
}

func (s *stubSolver) Solve(solver.Model) solver.Result {
	r := s.results[s.calls%len(s.results)]
	s.calls++
	return r
}

// pairingFixture builds 7 meals per category with kcal 100..700 inside each.
// Ids follow loader order: breakfasts 0-6, dinners 7-13, lunches 14-20.
func pairingFixture() models.Catalog {
	catalog := models.Catalog{}
	for i := 0; i < 7; i++ {
		kcal := float64((i + 1) * 100)
		catalog[i] = models.MealRecord{
			MealID: i, Name: "b" + strconv.Itoa(i), Breakfast: true,
			Kcal: kcal, Cost: 1.5, Protein: 10.5, Carbs: 30.5, Fat: 5.5,
		}
		catalog[7+i] = models.MealRecord{
			MealID: 7 + i, Name: "d" + strconv.Itoa(i), Dinner: true,
			Kcal: kcal, Cost: 3, Protein: 20.5, Carbs: 40.5, Fat: 10.5,
		}
		catalog[14+i] = models.MealRecord{
			MealID: 14 + i, Name: "l" + strconv.Itoa(i), Lunch: true,
			Kcal: kcal, Cost: 2.25, Protein: 15.5, Carbs: 35.5, Fat: 8.5,
		}
	}
	return catalog
}

func selection(ids ...int) solver.Result {
	values := make(map[string]float64, len(ids))
	for _, id := range ids {
		values[strconv.Itoa(id)] = 1
	}
	return solver.Result{Feasible: true, Bounded: true, IsIntegral: true, Values: values}
}

func allIDs(catalog models.Catalog) []int {
	ids := make([]int, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	return ids
}

func TestAssemblePlanPairsLightBreakfastWithHeavyDinner(t *testing.T) {
	catalog := pairingFixture()
	days, err := AssemblePlan(selection(allIDs(catalog)...), catalog)
	if err != nil {
		t.Fatalf("AssemblePlan: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("%d days, want 7", len(days))
	}

	for i, d := range days {
		wantBreakfast := float64((i + 1) * 100)
		wantDinner := float64((7 - i) * 100)
		if d.Breakfast.Kcal != wantBreakfast {
			t.Errorf("day %d breakfast kcal = %v, want %v", i, d.Breakfast.Kcal, wantBreakfast)
		}
		if d.Dinner.Kcal != wantDinner {
			t.Errorf("day %d dinner kcal = %v, want %v", i, d.Dinner.Kcal, wantDinner)
		}
		if d.Lunch.Kcal != wantBreakfast {
			t.Errorf("day %d lunch kcal = %v, want %v", i, d.Lunch.Kcal, wantBreakfast)
		}
	}
}

func TestAssemblePlanFloorsTotalsAndDoublesCost(t *testing.T) {
	catalog := pairingFixture()
	days, err := AssemblePlan(selection(allIDs(catalog)...), catalog)
	if err != nil {
		t.Fatalf("AssemblePlan: %v", err)
	}

	for i, d := range days {
		wantKcal := int(d.Breakfast.Kcal + d.Lunch.Kcal + d.Dinner.Kcal)
		if d.Total.Kcal != wantKcal {
			t.Errorf("day %d total kcal = %d, want %d", i, d.Total.Kcal, wantKcal)
		}
		// protein 10.5+15.5+20.5 = 46.5 floored
		if d.Total.Protein != 46 {
			t.Errorf("day %d total protein = %d, want 46", i, d.Total.Protein)
		}
		// cost (1.5+2.25+3)*2 = 13.5 floored
		if d.Total.Cost != 13 {
			t.Errorf("day %d total cost = %d, want 13", i, d.Total.Cost)
		}
	}
}

func TestAssemblePlanInsufficientCategoryPool(t *testing.T) {
	catalog := pairingFixture()
	ids := allIDs(catalog)
	// drop one breakfast from the selection
	short := make([]int, 0, len(ids)-1)
	for _, id := range ids {
		if id == 0 {
			continue
		}
		short = append(short, id)
	}

	_, err := AssemblePlan(selection(short...), catalog)
	if !errors.Is(err, ErrInsufficientCategoryPool) {
		t.Errorf("err = %v, want ErrInsufficientCategoryPool", err)
	}
}

func TestAssemblePlanSkipsUnknownIDs(t *testing.T) {
	catalog := pairingFixture()
	ids := append(allIDs(catalog), 99) // not in the catalog
	days, err := AssemblePlan(selection(ids...), catalog)
	if err != nil {
		t.Fatalf("AssemblePlan: %v", err)
	}
	if len(days) != 7 {
		t.Errorf("%d days, want 7", len(days))
	}
}

func TestPlanReportsInfeasibleSolveAsData(t *testing.T) {
	catalog := pairingFixture()
	stub := &stubSolver{results: []solver.Result{
		{Feasible: false},
		selection(allIDs(catalog)...),
	}}

	resp, err := NewPlannerService(catalog, stub).Plan(referenceProfile())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if resp.CostOptimal.Feasible {
		t.Error("cost-optimal solve should be infeasible")
	}
	if len(resp.CostOptimal.Days) != 0 {
		t.Error("infeasible plan must carry no days")
	}
	if !resp.CalorieOptimal.Feasible || len(resp.CalorieOptimal.Days) != 7 {
		t.Errorf("calorie-optimal plan = %+v, want 7 feasible days", resp.CalorieOptimal)
	}
	if stub.calls != 2 {
		t.Errorf("solver called %d times, want 2", stub.calls)
	}
	if resp.Profile.BMI <= 0 {
		t.Errorf("profile summary not populated: %+v", resp.Profile)
	}
}

// endToEndFixture gives every category eight meals of uniform kcal: seven
// affordable and one priced out of any sane cost optimum.
func endToEndFixture() models.Catalog {
	catalog := models.Catalog{}
	groups := []struct {
		prefix   string
		base     int
		kcal     float64
		cost     float64
		category string
	}{
		{"b", 0, 300, 5, models.CategoryBreakfast},
		{"d", 8, 600, 8, models.CategoryDinner},
		{"l", 16, 500, 7, models.CategoryLunch},
	}
	for _, s := range groups {
		for i := 0; i < 8; i++ {
			rec := models.MealRecord{
				MealID: s.base + i,
				Name:   s.prefix + strconv.Itoa(i),
				Kcal:   s.kcal,
				Cost:   s.cost,
			}
			if i == 7 {
				rec.Name = s.prefix + "_pricey"
				rec.Cost = 50
			}
			switch s.category {
			case models.CategoryBreakfast:
				rec.Breakfast = true
			case models.CategoryDinner:
				rec.Dinner = true
			case models.CategoryLunch:
				rec.Lunch = true
			}
			catalog[rec.MealID] = rec
		}
	}
	return catalog
}

// Full pipeline against the real solver: profile window [9170,10170] weekly
// kcal, student budget. Daily 300+500+600 kcal sums to 9800 over 7 days.
func TestPlanEndToEndWithRealSolver(t *testing.T) {
	planner := NewPlannerService(endToEndFixture(), solver.NewBranchAndBound())

	resp, err := planner.Plan(referenceProfile())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	for name, plan := range map[string]models.WeekPlan{
		"cost_optimal":    resp.CostOptimal,
		"calorie_optimal": resp.CalorieOptimal,
	} {
		if !plan.Feasible {
			t.Fatalf("%s solve infeasible", name)
		}
		if len(plan.Days) != 7 {
			t.Fatalf("%s has %d days, want 7", name, len(plan.Days))
		}
		if totals := plan.WeeklyTotals(); totals.Kcal != 9800 {
			t.Errorf("%s weekly kcal = %d, want 9800", name, totals.Kcal)
		}
	}

	// the cheapest plan avoids the overpriced meals entirely
	if math.Abs(resp.CostOptimal.Objective-140) > 1e-6 {
		t.Errorf("cost objective = %v, want 140", resp.CostOptimal.Objective)
	}
	for _, d := range resp.CostOptimal.Days {
		for _, rec := range []models.MealRecord{d.Breakfast, d.Lunch, d.Dinner} {
			if rec.Cost == 50 {
				t.Errorf("cost-optimal plan includes overpriced meal %q", rec.Name)
			}
		}
	}
}

// Filtering away a whole category must surface as solver infeasibility, not
// as an error or a short plan.
func TestPlanInfeasibleWhenFilterEmptiesCategory(t *testing.T) {
	catalog := endToEndFixture()
	// dinners and lunches go vegan, breakfasts stay animal-based
	for id, rec := range catalog {
		if !rec.Breakfast {
			rec.IsVegan = true
			rec.IsLactoseFree = true
			rec.IsGlutenFree = true
			catalog[id] = rec
		}
	}

	profile := referenceProfile()
	profile.Preferences.Meatless = true

	resp, err := NewPlannerService(catalog, solver.NewBranchAndBound()).Plan(profile)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if resp.CostOptimal.Feasible {
		t.Error("cost-optimal solve must be infeasible with no breakfasts left")
	}
	if resp.CalorieOptimal.Feasible {
		t.Error("calorie-optimal solve must be infeasible with no breakfasts left")
	}
}
