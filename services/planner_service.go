package services

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/190014uewroc/dAIet/config"
	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/solver"
)

// ErrInsufficientCategoryPool reports a solve the solver called feasible whose
// selection still cannot fill seven days in every category. Distinct from
// plain infeasibility, which is data (WeekPlan.Feasible=false), not an error.
var ErrInsufficientCategoryPool = errors.New("fewer than 7 selected meals in a category")

const daysPerWeek = 7

// PlanResponse carries both solve outcomes plus derived profile metrics.
type PlanResponse struct {
	Profile        ProfileSummary  `json:"profile"`
	CostOptimal    models.WeekPlan `json:"cost_optimal"`
	CalorieOptimal models.WeekPlan `json:"calorie_optimal"`
}

// PlannerService runs one planning computation per call: filter the catalog,
// derive targets, solve the two model variants, assemble the calendars. It
// holds only read-only state, so a single instance is safe to share.
type PlannerService struct {
	catalog models.Catalog
	solver  solver.Solver
}

func NewPlannerService(catalog models.Catalog, s solver.Solver) *PlannerService {
	return &PlannerService{catalog: catalog, solver: s}
}

// Plan produces the cost-optimal and calorie-deviation-optimal weekly plans
// for one profile. The two solves run sequentially over the same filtered
// catalog; the caller decides which plan to present.
func (p *PlannerService) Plan(profile models.PlanProfile) (PlanResponse, error) {
	resp := PlanResponse{Profile: Summarize(profile)}

	filtered := FilterCatalog(p.catalog, profile.Preferences)
	nutrition := Calories(profile)
	cost := Cost(profile.WealthLevel)

	costPlan, err := p.solveAndAssemble(BuildCostModel(filtered, nutrition, cost), filtered)
	if err != nil {
		return resp, err
	}
	resp.CostOptimal = costPlan

	caloriePlan, err := p.solveAndAssemble(BuildCalorieModel(filtered, nutrition), filtered)
	if err != nil {
		return resp, err
	}
	resp.CalorieOptimal = caloriePlan

	return resp, nil
}

func (p *PlannerService) solveAndAssemble(m solver.Model, catalog models.Catalog) (models.WeekPlan, error) {
	res := p.solver.Solve(m)
	if !res.Feasible {
		return models.WeekPlan{}, nil
	}
	days, err := AssemblePlan(res, catalog)
	if err != nil {
		return models.WeekPlan{}, err
	}
	return models.WeekPlan{Feasible: true, Objective: res.Result, Days: days}, nil
}

// AssemblePlan turns a feasible solver result into an ordered 7-day calendar.
// Selected meals are partitioned by category and sorted by kcal ascending;
// day i pairs breakfasts[i] and lunches[i] with the dinner from the opposite
// end of its ordering, balancing light breakfasts against heavy dinners.
func AssemblePlan(res solver.Result, catalog models.Catalog) ([]models.DayPlan, error) {
	var breakfasts, lunches, dinners []models.MealRecord
	for name, v := range res.Values {
		if v < 0.5 {
			continue
		}
		id, err := strconv.Atoi(name)
		if err != nil {
			continue // not a meal variable
		}
		rec, ok := catalog[id]
		if !ok {
			continue // selection referencing an unknown id; catalog is authoritative
		}
		switch {
		case rec.Breakfast:
			breakfasts = append(breakfasts, rec)
		case rec.Lunch:
			lunches = append(lunches, rec)
		default:
			dinners = append(dinners, rec)
		}
	}

	for _, list := range [][]models.MealRecord{breakfasts, lunches, dinners} {
		list := list
		sort.Slice(list, func(i, j int) bool {
			if list[i].Kcal != list[j].Kcal {
				return list[i].Kcal < list[j].Kcal
			}
			return list[i].MealID < list[j].MealID
		})
	}

	if len(breakfasts) < daysPerWeek || len(lunches) < daysPerWeek || len(dinners) < daysPerWeek {
		return nil, ErrInsufficientCategoryPool
	}

	days := make([]models.DayPlan, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		b := breakfasts[i]
		l := lunches[i]
		d := dinners[len(dinners)-1-i]
		days[i] = models.DayPlan{
			Breakfast: b,
			Lunch:     l,
			Dinner:    d,
			Total: models.DayTotals{
				Protein: int(math.Floor(b.Protein + l.Protein + d.Protein)),
				Carbs:   int(math.Floor(b.Carbs + l.Carbs + d.Carbs)),
				Fat:     int(math.Floor(b.Fat + l.Fat + d.Fat)),
				Kcal:    int(math.Floor(b.Kcal + l.Kcal + d.Kcal)),
				// catalog costs are per-serving half-scale units
				Cost: int(math.Floor((b.Cost + l.Cost + d.Cost) * 2)),
			},
		}
	}
	return days, nil
}

// SavePlanRuns persists both outcomes of a planning run for the history view.
func SavePlanRuns(userID uint, resp PlanResponse) error {
	runs := []struct {
		objective string
		plan      models.WeekPlan
	}{
		{"cost", resp.CostOptimal},
		{"calorie", resp.CalorieOptimal},
	}
	for _, run := range runs {
		row := models.PlanRun{
			UserID:    userID,
			Objective: run.objective,
			Feasible:  run.plan.Feasible,
		}
		if run.plan.Feasible {
			totals := run.plan.WeeklyTotals()
			row.WeekKcal = totals.Kcal
			row.WeekCost = totals.Cost
			b, err := json.Marshal(run.plan.Days)
			if err != nil {
				return err
			}
			row.DaysJSON = string(b)
		}
		if err := config.DB.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListPlanRuns returns a user's persisted runs, newest first.
func ListPlanRuns(userID uint) ([]models.PlanRun, error) {
	var runs []models.PlanRun
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&runs).Error
	return runs, err
}

// LatestFeasiblePlan returns the newest feasible run and its days.
func LatestFeasiblePlan(userID uint) (*models.PlanRun, []models.DayPlan, error) {
	var run models.PlanRun
	err := config.DB.
		Where("user_id = ? AND feasible = ?", userID, true).
		Order("created_at desc").
		First(&run).Error
	if err != nil {
		return nil, nil, errors.New("no feasible plan on record")
	}
	var days []models.DayPlan
	if err := json.Unmarshal([]byte(run.DaysJSON), &days); err != nil {
		return nil, nil, err
	}
	return &run, days, nil
}
