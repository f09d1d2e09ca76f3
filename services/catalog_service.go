package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/190014uewroc/dAIet/config"
	"github.com/190014uewroc/dAIet/data"
	"github.com/190014uewroc/dAIet/models"
)

// RawMeal mirrors one entry of a static catalog collection. Numeric fields are
// pointers so a missing attribute is distinguishable from a literal zero.
type RawMeal struct {
	Protein       *float64 `json:"protein"`
	Carbs         *float64 `json:"carbs"`
	Fat           *float64 `json:"fat"`
	Kcal          *float64 `json:"kcal"`
	Cost          *float64 `json:"cost"`
	IsVegan       bool     `json:"is_vegan"`
	IsLactoseFree bool     `json:"is_lactose_free"`
	IsGlutenFree  bool     `json:"is_gluten_free"`
}

func (r RawMeal) validate() error {
	fields := map[string]*float64{
		"protein": r.Protein,
		"carbs":   r.Carbs,
		"fat":     r.Fat,
		"kcal":    r.Kcal,
		"cost":    r.Cost,
	}
	for name, v := range fields {
		if v == nil {
			return fmt.Errorf("missing attribute %q", name)
		}
		if *v < 0 {
			return fmt.Errorf("attribute %q is negative", name)
		}
	}
	return nil
}

// BuildCatalog merges the three raw collections into the id-indexed catalog.
// Ids are assigned by enumeration across breakfasts, then dinners, then
// lunches; names are sorted inside each collection so ids are stable across
// loads. The raw key "default" is a bundling artifact, never a meal. Entries
// failing validation are skipped with a logged warning.
func BuildCatalog(breakfasts, dinners, lunches map[string]RawMeal) models.Catalog {
	catalog := make(models.Catalog, len(breakfasts)+len(dinners)+len(lunches))
	id := 0
	add := func(coll map[string]RawMeal, category string) {
		names := make([]string, 0, len(coll))
		for name := range coll {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if name == "default" {
				continue
			}
			raw := coll[name]
			if err := raw.validate(); err != nil {
				log.Printf("catalog: skipping %s %q: %v", category, name, err)
				continue
			}
			rec := models.MealRecord{
				MealID:        id,
				Name:          name,
				Protein:       *raw.Protein,
				Carbs:         *raw.Carbs,
				Fat:           *raw.Fat,
				Kcal:          *raw.Kcal,
				Cost:          *raw.Cost,
				IsVegan:       raw.IsVegan,
				IsLactoseFree: raw.IsLactoseFree,
				IsGlutenFree:  raw.IsGlutenFree,
			}
			switch category {
			case models.CategoryBreakfast:
				rec.Breakfast = true
			case models.CategoryLunch:
				rec.Lunch = true
			case models.CategoryDinner:
				rec.Dinner = true
			}
			catalog[id] = rec
			id++
		}
	}
	add(breakfasts, models.CategoryBreakfast)
	add(dinners, models.CategoryDinner)
	add(lunches, models.CategoryLunch)
	return catalog
}

// SeedCatalog inserts the embedded catalog into the meals table. Idempotent:
// a non-empty table is left untouched.
func SeedCatalog() error {
	var count int64
	if err := config.DB.Model(&models.Meal{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sources := []struct {
		raw      []byte
		category string
	}{
		{data.Breakfasts, models.CategoryBreakfast},
		{data.Dinners, models.CategoryDinner},
		{data.Lunches, models.CategoryLunch},
	}
	for _, src := range sources {
		var coll map[string]RawMeal
		if err := json.Unmarshal(src.raw, &coll); err != nil {
			return fmt.Errorf("parse %s catalog: %w", src.category, err)
		}
		for name, raw := range coll {
			if name == "default" {
				continue
			}
			if err := raw.validate(); err != nil {
				log.Printf("catalog: not seeding %s %q: %v", src.category, name, err)
				continue
			}
			meal := models.Meal{
				Name:          name,
				Category:      src.category,
				Protein:       *raw.Protein,
				Carbs:         *raw.Carbs,
				Fat:           *raw.Fat,
				Kcal:          *raw.Kcal,
				Cost:          *raw.Cost,
				IsVegan:       raw.IsVegan,
				IsLactoseFree: raw.IsLactoseFree,
				IsGlutenFree:  raw.IsGlutenFree,
			}
			if err := config.DB.Create(&meal).Error; err != nil {
				return fmt.Errorf("seed %s %q: %w", src.category, name, err)
			}
		}
	}
	return nil
}

var loadedCatalog models.Catalog

// InitCatalog reads the meals table and builds the shared in-memory catalog.
// Called once at boot; the catalog is read-only afterwards.
func InitCatalog() error {
	var rows []models.Meal
	if err := config.DB.Find(&rows).Error; err != nil {
		return err
	}

	colls := map[string]map[string]RawMeal{
		models.CategoryBreakfast: {},
		models.CategoryLunch:     {},
		models.CategoryDinner:    {},
	}
	for _, m := range rows {
		coll, ok := colls[m.Category]
		if !ok {
			log.Printf("catalog: ignoring row %q with unknown category %q", m.Name, m.Category)
			continue
		}
		coll[m.Name] = rawFromMeal(m)
	}

	catalog := BuildCatalog(colls[models.CategoryBreakfast], colls[models.CategoryDinner], colls[models.CategoryLunch])
	if len(catalog) == 0 {
		return errors.New("meal catalog is empty")
	}
	loadedCatalog = catalog
	return nil
}

// LoadedCatalog returns the catalog built by InitCatalog.
func LoadedCatalog() models.Catalog { return loadedCatalog }

func rawFromMeal(m models.Meal) RawMeal {
	protein, carbs, fat, kcal, cost := m.Protein, m.Carbs, m.Fat, m.Kcal, m.Cost
	return RawMeal{
		Protein:       &protein,
		Carbs:         &carbs,
		Fat:           &fat,
		Kcal:          &kcal,
		Cost:          &cost,
		IsVegan:       m.IsVegan,
		IsLactoseFree: m.IsLactoseFree,
		IsGlutenFree:  m.IsGlutenFree,
	}
}
