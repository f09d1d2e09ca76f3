package services

import (
	"encoding/json"
	"testing"

	"github.com/190014uewroc/dAIet/data"
	"github.com/190014uewroc/dAIet/models"
)

func raw(kcal, cost float64) RawMeal {
	protein, carbs, fat := 10.0, 40.0, 8.0
	return RawMeal{Protein: &protein, Carbs: &carbs, Fat: &fat, Kcal: &kcal, Cost: &cost}
}

func TestBuildCatalogAssignsStableIDs(t *testing.T) {
	breakfasts := map[string]RawMeal{"b2": raw(300, 4), "b1": raw(250, 3)}
	dinners := map[string]RawMeal{"d1": raw(500, 8)}
	lunches := map[string]RawMeal{"l1": raw(450, 6)}

	catalog := BuildCatalog(breakfasts, dinners, lunches)
	if len(catalog) != 4 {
		t.Fatalf("catalog has %d entries, want 4", len(catalog))
	}

	// names sorted inside each collection, categories enumerated
	// breakfast -> dinner -> lunch
	wantOrder := []struct {
		id       int
		name     string
		category string
	}{
		{0, "b1", models.CategoryBreakfast},
		{1, "b2", models.CategoryBreakfast},
		{2, "d1", models.CategoryDinner},
		{3, "l1", models.CategoryLunch},
	}
	for _, w := range wantOrder {
		rec, ok := catalog[w.id]
		if !ok {
			t.Fatalf("missing meal id %d", w.id)
		}
		if rec.Name != w.name || rec.CategoryName() != w.category {
			t.Errorf("id %d = %s/%s, want %s/%s", w.id, rec.Name, rec.CategoryName(), w.name, w.category)
		}
	}
}

func TestBuildCatalogSkipsDefaultKey(t *testing.T) {
	breakfasts := map[string]RawMeal{
		"default": raw(100, 1),
		"oatmeal": raw(300, 4),
	}
	catalog := BuildCatalog(breakfasts, nil, nil)
	if len(catalog) != 1 {
		t.Fatalf("catalog has %d entries, want 1", len(catalog))
	}
	for _, rec := range catalog {
		if rec.Name == "default" {
			t.Error("bundling artifact \"default\" leaked into the catalog")
		}
	}
}

func TestBuildCatalogSkipsMalformedEntries(t *testing.T) {
	broken := raw(300, 4)
	broken.Kcal = nil
	negative := raw(300, -1)

	breakfasts := map[string]RawMeal{
		"broken":   broken,
		"negative": negative,
		"fine":     raw(320, 5),
	}
	catalog := BuildCatalog(breakfasts, nil, nil)
	if len(catalog) != 1 {
		t.Fatalf("catalog has %d entries, want 1", len(catalog))
	}
	if catalog[0].Name != "fine" {
		t.Errorf("kept %q, want \"fine\"", catalog[0].Name)
	}
}

func TestBuildCatalogSetsExactlyOneCategoryFlag(t *testing.T) {
	catalog := BuildCatalog(
		map[string]RawMeal{"b": raw(300, 4)},
		map[string]RawMeal{"d": raw(500, 8)},
		map[string]RawMeal{"l": raw(450, 6)},
	)
	for id, rec := range catalog {
		flags := 0
		for _, f := range []bool{rec.Breakfast, rec.Lunch, rec.Dinner} {
			if f {
				flags++
			}
		}
		if flags != 1 {
			t.Errorf("meal %d has %d category flags, want exactly 1", id, flags)
		}
	}
}

// The embedded catalog must parse, validate and be deep enough to cover
// seven days per category even under the strictest dietary restrictions.
func TestEmbeddedCatalogIsUsable(t *testing.T) {
	parse := func(b []byte) map[string]RawMeal {
		var coll map[string]RawMeal
		if err := json.Unmarshal(b, &coll); err != nil {
			t.Fatalf("embedded catalog does not parse: %v", err)
		}
		return coll
	}
	catalog := BuildCatalog(parse(data.Breakfasts), parse(data.Dinners), parse(data.Lunches))

	strict := FilterCatalog(catalog, models.Preferences{Meatless: true, LactoseFree: true, GlutenFree: true})
	perCategory := map[string]int{}
	for _, rec := range strict {
		perCategory[rec.CategoryName()]++
	}
	for _, cat := range []string{models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner} {
		if perCategory[cat] < 7 {
			t.Errorf("only %d fully-restricted %s meals, need at least 7", perCategory[cat], cat)
		}
	}
}
