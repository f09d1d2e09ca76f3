package services

import (
	"reflect"
	"testing"

	"github.com/190014uewroc/dAIet/models"
)

func filterFixture() models.Catalog {
	return models.Catalog{
		0: {MealID: 0, Name: "omelette", Breakfast: true},
		1: {MealID: 1, Name: "oatmeal", Breakfast: true, IsVegan: true, IsLactoseFree: true, IsGlutenFree: true},
		2: {MealID: 2, Name: "yogurt", Breakfast: true, IsGlutenFree: true},
		3: {MealID: 3, Name: "bagel", Breakfast: true, IsVegan: true, IsLactoseFree: true},
	}
}

func TestFilterCatalog(t *testing.T) {
	cases := []struct {
		name  string
		prefs models.Preferences
		want  []int
	}{
		{"no restrictions", models.Preferences{}, []int{0, 1, 2, 3}},
		{"meatless", models.Preferences{Meatless: true}, []int{1, 3}},
		{"lactose free", models.Preferences{LactoseFree: true}, []int{1, 3}},
		{"gluten free", models.Preferences{GlutenFree: true}, []int{1, 2}},
		{"all", models.Preferences{Meatless: true, LactoseFree: true, GlutenFree: true}, []int{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCatalog(filterFixture(), tc.prefs)
			if len(got) != len(tc.want) {
				t.Fatalf("kept %d meals, want %d: %v", len(got), len(tc.want), got)
			}
			for _, id := range tc.want {
				if _, ok := got[id]; !ok {
					t.Errorf("meal %d missing from filtered catalog", id)
				}
			}
		})
	}
}

func TestFilterCatalogIsIdempotent(t *testing.T) {
	prefs := models.Preferences{Meatless: true, GlutenFree: true}
	once := FilterCatalog(filterFixture(), prefs)
	twice := FilterCatalog(once, prefs)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second filter pass changed the catalog: %v vs %v", once, twice)
	}
}

func TestFilterCatalogDoesNotMutateInput(t *testing.T) {
	catalog := filterFixture()
	FilterCatalog(catalog, models.Preferences{Meatless: true})
	if len(catalog) != 4 {
		t.Errorf("input catalog mutated, now %d entries", len(catalog))
	}
}
