package services

import "github.com/190014uewroc/dAIet/models"

// FilterCatalog removes meals violating the given dietary restrictions.
// Pure and total: an emptied category is not an error here, the solve
// downstream reports it as infeasibility.
func FilterCatalog(catalog models.Catalog, prefs models.Preferences) models.Catalog {
	out := make(models.Catalog, len(catalog))
	for id, rec := range catalog {
		if prefs.LactoseFree && !rec.IsLactoseFree {
			continue
		}
		if prefs.GlutenFree && !rec.IsGlutenFree {
			continue
		}
		if prefs.Meatless && !rec.IsVegan {
			continue
		}
		out[id] = rec
	}
	return out
}
