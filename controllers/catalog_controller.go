package controllers

import (
	"net/http"
	"sort"

	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/services"

	"github.com/gin-gonic/gin"
)

// ListMeals returns the full indexed catalog, ordered by meal id.
func ListMeals(c *gin.Context) {
	catalog := services.LoadedCatalog()

	meals := make([]models.MealRecord, 0, len(catalog))
	for _, rec := range catalog {
		meals = append(meals, rec)
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].MealID < meals[j].MealID })

	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}
