package controllers

import (
	"errors"
	"net/http"

	"github.com/190014uewroc/dAIet/models"
	"github.com/190014uewroc/dAIet/services"
	"github.com/190014uewroc/dAIet/solver"
	"github.com/190014uewroc/dAIet/utils"

	"github.com/gin-gonic/gin"
)

// CreatePlan runs one planning computation. Body metrics missing from the
// request fall back to the stored account profile.
func CreatePlan(c *gin.Context) {
	var profile models.PlanProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	services.FillProfileDefaults(&profile, *user)
	if err := services.ValidateProfile(profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	planner := services.NewPlannerService(services.LoadedCatalog(), solver.NewBranchAndBound())
	resp, err := planner.Plan(profile)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInsufficientCategoryPool) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := services.SavePlanRuns(user.ID, resp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func GetPlanHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	runs, err := services.ListPlanRuns(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// EmailPlan mails the newest feasible plan to the account email.
func EmailPlan(c *gin.Context) {
	email := c.GetString("email")
	userID := c.GetUint("userID")

	_, days, err := services.LatestFeasiblePlan(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := utils.SendPlanEmail(email, days); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan sent to " + email})
}
