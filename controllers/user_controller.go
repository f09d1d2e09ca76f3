package controllers

import (
	"net/http"
	"time"

	"github.com/190014uewroc/dAIet/config"
	"github.com/190014uewroc/dAIet/services"
	"github.com/190014uewroc/dAIet/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	age := 0
	birthday := ""
	if !user.Birthday.IsZero() {
		age = utils.AgeYears(user.Birthday)
		birthday = user.Birthday.Format("2006-01-02")
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          user.Email,
		"full_name":      user.FullName,
		"birthday":       birthday,
		"age":            age,
		"sex":            user.Sex,
		"height":         user.HeightCm,
		"weight":         user.WeightKg,
		"activity_level": user.ActivityLevel,
	})
}

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	Sex           string  `json:"sex" binding:"omitempty,oneof=m f"`
	HeightCm      float64 `json:"height" binding:"omitempty,gt=0"`
	WeightKg      float64 `json:"weight" binding:"omitempty,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"omitempty,oneof=low moderate high"`
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthday, use YYYY-MM-DD"})
			return
		}
		user.Birthday = birthday
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
