package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Stored body metrics; a plan request may omit its own and fall back to these.
	Birthday      time.Time
	Sex           string // "m" | "f"
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string // "low" | "moderate" | "high"
}
