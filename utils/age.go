package utils

import "time"

// AgeYears returns full years elapsed since birthday.
func AgeYears(birthday time.Time) int {
	now := time.Now()
	years := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(years, 0, 0)) {
		years--
	}
	return years
}
