// Package calc derives daily calorie and hydration targets from a user
// profile. Everything here is pure: no state, no errors, targets are
// recomputed from the profile on every call.
package calc

import (
	"math"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

// Targets shown before a profile exists.
const (
	DefaultCalorieTarget = 2000
	DefaultWaterTarget   = 2000
)

// caloriesPerKg approximates the energy content of a kilogram of body
// fat, used to spread a target weight change over a timeframe.
const caloriesPerKg = 7700

const waterMlPerKg = 35

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// BMR computes basal metabolic rate via the Mifflin-St Jeor formula.
func BMR(p model.UserProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier. An unrecognized activity
// level falls back to sedentary rather than failing.
func TDEE(p model.UserProfile) float64 {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	return BMR(p) * mult
}

// CalorieTarget derives the daily calorie goal in kcal. With goal
// "maintain", or without a usable weight-change plan, the target is the
// rounded TDEE. Otherwise the plan's daily adjustment is subtracted
// (lose) or added (gain), and the result never drops below the safety
// floor: 1200 kcal for women, 1400 for men.
func CalorieTarget(p model.UserProfile) int {
	tdee := TDEE(p)
	if p.Goal == model.GoalMaintain || p.TargetChangeKg <= 0 || p.DurationWeeks <= 0 {
		return int(math.Round(tdee))
	}

	totalChange := p.TargetChangeKg * caloriesPerKg
	days := p.DurationWeeks * 7
	dailyAdjustment := totalChange / days

	target := tdee + dailyAdjustment
	if p.Goal == model.GoalLose {
		target = tdee - dailyAdjustment
	}

	safeMin := 1400
	if p.Gender == model.GenderFemale {
		safeMin = 1200
	}
	if rounded := int(math.Round(target)); rounded > safeMin {
		return rounded
	}
	return safeMin
}

// WaterTarget derives the daily hydration goal in milliliters.
func WaterTarget(p model.UserProfile) int {
	return int(math.Round(p.WeightKg * waterMlPerKg))
}

// TotalConsumed sums the calories of all logged foods.
func TotalConsumed(stats model.DailyStats) int {
	total := 0
	for _, f := range stats.Foods {
		total += f.Calories
	}
	return total
}
