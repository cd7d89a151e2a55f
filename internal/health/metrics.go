// Package health holds the pure derived-metric and recommendation logic.
// Everything here is a total function over a profile and log history; state
// ownership lives in the tracker package.
package health

import (
	"math"

	"github.com/vitacli/vita/internal/model"
)

// Activity factor applied to BMR. Moderate activity is assumed and not
// configurable.
const activityMultiplier = 1.375

// CalculateBMI returns weight/(height in m)^2 rounded to one decimal place,
// or 0 when height is non-positive.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// BMICategoryFor maps a BMI value onto its category tier. The 24.9, 29.9, and
// 39.9 boundaries are the compatibility contract: exactly 24.9 lands in
// overweight and 29.9 in obese, one tier above their nominal ranges.
func BMICategoryFor(bmi float64) model.BMICategory {
	switch {
	case bmi < 18.5:
		return model.BMIUnderweight
	case bmi < 24.9:
		return model.BMINormal
	case bmi < 29.9:
		return model.BMIOverweight
	case bmi < 39.9:
		return model.BMIObese
	default:
		return model.BMISeverelyObese
	}
}

// TargetCalories computes the daily calorie target: Mifflin-St Jeor BMR,
// scaled to TDEE by the fixed activity factor, then adjusted for the goal
// (-500 deficit for weight loss, +300 surplus for muscle gain).
func TargetCalories(p model.UserProfile) int {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier

	switch p.Goal {
	case model.GoalWeightLoss:
		return int(math.Round(tdee - 500))
	case model.GoalMuscleGain:
		return int(math.Round(tdee + 300))
	default:
		return int(math.Round(tdee))
	}
}
