package health_test

import (
	"testing"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
)

func TestCalculateBMI(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"average adult", 175, 70, 22.9},
		{"short heavy", 160, 100, 39.1},
		{"zero height", 0, 70, 0},
		{"negative height", -10, 70, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := health.CalculateBMI(tc.heightCm, tc.weightKg); got != tc.want {
				t.Fatalf("CalculateBMI(%v, %v) = %v, want %v", tc.heightCm, tc.weightKg, got, tc.want)
			}
		})
	}
}

func TestBMICategoryLadder(t *testing.T) {
	t.Parallel()
	cases := []struct {
		bmi  float64
		want model.BMICategory
	}{
		{16, model.BMIUnderweight},
		{18.4, model.BMIUnderweight},
		{18.5, model.BMINormal},
		{22, model.BMINormal},
		{24.9, model.BMIOverweight},
		{25, model.BMIOverweight},
		{29.9, model.BMIObese},
		{30, model.BMIObese},
		{39.9, model.BMISeverelyObese},
		{40, model.BMISeverelyObese},
	}
	for _, tc := range cases {
		if got := health.BMICategoryFor(tc.bmi); got != tc.want {
			t.Errorf("BMICategoryFor(%v) = %v, want %v", tc.bmi, got, tc.want)
		}
	}
}

func TestTargetCalories(t *testing.T) {
	t.Parallel()
	base := model.UserProfile{
		Age:      30,
		Gender:   model.GenderMale,
		HeightCm: 175,
		WeightKg: 70,
	}

	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; TDEE = 1648.75 * 1.375 = 2267.03.
	cases := []struct {
		goal model.Goal
		want int
	}{
		{model.GoalMaintenance, 2267},
		{model.GoalWeightLoss, 1767},
		{model.GoalMuscleGain, 2567},
	}
	for _, tc := range cases {
		p := base
		p.Goal = tc.goal
		if got := health.TargetCalories(p); got != tc.want {
			t.Errorf("TargetCalories(goal=%s) = %d, want %d", tc.goal, got, tc.want)
		}
	}
}

func TestTargetCaloriesFemaleConstant(t *testing.T) {
	t.Parallel()
	male := model.UserProfile{Age: 30, Gender: model.GenderMale, HeightCm: 170, WeightKg: 65, Goal: model.GoalMaintenance}
	female := male
	female.Gender = model.GenderFemale

	diff := health.TargetCalories(male) - health.TargetCalories(female)
	// BMR constants differ by 166, scaled by the 1.375 activity factor.
	if diff < 227 || diff > 229 {
		t.Fatalf("male/female target difference = %d, want ~228", diff)
	}
}
