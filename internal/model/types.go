package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male, female, or other)", s)
	}
}

type Goal string

const (
	GoalWeightLoss  Goal = "weightLoss"
	GoalMuscleGain  Goal = "muscleGain"
	GoalMaintenance Goal = "maintenance"
)

func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weightloss", "weight-loss":
		return GoalWeightLoss, nil
	case "musclegain", "muscle-gain":
		return GoalMuscleGain, nil
	case "maintenance":
		return GoalMaintenance, nil
	default:
		return "", fmt.Errorf("invalid goal %q (use weightLoss, muscleGain, or maintenance)", s)
	}
}

type HealthCondition string

const (
	ConditionNone         HealthCondition = "none"
	ConditionDiabetes     HealthCondition = "diabetes"
	ConditionHypertension HealthCondition = "hypertension"
	ConditionThyroid      HealthCondition = "thyroid"
	ConditionHeart        HealthCondition = "heart"
	ConditionOther        HealthCondition = "other"
)

func ParseHealthCondition(s string) (HealthCondition, error) {
	c := HealthCondition(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ConditionNone, ConditionDiabetes, ConditionHypertension, ConditionThyroid, ConditionHeart, ConditionOther:
		return c, nil
	default:
		return "", fmt.Errorf("invalid health condition %q (use none, diabetes, hypertension, thyroid, heart, or other)", s)
	}
}

// NormalizeConditions enforces the profile invariant: the set is exactly
// {none} or a non-empty set of real conditions with none removed.
func NormalizeConditions(conditions []HealthCondition) []HealthCondition {
	seen := map[HealthCondition]bool{}
	out := make([]HealthCondition, 0, len(conditions))
	for _, c := range conditions {
		if c == ConditionNone || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return []HealthCondition{ConditionNone}
	}
	return out
}

func HasCondition(conditions []HealthCondition, target HealthCondition) bool {
	for _, c := range conditions {
		if c == target {
			return true
		}
	}
	return false
}

type BMICategory string

const (
	BMIUnderweight   BMICategory = "underweight"
	BMINormal        BMICategory = "normal"
	BMIOverweight    BMICategory = "overweight"
	BMIObese         BMICategory = "obese"
	BMISeverelyObese BMICategory = "severelyObese"
)

type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"
)

func ParseMeal(s string) (Meal, error) {
	m := Meal(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return m, nil
	default:
		return "", fmt.Errorf("invalid meal %q (use breakfast, lunch, dinner, or snack)", s)
	}
}

type UserProfile struct {
	Name             string            `json:"name"`
	Age              int               `json:"age"`
	Gender           Gender            `json:"gender"`
	HeightCm         float64           `json:"height"`
	WeightKg         float64           `json:"weight"`
	Goal             Goal              `json:"goal"`
	HealthConditions []HealthCondition `json:"healthConditions"`
	BMI              float64           `json:"bmi"`
	BMICategory      BMICategory       `json:"bmiCategory"`
}

type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meal     Meal    `json:"meal"`
}

// Valid reports whether the item is complete enough to be logged. Incomplete
// items are dropped silently by the tracker rather than raising an error.
func (f FoodItem) Valid() bool {
	if strings.TrimSpace(f.Name) == "" {
		return false
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return false
	}
	switch f.Meal {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// DailyLog keys history by its Date string (YYYY-MM-DD), which sorts
// chronologically as plain text. Totals always equal the sums over Items.
type DailyLog struct {
	Date          string     `json:"date"`
	Items         []FoodItem `json:"foodItems"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalCarbs    float64    `json:"totalCarbs"`
	TotalFat      float64    `json:"totalFat"`
}

type GoalType string

const (
	GoalTypeWeight   GoalType = "weight"
	GoalTypeCalories GoalType = "calories"
	GoalTypeExercise GoalType = "exercise"
)

func ParseGoalType(s string) (GoalType, error) {
	g := GoalType(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GoalTypeWeight, GoalTypeCalories, GoalTypeExercise:
		return g, nil
	default:
		return "", fmt.Errorf("invalid goal type %q (use weight, calories, or exercise)", s)
	}
}

// ProgressGoal tracks a measurable target, separate from UserProfile.Goal.
type ProgressGoal struct {
	ID          string   `json:"id"`
	Type        GoalType `json:"type"`
	Target      float64  `json:"target"`
	Current     float64  `json:"current"`
	Deadline    string   `json:"deadline,omitempty"`
	IsCompleted bool     `json:"isCompleted"`
}

type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
)

// Insight is computed on demand and never persisted.
type Insight struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Recommendation string      `json:"recommendation,omitempty"`
	Type           InsightType `json:"type"`
	Category       string      `json:"category"`
}

type ExerciseVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// PendingAction is one queued offline mutation awaiting replay.
type PendingAction struct {
	ID        string     `json:"id"`
	Type      ActionType `json:"type"`
	Endpoint  string     `json:"endpoint"`
	Data      any        `json:"data,omitempty"`
	Timestamp int64      `json:"timestamp"`
}
