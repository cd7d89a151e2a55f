package health_test

import (
	"strings"
	"testing"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
)

func logsWith(days int, calories, protein, carbs float64, items int) []model.DailyLog {
	logs := make([]model.DailyLog, 0, days)
	for i := 0; i < days; i++ {
		l := model.DailyLog{
			Date:          "2026-08-0" + string(rune('1'+i)),
			TotalCalories: calories,
			TotalProtein:  protein,
			TotalCarbs:    carbs,
		}
		for j := 0; j < items; j++ {
			l.Items = append(l.Items, model.FoodItem{Name: "meal", Calories: calories, Meal: model.MealLunch})
		}
		logs = append(logs, l)
	}
	return logs
}

func findByCategory(insights []model.Insight, category string) *model.Insight {
	for i := range insights {
		if insights[i].Category == category {
			return &insights[i]
		}
	}
	return nil
}

func TestCalorieInsightOverTarget(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{WeightKg: 70, Goal: model.GoalMaintenance, HealthConditions: []model.HealthCondition{model.ConditionNone}}
	logs := logsWith(7, 2400, 120, 100, 1)

	insights := health.GenerateInsights(p, logs, nil, 2000)
	cal := findByCategory(insights, health.CategoryCalories)
	if cal == nil {
		t.Fatal("expected a calorie insight")
	}
	if cal.Type != model.InsightWarning {
		t.Fatalf("expected warning, got %s", cal.Type)
	}
	if cal.Title != "Consistently Over Target" {
		t.Fatalf("unexpected title %q", cal.Title)
	}
	if !strings.Contains(cal.Description, "400 calories above") {
		t.Fatalf("expected deviation of 400 in description, got %q", cal.Description)
	}
}

func TestCalorieInsightWithinTolerance(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{WeightKg: 70, Goal: model.GoalMaintenance, HealthConditions: []model.HealthCondition{model.ConditionNone}}
	logs := logsWith(7, 2100, 120, 100, 1)

	insights := health.GenerateInsights(p, logs, nil, 2000)
	cal := findByCategory(insights, health.CategoryCalories)
	if cal == nil || cal.Type != model.InsightPositive {
		t.Fatalf("expected positive calorie insight, got %+v", cal)
	}
}

func TestNoCalorieInsightWithoutLogs(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{WeightKg: 70, Goal: model.GoalMaintenance, HealthConditions: []model.HealthCondition{model.ConditionNone}}

	insights := health.GenerateInsights(p, nil, nil, 2000)
	if cal := findByCategory(insights, health.CategoryCalories); cal != nil {
		t.Fatalf("expected no calorie insight without logs, got %+v", cal)
	}
}

func TestProteinShortfallWarning(t *testing.T) {
	t.Parallel()
	// Target for muscleGain at 80kg is 176g; 0.8x threshold is 140.8g.
	p := model.UserProfile{WeightKg: 80, Goal: model.GoalMuscleGain, HealthConditions: []model.HealthCondition{model.ConditionNone}}
	logs := logsWith(5, 2800, 100, 200, 1)

	insights := health.GenerateInsights(p, logs, nil, 2800)
	protein := findByCategory(insights, health.CategoryProtein)
	if protein == nil || protein.Type != model.InsightWarning {
		t.Fatalf("expected protein warning, got %+v", protein)
	}
	if !strings.Contains(protein.Description, "100g") || !strings.Contains(protein.Description, "176g") {
		t.Fatalf("expected averages in description, got %q", protein.Description)
	}
}

func TestProteinAdequateEmitsNothing(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{WeightKg: 70, Goal: model.GoalMaintenance, HealthConditions: []model.HealthCondition{model.ConditionNone}}
	logs := logsWith(5, 2000, 110, 100, 1) // target 112g, threshold 89.6g

	insights := health.GenerateInsights(p, logs, nil, 2000)
	if protein := findByCategory(insights, health.CategoryProtein); protein != nil {
		t.Fatalf("expected no protein insight, got %+v", protein)
	}
}

func TestLoggingConsistencyThresholds(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{WeightKg: 70, Goal: model.GoalMaintenance, HealthConditions: []model.HealthCondition{model.ConditionNone}}

	cases := []struct {
		loggedDays int
		wantType   model.InsightType
		wantNone   bool
	}{
		{7, model.InsightPositive, false},
		{5, model.InsightPositive, false},
		{4, "", true},
		{3, "", true},
		{2, model.InsightInfo, false},
		{0, model.InsightInfo, false},
	}
	for _, tc := range cases {
		logs := logsWith(tc.loggedDays, 2000, 120, 100, 1)
		// Pad with empty days so the window is always 7 entries.
		for len(logs) < 7 {
			logs = append(logs, model.DailyLog{Date: "2026-08-20"})
		}
		insights := health.GenerateInsights(p, logs, nil, 2000)
		habit := findByCategory(insights, health.CategoryHabits)
		if tc.wantNone {
			if habit != nil {
				t.Errorf("loggedDays=%d: expected no habit insight, got %+v", tc.loggedDays, habit)
			}
			continue
		}
		if habit == nil || habit.Type != tc.wantType {
			t.Errorf("loggedDays=%d: expected %s habit insight, got %+v", tc.loggedDays, tc.wantType, habit)
		}
	}
}

func TestBMISeverityInsight(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		WeightKg:         110,
		Goal:             model.GoalWeightLoss,
		BMICategory:      model.BMISeverelyObese,
		HealthConditions: []model.HealthCondition{model.ConditionNone},
	}
	insights := health.GenerateInsights(p, nil, nil, 1800)
	weight := findByCategory(insights, health.CategoryWeight)
	if weight == nil || weight.Type != model.InsightInfo {
		t.Fatalf("expected weight info insight, got %+v", weight)
	}
	if !strings.Contains(weight.Recommendation, "1-2 pounds") {
		t.Fatalf("expected gradual pace recommendation, got %q", weight.Recommendation)
	}
}

func TestDiabetesCarbWarning(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		WeightKg:         80,
		Goal:             model.GoalMaintenance,
		HealthConditions: []model.HealthCondition{model.ConditionDiabetes},
	}

	high := logsWith(5, 2000, 130, 200, 1)
	insights := health.GenerateInsights(p, high, nil, 2000)
	if h := findByCategory(insights, health.CategoryHealth); h == nil || h.Type != model.InsightWarning {
		t.Fatalf("expected carb warning at 200g average, got %+v", h)
	}

	low := logsWith(5, 2000, 130, 120, 1)
	insights = health.GenerateInsights(p, low, nil, 2000)
	if h := findByCategory(insights, health.CategoryHealth); h != nil {
		t.Fatalf("expected no carb warning at 120g average, got %+v", h)
	}

	// No logs at all: average is 0, below the threshold.
	insights = health.GenerateInsights(p, nil, nil, 2000)
	if h := findByCategory(insights, health.CategoryHealth); h != nil {
		t.Fatalf("expected no carb warning without logs, got %+v", h)
	}
}

func TestRulesDoNotSuppressEachOther(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		WeightKg:         100,
		Goal:             model.GoalWeightLoss,
		BMICategory:      model.BMIObese,
		HealthConditions: []model.HealthCondition{model.ConditionDiabetes},
	}
	logs := logsWith(7, 2600, 50, 220, 1)

	insights := health.GenerateInsights(p, logs, nil, 1800)
	// Over-target warning, protein warning, habits positive, weight info, carb warning.
	if len(insights) != 5 {
		t.Fatalf("expected all 5 rules to fire, got %d: %+v", len(insights), insights)
	}
}
