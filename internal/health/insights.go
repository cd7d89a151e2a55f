package health

import (
	"fmt"
	"math"

	"github.com/vitacli/vita/internal/model"
)

// Insight categories, used for display grouping only.
const (
	CategoryCalories = "Calories"
	CategoryProtein  = "Protein"
	CategoryHabits   = "Habits"
	CategoryWeight   = "Weight"
	CategoryHealth   = "Health"
)

const (
	calorieDeviationThreshold = 300
	proteinShortfallRatio     = 0.8
	diabetesCarbThreshold     = 150
)

// GenerateInsights evaluates each rule independently against the recent log
// window (oldest first) and appends triggered insights in rule order. Rules
// never suppress one another.
func GenerateInsights(p model.UserProfile, recentLogs []model.DailyLog, currentLog *model.DailyLog, targetCalories int) []model.Insight {
	insights := make([]model.Insight, 0, 5)

	if len(recentLogs) > 0 {
		avgCalories := avgOf(recentLogs, func(l model.DailyLog) float64 { return l.TotalCalories })
		deviation := math.Abs(avgCalories - float64(targetCalories))
		if deviation > calorieDeviationThreshold {
			over := avgCalories > float64(targetCalories)
			title := "Consistently Under Target"
			direction := "below"
			recommendation := "Try adding healthy, calorie-dense foods like nuts or avocados."
			if over {
				title = "Consistently Over Target"
				direction = "above"
				recommendation = "Consider smaller portions or lower-calorie alternatives."
			}
			insights = append(insights, model.Insight{
				Title:          title,
				Description:    fmt.Sprintf("Your average daily intake is %d calories %s your target.", int(math.Round(deviation)), direction),
				Recommendation: recommendation,
				Type:           model.InsightWarning,
				Category:       CategoryCalories,
			})
		} else {
			insights = append(insights, model.Insight{
				Title:       "Great Calorie Management",
				Description: "You're staying close to your daily calorie target!",
				Type:        model.InsightPositive,
				Category:    CategoryCalories,
			})
		}
	}

	if len(recentLogs) > 0 {
		avgProtein := avgOf(recentLogs, func(l model.DailyLog) float64 { return l.TotalProtein })
		perKg := 1.6
		if p.Goal == model.GoalMuscleGain {
			perKg = 2.2
		}
		proteinTarget := p.WeightKg * perKg
		if avgProtein < proteinTarget*proteinShortfallRatio {
			insights = append(insights, model.Insight{
				Title:          "Low Protein Intake",
				Description:    fmt.Sprintf("You're averaging %dg protein daily, below the recommended %dg.", int(math.Round(avgProtein)), int(math.Round(proteinTarget))),
				Recommendation: "Add lean meats, fish, eggs, or plant-based proteins to your meals.",
				Type:           model.InsightWarning,
				Category:       CategoryProtein,
			})
		}
	}

	loggedDays := 0
	for _, l := range recentLogs {
		if len(l.Items) > 0 {
			loggedDays++
		}
	}
	if loggedDays >= 5 {
		insights = append(insights, model.Insight{
			Title:       "Excellent Tracking Consistency",
			Description: fmt.Sprintf("You've logged food for %d out of the last 7 days.", loggedDays),
			Type:        model.InsightPositive,
			Category:    CategoryHabits,
		})
	} else if loggedDays < 3 {
		insights = append(insights, model.Insight{
			Title:          "Improve Tracking Consistency",
			Description:    "Regular food logging helps you stay on track with your goals.",
			Recommendation: "Try setting daily reminders to log your meals.",
			Type:           model.InsightInfo,
			Category:       CategoryHabits,
		})
	}

	if p.BMICategory == model.BMIObese || p.BMICategory == model.BMISeverelyObese {
		insights = append(insights, model.Insight{
			Title:          "Focus on Gradual Changes",
			Description:    "Small, sustainable changes are more effective than drastic diet modifications.",
			Recommendation: "Aim for 1-2 pounds of weight loss per week through consistent habits.",
			Type:           model.InsightInfo,
			Category:       CategoryWeight,
		})
	}

	if model.HasCondition(p.HealthConditions, model.ConditionDiabetes) {
		avgCarbs := 0.0
		if len(recentLogs) > 0 {
			avgCarbs = avgOf(recentLogs, func(l model.DailyLog) float64 { return l.TotalCarbs })
		}
		if avgCarbs > diabetesCarbThreshold {
			insights = append(insights, model.Insight{
				Title:          "Monitor Carbohydrate Intake",
				Description:    "Your average carb intake may be high for diabetes management.",
				Recommendation: "Consider focusing on complex carbs and monitoring blood sugar responses.",
				Type:           model.InsightWarning,
				Category:       CategoryHealth,
			})
		}
	}

	return insights
}

func avgOf(logs []model.DailyLog, selector func(model.DailyLog) float64) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range logs {
		sum += selector(l)
	}
	return sum / float64(len(logs))
}
