package health

import (
	"math/rand"
	"strings"

	"github.com/vitacli/vita/internal/model"
)

// DietRecommendation is a goal-based meal plan template adjusted for health
// conditions.
type DietRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Foods       []string `json:"foods"`
}

// WorkoutRecommendation is a goal-based exercise template adjusted for health
// conditions and BMI category. VideoKeywords feed the video lookup.
type WorkoutRecommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Exercises     []string `json:"exercises"`
	VideoKeywords []string `json:"videoKeywords"`
}

// RecommendDiet selects the base template for the profile's goal, then applies
// condition modifiers in fixed order: diabetes, hypertension, thyroid, heart.
// Filters run before appends within the same condition.
func RecommendDiet(p model.UserProfile) DietRecommendation {
	var rec DietRecommendation
	switch p.Goal {
	case model.GoalWeightLoss:
		rec = DietRecommendation{
			Title:       "Caloric Deficit Diet",
			Description: "Focus on high protein, low calorie dense foods that keep you full longer.",
			Foods: []string{
				"Lean proteins (chicken breast, turkey, fish)",
				"Leafy greens and fibrous vegetables",
				"Berries and low-sugar fruits",
				"Greek yogurt and cottage cheese",
				"Legumes and beans",
			},
		}
	case model.GoalMuscleGain:
		rec = DietRecommendation{
			Title:       "Muscle Building Diet",
			Description: "Prioritize protein intake and maintain a slight caloric surplus.",
			Foods: []string{
				"Protein-rich foods (lean meats, fish, eggs)",
				"Complex carbs (brown rice, sweet potatoes, oats)",
				"Healthy fats (avocados, nuts, olive oil)",
				"Dairy or alternatives (milk, yogurt, protein shakes)",
				"Nutrient-dense fruits and vegetables",
			},
		}
	default:
		rec = DietRecommendation{
			Title:       "Balanced Maintenance Diet",
			Description: "Focus on nutrient-dense whole foods in balanced proportions.",
			Foods: []string{
				"Varied protein sources (both animal and plant-based)",
				"Whole grains and complex carbohydrates",
				"Healthy fats in moderation",
				"Abundant fruits and vegetables",
				"Limited processed foods and added sugars",
			},
		}
	}

	if model.HasCondition(p.HealthConditions, model.ConditionDiabetes) {
		rec.Description += " With diabetes, focus on low glycemic index foods and consistent meal timing."
		rec.Foods = filterOut(rec.Foods, "sugar", "rice", "potato")
		rec.Foods = append(rec.Foods,
			"Low glycemic index foods",
			"Fiber-rich vegetables",
			"Controlled portions of whole grains",
		)
	}
	if model.HasCondition(p.HealthConditions, model.ConditionHypertension) {
		rec.Description += " For hypertension, limit sodium intake and focus on potassium-rich foods."
		rec.Foods = append(rec.Foods,
			"Low-sodium options",
			"Potassium-rich foods (bananas, spinach)",
			"Limit processed foods",
		)
	}
	if model.HasCondition(p.HealthConditions, model.ConditionThyroid) {
		rec.Description += " With thyroid issues, focus on selenium and iodine-rich foods, and consistent calorie intake."
		rec.Foods = append(rec.Foods,
			"Selenium-rich foods (Brazil nuts, seafood)",
			"Iodine sources (seaweed, fish)",
			"Anti-inflammatory foods",
		)
	}
	if model.HasCondition(p.HealthConditions, model.ConditionHeart) {
		rec.Description += " For heart health, emphasize omega-3 fatty acids and limit saturated fats."
		rec.Foods = append(rec.Foods,
			"Omega-3 rich foods (fatty fish, flaxseeds)",
			"Heart-healthy oils",
			"Limited saturated fats",
		)
	}
	return rec
}

// RecommendWorkout selects the base template for the profile's goal, applies
// condition modifiers (diabetes, hypertension, heart), then BMI modifiers
// (obese/severelyObese, then underweight).
func RecommendWorkout(p model.UserProfile) WorkoutRecommendation {
	var rec WorkoutRecommendation
	switch p.Goal {
	case model.GoalWeightLoss:
		rec = WorkoutRecommendation{
			Title:       "Fat Loss Focused Workouts",
			Description: "Combine cardio and strength training for optimal fat loss.",
			Exercises: []string{
				"HIIT (High-Intensity Interval Training)",
				"Circuit training",
				"Strength training 2-3 times per week",
				"Steady-state cardio 2-3 times per week",
				"Active recovery days with walking or swimming",
			},
			VideoKeywords: []string{"beginner weight loss workout", "fat burning HIIT", "cardio for weight loss"},
		}
	case model.GoalMuscleGain:
		rec = WorkoutRecommendation{
			Title:       "Muscle Building Regimen",
			Description: "Focus on progressive overload and adequate recovery.",
			Exercises: []string{
				"Compound lifts (squats, deadlifts, bench press)",
				"Progressive overload training",
				"Split routines focusing on different muscle groups",
				"Limited cardio to preserve energy for lifting",
				"Rest days between intense workouts",
			},
			VideoKeywords: []string{"beginner muscle building workout", "hypertrophy training", "strength training basics"},
		}
	default:
		rec = WorkoutRecommendation{
			Title:       "Balanced Fitness Routine",
			Description: "Maintain current fitness with varied activities.",
			Exercises: []string{
				"Mixed cardio and strength sessions",
				"Flexibility and mobility work",
				"Recreational sports or activities",
				"Consistent routine with varied intensity",
				"Regular active recovery days",
			},
			VideoKeywords: []string{"balanced workout routine", "fitness maintenance", "mobility and strength"},
		}
	}

	if model.HasCondition(p.HealthConditions, model.ConditionDiabetes) {
		rec.Description += " For diabetes, maintain consistent activity to help regulate blood sugar."
		rec.Exercises = append(rec.Exercises,
			"Regular walking after meals",
			"Consistent daily activity",
			"Blood sugar monitoring before/after exercise",
		)
		rec.VideoKeywords = append(rec.VideoKeywords, "diabetes safe workouts")
	}
	if model.HasCondition(p.HealthConditions, model.ConditionHypertension) {
		rec.Description += " With hypertension, focus on moderate intensity and avoid heavy lifting."
		rec.Exercises = filterOut(rec.Exercises, "hiit")
		rec.Exercises = append(rec.Exercises,
			"Moderate intensity cardio",
			"Controlled breathing exercises",
			"Limited heavy lifting",
		)
		rec.VideoKeywords = append(rec.VideoKeywords, "exercise for high blood pressure")
	}
	if model.HasCondition(p.HealthConditions, model.ConditionHeart) {
		rec.Description += " For heart conditions, prioritize doctor-approved cardio and monitor intensity."
		rec.Exercises = append(rec.Exercises,
			"Heart-rate monitored activities",
			"Supervised exercise when possible",
			"Gradual progression in intensity",
		)
		rec.VideoKeywords = append(rec.VideoKeywords, "heart safe cardio")
	}

	if p.BMICategory == model.BMIObese || p.BMICategory == model.BMISeverelyObese {
		rec.Description += " Start with low-impact exercises to protect joints."
		rec.Exercises = append(rec.Exercises,
			"Swimming or water exercises",
			"Recumbent bike",
			"Seated or supported movements",
		)
		rec.VideoKeywords = append(rec.VideoKeywords, "low impact workout")
	}
	if p.BMICategory == model.BMIUnderweight {
		rec.Description += " Focus on strength building and adequate fueling before workouts."
		rec.Exercises = append(rec.Exercises,
			"Focus on strength over cardio",
			"Ensure adequate pre-workout nutrition",
			"Gradual increase in training volume",
		)
		rec.VideoKeywords = append(rec.VideoKeywords, "workout for underweight")
	}
	return rec
}

// MotivationalMessage picks uniformly from five generic messages plus two
// goal-specific ones. The random source is injected so callers can make the
// choice deterministic.
func MotivationalMessage(p model.UserProfile, rng *rand.Rand) string {
	messages := []string{
		"Every small step is progress. Celebrate your journey!",
		"Your dedication today builds your strength for tomorrow.",
		"Focus on consistency rather than perfection.",
		"You're stronger than you think. Keep pushing forward!",
		"Health is a lifelong journey, not a destination.",
	}
	switch p.Goal {
	case model.GoalWeightLoss:
		messages = append(messages,
			"Small sustainable changes lead to remarkable transformations.",
			"Focus on how you feel, not just the numbers on the scale.",
		)
	case model.GoalMuscleGain:
		messages = append(messages,
			"Growth happens during recovery. Rest is part of the process.",
			"Strength builds slowly but surely with consistent effort.",
		)
	case model.GoalMaintenance:
		messages = append(messages,
			"Maintaining health is an achievement worth celebrating daily.",
			"Balance is the true measure of sustainable wellness.",
		)
	}
	return messages[rng.Intn(len(messages))]
}

func filterOut(items []string, substrings ...string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		lower := strings.ToLower(item)
		keep := true
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}
