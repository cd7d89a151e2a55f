// Package videos serves workout video references from a fixed keyword lookup
// table. A real video API would slot in behind the same Fetch contract.
package videos

import (
	"github.com/vitacli/vita/internal/model"
)

const maxResults = 3

var videosByKeyword = map[string][]model.ExerciseVideo{
	"beginner weight loss workout": {
		{ID: "UItWltVZZmE", Title: "20 Minute Beginner Weight Loss Workout", ThumbnailURL: "https://i.ytimg.com/vi/UItWltVZZmE/hqdefault.jpg"},
		{ID: "H3jJ29oI8Xc", Title: "30 Min Fat Burning Workout for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/H3jJ29oI8Xc/hqdefault.jpg"},
	},
	"fat burning HIIT": {
		{ID: "ml6cT4AZdqI", Title: "30-Minute HIIT Cardio Workout with Warm Up", ThumbnailURL: "https://i.ytimg.com/vi/ml6cT4AZdqI/hqdefault.jpg"},
		{ID: "BkS1-El_WlE", Title: "20 Minute HIIT Workout - Fat Burning HIIT Cardio", ThumbnailURL: "https://i.ytimg.com/vi/BkS1-El_WlE/hqdefault.jpg"},
	},
	"cardio for weight loss": {
		{ID: "VWj8ZxCxrYk", Title: "Cardio Workout for Weight Loss", ThumbnailURL: "https://i.ytimg.com/vi/VWj8ZxCxrYk/hqdefault.jpg"},
		{ID: "gC_L9qAHVJ8", Title: "30-Minute No-Equipment Cardio Workout", ThumbnailURL: "https://i.ytimg.com/vi/gC_L9qAHVJ8/hqdefault.jpg"},
	},
	"beginner muscle building workout": {
		{ID: "ixkQaZXVQjs", Title: "The Only 8 Exercises Men Need to Build Muscle", ThumbnailURL: "https://i.ytimg.com/vi/ixkQaZXVQjs/hqdefault.jpg"},
		{ID: "95846CBGU0M", Title: "Beginner Muscle Building Workout", ThumbnailURL: "https://i.ytimg.com/vi/95846CBGU0M/hqdefault.jpg"},
	},
	"hypertrophy training": {
		{ID: "LktGPg-AkvY", Title: "The Most Effective Training Split for Muscle Growth", ThumbnailURL: "https://i.ytimg.com/vi/LktGPg-AkvY/hqdefault.jpg"},
		{ID: "7t3KZeE-tCQ", Title: "Science-Based Hypertrophy Training", ThumbnailURL: "https://i.ytimg.com/vi/7t3KZeE-tCQ/hqdefault.jpg"},
	},
	"strength training basics": {
		{ID: "VeQS2_wLDT4", Title: "Strength Training for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/VeQS2_wLDT4/hqdefault.jpg"},
		{ID: "1vRXWD_Q7gE", Title: "The 5 Basic Principles of Strength Training", ThumbnailURL: "https://i.ytimg.com/vi/1vRXWD_Q7gE/hqdefault.jpg"},
	},
	"balanced workout routine": {
		{ID: "5ioVR5oQpHc", Title: "Perfect Full Body Workout for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/5ioVR5oQpHc/hqdefault.jpg"},
		{ID: "UBMk30rjy0o", Title: "20 Min FULL BODY WORKOUT for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/UBMk30rjy0o/hqdefault.jpg"},
	},
	"fitness maintenance": {
		{ID: "PwJCJToQmps", Title: "15 Min Daily Exercise Routine", ThumbnailURL: "https://i.ytimg.com/vi/PwJCJToQmps/hqdefault.jpg"},
		{ID: "bSXr6V9q6rM", Title: "10 Min Full Body Workout - Ideal For Maintaining Fitness", ThumbnailURL: "https://i.ytimg.com/vi/bSXr6V9q6rM/hqdefault.jpg"},
	},
	"mobility and strength": {
		{ID: "g_tea8ZNk5A", Title: "15 Min Full Body Mobility Routine", ThumbnailURL: "https://i.ytimg.com/vi/g_tea8ZNk5A/hqdefault.jpg"},
		{ID: "TSMbcg-EL5s", Title: "Mobility Exercises for Better Performance", ThumbnailURL: "https://i.ytimg.com/vi/TSMbcg-EL5s/hqdefault.jpg"},
	},
	"diabetes safe workouts": {
		{ID: "TYGIgfNKD6o", Title: "Exercise Tips for Type 2 Diabetes", ThumbnailURL: "https://i.ytimg.com/vi/TYGIgfNKD6o/hqdefault.jpg"},
		{ID: "qDemFPwJzTY", Title: "Safe and Effective Exercises for Diabetes", ThumbnailURL: "https://i.ytimg.com/vi/qDemFPwJzTY/hqdefault.jpg"},
	},
	"exercise for high blood pressure": {
		{ID: "qn5LfZUZ_z8", Title: "Exercises for High Blood Pressure", ThumbnailURL: "https://i.ytimg.com/vi/qn5LfZUZ_z8/hqdefault.jpg"},
		{ID: "Oev_5hnrachM", Title: "Safe Workout with Hypertension", ThumbnailURL: "https://i.ytimg.com/vi/Oev_5hnrachM/hqdefault.jpg"},
	},
	"heart safe cardio": {
		{ID: "8P-SfsoSPO8", Title: "Heart Healthy Cardio Workout", ThumbnailURL: "https://i.ytimg.com/vi/8P-SfsoSPO8/hqdefault.jpg"},
		{ID: "haVuLcCzZxs", Title: "Low Impact Cardio for Heart Health", ThumbnailURL: "https://i.ytimg.com/vi/haVuLcCzZxs/hqdefault.jpg"},
	},
	"low impact workout": {
		{ID: "7HqGCwt4F1I", Title: "30 Minute Low Impact Workout", ThumbnailURL: "https://i.ytimg.com/vi/7HqGCwt4F1I/hqdefault.jpg"},
		{ID: "50kH47ZztHs", Title: "Apartment-Friendly Low Impact Workout", ThumbnailURL: "https://i.ytimg.com/vi/50kH47ZztHs/hqdefault.jpg"},
	},
	"workout for underweight": {
		{ID: "c1qxpT52WJU", Title: "Workout Guide for Skinny Guys", ThumbnailURL: "https://i.ytimg.com/vi/c1qxpT52WJU/hqdefault.jpg"},
		{ID: "LUJqTGJoG2Q", Title: "How to Gain Weight and Build Muscle", ThumbnailURL: "https://i.ytimg.com/vi/LUJqTGJoG2Q/hqdefault.jpg"},
	},
}

var defaultVideos = []model.ExerciseVideo{
	{ID: "5ioVR5oQpHc", Title: "Perfect Full Body Workout for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/5ioVR5oQpHc/hqdefault.jpg"},
	{ID: "UBMk30rjy0o", Title: "20 Min FULL BODY WORKOUT for Beginners", ThumbnailURL: "https://i.ytimg.com/vi/UBMk30rjy0o/hqdefault.jpg"},
	{ID: "PwJCJToQmps", Title: "15 Min Daily Exercise Routine", ThumbnailURL: "https://i.ytimg.com/vi/PwJCJToQmps/hqdefault.jpg"},
}

// Fetch accumulates videos keyword by keyword until at least maxResults have
// been collected or the keywords run out, then caps the list at maxResults.
// With no matches at all it returns the default list.
func Fetch(keywords []string) []model.ExerciseVideo {
	results := make([]model.ExerciseVideo, 0, maxResults)
	for _, keyword := range keywords {
		matched, ok := videosByKeyword[keyword]
		if !ok {
			continue
		}
		results = append(results, matched...)
		if len(results) >= maxResults {
			break
		}
	}
	if len(results) == 0 {
		results = append(results, defaultVideos...)
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// KeywordsFor builds the lookup keywords for a profile: one for the goal,
// plus condition and BMI-specific keywords when applicable.
func KeywordsFor(p model.UserProfile) []string {
	keywords := make([]string, 0, 4)
	switch p.Goal {
	case model.GoalWeightLoss:
		keywords = append(keywords, "weight loss workout")
	case model.GoalMuscleGain:
		keywords = append(keywords, "muscle building workout")
	case model.GoalMaintenance:
		keywords = append(keywords, "fitness maintenance")
	}
	if model.HasCondition(p.HealthConditions, model.ConditionDiabetes) {
		keywords = append(keywords, "diabetes safe workouts")
	}
	if model.HasCondition(p.HealthConditions, model.ConditionHeart) {
		keywords = append(keywords, "heart safe cardio")
	}
	if p.BMICategory == model.BMIObese {
		keywords = append(keywords, "low impact workout")
	}
	return keywords
}
