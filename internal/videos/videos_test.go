package videos

import (
	"testing"

	"github.com/vitacli/vita/internal/model"
)

func TestFetchSingleKeyword(t *testing.T) {
	t.Parallel()
	got := Fetch([]string{"fitness maintenance"})
	if len(got) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(got))
	}
	if got[0].ID != "PwJCJToQmps" || got[1].ID != "bSXr6V9q6rM" {
		t.Fatalf("unexpected videos: %+v", got)
	}
}

func TestFetchCapsAtThree(t *testing.T) {
	t.Parallel()
	got := Fetch([]string{"fitness maintenance", "diabetes safe workouts", "heart safe cardio"})
	if len(got) != 3 {
		t.Fatalf("expected cap at 3, got %d", len(got))
	}
	// Third keyword is never reached: two maintenance videos plus the first
	// diabetes video fill the cap.
	if got[0].ID != "PwJCJToQmps" || got[1].ID != "bSXr6V9q6rM" || got[2].ID != "TYGIgfNKD6o" {
		t.Fatalf("unexpected videos: %+v", got)
	}
}

func TestFetchSkipsUnknownKeywords(t *testing.T) {
	t.Parallel()
	got := Fetch([]string{"no such keyword", "heart safe cardio"})
	if len(got) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(got))
	}
	if got[0].ID != "8P-SfsoSPO8" {
		t.Fatalf("unexpected videos: %+v", got)
	}
}

func TestFetchDefaultsWhenNothingMatches(t *testing.T) {
	t.Parallel()
	for _, keywords := range [][]string{nil, {}, {"no such keyword"}} {
		got := Fetch(keywords)
		if len(got) != 3 {
			t.Fatalf("keywords %v: expected default list of 3, got %d", keywords, len(got))
		}
		if got[0].ID != "5ioVR5oQpHc" || got[1].ID != "UBMk30rjy0o" || got[2].ID != "PwJCJToQmps" {
			t.Fatalf("keywords %v: unexpected defaults: %+v", keywords, got)
		}
	}
}

func TestKeywordsForGoalOnly(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		Goal:             model.GoalMaintenance,
		HealthConditions: []model.HealthCondition{model.ConditionNone},
		BMICategory:      model.BMINormal,
	}
	got := KeywordsFor(p)
	if len(got) != 1 || got[0] != "fitness maintenance" {
		t.Fatalf("keywords = %v", got)
	}
}

func TestKeywordsForConditionsAndBMI(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		Goal:             model.GoalWeightLoss,
		HealthConditions: []model.HealthCondition{model.ConditionDiabetes, model.ConditionHeart},
		BMICategory:      model.BMIObese,
	}
	got := KeywordsFor(p)
	want := []string{"weight loss workout", "diabetes safe workouts", "heart safe cardio", "low impact workout"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGoalKeywordsFallToDefaults(t *testing.T) {
	t.Parallel()
	// The weight loss and muscle gain goal keywords are not table keys, so a
	// profile with no conditions and normal BMI gets the default list.
	p := model.UserProfile{
		Goal:             model.GoalWeightLoss,
		HealthConditions: []model.HealthCondition{model.ConditionNone},
		BMICategory:      model.BMINormal,
	}
	got := Fetch(KeywordsFor(p))
	if len(got) != 3 || got[0].ID != "5ioVR5oQpHc" {
		t.Fatalf("expected default list, got %+v", got)
	}
}
