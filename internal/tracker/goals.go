package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
)

// AddGoal records a new progress goal starting at zero.
func (t *Tracker) AddGoal(goalType model.GoalType, target float64, deadline string) (model.ProgressGoal, error) {
	if target <= 0 {
		return model.ProgressGoal{}, fmt.Errorf("goal target must be > 0")
	}
	if deadline != "" {
		if _, err := time.Parse("2006-01-02", deadline); err != nil {
			return model.ProgressGoal{}, fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD)", deadline)
		}
	}
	goal := model.ProgressGoal{
		ID:       uuid.NewString(),
		Type:     goalType,
		Target:   target,
		Current:  0,
		Deadline: deadline,
	}
	t.goals = append(t.goals, goal)
	if err := t.persistGoals(); err != nil {
		return model.ProgressGoal{}, err
	}
	t.notify.Notify("Goal added!", "Your new goal has been set successfully.")
	return goal, nil
}

// UpdateGoalProgress sets the goal's current value; completion is derived,
// true exactly when current reaches the target.
func (t *Tracker) UpdateGoalProgress(id string, current float64) (model.ProgressGoal, error) {
	for i := range t.goals {
		if t.goals[i].ID != id {
			continue
		}
		t.goals[i].Current = current
		t.goals[i].IsCompleted = current >= t.goals[i].Target
		if err := t.persistGoals(); err != nil {
			return model.ProgressGoal{}, err
		}
		return t.goals[i], nil
	}
	return model.ProgressGoal{}, fmt.Errorf("goal %q not found", id)
}

// Goals returns all progress goals in creation order.
func (t *Tracker) Goals() []model.ProgressGoal {
	out := make([]model.ProgressGoal, len(t.goals))
	copy(out, t.goals)
	return out
}

func (t *Tracker) persistGoals() error {
	if err := t.store.Put(store.KeyProgressGoals, t.goals); err != nil {
		return fmt.Errorf("persist progress goals: %w", err)
	}
	return nil
}
