// Package tracker owns the mutable profile and daily-log state. Every
// mutation re-derives dependent values and persists the affected blobs before
// returning; reads never recompute stored state.
package tracker

import (
	"fmt"
	"time"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
)

// VideoRefresher receives the updated profile whenever a change should
// refresh the workout video list. Implementations decide whether to run
// asynchronously; the tracker never waits on the result.
type VideoRefresher interface {
	Refresh(p model.UserProfile)
}

// Notifier surfaces user-facing acknowledgements. Failures to notify never
// affect state.
type Notifier interface {
	Notify(title, message string)
}

type noopVideos struct{}

func (noopVideos) Refresh(model.UserProfile) {}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) {}

type Options struct {
	Now      func() time.Time
	Videos   VideoRefresher
	Notifier Notifier
}

type Tracker struct {
	store  *store.Store
	now    func() time.Time
	videos VideoRefresher
	notify Notifier

	profile *model.UserProfile
	logs    []model.DailyLog
	goals   []model.ProgressGoal

	currentDate string
}

// New loads persisted state and returns a tracker bound to the store.
func New(s *store.Store, opts Options) (*Tracker, error) {
	t := &Tracker{
		store:  s,
		now:    opts.Now,
		videos: opts.Videos,
		notify: opts.Notifier,
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.videos == nil {
		t.videos = noopVideos{}
	}
	if t.notify == nil {
		t.notify = noopNotifier{}
	}

	var profile model.UserProfile
	found, err := s.Get(store.KeyUserProfile, &profile)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if found {
		t.profile = &profile
	}
	if _, err := s.Get(store.KeyDailyLogs, &t.logs); err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	if _, err := s.Get(store.KeyProgressGoals, &t.goals); err != nil {
		return nil, fmt.Errorf("load progress goals: %w", err)
	}
	return t, nil
}

type CreateProfileInput struct {
	Name             string
	Age              int
	Gender           model.Gender
	HeightCm         float64
	WeightKg         float64
	Goal             model.Goal
	HealthConditions []model.HealthCondition
}

// CreateProfile computes derived fields and stores the profile. Incomplete
// input is silently ignored: callers are expected to pre-validate.
func (t *Tracker) CreateProfile(in CreateProfileInput) error {
	if in.Name == "" || in.Age <= 0 || in.HeightCm <= 0 || in.WeightKg <= 0 {
		return nil
	}

	bmi := health.CalculateBMI(in.HeightCm, in.WeightKg)
	profile := model.UserProfile{
		Name:             in.Name,
		Age:              in.Age,
		Gender:           in.Gender,
		HeightCm:         in.HeightCm,
		WeightKg:         in.WeightKg,
		Goal:             in.Goal,
		HealthConditions: model.NormalizeConditions(in.HealthConditions),
		BMI:              bmi,
		BMICategory:      health.BMICategoryFor(bmi),
	}
	t.profile = &profile
	if err := t.persistProfile(); err != nil {
		return err
	}

	t.notify.Notify("Profile created!", fmt.Sprintf("Welcome, %s! We've calculated your BMI as %.1f.", profile.Name, profile.BMI))
	t.videos.Refresh(profile)
	return nil
}

// ProfileUpdate carries the fields to merge; nil fields are left unchanged.
type ProfileUpdate struct {
	Name             *string
	Age              *int
	Gender           *model.Gender
	HeightCm         *float64
	WeightKg         *float64
	Goal             *model.Goal
	HealthConditions []model.HealthCondition
}

// UpdateProfile merges the partial update. BMI and its category are always
// recomputed together when height or weight changes, never one without the
// other. A goal change refreshes the video list.
func (t *Tracker) UpdateProfile(update ProfileUpdate) error {
	if t.profile == nil {
		return nil
	}

	p := *t.profile
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Age != nil {
		p.Age = *update.Age
	}
	if update.Gender != nil {
		p.Gender = *update.Gender
	}
	if update.HeightCm != nil {
		p.HeightCm = *update.HeightCm
	}
	if update.WeightKg != nil {
		p.WeightKg = *update.WeightKg
	}
	if update.Goal != nil {
		p.Goal = *update.Goal
	}
	if update.HealthConditions != nil {
		p.HealthConditions = model.NormalizeConditions(update.HealthConditions)
	}

	if update.HeightCm != nil || update.WeightKg != nil {
		p.BMI = health.CalculateBMI(p.HeightCm, p.WeightKg)
		p.BMICategory = health.BMICategoryFor(p.BMI)
	}

	t.profile = &p
	if err := t.persistProfile(); err != nil {
		return err
	}

	t.notify.Notify("Profile updated", "Your profile has been updated successfully.")
	if update.Goal != nil {
		t.videos.Refresh(p)
	}
	return nil
}

// Profile returns a copy of the stored profile, or nil when none exists.
func (t *Tracker) Profile() *model.UserProfile {
	if t.profile == nil {
		return nil
	}
	p := *t.profile
	return &p
}

// EnsureCurrentLog makes today's log the current one, creating and appending
// a zero-totals log only when no entry for today's date exists. Calling it
// again on the same day is a no-op.
func (t *Tracker) EnsureCurrentLog() (model.DailyLog, error) {
	today := t.now().Format("2006-01-02")
	t.currentDate = today

	for _, l := range t.logs {
		if l.Date == today {
			return l, nil
		}
	}

	fresh := model.DailyLog{Date: today, Items: []model.FoodItem{}}
	t.logs = append(t.logs, fresh)
	if err := t.persistLogs(); err != nil {
		return model.DailyLog{}, err
	}
	return fresh, nil
}

// AddFoodItem appends the item to today's log and recomputes all four totals
// from the full item list. Invalid items are silently dropped.
func (t *Tracker) AddFoodItem(item model.FoodItem) error {
	if !item.Valid() {
		return nil
	}
	current, err := t.EnsureCurrentLog()
	if err != nil {
		return err
	}

	current.Items = append(current.Items, item)
	current.TotalCalories, current.TotalProtein, current.TotalCarbs, current.TotalFat = sumItems(current.Items)

	for i := range t.logs {
		if t.logs[i].Date == current.Date {
			t.logs[i] = current
			break
		}
	}
	if err := t.persistLogs(); err != nil {
		return err
	}

	t.notify.Notify("Food added", fmt.Sprintf("%s has been added to your log.", item.Name))
	return nil
}

// CurrentLog returns today's log if it exists in history.
func (t *Tracker) CurrentLog() *model.DailyLog {
	today := t.now().Format("2006-01-02")
	for i := range t.logs {
		if t.logs[i].Date == today {
			l := t.logs[i]
			return &l
		}
	}
	return nil
}

// Logs returns the full history in insertion order.
func (t *Tracker) Logs() []model.DailyLog {
	out := make([]model.DailyLog, len(t.logs))
	copy(out, t.logs)
	return out
}

// RecentLogs returns the last n history entries, oldest first.
func (t *Tracker) RecentLogs(n int) []model.DailyLog {
	if n <= 0 || len(t.logs) == 0 {
		return nil
	}
	start := len(t.logs) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.DailyLog, len(t.logs)-start)
	copy(out, t.logs[start:])
	return out
}

// ReplaceState overwrites profile and logs wholesale, used by import. A nil
// profile or empty log slice removes the stored blob rather than keeping the
// old one.
func (t *Tracker) ReplaceState(profile *model.UserProfile, logs []model.DailyLog) error {
	t.profile = profile
	t.logs = logs

	if t.profile == nil {
		if err := t.store.Delete(store.KeyUserProfile); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
	} else if err := t.persistProfile(); err != nil {
		return err
	}

	if len(t.logs) == 0 {
		if err := t.store.Delete(store.KeyDailyLogs); err != nil {
			return fmt.Errorf("clear daily logs: %w", err)
		}
		return nil
	}
	return t.persistLogs()
}

func (t *Tracker) persistProfile() error {
	if t.profile == nil {
		return nil
	}
	if err := t.store.Put(store.KeyUserProfile, t.profile); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

func (t *Tracker) persistLogs() error {
	if len(t.logs) == 0 {
		return nil
	}
	if err := t.store.Put(store.KeyDailyLogs, t.logs); err != nil {
		return fmt.Errorf("persist daily logs: %w", err)
	}
	return nil
}

func sumItems(items []model.FoodItem) (calories, protein, carbs, fat float64) {
	for _, it := range items {
		calories += it.Calories
		protein += it.Protein
		carbs += it.Carbs
		fat += it.Fat
	}
	return calories, protein, carbs, fat
}
