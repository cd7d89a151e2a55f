package vita

import (
	"fmt"
	"os"
	"strings"

	"github.com/vitacli/vita/internal/app"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
	"github.com/vitacli/vita/internal/tracker"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	return run(s)
}

func withTracker(run func(*tracker.Tracker, *store.Store) error) error {
	return withStore(func(s *store.Store) error {
		t, err := tracker.New(s, tracker.Options{})
		if err != nil {
			return err
		}
		return run(t, s)
	})
}

// requireProfile loads the tracker and fails if no profile exists yet.
func requireProfile(run func(*tracker.Tracker, model.UserProfile) error) error {
	return withTracker(func(t *tracker.Tracker, _ *store.Store) error {
		p := t.Profile()
		if p == nil {
			return fmt.Errorf("no profile found, run 'vita profile create' first")
		}
		return run(t, *p)
	})
}

func parseConditions(values []string) ([]model.HealthCondition, error) {
	out := make([]model.HealthCondition, 0, len(values))
	for _, v := range values {
		c, err := model.ParseHealthCondition(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// resolveAPIKey prefers the environment over the stored config blob.
func resolveAPIKey(s *store.Store) string {
	if key := strings.TrimSpace(os.Getenv("VITA_USDA_API_KEY")); key != "" {
		return key
	}
	var cfg map[string]string
	if _, err := s.Get(store.KeyAppConfig, &cfg); err != nil {
		return ""
	}
	return cfg[configKeyUSDAAPIKey]
}
