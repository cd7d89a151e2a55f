package vita

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatal("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	for i := 0; i < 2; i++ {
		runCommand(t, "--db", path, "init")
	}
}

func TestProfileCreateAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	runCommand(t, "--db", path, "init")

	out := runCommand(t, "--db", path, "profile", "create",
		"--name", "Alex", "--age", "25", "--gender", "male",
		"--height", "180", "--weight", "80", "--goal", "muscleGain")
	if !strings.Contains(out, "BMI: 24.7") {
		t.Fatalf("create output = %q", out)
	}

	out = runCommand(t, "--db", path, "profile", "show")
	if !strings.Contains(out, "Name: Alex") || !strings.Contains(out, "normal") {
		t.Fatalf("show output = %q", out)
	}
}

func TestLogAddUpdatesToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	runCommand(t, "--db", path, "init")
	runCommand(t, "--db", path, "profile", "create",
		"--name", "Alex", "--age", "25", "--gender", "male",
		"--height", "180", "--weight", "80", "--goal", "muscleGain")

	out := runCommand(t, "--db", path, "log", "add",
		"--name", "Grilled Chicken", "--calories", "300", "--protein", "30",
		"--carbs", "10", "--fat", "5", "--meal", "lunch")
	if !strings.Contains(out, "Added Grilled Chicken") {
		t.Fatalf("add output = %q", out)
	}

	out = runCommand(t, "--db", path, "today")
	if !strings.Contains(out, "Intake: 300 kcal") {
		t.Fatalf("today output = %q", out)
	}
}

func TestSearchFallsBackToLocalTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	runCommand(t, "--db", path, "init")

	out := runCommand(t, "--db", path, "search", "banana")
	if !strings.Contains(out, "Banana (100g)") {
		t.Fatalf("search output = %q", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vita.db")
	snapshot := filepath.Join(dir, "snapshot.json")
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write empty snapshot: %v", err)
	}

	runCommand(t, "--db", path, "init")
	runCommand(t, "--db", path, "profile", "create",
		"--name", "Alex", "--age", "25", "--gender", "male",
		"--height", "180", "--weight", "80", "--goal", "muscleGain")
	runCommand(t, "--db", path, "export", "--out", snapshot)

	// Importing an empty snapshot is a replace, not a merge.
	runCommand(t, "--db", path, "import", "--in", empty)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--db", path, "profile", "show"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("profile show should fail after importing an empty snapshot")
	}

	// Restoring the exported snapshot brings the profile back.
	runCommand(t, "--db", path, "import", "--in", snapshot)
	out := runCommand(t, "--db", path, "profile", "show")
	if !strings.Contains(out, "Name: Alex") {
		t.Fatalf("show output = %q", out)
	}
}

func TestVideosForProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	runCommand(t, "--db", path, "init")
	runCommand(t, "--db", path, "profile", "create",
		"--name", "Alex", "--age", "25", "--gender", "male",
		"--height", "180", "--weight", "80", "--goal", "maintenance")

	out := runCommand(t, "--db", path, "videos")
	if !strings.Contains(out, "15 Min Daily Exercise Routine") {
		t.Fatalf("videos output = %q", out)
	}
}
