package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLevel(t *testing.T) {
	tests := map[string]string{
		"level1":     "level1.yaml",
		"level3.tmx": "level3.tmx",
	}
	for name, expected := range tests {
		_, file, err := loadLevel(name)
		if err != nil || file != expected {
			t.Errorf("loadLevel(%q) = %q, %v, expected %q", name, file, err, expected)
		}
	}
	if _, _, err := loadLevel("missing"); err == nil {
		t.Error("loadLevel(missing) should fail")
	}
}

func TestLoadFrames(t *testing.T) {
	script := filepath.Join(t.TempDir(), "walk.yaml")
	if err := os.WriteFile(script, []byte("- {ticks: 3, right: true}\n- {ticks: 2, jump: true}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { flagScript, flagTicks = "", 600 })

	tests := []struct {
		name     string
		script   string
		ticks    int
		expected int
		ok       bool
	}{
		{"idle", "", 10, 10, true},
		{"no ticks", "", 0, 0, false},
		{"script", script, 10, 5, true},
		{"missing script", filepath.Join(t.TempDir(), "nope.yaml"), 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagScript, flagTicks = tt.script, tt.ticks
			frames, err := loadFrames()
			if tt.ok != (err == nil) {
				t.Fatalf("loadFrames() error = %v", err)
			}
			if len(frames) != tt.expected {
				t.Errorf("len(frames) = %d, expected %d", len(frames), tt.expected)
			}
		})
	}
}

func TestRecordThenReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	t.Cleanup(func() { flagScript, flagTicks = "", 600 })

	for _, args := range [][]string{
		{"record", "level1", "--ticks", "30", "--db", db},
		{"replay", "1", "--db", db},
		{"runs", "level1", "--db", db},
	} {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	rootCmd.SetArgs([]string{"replay", "2", "--db", db})
	if err := rootCmd.Execute(); err == nil {
		t.Error("replaying a missing run should fail")
	}
}
