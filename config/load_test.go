package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, s := range AllStates() {
		id, ok := StateAnimations[s]
		if !ok {
			t.Fatalf("state %s has no animation", s)
		}
		if _, ok := cfg.Animations[id]; !ok {
			t.Fatalf("animation %q missing from table", id)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.toml")
	body := `
width = 1280

[dash]
distance = 250.0

[attack]
max_duration = 0.5

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 1280 {
		t.Errorf("width = %d, want 1280", cfg.Width)
	}
	if cfg.Height != 540 {
		t.Errorf("height = %d, want default 540", cfg.Height)
	}
	if cfg.Dash.Distance != 250 {
		t.Errorf("dash distance = %v, want 250", cfg.Dash.Distance)
	}
	if cfg.Dash.Speed != 350 {
		t.Errorf("dash speed = %v, want default 350", cfg.Dash.Speed)
	}
	if cfg.Attack.MaxDuration != 0.5 {
		t.Errorf("max attack duration = %v, want 0.5", cfg.Attack.MaxDuration)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.JumpPower != Default().Player.JumpPower {
		t.Errorf("jump power = %v", cfg.Player.JumpPower)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero step", "[clock]\nmax_step = 0.0\n", "max_step"},
		{"bad threshold", "[dash]\nend_threshold = 1.5\n", "end_threshold"},
		{"bounds", "[physics]\nmin_x = 10.0\nmax_x = 5.0\n", "max_x"},
		{"syntax", "width = = 3", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(tt.body), cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseAnimationsValidation(t *testing.T) {
	if _, err := ParseAnimations([]byte("animations:\n  idle:\n    frames: 0\n")); err == nil {
		t.Fatal("expected error for zero frame count")
	}
	if _, err := ParseAnimations([]byte("animations:\n  idle:\n    frames: 2\n    fps: 4\n")); err == nil {
		t.Fatal("expected error for incomplete table")
	}
}

func TestStateStrings(t *testing.T) {
	if Idle.String() != "IDLE" || DashEnd.String() != "DASHEND" {
		t.Errorf("unexpected names %s %s", Idle, DashEnd)
	}
	if StateID(99).Valid() {
		t.Error("99 should not be a valid state")
	}
	var zero StateID
	if zero != Idle {
		t.Error("zero state must be Idle")
	}
}
