package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/blarbs/internal/arena"
)

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	rows := arena.DefaultLayout().Rows()
	rows[0] = "HHHHHHHH"

	var sb strings.Builder
	sb.WriteString("layout:\n")
	for _, r := range rows {
		sb.WriteString("  - \"" + r + "\"\n")
	}
	sb.WriteString("rules:\n  claim: any\n  lives: 0\nchaser:\n  disabled: true\n")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.Claim != "any" || cfg.Rules.Lives != 0 || !cfg.Chaser.Disabled {
		t.Errorf("rules/chaser = %+v %+v", cfg.Rules, cfg.Chaser)
	}
	// omitted fields keep defaults
	if cfg.Chaser.ChaseProbability != 0.92 || cfg.Spawn.Player != (Point{3, 0}) {
		t.Errorf("defaults lost: %+v %+v", cfg.Chaser, cfg.Spawn)
	}

	l, err := cfg.ArenaLayout()
	if err != nil {
		t.Fatalf("ArenaLayout() error = %v", err)
	}
	for i := 0; i < arena.SticksPerRow; i++ {
		if l[i] != arena.Horizontal {
			t.Errorf("layout slot %d = %v, expected horizontal", i, l[i])
		}
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for a missing file")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error = %q, expected config: prefix", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.Lives != 3 {
		t.Errorf("Lives = %d, expected embedded default 3", cfg.Rules.Lives)
	}

	// ./configs beats embedded
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", fileName), []byte("rules:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Rules.Lives != 7 {
		t.Errorf("Lives = %d, expected local 7", cfg.Rules.Lives)
	}

	// ~/.blarbs beats ./configs
	if err := os.MkdirAll(filepath.Join(home, ".blarbs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".blarbs", fileName), []byte("rules:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Rules.Lives != 9 {
		t.Errorf("Lives = %d, expected user 9", cfg.Rules.Lives)
	}

	// an invalid user file is skipped
	if err := os.WriteFile(filepath.Join(home, ".blarbs", fileName), []byte("rules:\n  lives: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Rules.Lives != 7 {
		t.Errorf("Lives = %d, expected fallback to local 7", cfg.Rules.Lives)
	}
}

func TestParseRejects(t *testing.T) {
	shortRow := arena.DefaultLayout().Rows()
	shortRow[0] = shortRow[0][:7]
	layoutDoc := "layout:\n"
	for _, r := range shortRow {
		layoutDoc += "  - " + r + "\n"
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "speed: 3\n"},
		{"bad claim", "rules:\n  claim: everyone\n"},
		{"negative lives", "rules:\n  lives: -2\n"},
		{"probability above one", "chaser:\n  chase_probability: 1.5\n"},
		{"fractional lives", "rules:\n  lives: 1.5\n"},
		{"short point", "spawn:\n  player: [3]\n"},
		{"spawn outside arena", "spawn:\n  chaser: [30, 0]\n"},
		{"too few layout rows", "layout: [VVVVVVVV]\n"},
		{"even row too short", layoutDoc},
		{"bad progression", "difficulty:\n  progression:\n    type: score\n"},
		{"not yaml", "rules: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%q) expected error", tt.doc)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Parse(nil) = %+v, expected defaults", cfg)
	}
}
