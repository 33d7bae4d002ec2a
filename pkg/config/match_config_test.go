package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchConfigIsValid(t *testing.T) {
	cfg := DefaultMatchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Rules.PointsToWin != 5 {
		t.Errorf("PointsToWin: got %d, want 5", cfg.Rules.PointsToWin)
	}
}

func TestParseMatchConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MatchConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
field:
  width: 500
  height: 300
paddles:
  player1Start: { x: 100, y: 150 }
  player2Start: { x: 400, y: 150 }
players:
  one: { name: "Ann" }
`,
			validate: func(t *testing.T, cfg *MatchConfig) {
				if cfg.Field.Width != 500 || cfg.Field.Height != 300 {
					t.Errorf("field: got %vx%v, want 500x300", cfg.Field.Width, cfg.Field.Height)
				}
				// 未配置字段保留默认值
				if cfg.Puck.Radius != 15 {
					t.Errorf("puck radius: got %v, want 15", cfg.Puck.Radius)
				}
				if cfg.Players.One.Name != "Ann" {
					t.Errorf("player one name: got %q, want Ann", cfg.Players.One.Name)
				}
				if cfg.Players.One.Color != "#e74c3c" {
					t.Errorf("player one color: got %q, want default", cfg.Players.One.Color)
				}
			},
		},
		{
			name:        "zero field width",
			yamlContent: "field:\n  width: 0\n",
			wantErr:     true,
			errContains: "field size",
		},
		{
			name:        "negative puck radius",
			yamlContent: "puck:\n  radius: -1\n",
			wantErr:     true,
			errContains: "puck radius",
		},
		{
			name:        "friction above one",
			yamlContent: "paddles:\n  friction: 1.2\n",
			wantErr:     true,
			errContains: "paddle friction",
		},
		{
			name:        "player one start on the right half",
			yamlContent: "paddles:\n  player1Start: { x: 700, y: 200 }\n",
			wantErr:     true,
			errContains: "player1Start",
		},
		{
			name:        "points to win zero",
			yamlContent: "rules:\n  pointsToWin: 0\n",
			wantErr:     true,
			errContains: "pointsToWin",
		},
		{
			name:        "goal height out of range",
			yamlContent: "rules:\n  defaultGoalHeight: 95\n",
			wantErr:     true,
			errContains: "defaultGoalHeight",
		},
		{
			name:        "bad color",
			yamlContent: "players:\n  two: { color: \"blue\" }\n",
			wantErr:     true,
			errContains: "invalid color",
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMatchConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMatchConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match.yaml")
	if err := os.WriteFile(path, []byte("zone:\n  maxTime: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadMatchConfig(path)
	if err != nil {
		t.Fatalf("LoadMatchConfig: %v", err)
	}
	if cfg.Zone.MaxTime != 9 {
		t.Errorf("zone maxTime: got %v, want 9", cfg.Zone.MaxTime)
	}

	if _, err := LoadMatchConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should return error")
	}
}

func TestBundledMatchConfig(t *testing.T) {
	cfg, err := LoadMatchConfig(filepath.Join("..", "..", "data", "match.yaml"))
	if err != nil {
		t.Fatalf("bundled data/match.yaml should load: %v", err)
	}
	if *cfg != *DefaultMatchConfig() {
		t.Errorf("bundled config should match defaults:\n got %+v\nwant %+v", *cfg, *DefaultMatchConfig())
	}
}

func TestGoalHeightAndTimers(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"goal below min", ClampGoalHeight(0), 5},
		{"goal above max", ClampGoalHeight(120), 90},
		{"goal in range", ClampGoalHeight(35), 35},
		{"display unset", EffectiveGameOverDisplay(0), 3},
		{"display too small", EffectiveGameOverDisplay(0.5), 3},
		{"display at min", EffectiveGameOverDisplay(1), 1},
		{"display configured", EffectiveGameOverDisplay(4.5), 4.5},
		{"countdown unset", EffectiveResetCountdown(0), 3},
		{"countdown configured", EffectiveResetCountdown(2), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#3498db")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c.R != 0x34 || c.G != 0x98 || c.B != 0xdb || c.A != 0xff {
		t.Errorf("color: got %+v", c)
	}

	short, err := ParseHexColor("#f0a")
	if err != nil {
		t.Fatalf("short form: %v", err)
	}
	if short.R != 0xff || short.G != 0x00 || short.B != 0xaa {
		t.Errorf("short color: got %+v", short)
	}

	if _, err := ParseHexColor("#12345z"); err == nil {
		t.Error("invalid hex digits should fail")
	}

	fallback := HexColorOr("nope", c)
	if fallback != c {
		t.Errorf("HexColorOr fallback: got %+v, want %+v", fallback, c)
	}
}
