package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TopN != 20 {
		t.Errorf("top_n = %d, want 20", cfg.TopN)
	}
	if cfg.CacheMaxAgeHours != 24 {
		t.Errorf("cache_max_age_hours = %d, want 24", cfg.CacheMaxAgeHours)
	}
	if cfg.Weights.AcceptanceImpact != 300 || cfg.Weights.PopularityDiscount != -80 {
		t.Errorf("default weights not applied: %+v", cfg.Weights)
	}
	if cfg.BaseScores.Hard != 450 {
		t.Errorf("base_scores.hard = %g, want 450", cfg.BaseScores.Hard)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
cache_max_age_hours: 6
top_n: 5
weights:
  acceptance_impact: 500
  newness_premium: 0
base_scores:
  easy: 50
  medium: 150
  hard: 400
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.CacheMaxAgeHours != 6 || cfg.TopN != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Weights.AcceptanceImpact != 500 || cfg.Weights.NewnessPremium != 0 {
		t.Errorf("weights = %+v", cfg.Weights)
	}
	// Weights absent from the file keep their defaults.
	if cfg.Weights.LowSolvePenalty != 150 {
		t.Errorf("low_solve_penalty = %g, want default 150", cfg.Weights.LowSolvePenalty)
	}
	if cfg.BaseScores.Easy != 50 || cfg.BaseScores.Hard != 400 {
		t.Errorf("base scores = %+v", cfg.BaseScores)
	}
	// File defaults untouched fields too.
	if cfg.FetchConcurrency != 8 {
		t.Errorf("fetch_concurrency = %d, want default 8", cfg.FetchConcurrency)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("top_n: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_SecretsComeFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.test/webhook")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("gemini key = %q", cfg.GeminiAPIKey)
	}
	if cfg.DiscordWebhookURL != "https://discord.test/webhook" {
		t.Errorf("webhook url = %q", cfg.DiscordWebhookURL)
	}
}

func TestLoad_EnvOverridesConfigPath(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(envPath, []byte("top_n: 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEETRANK_CONFIG", envPath)

	cfg, err := Load(filepath.Join(dir, "other.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TopN != 3 {
		t.Errorf("top_n = %d, want 3 from env-selected file", cfg.TopN)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero top_n", func(c *Config) { c.TopN = 0 }, "top_n"},
		{"zero max age", func(c *Config) { c.CacheMaxAgeHours = 0 }, "cache_max_age_hours"},
		{"empty cache path", func(c *Config) { c.CachePath = "" }, "cache_path"},
		{"empty output path", func(c *Config) { c.OutputCSV = "" }, "output_csv"},
		{"zero concurrency", func(c *Config) { c.FetchConcurrency = 0 }, "fetch_concurrency"},
		{"negative acceptance weight", func(c *Config) { c.Weights.AcceptanceImpact = -1 }, "acceptance_impact"},
		{"negative solve penalty", func(c *Config) { c.Weights.LowSolvePenalty = -1 }, "low_solve_penalty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if err := Defaults().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
