package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"leetrank/internal/scoring"
)

// Config contains runtime configuration values.
type Config struct {
	CachePath        string             `yaml:"cache_path"`
	CacheMaxAgeHours int                `yaml:"cache_max_age_hours"`
	OutputCSV        string             `yaml:"output_csv"`
	TopN             int                `yaml:"top_n"`
	FetchTimeoutSec  int                `yaml:"fetch_timeout_secs"`
	FetchConcurrency int                `yaml:"fetch_concurrency"`
	ScheduleCron     string             `yaml:"schedule_cron"`
	Weights          scoring.Weights    `yaml:"weights"`
	BaseScores       scoring.BaseScores `yaml:"base_scores"`

	DiscordWebhookURL string `yaml:"discord_webhook_url"`
	GeminiModel       string `yaml:"gemini_model"`
	GeminiAPIKey      string `yaml:"-"`
}

const (
	defaultCachePath   = "leetcode_problems_cache.json"
	defaultMaxAgeHours = 24
	defaultOutputCSV   = "leetcode_ranked_problems.csv"
	defaultTopN        = 20
	defaultTimeoutSec  = 30
	defaultConcurrency = 8
	defaultCron        = "0 9 * * *" // 09:00 every day, used by watch mode
	defaultGeminiModel = "gemini-2.5-flash"
)

// Defaults returns a Config with all default values set.
func Defaults() *Config {
	return &Config{
		CachePath:        defaultCachePath,
		CacheMaxAgeHours: defaultMaxAgeHours,
		OutputCSV:        defaultOutputCSV,
		TopN:             defaultTopN,
		FetchTimeoutSec:  defaultTimeoutSec,
		FetchConcurrency: defaultConcurrency,
		ScheduleCron:     defaultCron,
		Weights:          scoring.DefaultWeights(),
		BaseScores:       scoring.DefaultBaseScores(),
		GeminiModel:      defaultGeminiModel,
	}
}

// Load reads the YAML config at path, falling back to defaults when
// the file does not exist. LEETRANK_CONFIG overrides the path and
// secrets come from the environment, never from the file.
func Load(path string) (*Config, error) {
	if envPath := os.Getenv("LEETRANK_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file is fine; the tool runs on defaults.
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if url := os.Getenv("DISCORD_WEBHOOK_URL"); url != "" {
		cfg.DiscordWebhookURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxAge is the cache freshness threshold.
func (c *Config) MaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeHours) * time.Hour
}

// Timeout is the per-request network timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// Validate checks that values are usable and that the weight signs
// keep the score monotonic in the documented directions.
func (c *Config) Validate() error {
	if c.CachePath == "" {
		return fmt.Errorf("cache_path is required")
	}
	if c.CacheMaxAgeHours < 1 {
		return fmt.Errorf("cache_max_age_hours must be at least 1, got %d", c.CacheMaxAgeHours)
	}
	if c.OutputCSV == "" {
		return fmt.Errorf("output_csv is required")
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.FetchTimeoutSec < 1 {
		return fmt.Errorf("fetch_timeout_secs must be at least 1, got %d", c.FetchTimeoutSec)
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("fetch_concurrency must be at least 1, got %d", c.FetchConcurrency)
	}
	if c.Weights.AcceptanceImpact < 0 {
		return fmt.Errorf("weights.acceptance_impact must not be negative, got %g", c.Weights.AcceptanceImpact)
	}
	if c.Weights.LowSolvePenalty < 0 {
		return fmt.Errorf("weights.low_solve_penalty must not be negative, got %g", c.Weights.LowSolvePenalty)
	}
	return nil
}
