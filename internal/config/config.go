package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the outreach tool.
type Config struct {
	Groq       GroqConfig       `yaml:"groq"`
	Bedrock    BedrockConfig    `yaml:"bedrock"`
	Engine     EngineConfig     `yaml:"engine"`
	Paths      PathsConfig      `yaml:"paths"`
	Generation GenerationConfig `yaml:"generation"`
}

// GroqConfig holds Groq API configuration. Groq exposes an
// OpenAI-compatible chat completions endpoint.
type GroqConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration.
func (c GroqConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BedrockConfig holds AWS Bedrock configuration for the alternative
// generation provider.
type BedrockConfig struct {
	ModelID string `yaml:"model_id"`
	Region  string `yaml:"region"`
}

// EngineConfig holds the eligibility policy knobs. The engine never
// reads ambient state; everything it needs arrives through here.
type EngineConfig struct {
	TopicMatchThreshold int     `yaml:"topic_match_threshold"`
	DeadlineFailClosed  bool    `yaml:"deadline_fail_closed"`
	EngagementHigh      float64 `yaml:"engagement_high"`
	EngagementLow       float64 `yaml:"engagement_low"`
	ReferenceTimezone   string  `yaml:"reference_timezone"`
}

// PathsConfig holds input and output file locations.
type PathsConfig struct {
	RecipientsFile string `yaml:"recipients_file"`
	EventsFile     string `yaml:"events_file"`
	OutputDir      string `yaml:"output_dir"`
}

// GenerationConfig selects how email content is produced.
type GenerationConfig struct {
	UseAI    *bool  `yaml:"use_ai"`
	Provider string `yaml:"provider"`
}

// AIEnabled reports whether the generative backend should be used.
// Unset means enabled; the deterministic fallback still covers every
// backend failure either way.
func (c GenerationConfig) AIEnabled() bool {
	return c.UseAI == nil || *c.UseAI
}

// Load reads and parses the configuration file, then applies defaults.
// A missing file is not an error: the tool runs fine on defaults plus
// environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	default:
		return nil, err
	}

	if cfg.Groq.Model == "" {
		cfg.Groq.Model = "llama-3.3-70b-versatile"
	}
	if cfg.Groq.BaseURL == "" {
		cfg.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Groq.TimeoutSeconds == 0 {
		cfg.Groq.TimeoutSeconds = 60
	}
	if cfg.Bedrock.ModelID == "" {
		cfg.Bedrock.ModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}
	if cfg.Engine.TopicMatchThreshold == 0 {
		cfg.Engine.TopicMatchThreshold = 1
	}
	if cfg.Engine.EngagementHigh == 0 {
		cfg.Engine.EngagementHigh = 0.7
	}
	if cfg.Engine.EngagementLow == 0 {
		cfg.Engine.EngagementLow = 0.5
	}
	if cfg.Engine.ReferenceTimezone == "" {
		cfg.Engine.ReferenceTimezone = "Asia/Kolkata"
	}
	if cfg.Paths.RecipientsFile == "" {
		cfg.Paths.RecipientsFile = "./data/recipients.json"
	}
	if cfg.Paths.EventsFile == "" {
		cfg.Paths.EventsFile = "./data/grant_events.json"
	}
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = "./data/generated"
	}
	if cfg.Generation.Provider == "" {
		cfg.Generation.Provider = "groq"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file (if present) before reading env vars, so secrets
// can live in .env locally and in real env vars in CI or on a host.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		cfg.Groq.APIKey = apiKey
	}
	if model := os.Getenv("GROQ_MODEL"); model != "" {
		cfg.Groq.Model = model
	}
	if baseURL := os.Getenv("GROQ_BASE_URL"); baseURL != "" {
		cfg.Groq.BaseURL = baseURL
	}
	if modelID := os.Getenv("BEDROCK_MODEL_ID"); modelID != "" {
		cfg.Bedrock.ModelID = modelID
	}
	if region := os.Getenv("AWS_REGION"); region != "" && cfg.Bedrock.Region == "" {
		cfg.Bedrock.Region = region
	}
	if v := os.Getenv("USE_AI"); v != "" {
		enabled := strings.EqualFold(v, "true")
		cfg.Generation.UseAI = &enabled
	}
	if provider := os.Getenv("OUTREACH_PROVIDER"); provider != "" {
		cfg.Generation.Provider = provider
	}
	if p := os.Getenv("RECIPIENTS_FILE"); p != "" {
		cfg.Paths.RecipientsFile = p
	}
	if p := os.Getenv("EVENTS_FILE"); p != "" {
		cfg.Paths.EventsFile = p
	}
	if p := os.Getenv("OUTPUT_DIR"); p != "" {
		cfg.Paths.OutputDir = p
	}

	return cfg, nil
}
