package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	HuggingFace HuggingFaceConfig
	YouTube     YouTubeConfig
	Summary     SummaryConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// HuggingFaceConfig holds Hugging Face inference API configuration.
// APIKey is intentionally optional here: a missing key is reported when a
// summary is requested, not at startup.
type HuggingFaceConfig struct {
	APIKey           string        `envconfig:"HUGGINGFACE_API_KEY"`
	BaseURL          string        `envconfig:"HUGGINGFACE_API_URL" default:"https://api-inference.huggingface.co"`
	Model            string        `envconfig:"HUGGINGFACE_MODEL" default:"facebook/bart-large-cnn"`
	Timeout          time.Duration `envconfig:"HUGGINGFACE_TIMEOUT" default:"60s"`
	MaxSummaryLength int           `envconfig:"HUGGINGFACE_MAX_SUMMARY_LENGTH" default:"150"`
	MinSummaryLength int           `envconfig:"HUGGINGFACE_MIN_SUMMARY_LENGTH" default:"30"`
	NumBeams         int           `envconfig:"HUGGINGFACE_NUM_BEAMS" default:"4"`

	// Zero disables client-side throttling
	RequestsPerSecond float64 `envconfig:"HUGGINGFACE_REQUESTS_PER_SECOND" default:"0"`
}

// YouTubeConfig holds caption source configuration
type YouTubeConfig struct {
	BaseURL     string        `envconfig:"YOUTUBE_BASE_URL" default:"https://www.youtube.com"`
	CaptionLang string        `envconfig:"YOUTUBE_CAPTION_LANG" default:"en"`
	Timeout     time.Duration `envconfig:"YOUTUBE_TIMEOUT" default:"30s"`
}

// SummaryConfig holds chunking and combining configuration
type SummaryConfig struct {
	MaxChunkLength int `envconfig:"SUMMARY_MAX_CHUNK_LENGTH" default:"1024"`
	MaxPasses      int `envconfig:"SUMMARY_MAX_PASSES" default:"4"`
	Concurrency    int `envconfig:"SUMMARY_CONCURRENCY" default:"1"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv decodes configuration from the current process environment
func FromEnv() (*Config, error) {
	config := &Config{}

	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &config.Server},
		{"huggingface", &config.HuggingFace},
		{"youtube", &config.YouTube},
		{"summary", &config.Summary},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Summary.MaxChunkLength <= 0 {
		return fmt.Errorf("SUMMARY_MAX_CHUNK_LENGTH must be positive")
	}
	if c.Summary.MaxPasses <= 0 {
		return fmt.Errorf("SUMMARY_MAX_PASSES must be positive")
	}
	if c.Summary.Concurrency <= 0 {
		return fmt.Errorf("SUMMARY_CONCURRENCY must be positive")
	}
	if c.HuggingFace.RequestsPerSecond < 0 {
		return fmt.Errorf("HUGGINGFACE_REQUESTS_PER_SECOND must not be negative")
	}
	if c.HuggingFace.BaseURL == "" {
		return fmt.Errorf("HUGGINGFACE_API_URL is required")
	}
	if c.YouTube.BaseURL == "" {
		return fmt.Errorf("YOUTUBE_BASE_URL is required")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
