package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"GoHumorAI/app/clients"
)

type Config struct {
	Backends BackendsConfig   `yaml:"backends" validate:"required"`
	Limits   LimitsConfig     `yaml:"limits,omitempty"`
	Clients  []clients.Config `yaml:"clients,omitempty" validate:"required,min=1,dive"`
}

type BackendsConfig struct {
	Text   BackendConfig `yaml:"text" validate:"required"`
	Vision BackendConfig `yaml:"vision" validate:"required"`
}

type BackendConfig struct {
	BaseURL  string `yaml:"base_url" validate:"required,url"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model" validate:"required"`
	APIKey   string `yaml:"api_key,omitempty"`
}

type LimitsConfig struct {
	MaxInputChars         int `yaml:"max_input_chars,omitempty" validate:"omitempty,gt=0"`
	MaxOutputChars        int `yaml:"max_output_chars,omitempty" validate:"omitempty,gt=0"`
	VisionAttempts        int `yaml:"vision_attempts,omitempty" validate:"omitempty,gte=1,lte=10"`
	RetryPauseSeconds     int `yaml:"retry_pause_seconds,omitempty" validate:"omitempty,gte=0"`
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds,omitempty" validate:"omitempty,gt=0"`
}

// LoadConfig reads a YAML config with environment expansion, so values like
// ${TEXT_API_KEY} stay out of the file. A missing file falls back to
// env-only defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("ℹ️ Config file %s not found, using environment defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read configs file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func DefaultConfig() *Config {
	cfg := &Config{
		Backends: BackendsConfig{
			Text: BackendConfig{
				BaseURL: envOr("TEXT_API_BASE_URL", "https://api.deepseek.com"),
				Model:   envOr("TEXT_API_MODEL", "deepseek-chat"),
				APIKey:  os.Getenv("TEXT_API_KEY"),
			},
			Vision: BackendConfig{
				BaseURL:  envOr("VISION_API_BASE_URL", "https://api.openai.com"),
				Endpoint: "/v1/chat/completions",
				Model:    envOr("VISION_API_MODEL", "gpt-4o-mini"),
				APIKey:   os.Getenv("VISION_API_KEY"),
			},
		},
		Clients: []clients.Config{
			{Type: "discord", Enabled: true},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Limits.MaxInputChars == 0 {
		c.Limits.MaxInputChars = 500
	}
	if c.Limits.MaxOutputChars == 0 {
		c.Limits.MaxOutputChars = 2000
	}
	if c.Limits.VisionAttempts == 0 {
		c.Limits.VisionAttempts = 3
	}
	if c.Limits.RetryPauseSeconds == 0 {
		c.Limits.RetryPauseSeconds = 2
	}
	if c.Limits.RequestTimeoutSeconds == 0 {
		c.Limits.RequestTimeoutSeconds = 30
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configs: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
