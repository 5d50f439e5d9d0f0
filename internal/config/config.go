package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultDataDir           = "data"
	DefaultHTTPAddr          = ":3000"
	DefaultGenerationTimeout = 15 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
)

// Config is built once at process start and passed down by value or pointer.
// Nothing reads the environment after Load returns.
type Config struct {
	GoogleAPIKey      string        `yaml:"google_api_key"`
	GeminiModel       string        `yaml:"gemini_model"`
	DataDir           string        `yaml:"data_dir"`
	HTTPAddr          string        `yaml:"http_addr"`
	GenerationTimeout time.Duration `yaml:"generation_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
	CORSOrigins       []string      `yaml:"cors_allowed_origins"`
}

func defaults() Config {
	return Config{
		GeminiModel:       DefaultGeminiModel,
		DataDir:           DefaultDataDir,
		HTTPAddr:          DefaultHTTPAddr,
		GenerationTimeout: DefaultGenerationTimeout,
		RequestTimeout:    DefaultRequestTimeout,
		LogLevel:          "info",
		LogFormat:         "json",
		CORSOrigins:       []string{"*"},
	}
}

// Load reads the optional YAML file named by CONFIG_FILE and then applies
// environment overrides on top of it.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.GenerationTimeout <= 0 {
		return nil, fmt.Errorf("generation timeout must be positive, got %s", cfg.GenerationTimeout)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.GoogleAPIKey = envOr("GOOGLE_API_KEY", cfg.GoogleAPIKey)
	cfg.GeminiModel = envOr("GEMINI_MODEL", cfg.GeminiModel)
	cfg.DataDir = envOr("QUIZ_DATA_DIR", cfg.DataDir)
	cfg.HTTPAddr = envOr("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("LOG_FORMAT", cfg.LogFormat)
	cfg.CORSOrigins = csvOr("CORS_ALLOWED_ORIGINS", cfg.CORSOrigins)

	var err error
	if cfg.GenerationTimeout, err = durationOr("GENERATION_TIMEOUT", cfg.GenerationTimeout); err != nil {
		return err
	}
	if cfg.RequestTimeout, err = durationOr("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func csvOr(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
