package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/empathic/internal/providers"
	"gopkg.in/yaml.v3"
)

// MaxTokensLimit is the largest accepted maxTokens.
const MaxTokensLimit = 100000

// Strategies.
const (
	StrategyHeuristic = "heuristic"
	StrategyLLM       = "llm"
)

// Config represents the empathic configuration.
type Config struct {
	Strategy       string        `yaml:"strategy"`
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model,omitempty"`
	BaseURL        string        `yaml:"baseURL,omitempty"`
	MaxTokens      int           `yaml:"maxTokens"`
	Temperature    float64       `yaml:"temperature"`
	TimeoutSeconds int           `yaml:"timeoutSeconds"`
	MaxRetries     int           `yaml:"maxRetries"`
	Concurrency    int           `yaml:"concurrency"`
	PromptStyle    string        `yaml:"promptStyle"`
	Format         string        `yaml:"format"`
	Render         bool          `yaml:"render"`
	Width          int           `yaml:"width,omitempty"`
	Privacy        PrivacyConfig `yaml:"privacy"`

	// APIKey is resolved from the environment by Load and is never written
	// to the config file.
	APIKey string `yaml:"-"`
}

// PrivacyConfig controls what leaves the process.
type PrivacyConfig struct {
	RedactSecrets bool `yaml:"redactSecrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Strategy:       StrategyHeuristic,
		Provider:       "cohere",
		MaxTokens:      700,
		Temperature:    0.7,
		TimeoutSeconds: 60,
		MaxRetries:     0,
		Concurrency:    4,
		PromptStyle:    "structured",
		Format:         "markdown",
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProviderOptions returns the options used to construct the configured
// provider.
func (c Config) ProviderOptions() providers.Options {
	return providers.Options{
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		Timeout:    c.Timeout(),
		MaxRetries: c.MaxRetries,
	}
}

// ConfigDir returns the platform-appropriate config directory for empathic.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "empathic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "empathic"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "empathic"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "empathic"), nil
	default:
		return filepath.Join(home, ".config", "empathic"), nil
	}
}

// ConfigPath returns the full path to the config file. EMPATHIC_CONFIG
// overrides the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv("EMPATHIC_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile decodes the config file onto cfg. Keys absent from the file keep
// their current values. A missing file is not an error.
func LoadFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides,
// then resolves the provider credential and default model.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	if err := LoadFile(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(&cfg, k, v); err != nil {
			return Config{}, fmt.Errorf("flag %s: %w", k, err)
		}
	}

	if cfg.Model == "" {
		cfg.Model = providers.DefaultModel(cfg.Provider)
	}
	cfg.APIKey = resolveAPIKey(cfg.Provider)
	if cfg.BaseURL == "" && strings.EqualFold(cfg.Provider, "ollama") {
		cfg.BaseURL = os.Getenv("OLLAMA_HOST")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var envFields = map[string]string{
	"EMPATHIC_STRATEGY":     "strategy",
	"EMPATHIC_PROVIDER":     "provider",
	"EMPATHIC_MODEL":        "model",
	"EMPATHIC_BASE_URL":     "baseURL",
	"EMPATHIC_MAX_TOKENS":   "maxTokens",
	"EMPATHIC_TEMPERATURE":  "temperature",
	"EMPATHIC_TIMEOUT":      "timeoutSeconds",
	"EMPATHIC_MAX_RETRIES":  "maxRetries",
	"EMPATHIC_CONCURRENCY":  "concurrency",
	"EMPATHIC_PROMPT_STYLE": "promptStyle",
	"EMPATHIC_FORMAT":       "format",
}

func mergeEnv(cfg *Config) error {
	for env, key := range envFields {
		if v := os.Getenv(env); v != "" {
			if err := SetField(cfg, key, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
	}
	return nil
}

// providerKeyEnv lists the conventional credential variables per provider,
// checked after EMPATHIC_API_KEY.
var providerKeyEnv = map[string][]string{
	"cohere":    {"COHERE_API_KEY", "CO_API_KEY"},
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
	"gemini":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"google":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

func resolveAPIKey(provider string) string {
	if v := os.Getenv("EMPATHIC_API_KEY"); v != "" {
		return v
	}
	for _, env := range providerKeyEnv[strings.ToLower(provider)] {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that values are in range.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyHeuristic, StrategyLLM:
	default:
		return fmt.Errorf("strategy must be %q or %q, got %q", StrategyHeuristic, StrategyLLM, c.Strategy)
	}
	switch c.Format {
	case "markdown", "json":
	default:
		return fmt.Errorf("format must be markdown or json, got %q", c.Format)
	}
	switch c.PromptStyle {
	case "structured", "freeform":
	default:
		return fmt.Errorf("promptStyle must be structured or freeform, got %q", c.PromptStyle)
	}
	if c.MaxTokens <= 0 || c.MaxTokens > MaxTokensLimit {
		return fmt.Errorf("maxTokens must be between 1 and %d, got %d", MaxTokensLimit, c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeoutSeconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must not be negative, got %d", c.MaxRetries)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "strategy":
		cfg.Strategy = strings.ToLower(value)
	case "provider":
		cfg.Provider = strings.ToLower(value)
	case "model":
		cfg.Model = value
	case "baseURL":
		cfg.BaseURL = value
	case "promptStyle":
		cfg.PromptStyle = strings.ToLower(value)
	case "format":
		cfg.Format = strings.ToLower(value)
	case "maxTokens":
		return setInt(&cfg.MaxTokens, key, value)
	case "timeoutSeconds":
		return setInt(&cfg.TimeoutSeconds, key, value)
	case "maxRetries":
		return setInt(&cfg.MaxRetries, key, value)
	case "concurrency":
		return setInt(&cfg.Concurrency, key, value)
	case "width":
		return setInt(&cfg.Width, key, value)
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "render":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("render must be a boolean: %w", err)
		}
		cfg.Render = b
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
