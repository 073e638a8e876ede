package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/i2y/vendorrisk/internal/domain"
)

// FileConfig defines the structure loaded from the YAML configuration file.
type FileConfig struct {
	// Catalog replaces the built-in industry catalog when present.
	Catalog *domain.Catalog `yaml:"catalog"`
}

// Config holds the final application configuration, merged from file and environment variables.
// Fields are loaded from environment variables with the prefix "VENDORRISK_"; the
// unprefixed name is used as a fallback, so AWS_REGION and friends work as usual.
type Config struct {
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Loaded from FileConfig; DefaultCatalog when no file overrides it.
	Catalog *domain.Catalog `ignored:"true"`

	Transport       string        `envconfig:"TRANSPORT" default:"stdio"`
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminAddr       string        `envconfig:"ADMIN_ADDR" default:":8081"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"/tmp/vendorrisk.log"`

	NarrativeProvider string        `envconfig:"NARRATIVE_PROVIDER" default:"bedrock"`
	NarrativeTimeout  time.Duration `envconfig:"NARRATIVE_TIMEOUT" default:"60s"`
	NarrativeRate     float64       `envconfig:"NARRATIVE_RATE" default:"5"`
	NarrativeBurst    int           `envconfig:"NARRATIVE_BURST" default:"5"`

	AWSRegion      string `envconfig:"AWS_REGION" default:"us-east-1"`
	BedrockModelID string `envconfig:"BEDROCK_MODEL_ID" default:"amazon.titan-text-express-v1"`
	AWSAccessKeyID string `envconfig:"AWS_ACCESS_KEY_ID"`
	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-lite"`
	RandomSeed     uint64 `envconfig:"RANDOM_SEED"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Provider returns the normalized narrative provider name.
func (c *Config) Provider() string {
	return strings.ToLower(strings.TrimSpace(c.NarrativeProvider))
}

// CredentialsConfigured reports whether the active provider has credentials.
// For Bedrock only an explicit access key counts, matching the health report.
func (c *Config) CredentialsConfigured() bool {
	switch c.Provider() {
	case "openai":
		return c.OpenAIAPIKey != ""
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.AWSAccessKeyID != ""
	}
}

// ModelID returns the model identifier of the active provider.
func (c *Config) ModelID() string {
	switch c.Provider() {
	case "openai":
		return c.OpenAIModel
	case "gemini":
		return c.GeminiModel
	default:
		return c.BedrockModelID
	}
}

// Region returns the cloud region shown on the health report. Only Bedrock
// has one.
func (c *Config) Region() string {
	if c.Provider() == "bedrock" {
		return c.AWSRegion
	}
	return ""
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	var errs []error
	switch c.Transport {
	case "stdio", "sse":
	default:
		errs = append(errs, fmt.Errorf("invalid transport %q: want stdio or sse", c.Transport))
	}
	switch c.Provider() {
	case "bedrock", "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("invalid narrative provider %q", c.NarrativeProvider))
	}
	if c.NarrativeRate <= 0 {
		errs = append(errs, fmt.Errorf("narrative rate must be positive, got %v", c.NarrativeRate))
	}
	if c.NarrativeBurst < 1 {
		errs = append(errs, fmt.Errorf("narrative burst must be at least 1, got %d", c.NarrativeBurst))
	}
	if c.Catalog != nil {
		if err := c.Catalog.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("invalid catalog: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Load loads configuration first from environment variables (to get file path),
// then from the specified YAML file, and finally merges/overrides with environment variables again.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vendorrisk", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	cfg.Catalog = domain.DefaultCatalog()
	if cfg.ConfigFilePath != "" {
		fileCfg, err := LoadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, err
		}
		if fileCfg.Catalog != nil {
			cfg.Catalog = fileCfg.Catalog
			slog.Info("Using catalog from config file.", "path", cfg.ConfigFilePath, "industries", len(cfg.Catalog.Industries))
		}
	} else {
		slog.Debug("No config file path specified (VENDORRISK_CONFIG_FILE), using built-in catalog.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	var fileCfg FileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", path, err)
	}
	slog.Info("Loaded configuration from file.", "path", path)
	return &fileCfg, nil
}
