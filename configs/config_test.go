package configs_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/vendorrisk/configs"
	"github.com/i2y/vendorrisk/internal/domain"
)

const catalogYAML = `
catalog:
  industries:
    - industry: Energy
      keywords: [oil, solar]
      base_risk: {min: 6.0, max: 7.5}
      reputation: {min: 5.0, max: 7.0}
      financial_health: [Fair, Good]
      security_ratings: [B, C]
      benchmark:
        avg_risk: 6.2
        volatility: High
        key_risks: [Commodity prices, Regulation]
        compliance: [ISO 14001]
  default:
    industry: General Services
    base_risk: {min: 3.5, max: 6.0}
    reputation: {min: 6.0, max: 8.5}
    financial_health: [Good]
    security_ratings: [B]
    benchmark:
      avg_risk: 4.0
      volatility: Medium
      key_risks: [Operational risks]
      compliance: [ISO 9001]
  founded: {from: 1990, to: 2000}
  sizes: [Small (1-50)]
  locations: [Europe]
  certifications: [SOC 2, ISO 9001, GDPR]
  compliance_min: 1
  compliance_max: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendorrisk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, ":8081", cfg.AdminAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/tmp/vendorrisk.log", cfg.LogFile)
	assert.Equal(t, "bedrock", cfg.Provider())
	assert.Equal(t, 60*time.Second, cfg.NarrativeTimeout)
	assert.Equal(t, 5.0, cfg.NarrativeRate)
	assert.Equal(t, 5, cfg.NarrativeBurst)
	assert.Equal(t, domain.DefaultCatalog(), cfg.Catalog)
}

func TestLoad_PrefixedOverridesUnprefixed(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("BEDROCK_MODEL_ID", "amazon.titan-text-lite-v1")
	t.Setenv("VENDORRISK_AWS_REGION", "ap-northeast-1")
	t.Setenv("VENDORRISK_TRANSPORT", "sse")
	t.Setenv("VENDORRISK_RANDOM_SEED", "42")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "ap-northeast-1", cfg.AWSRegion)
	assert.Equal(t, "amazon.titan-text-lite-v1", cfg.BedrockModelID)
	assert.Equal(t, "sse", cfg.Transport)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestLoad_CatalogFromFile(t *testing.T) {
	t.Setenv("VENDORRISK_CONFIG_FILE", writeConfig(t, catalogYAML))

	cfg, err := configs.Load()
	require.NoError(t, err)

	require.Len(t, cfg.Catalog.Industries, 1)
	assert.Equal(t, domain.Industry("Energy"), cfg.Catalog.Classify("Sunny Solar Co"))
	assert.Equal(t, domain.IndustryGeneralServices, cfg.Catalog.Classify("Microsoft"))
	assert.Equal(t, 6.2, cfg.Catalog.Benchmark("Energy").AverageRisk)
	assert.Equal(t, []string{"Small (1-50)"}, cfg.Catalog.Sizes)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{
			name:    "Missing file",
			env:     map[string]string{"VENDORRISK_CONFIG_FILE": "/nonexistent/vendorrisk.yaml"},
			wantErr: "failed to read config file",
		},
		{
			name:    "Malformed YAML",
			file:    "catalog: [not, a, map",
			wantErr: "failed to unmarshal config file",
		},
		{
			name:    "Invalid catalog",
			file:    "catalog:\n  default:\n    industry: General Services\n",
			wantErr: "invalid catalog",
		},
		{
			name:    "Invalid transport",
			env:     map[string]string{"VENDORRISK_TRANSPORT": "websocket"},
			wantErr: `invalid transport "websocket"`,
		},
		{
			name:    "Invalid provider",
			env:     map[string]string{"VENDORRISK_NARRATIVE_PROVIDER": "claude"},
			wantErr: `invalid narrative provider "claude"`,
		},
		{
			name:    "Invalid rate",
			env:     map[string]string{"VENDORRISK_NARRATIVE_RATE": "0"},
			wantErr: "narrative rate must be positive",
		},
		{
			name:    "Unparsable duration",
			env:     map[string]string{"VENDORRISK_NARRATIVE_TIMEOUT": "soon"},
			wantErr: "failed to process environment variables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				t.Setenv("VENDORRISK_CONFIG_FILE", writeConfig(t, tt.file))
			}

			_, err := configs.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ParsedLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	} {
		cfg := configs.Config{LogLevel: in}
		assert.Equal(t, want, cfg.ParsedLogLevel(), in)
	}
}

func TestConfig_ProviderSettings(t *testing.T) {
	base := configs.Config{
		AWSRegion:      "us-east-1",
		BedrockModelID: "amazon.titan-text-express-v1",
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.5-flash-lite",
	}

	tests := []struct {
		name       string
		mutate     func(c *configs.Config)
		wantCreds  bool
		wantModel  string
		wantRegion string
	}{
		{
			name:       "Bedrock without key",
			mutate:     func(c *configs.Config) { c.NarrativeProvider = "bedrock" },
			wantModel:  "amazon.titan-text-express-v1",
			wantRegion: "us-east-1",
		},
		{
			name: "Bedrock with key",
			mutate: func(c *configs.Config) {
				c.NarrativeProvider = "Bedrock"
				c.AWSAccessKeyID = "AKIA"
			},
			wantCreds:  true,
			wantModel:  "amazon.titan-text-express-v1",
			wantRegion: "us-east-1",
		},
		{
			name: "OpenAI",
			mutate: func(c *configs.Config) {
				c.NarrativeProvider = "openai"
				c.OpenAIAPIKey = "sk-test"
				c.AWSAccessKeyID = "AKIA"
			},
			wantCreds: true,
			wantModel: "gpt-4o-mini",
		},
		{
			name:      "Gemini without key",
			mutate:    func(c *configs.Config) { c.NarrativeProvider = "gemini" },
			wantModel: "gemini-2.5-flash-lite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Equal(t, tt.wantCreds, cfg.CredentialsConfigured())
			assert.Equal(t, tt.wantModel, cfg.ModelID())
			assert.Equal(t, tt.wantRegion, cfg.Region())
		})
	}
}
