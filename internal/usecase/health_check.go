package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/i2y/vendorrisk/internal/report"
)

// Narrative status values shown on the health report.
const (
	NarrativeStatusNotConfigured = "Not configured"
	NarrativeStatusConnected     = "Connected"
	NarrativeStatusError         = "Error"
)

// HealthSettings describes the configured narrative backend.
type HealthSettings struct {
	Provider              string
	Model                 string
	Region                string
	CredentialsConfigured bool
}

// HealthCheckUseCase reports configuration and narrative connectivity.
type HealthCheckUseCase struct {
	settings  HealthSettings
	narrative NarrativeGenerator
	tools     ToolRepository
	formatter *report.Formatter
	logger    *slog.Logger
}

// NewHealthCheckUseCase creates a new HealthCheckUseCase.
func NewHealthCheckUseCase(
	settings HealthSettings,
	narrative NarrativeGenerator,
	tools ToolRepository,
	formatter *report.Formatter,
	logger *slog.Logger,
) *HealthCheckUseCase {
	return &HealthCheckUseCase{
		settings:  settings,
		narrative: narrative,
		tools:     tools,
		formatter: formatter,
		logger:    logger.With("usecase", "HealthCheck"),
	}
}

// Execute builds the health report. The narrative service is probed only when
// credentials are configured; missing credentials are reported, not failed.
func (uc *HealthCheckUseCase) Execute(ctx context.Context) (string, error) {
	tools, err := uc.tools.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tools", slog.Any("error", err))
		return "", fmt.Errorf("failed to list tools: %w", err)
	}

	status := NarrativeStatusNotConfigured
	if uc.settings.CredentialsConfigured {
		status = uc.probe(ctx)
	}
	uc.logger.Info("Health check completed",
		slog.Bool("credentials_configured", uc.settings.CredentialsConfigured),
		slog.String("narrative_status", status))

	return uc.formatter.FormatHealth(report.HealthStatus{
		CredentialsConfigured: uc.settings.CredentialsConfigured,
		Provider:              uc.settings.Provider,
		NarrativeStatus:       status,
		Model:                 uc.settings.Model,
		Region:                uc.settings.Region,
		Tools:                 tools,
	}), nil
}

func (uc *HealthCheckUseCase) probe(ctx context.Context) string {
	text, err := uc.narrative.Generate(ctx, healthProbePrompt, healthProbeMaxTokens)
	if err != nil {
		uc.logger.Warn("Narrative probe failed", slog.Any("error", err))
		return NarrativeStatusError
	}
	if strings.Contains(text, "Error") {
		return NarrativeStatusError
	}
	return NarrativeStatusConnected
}
