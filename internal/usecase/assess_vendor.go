package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/i2y/vendorrisk/internal/report"
)

// AssessVendorUseCase produces a risk assessment report for one vendor.
type AssessVendorUseCase struct {
	profiles  ProfileGenerator
	narrative NarrativeGenerator
	formatter *report.Formatter
	logger    *slog.Logger
}

// NewAssessVendorUseCase creates a new AssessVendorUseCase.
func NewAssessVendorUseCase(
	profiles ProfileGenerator,
	narrative NarrativeGenerator,
	formatter *report.Formatter,
	logger *slog.Logger,
) *AssessVendorUseCase {
	return &AssessVendorUseCase{
		profiles:  profiles,
		narrative: narrative,
		formatter: formatter,
		logger:    logger.With("usecase", "AssessVendor"),
	}
}

// Execute generates a profile for vendorName, asks the narrative service for
// an analysis and formats the report. A failed model call is embedded in the
// report rather than returned.
func (uc *AssessVendorUseCase) Execute(ctx context.Context, vendorName string) (string, error) {
	log := uc.logger.With(slog.String("vendor", vendorName))
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("assessment cancelled: %w", err)
	}
	log.Info("Starting risk assessment")

	profile := uc.profiles.Generate(vendorName)
	log.Debug("Profile generated",
		slog.String("industry", string(profile.Industry)),
		slog.Float64("base_risk_score", profile.BaseRiskScore))

	analysis := narrate(ctx, uc.narrative, AssessmentPrompt(profile), assessmentMaxTokens, log)

	log.Info("Risk assessment completed")
	return uc.formatter.FormatAssessment(profile, analysis), nil
}
