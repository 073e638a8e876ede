package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/report"
)

var validate = validator.New()

type compareRequest struct {
	Vendors []string `validate:"min=2,max=5"`
}

// CompareVendorsUseCase ranks several vendors by synthetic base risk.
type CompareVendorsUseCase struct {
	profiles  ProfileGenerator
	narrative NarrativeGenerator
	formatter *report.Formatter
	logger    *slog.Logger
}

// NewCompareVendorsUseCase creates a new CompareVendorsUseCase.
func NewCompareVendorsUseCase(
	profiles ProfileGenerator,
	narrative NarrativeGenerator,
	formatter *report.Formatter,
	logger *slog.Logger,
) *CompareVendorsUseCase {
	return &CompareVendorsUseCase{
		profiles:  profiles,
		narrative: narrative,
		formatter: formatter,
		logger:    logger.With("usecase", "CompareVendors"),
	}
}

// ParseVendorList splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func ParseVendorList(list string) []string {
	var vendors []string
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			vendors = append(vendors, v)
		}
	}
	return vendors
}

// Execute compares the vendors named in vendorList. It returns
// ErrTooFewVendors or ErrTooManyVendors before any data is generated when the
// list size is outside [MinVendors, MaxVendors].
func (uc *CompareVendorsUseCase) Execute(ctx context.Context, vendorList string) (string, error) {
	vendors := ParseVendorList(vendorList)
	if err := validateVendors(vendors); err != nil {
		uc.logger.Warn("Rejected vendor list", slog.Int("count", len(vendors)), slog.Any("error", err))
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("comparison cancelled: %w", err)
	}

	log := uc.logger.With(slog.Int("vendor_count", len(vendors)))
	log.Info("Comparing vendors")

	profiles := make([]domain.CompanyProfile, 0, len(vendors))
	for _, v := range vendors {
		profiles = append(profiles, uc.profiles.Generate(v))
	}
	ranked := domain.RankByRisk(profiles)

	prompt, err := ComparisonPrompt(ranked)
	if err != nil {
		log.Error("Failed to build comparison prompt", slog.Any("error", err))
		return "", fmt.Errorf("failed to build comparison prompt: %w", err)
	}
	analysis := narrate(ctx, uc.narrative, prompt, comparisonMaxTokens, log)

	log.Info("Vendor comparison completed", slog.String("lowest_risk", ranked[0].Name))
	return uc.formatter.FormatComparison(ranked, analysis), nil
}

func validateVendors(vendors []string) error {
	err := validate.Struct(compareRequest{Vendors: vendors})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "min":
				return ErrTooFewVendors
			case "max":
				return ErrTooManyVendors
			}
		}
	}
	return fmt.Errorf("invalid vendor list: %w", err)
}
