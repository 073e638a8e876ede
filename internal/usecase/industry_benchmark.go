package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/report"
)

// BenchmarkLookup resolves free text to an industry benchmark.
// *domain.Catalog satisfies it.
type BenchmarkLookup interface {
	LookupBenchmark(text string) (domain.Industry, domain.IndustryBenchmark)
}

// IndustryBenchmarkUseCase reports aggregate risk metrics for an industry.
type IndustryBenchmarkUseCase struct {
	benchmarks BenchmarkLookup
	narrative  NarrativeGenerator
	formatter  *report.Formatter
	logger     *slog.Logger
}

// NewIndustryBenchmarkUseCase creates a new IndustryBenchmarkUseCase.
func NewIndustryBenchmarkUseCase(
	benchmarks BenchmarkLookup,
	narrative NarrativeGenerator,
	formatter *report.Formatter,
	logger *slog.Logger,
) *IndustryBenchmarkUseCase {
	return &IndustryBenchmarkUseCase{
		benchmarks: benchmarks,
		narrative:  narrative,
		formatter:  formatter,
		logger:     logger.With("usecase", "IndustryBenchmark"),
	}
}

// Execute looks up the benchmark for industry. Unrecognised or blank
// industries get the default record.
func (uc *IndustryBenchmarkUseCase) Execute(ctx context.Context, industry string) (string, error) {
	industry = strings.TrimSpace(industry)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("benchmark cancelled: %w", err)
	}

	log := uc.logger.With(slog.String("industry", industry))
	log.Info("Getting industry benchmark")

	category, bm := uc.benchmarks.LookupBenchmark(industry)
	log.Debug("Resolved industry category", slog.String("category", string(category)))

	analysis := narrate(ctx, uc.narrative, BenchmarkPrompt(industry, bm), benchmarkMaxTokens, log)

	return uc.formatter.FormatBenchmark(industry, category, bm, analysis), nil
}
