package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/i2y/vendorrisk/configs"
	"github.com/i2y/vendorrisk/internal/adapter/inbound/mcptools"
	"github.com/i2y/vendorrisk/internal/adapter/outbound/bedrock"
	"github.com/i2y/vendorrisk/internal/adapter/outbound/gemini"
	"github.com/i2y/vendorrisk/internal/adapter/outbound/memrepo"
	"github.com/i2y/vendorrisk/internal/adapter/outbound/narrative"
	"github.com/i2y/vendorrisk/internal/adapter/outbound/openaichat"
	"github.com/i2y/vendorrisk/internal/mockdata"
	"github.com/i2y/vendorrisk/internal/report"
	"github.com/i2y/vendorrisk/internal/usecase"
)

// app is the wired dependency graph shared by serve and the one-shot commands.
type app struct {
	cfg       *configs.Config
	logger    *slog.Logger
	mcpServer *mcpGoServer.MCPServer
	tools     *mcptools.Handlers
	health    *usecase.HealthCheckUseCase
	closers   []io.Closer
}

// newLogger builds the text logger. In stdio mode logs go to cfg.LogFile so
// they never mix with protocol frames on stdout.
func newLogger(cfg *configs.Config, stdio bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.ParsedLogLevel()}
	if !stdio {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, opts))
	}
	return slog.New(slog.NewTextHandler(logFile, opts))
}

// newApp wires configuration into use cases and registers the MCP tools.
func newApp(ctx context.Context, cfg *configs.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	provider, err := narrative.ParseProvider(cfg.NarrativeProvider)
	if err != nil {
		return nil, err
	}
	providers := map[narrative.Provider]usecase.NarrativeGenerator{
		provider: a.buildProvider(ctx, provider),
	}
	router := narrative.NewRouter(provider, providers, logger,
		narrative.WithLimiter(rate.NewLimiter(rate.Limit(cfg.NarrativeRate), cfg.NarrativeBurst)),
		narrative.WithTimeout(cfg.NarrativeTimeout),
	)
	logger.Info("Narrative provider configured.",
		slog.String("provider", string(provider)),
		slog.String("model", cfg.ModelID()),
		slog.Bool("credentials_configured", cfg.CredentialsConfigured()))

	var profiles *mockdata.Generator
	if cfg.RandomSeed != 0 {
		profiles = mockdata.NewSeededGenerator(cfg.Catalog, cfg.RandomSeed, logger)
	} else {
		profiles = mockdata.NewGenerator(cfg.Catalog, nil, logger)
	}

	formatter := report.NewFormatter(router.Label(), nil)
	repo := memrepo.NewInMemoryToolRepository(logger)

	assessUC := usecase.NewAssessVendorUseCase(profiles, router, formatter, logger)
	compareUC := usecase.NewCompareVendorsUseCase(profiles, router, formatter, logger)
	benchmarkUC := usecase.NewIndustryBenchmarkUseCase(cfg.Catalog, router, formatter, logger)
	a.health = usecase.NewHealthCheckUseCase(usecase.HealthSettings{
		Provider:              string(provider),
		Model:                 cfg.ModelID(),
		Region:                cfg.Region(),
		CredentialsConfigured: cfg.CredentialsConfigured(),
	}, router, repo, formatter, logger)

	a.mcpServer = mcpGoServer.NewMCPServer(serverName, serverVersion, mcpGoServer.WithToolCapabilities(false))
	a.tools = mcptools.NewHandlers(assessUC, compareUC, benchmarkUC, a.health, logger)
	if err := a.tools.Register(ctx, a.mcpServer, repo); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return a, nil
}

// buildProvider constructs the narrative client for p. Construction failures
// are not fatal: the provider is replaced by one that reports the cause in
// every report, and the health check shows it as an error.
func (a *app) buildProvider(ctx context.Context, p narrative.Provider) usecase.NarrativeGenerator {
	cfg := a.cfg
	switch p {
	case narrative.ProviderOpenAI:
		label := "OpenAI " + cfg.OpenAIModel
		if cfg.OpenAIAPIKey == "" {
			return narrative.Unavailable{Name: label, Err: errors.New("API key is required")}
		}
		return openaichat.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, a.logger)

	case narrative.ProviderGemini:
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, a.logger)
		if err != nil {
			a.logger.Warn("Gemini client unavailable.", slog.Any("error", err))
			return narrative.Unavailable{Name: "Google " + cfg.GeminiModel, Err: err}
		}
		a.closers = append(a.closers, client)
		return client

	default:
		client, err := bedrock.New(ctx, cfg.AWSRegion, cfg.BedrockModelID, a.logger)
		if err != nil {
			a.logger.Warn("Bedrock client unavailable.", slog.Any("error", err))
			return narrative.Unavailable{Name: bedrock.ModelLabel, Err: err}
		}
		return client
	}
}

// Close releases provider clients.
func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
