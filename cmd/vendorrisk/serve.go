package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/i2y/vendorrisk/configs"
	"github.com/i2y/vendorrisk/internal/adapter/inbound/mcphttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long:  "Run the MCP server over stdio (default) or SSE. In SSE mode an admin HTTP server exposes /healthz and /admin/catalog.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveTransport string

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport mode: stdio or sse (overrides TRANSPORT)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveTransport != "" {
		cfg.Transport = serveTransport
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// === Logging ===
	logger := newLogger(cfg, cfg.Transport == "stdio")
	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", cfg.ParsedLogLevel().String()), slog.String("transport", cfg.Transport))

	// === OpenTelemetry Initialization ===
	shutdownOtel, err := initOtelProvider(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// === Dependency Injection ===
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	logger.Info("MCP server initialized.", slog.String("name", serverName), slog.String("version", serverVersion))

	// === Transport Mode Selection ===
	switch cfg.Transport {
	case "stdio":
		logger.Info("Starting in STDIO mode")
		stdioServer := mcpGoServer.NewStdioServer(a.mcpServer)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("STDIO server error", slog.Any("error", err))
			return err
		}
		return nil

	default:
		return serveSSE(ctx, a)
	}
}

func serveSSE(ctx context.Context, a *app) error {
	cfg, logger := a.cfg, a.logger
	logger.Info("Starting in SSE mode")

	sseServer := mcpGoServer.NewSSEServer(a.mcpServer, mcpGoServer.WithBaseURL("http://"+cfg.ListenAddr))

	// === Admin HTTP Server Setup ===
	adminMux := http.NewServeMux()
	mcphttp.NewHandlers(a.health, cfg.Catalog, logger).RegisterAdminRoutes(adminMux)
	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	// Either server failing cancels gctx and shuts the other one down.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Admin HTTP server starting.", slog.String("address", adminServer.Addr))
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Admin HTTP server failed to start.", slog.Any("error", err))
			return fmt.Errorf("admin server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("MCP SSE server starting.", slog.String("address", cfg.ListenAddr))
		if err := sseServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("MCP SSE server failed to start.", slog.Any("error", err))
			return fmt.Errorf("sse server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		// === Server Shutdown ===
		logger.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Admin HTTP server graceful shutdown failed.", slog.Any("error", err))
			errs = append(errs, err)
		}
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("MCP SSE server graceful shutdown failed.", slog.Any("error", err))
			errs = append(errs, err)
		}
		logger.Info("Servers shut down.")
		return errors.Join(errs...)
	})
	return g.Wait()
}
