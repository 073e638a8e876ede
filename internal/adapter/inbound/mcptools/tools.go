// Package mcptools exposes the vendor risk use cases as MCP tools.
package mcptools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/usecase"
)

// Outcomes recorded on the tool call counter.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Tool names.
const (
	ToolAssessVendorRisk = "assess_vendor_risk"
	ToolCompareVendors   = "compare_vendors"
	ToolIndustryBench    = "get_industry_risk_benchmark"
	ToolHealthCheck      = "health_check"
)

// MCPServerAdapter is the part of the mcp-go server used for registration.
type MCPServerAdapter interface {
	AddTool(tool mcp.Tool, handler mcpGoServer.ToolHandlerFunc)
}

// VendorAssessor produces a single vendor report.
type VendorAssessor interface {
	Execute(ctx context.Context, vendorName string) (string, error)
}

// VendorComparer produces a ranked comparison report from a comma-separated list.
type VendorComparer interface {
	Execute(ctx context.Context, vendorList string) (string, error)
}

// BenchmarkReporter produces an industry benchmark report.
type BenchmarkReporter interface {
	Execute(ctx context.Context, industry string) (string, error)
}

// HealthReporter produces the system health report.
type HealthReporter interface {
	Execute(ctx context.Context) (string, error)
}

// Handlers binds the use cases to MCP tool handlers.
type Handlers struct {
	assess    VendorAssessor
	compare   VendorComparer
	benchmark BenchmarkReporter
	health    HealthReporter
	tracer    trace.Tracer
	calls     metric.Int64Counter
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(
	assess VendorAssessor,
	compare VendorComparer,
	benchmark BenchmarkReporter,
	health HealthReporter,
	logger *slog.Logger,
) *Handlers {
	logger = logger.With("component", "mcptools_handler")
	calls, err := otel.Meter("github.com/i2y/vendorrisk/mcptools").Int64Counter(
		"vendorrisk.tool.calls",
		metric.WithDescription("Tool calls by tool name and outcome."),
	)
	if err != nil {
		logger.Warn("Tool call counter unavailable", slog.Any("error", err))
		calls = noop.Int64Counter{}
	}
	return &Handlers{
		assess:    assess,
		compare:   compare,
		benchmark: benchmark,
		health:    health,
		tracer:    otel.Tracer("github.com/i2y/vendorrisk/mcptools"),
		calls:     calls,
		logger:    logger,
	}
}

// Definitions returns the MCP tool definitions in registration order.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolAssessVendorRisk,
			mcp.WithDescription("Assess comprehensive risk for a vendor using AI analysis."),
			mcp.WithString("vendor_name",
				mcp.Required(),
				mcp.Description("Name of the vendor company to assess"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		mcp.NewTool(ToolCompareVendors,
			mcp.WithDescription("Compare multiple vendors and rank them by risk level."),
			mcp.WithString("vendor_list",
				mcp.Required(),
				mcp.Description("Comma-separated list of vendor names"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		mcp.NewTool(ToolIndustryBench,
			mcp.WithDescription("Get risk benchmarks for a specific industry."),
			mcp.WithString("industry",
				mcp.Required(),
				mcp.Description("Industry name (Technology, Healthcare, Financial Services, etc.)"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		mcp.NewTool(ToolHealthCheck,
			mcp.WithDescription("Check system health and configuration."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
	}
}

// Descriptor converts an MCP tool definition into the domain descriptor kept
// in the tool repository.
func Descriptor(tool mcp.Tool) domain.Tool {
	args := make([]string, len(tool.InputSchema.Required))
	copy(args, tool.InputSchema.Required)
	return domain.Tool{
		Name:        tool.Name,
		Description: tool.Description,
		Arguments:   args,
	}
}

// Register adds every tool to srv and records the descriptors in repo.
func (h *Handlers) Register(ctx context.Context, srv MCPServerAdapter, repo usecase.ToolRepository) error {
	defs := Definitions()
	handlers := map[string]mcpGoServer.ToolHandlerFunc{
		ToolAssessVendorRisk: h.HandleAssessVendorRisk,
		ToolCompareVendors:   h.HandleCompareVendors,
		ToolIndustryBench:    h.HandleIndustryBenchmark,
		ToolHealthCheck:      h.HandleHealthCheck,
	}

	descriptors := make([]domain.Tool, 0, len(defs))
	for _, def := range defs {
		descriptors = append(descriptors, Descriptor(def))
	}
	if err := repo.Save(ctx, descriptors); err != nil {
		return fmt.Errorf("failed to save tool descriptors: %w", err)
	}

	for _, def := range defs {
		srv.AddTool(def, handlers[def.Name])
		h.logger.Debug("Registered tool", slog.String("tool", def.Name))
	}
	h.logger.Info("Tools registered", slog.Int("count", len(defs)))
	return nil
}

// HandleAssessVendorRisk implements assess_vendor_risk.
func (h *Handlers) HandleAssessVendorRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vendorName, err := request.RequireString("vendor_name")
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}
	return h.run(ctx, ToolAssessVendorRisk, "Risk assessment", func(ctx context.Context) (string, error) {
		return h.assess.Execute(ctx, vendorName)
	}, attribute.String("vendor.name", vendorName))
}

// HandleCompareVendors implements compare_vendors.
func (h *Handlers) HandleCompareVendors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vendorList, err := request.RequireString("vendor_list")
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}
	return h.run(ctx, ToolCompareVendors, "Vendor comparison", func(ctx context.Context) (string, error) {
		return h.compare.Execute(ctx, vendorList)
	}, attribute.String("vendor.list", vendorList))
}

// HandleIndustryBenchmark implements get_industry_risk_benchmark.
func (h *Handlers) HandleIndustryBenchmark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	industry := request.GetString("industry", "")
	return h.run(ctx, ToolIndustryBench, "Industry benchmark", func(ctx context.Context) (string, error) {
		return h.benchmark.Execute(ctx, industry)
	}, attribute.String("industry", industry))
}

// HandleHealthCheck implements health_check.
func (h *Handlers) HandleHealthCheck(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := h.tracer.Start(ctx, "tool."+ToolHealthCheck)
	defer span.End()

	text, err := h.health.Execute(ctx)
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.count(ctx, ToolHealthCheck, outcomeFailed)
		return mcp.NewToolResultError("Health Check Error: " + err.Error()), nil
	}
	h.count(ctx, ToolHealthCheck, outcomeOK)
	return mcp.NewToolResultText(text), nil
}

// run executes a report use case inside a span and renders failures the way
// tool callers expect them.
func (h *Handlers) run(
	ctx context.Context,
	tool, operation string,
	exec func(context.Context) (string, error),
	attrs ...attribute.KeyValue,
) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()
	log := h.logger.With(slog.String("tool", tool), slog.String("request_id", requestID))

	ctx, span := h.tracer.Start(ctx, "tool."+tool, trace.WithAttributes(
		append(attrs, attribute.String("request_id", requestID))...,
	))
	defer span.End()

	log.Info("Tool call received")
	text, err := exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if isValidation(err) {
			log.Warn("Tool call rejected", slog.Any("error", err))
			h.count(ctx, tool, outcomeRejected)
			return mcp.NewToolResultError("Error: " + usecase.UserMessage(err)), nil
		}
		log.Error("Tool call failed", slog.Any("error", err))
		h.count(ctx, tool, outcomeFailed)
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s failed - %v", operation, err)), nil
	}
	log.Info("Tool call completed", slog.Int("report_length", len(text)))
	h.count(ctx, tool, outcomeOK)
	return mcp.NewToolResultText(text), nil
}

func (h *Handlers) count(ctx context.Context, tool, outcome string) {
	h.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}

func isValidation(err error) bool {
	return errors.Is(err, usecase.ErrTooFewVendors) ||
		errors.Is(err, usecase.ErrTooManyVendors)
}
