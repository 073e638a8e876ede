package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/i2y/vendorrisk/configs"
	"github.com/i2y/vendorrisk/internal/adapter/inbound/mcptools"
)

var errToolFailed = errors.New("tool call failed")

var assessCmd = &cobra.Command{
	Use:   "assess <vendor name>",
	Short: "Assess the risk of a single vendor",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, mcptools.ToolAssessVendorRisk, map[string]any{
			"vendor_name": strings.Join(args, " "),
		})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <vendor,vendor,...>",
	Short: "Compare and rank 2 to 5 vendors by risk",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, mcptools.ToolCompareVendors, map[string]any{
			"vendor_list": strings.Join(args, ","),
		})
	},
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark <industry>",
	Short: "Show the risk benchmark of an industry",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		industry := ""
		if len(args) == 1 {
			industry = args[0]
		}
		return runTool(cmd, mcptools.ToolIndustryBench, map[string]any{"industry": industry})
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check configuration and narrative provider connectivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTool(cmd, mcptools.ToolHealthCheck, nil)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd, compareCmd, benchmarkCmd, healthCmd)
}

// runTool builds the application, invokes one tool the way an MCP client
// would and prints its text result.
func runTool(cmd *cobra.Command, name string, args map[string]any) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg, false)
	slog.SetDefault(logger)

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := a.handler(name)
	if err != nil {
		return err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := handler(ctx, req)
	if err != nil {
		return err
	}

	text := resultText(result)
	if result.IsError {
		fmt.Fprintln(cmd.ErrOrStderr(), text)
		return errToolFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// handler returns the registered handler for a tool.
func (a *app) handler(name string) (mcpGoServer.ToolHandlerFunc, error) {
	switch name {
	case mcptools.ToolAssessVendorRisk:
		return a.tools.HandleAssessVendorRisk, nil
	case mcptools.ToolCompareVendors:
		return a.tools.HandleCompareVendors, nil
	case mcptools.ToolIndustryBench:
		return a.tools.HandleIndustryBenchmark, nil
	case mcptools.ToolHealthCheck:
		return a.tools.HandleHealthCheck, nil
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if text, ok := c.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
