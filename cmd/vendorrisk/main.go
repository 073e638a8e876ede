// Package main provides the entry point for the vendor risk assessment MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	serverName    = "vendor-risk-assessment"
	serverVersion = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:          "vendorrisk",
	Short:        "Vendor risk assessment MCP server",
	Long:         "vendorrisk serves AI-assisted vendor risk assessments, vendor comparisons and industry benchmarks as MCP tools over stdio or SSE.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
