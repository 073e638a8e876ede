// Package report renders generated data and model narratives into the
// plain-text reports returned by the tools.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/i2y/vendorrisk/internal/domain"
)

const dateLayout = "2006-01-02 15:04:05"

// HealthStatus is the input of FormatHealth.
type HealthStatus struct {
	CredentialsConfigured bool
	Provider              string
	NarrativeStatus       string
	Model                 string
	Region                string
	Tools                 []domain.Tool
}

// Formatter composes reports. It performs no computation beyond
// interpolation and ranking.
type Formatter struct {
	modelLabel string
	now        func() time.Time
}

// NewFormatter creates a Formatter. modelLabel is printed as the analysis
// model; now supplies report timestamps (time.Now when nil).
func NewFormatter(modelLabel string, now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{modelLabel: modelLabel, now: now}
}

// FormatAssessment renders a single vendor assessment.
func (f *Formatter) FormatAssessment(profile domain.CompanyProfile, narrative string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "VENDOR RISK ASSESSMENT: %s\n\n", strings.ToUpper(profile.Name))

	b.WriteString("=== COMPANY OVERVIEW ===\n")
	fmt.Fprintf(&b, "Industry: %s\n", profile.Industry)
	fmt.Fprintf(&b, "Size: %s\n", profile.Size)
	fmt.Fprintf(&b, "Location: %s\n", profile.Location)
	fmt.Fprintf(&b, "Founded: %d\n\n", profile.Founded)

	b.WriteString("=== RISK METRICS ===\n")
	fmt.Fprintf(&b, "Financial Health: %s\n", profile.FinancialHealth)
	fmt.Fprintf(&b, "Security Rating: %s\n", profile.SecurityRating)
	fmt.Fprintf(&b, "Reputation Score: %.1f/10\n", profile.ReputationScore)
	fmt.Fprintf(&b, "Compliance: %s\n\n", strings.Join(profile.Compliance, ", "))

	b.WriteString("=== AI RISK ANALYSIS ===\n")
	b.WriteString(narrative)
	b.WriteString("\n\n")

	b.WriteString("=== ASSESSMENT INFO ===\n")
	fmt.Fprintf(&b, "Assessment Date: %s\n", f.now().Format(dateLayout))
	fmt.Fprintf(&b, "Analysis Model: %s\n", f.modelLabel)

	return strings.TrimSpace(b.String())
}

// FormatComparison renders vendors ranked from lowest to highest base risk.
// The input does not need to be sorted; ties keep their input order.
func (f *Formatter) FormatComparison(profiles []domain.CompanyProfile, narrative string) string {
	ranked := domain.RankByRisk(profiles)

	var b strings.Builder
	b.WriteString("VENDOR RISK COMPARISON\n\n")
	b.WriteString("=== RANKING (Best to Worst Risk) ===\n")
	for i, p := range ranked {
		fmt.Fprintf(&b, "%d. %s - Score: %.1f/10 (%s)\n", i+1, p.Name, p.BaseRiskScore, p.RiskLevel())
		fmt.Fprintf(&b, "   Industry: %s, Security: %s\n", p.Industry, p.SecurityRating)
	}
	b.WriteString("\n")

	b.WriteString("=== AI COMPARISON ANALYSIS ===\n")
	b.WriteString(narrative)
	b.WriteString("\n\n")

	b.WriteString("=== COMPARISON INFO ===\n")
	fmt.Fprintf(&b, "Vendors Analyzed: %d\n", len(ranked))
	fmt.Fprintf(&b, "Assessment Date: %s\n", f.now().Format(dateLayout))

	return strings.TrimSpace(b.String())
}

// FormatBenchmark renders the benchmark for the industry resolved from query.
func (f *Formatter) FormatBenchmark(query string, industry domain.Industry, benchmark domain.IndustryBenchmark, narrative string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INDUSTRY RISK BENCHMARK: %s\n\n", strings.ToUpper(query))

	b.WriteString("=== BENCHMARK METRICS ===\n")
	fmt.Fprintf(&b, "Average Industry Risk Score: %.1f/10\n", benchmark.AverageRisk)
	fmt.Fprintf(&b, "Market Volatility: %s\n\n", benchmark.Volatility)

	b.WriteString("=== KEY RISK AREAS ===\n")
	writeBullets(&b, benchmark.KeyRisks)
	b.WriteString("\n")

	b.WriteString("=== COMPLIANCE REQUIREMENTS ===\n")
	writeBullets(&b, benchmark.Compliance)
	b.WriteString("\n")

	b.WriteString("=== AI INDUSTRY ANALYSIS ===\n")
	b.WriteString(narrative)
	b.WriteString("\n\n")

	b.WriteString("=== BENCHMARK INFO ===\n")
	fmt.Fprintf(&b, "Analysis Date: %s\n", f.now().Format(dateLayout))
	fmt.Fprintf(&b, "Industry Category: %s\n", industry)

	return strings.TrimSpace(b.String())
}

// FormatHealth renders the system health report.
func (f *Formatter) FormatHealth(status HealthStatus) string {
	var b strings.Builder
	b.WriteString("VENDOR RISK ASSESSMENT - SYSTEM HEALTH\n\n")

	b.WriteString("=== STATUS ===\n")
	b.WriteString("Server: Running ✅\n")
	fmt.Fprintf(&b, "Credentials Configured: %t\n", status.CredentialsConfigured)
	fmt.Fprintf(&b, "Narrative Provider: %s\n", status.Provider)
	fmt.Fprintf(&b, "Narrative Status: %s\n", status.NarrativeStatus)
	fmt.Fprintf(&b, "Model: %s\n", status.Model)
	if status.Region != "" {
		fmt.Fprintf(&b, "Region: %s\n", status.Region)
	}
	b.WriteString("\n")

	b.WriteString("=== AVAILABLE TOOLS ===\n")
	for _, tool := range status.Tools {
		fmt.Fprintf(&b, "• %s\n", tool.Signature())
	}
	b.WriteString("\n")

	b.WriteString("=== HEALTH CHECK ===\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", f.now().Format(time.RFC3339))
	if status.CredentialsConfigured {
		b.WriteString("Status: Healthy\n")
	} else {
		b.WriteString("Status: Configuration needed\n")
	}

	return strings.TrimSpace(b.String())
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}
