package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/i2y/vendorrisk/internal/domain"
)

// Output token limits per prompt kind.
const (
	assessmentMaxTokens  = 800
	comparisonMaxTokens  = 1000
	benchmarkMaxTokens   = 1000
	healthProbeMaxTokens = 10

	healthProbePrompt = "Test"
)

// AssessmentPrompt builds the single-vendor analysis prompt. Field order and
// labels are fixed.
func AssessmentPrompt(p domain.CompanyProfile) string {
	var b strings.Builder
	b.WriteString("Analyze the following vendor for comprehensive risk assessment:\n\n")
	fmt.Fprintf(&b, "Company: %s\n", p.Name)
	fmt.Fprintf(&b, "Industry: %s\n", p.Industry)
	fmt.Fprintf(&b, "Size: %s\n", p.Size)
	fmt.Fprintf(&b, "Financial Health: %s\n", p.FinancialHealth)
	fmt.Fprintf(&b, "Security Rating: %s\n", p.SecurityRating)
	fmt.Fprintf(&b, "Reputation Score: %.1f/10\n", p.ReputationScore)
	fmt.Fprintf(&b, "Compliance: %s\n\n", strings.Join(p.Compliance, ", "))
	b.WriteString("Provide a detailed risk assessment including:\n")
	b.WriteString("1. Executive Summary (2-3 sentences)\n")
	b.WriteString("2. Key Risk Factors (top 3 risks)\n")
	b.WriteString("3. Risk Mitigation Recommendations (3-4 specific actions)\n")
	b.WriteString("4. Overall Risk Level (Low/Medium/High)\n\n")
	b.WriteString("Format as actionable business recommendations.")
	return b.String()
}

// vendorSummary is the per-vendor record embedded in comparison prompts.
type vendorSummary struct {
	Name            string          `json:"name"`
	Industry        domain.Industry `json:"industry"`
	RiskScore       float64         `json:"risk_score"`
	FinancialHealth string          `json:"financial_health"`
	SecurityRating  string          `json:"security_rating"`
	Reputation      float64         `json:"reputation"`
}

// ComparisonPrompt builds the multi-vendor prompt from already ranked
// profiles.
func ComparisonPrompt(ranked []domain.CompanyProfile) (string, error) {
	summaries := make([]vendorSummary, len(ranked))
	for i, p := range ranked {
		summaries[i] = vendorSummary{
			Name:            p.Name,
			Industry:        p.Industry,
			RiskScore:       p.BaseRiskScore,
			FinancialHealth: p.FinancialHealth,
			SecurityRating:  p.SecurityRating,
			Reputation:      p.ReputationScore,
		}
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal vendor summaries: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Compare these %d vendors for risk assessment:\n\n", len(ranked))
	b.Write(data)
	b.WriteString("\n\nProvide:\n")
	b.WriteString("1. Ranking explanation with key differentiators\n")
	b.WriteString("2. Recommended vendor selection strategy\n")
	b.WriteString("3. Risk considerations for each vendor\n")
	b.WriteString("4. Implementation recommendations\n\n")
	b.WriteString("Format as executive summary for decision making.")
	return b.String(), nil
}

// BenchmarkPrompt builds the industry insight prompt.
func BenchmarkPrompt(industry string, bm domain.IndustryBenchmark) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide industry risk insights for %s:\n\n", industry)
	b.WriteString("Industry Metrics:\n")
	fmt.Fprintf(&b, "- Average Risk Score: %.1f/10\n", bm.AverageRisk)
	fmt.Fprintf(&b, "- Market Volatility: %s\n", bm.Volatility)
	fmt.Fprintf(&b, "- Key Risks: %s\n", strings.Join(bm.KeyRisks, ", "))
	fmt.Fprintf(&b, "- Common Compliance: %s\n\n", strings.Join(bm.Compliance, ", "))
	b.WriteString("Provide:\n")
	b.WriteString("1. Industry risk landscape overview\n")
	b.WriteString("2. Current market trends affecting risk\n")
	b.WriteString("3. Vendor selection best practices for this industry\n")
	b.WriteString("4. Red flags to watch for\n")
	b.WriteString("5. Due diligence recommendations\n\n")
	b.WriteString("Format for procurement and risk management teams.")
	return b.String()
}
