package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/report"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestFormatter() *report.Formatter {
	return report.NewFormatter("AWS Titan", func() time.Time { return fixedNow })
}

func TestFormatter_FormatAssessment(t *testing.T) {
	profile := domain.CompanyProfile{
		Name:            "Microsoft",
		Industry:        domain.IndustryTechnology,
		Founded:         1998,
		Size:            "Large (1000+)",
		Location:        "Global",
		FinancialHealth: "Excellent",
		ReputationScore: 9.0,
		SecurityRating:  "A-",
		Compliance:      []string{"SOC 2", "GDPR", "ISO 27001"},
		BaseRiskScore:   3.1,
	}

	got := newTestFormatter().FormatAssessment(profile, "Low exposure overall.")

	want := `VENDOR RISK ASSESSMENT: MICROSOFT

=== COMPANY OVERVIEW ===
Industry: Technology
Size: Large (1000+)
Location: Global
Founded: 1998

=== RISK METRICS ===
Financial Health: Excellent
Security Rating: A-
Reputation Score: 9.0/10
Compliance: SOC 2, GDPR, ISO 27001

=== AI RISK ANALYSIS ===
Low exposure overall.

=== ASSESSMENT INFO ===
Assessment Date: 2025-03-14 09:26:53
Analysis Model: AWS Titan`
	assert.Equal(t, want, got)
}

func TestFormatter_FormatComparison(t *testing.T) {
	profiles := []domain.CompanyProfile{
		{Name: "Acme", Industry: domain.IndustryGeneralServices, SecurityRating: "B", BaseRiskScore: 4.2},
		{Name: "Google", Industry: domain.IndustryTechnology, SecurityRating: "A", BaseRiskScore: 2.1},
		{Name: "Widgets", Industry: domain.IndustryGeneralServices, SecurityRating: "B+", BaseRiskScore: 5.9},
	}

	got := newTestFormatter().FormatComparison(profiles, "Pick Google.")

	want := `VENDOR RISK COMPARISON

=== RANKING (Best to Worst Risk) ===
1. Google - Score: 2.1/10 (Low)
   Industry: Technology, Security: A
2. Acme - Score: 4.2/10 (Medium)
   Industry: General Services, Security: B
3. Widgets - Score: 5.9/10 (High)
   Industry: General Services, Security: B+

=== AI COMPARISON ANALYSIS ===
Pick Google.

=== COMPARISON INFO ===
Vendors Analyzed: 3
Assessment Date: 2025-03-14 09:26:53`
	assert.Equal(t, want, got)
	assert.Equal(t, "Acme", profiles[0].Name, "input slice must not be reordered")
}

func TestFormatter_FormatComparisonStableTies(t *testing.T) {
	profiles := []domain.CompanyProfile{
		{Name: "First", BaseRiskScore: 3.5},
		{Name: "Second", BaseRiskScore: 3.5},
		{Name: "Cheapest", BaseRiskScore: 1.0},
		{Name: "Third", BaseRiskScore: 3.5},
	}

	got := newTestFormatter().FormatComparison(profiles, "")

	order := []string{"1. Cheapest", "2. First", "3. Second", "4. Third"}
	last := -1
	for _, line := range order {
		idx := strings.Index(got, line)
		require.NotEqual(t, -1, idx, "missing %q", line)
		assert.Greater(t, idx, last, "%q out of order", line)
		last = idx
	}
}

func TestFormatter_FormatBenchmark(t *testing.T) {
	b := domain.DefaultCatalog().Benchmark(domain.IndustryTechnology)

	got := newTestFormatter().FormatBenchmark("software", domain.IndustryTechnology, b, "Volatile sector.")

	want := `INDUSTRY RISK BENCHMARK: SOFTWARE

=== BENCHMARK METRICS ===
Average Industry Risk Score: 3.8/10
Market Volatility: High

=== KEY RISK AREAS ===
• Data breaches
• IP theft
• Rapid tech changes
• Regulatory shifts

=== COMPLIANCE REQUIREMENTS ===
• SOC 2
• ISO 27001
• GDPR

=== AI INDUSTRY ANALYSIS ===
Volatile sector.

=== BENCHMARK INFO ===
Analysis Date: 2025-03-14 09:26:53
Industry Category: Technology`
	assert.Equal(t, want, got)
}

func TestFormatter_FormatHealth(t *testing.T) {
	tools := []domain.Tool{
		{Name: "assess_vendor_risk", Arguments: []string{"vendor_name"}},
		{Name: "health_check"},
	}

	tests := []struct {
		name     string
		status   report.HealthStatus
		contains []string
		absent   []string
	}{
		{
			name: "Configured",
			status: report.HealthStatus{
				CredentialsConfigured: true,
				Provider:              "bedrock",
				NarrativeStatus:       "Connected",
				Model:                 "amazon.titan-text-express-v1",
				Region:                "us-east-1",
				Tools:                 tools,
			},
			contains: []string{
				"Credentials Configured: true",
				"Narrative Status: Connected",
				"Region: us-east-1",
				"• assess_vendor_risk(vendor_name)",
				"• health_check()",
				"Timestamp: 2025-03-14T09:26:53Z",
				"Status: Healthy",
			},
		},
		{
			name: "Not configured, no region",
			status: report.HealthStatus{
				Provider:        "openai",
				NarrativeStatus: "Not configured",
				Model:           "gpt-4o-mini",
				Tools:           tools,
			},
			contains: []string{"Credentials Configured: false", "Status: Configuration needed"},
			absent:   []string{"Region:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestFormatter().FormatHealth(tt.status)
			assert.True(t, strings.HasPrefix(got, "VENDOR RISK ASSESSMENT - SYSTEM HEALTH"))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}
}
