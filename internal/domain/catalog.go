package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Range is an inclusive interval of real values.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// YearRange is an inclusive interval of years.
type YearRange struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// IndustryProfile is one row of the catalog: the keywords that select the
// industry, the distributions used to synthesize its companies and its
// benchmark record.
type IndustryProfile struct {
	Industry Industry `json:"industry" yaml:"industry"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	BaseRisk   Range `json:"base_risk" yaml:"base_risk"`
	Reputation Range `json:"reputation" yaml:"reputation"`
	// FinancialHealth and SecurityRatings are drawn uniformly; repeat an entry
	// to weight it.
	FinancialHealth []string `json:"financial_health" yaml:"financial_health"`
	SecurityRatings []string `json:"security_ratings" yaml:"security_ratings"`

	Benchmark IndustryBenchmark `json:"benchmark" yaml:"benchmark"`
}

// Catalog is the single configuration table behind classification, data
// generation and benchmark lookups. Industries are evaluated in order; the
// first whose keyword is a substring of the lower-cased input wins. Anything
// unmatched resolves to Default.
//
// A Catalog must not be mutated once handed to the generator or use cases.
type Catalog struct {
	Industries []IndustryProfile `json:"industries" yaml:"industries"`
	Default    IndustryProfile   `json:"default" yaml:"default"`

	Founded        YearRange `json:"founded" yaml:"founded"`
	Sizes          []string  `json:"sizes" yaml:"sizes"`
	Locations      []string  `json:"locations" yaml:"locations"`
	Certifications []string  `json:"certifications" yaml:"certifications"`
	ComplianceMin  int       `json:"compliance_min" yaml:"compliance_min"`
	ComplianceMax  int       `json:"compliance_max" yaml:"compliance_max"`
}

// DefaultCatalog returns the built-in table.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Industries: []IndustryProfile{
			{
				Industry:        IndustryTechnology,
				Keywords:        []string{"microsoft", "google", "amazon", "apple", "meta", "salesforce", "tech", "software"},
				BaseRisk:        Range{Min: 2.5, Max: 4.5},
				Reputation:      Range{Min: 7.5, Max: 9.2},
				FinancialHealth: []string{"Excellent", "Good", "Good"},
				SecurityRatings: []string{"A", "A-", "B+"},
				Benchmark: IndustryBenchmark{
					AverageRisk: 3.8,
					Volatility:  "High",
					KeyRisks:    []string{"Data breaches", "IP theft", "Rapid tech changes", "Regulatory shifts"},
					Compliance:  []string{"SOC 2", "ISO 27001", "GDPR"},
				},
			},
			{
				Industry:        IndustryFinancialServices,
				Keywords:        []string{"jpmorgan", "goldman", "mastercard", "visa", "financial", "bank"},
				BaseRisk:        Range{Min: 3.0, Max: 5.0},
				Reputation:      Range{Min: 7.0, Max: 8.5},
				FinancialHealth: []string{"Excellent", "Good"},
				SecurityRatings: []string{"A+", "A", "A-"},
				Benchmark: IndustryBenchmark{
					AverageRisk: 3.2,
					Volatility:  "Medium",
					KeyRisks:    []string{"Regulatory violations", "Cyber attacks", "Market volatility"},
					Compliance:  []string{"SOX", "PCI DSS", "Basel III"},
				},
			},
			{
				Industry:        IndustryHealthcare,
				Keywords:        []string{"johnson", "pfizer", "merck", "health", "medical"},
				BaseRisk:        Range{Min: 3.5, Max: 6.0},
				Reputation:      Range{Min: 6.5, Max: 8.0},
				FinancialHealth: []string{"Good", "Fair", "Good"},
				SecurityRatings: []string{"B+", "B", "A-"},
				Benchmark: IndustryBenchmark{
					AverageRisk: 3.5,
					Volatility:  "Medium",
					KeyRisks:    []string{"HIPAA violations", "Patient data breaches", "Compliance failures"},
					Compliance:  []string{"HIPAA", "FDA", "SOC 2"},
				},
			},
		},
		Default: IndustryProfile{
			Industry:        IndustryGeneralServices,
			BaseRisk:        Range{Min: 3.5, Max: 6.0},
			Reputation:      Range{Min: 6.5, Max: 8.0},
			FinancialHealth: []string{"Good", "Fair", "Good"},
			SecurityRatings: []string{"B+", "B", "A-"},
			Benchmark: IndustryBenchmark{
				AverageRisk: 4.0,
				Volatility:  "Medium",
				KeyRisks:    []string{"Operational risks", "Compliance issues", "Market changes"},
				Compliance:  []string{"ISO 9001", "SOC 2"},
			},
		},
		Founded:        YearRange{From: 1980, To: 2015},
		Sizes:          []string{"Large (1000+)", "Medium (201-1000)", "Large (1000+)"},
		Locations:      []string{"United States", "Europe", "Global"},
		Certifications: []string{"ISO 27001", "SOC 2", "GDPR", "HIPAA", "PCI DSS", "ISO 9001"},
		ComplianceMin:  3,
		ComplianceMax:  5,
	}
}

// Classify maps free text (a company or industry name) to an industry.
func (c *Catalog) Classify(text string) Industry {
	return c.match(text).Industry
}

// Profile returns the sampling parameters for an industry. Unknown industries
// get the default row.
func (c *Catalog) Profile(industry Industry) IndustryProfile {
	for _, p := range c.Industries {
		if p.Industry == industry {
			return p
		}
	}
	return c.Default
}

// ProfileFor classifies text and returns the matching row.
func (c *Catalog) ProfileFor(text string) IndustryProfile {
	return c.match(text)
}

// Benchmark returns the benchmark record for an industry, or the default
// record when the industry has no row. The result is a copy.
func (c *Catalog) Benchmark(industry Industry) IndustryBenchmark {
	return c.Profile(industry).Benchmark.clone()
}

// LookupBenchmark classifies free text and returns the industry together
// with its benchmark record. Spaces and hyphens are ignored, so "soft-ware"
// matches the "software" keyword.
func (c *Catalog) LookupBenchmark(text string) (Industry, IndustryBenchmark) {
	p := c.matchWith(text, squash)
	return p.Industry, p.Benchmark.clone()
}

var squasher = strings.NewReplacer(" ", "", "-", "")

func squash(s string) string {
	return squasher.Replace(strings.ToLower(s))
}

func (c *Catalog) match(text string) IndustryProfile {
	return c.matchWith(text, strings.ToLower)
}

func (c *Catalog) matchWith(text string, norm func(string) string) IndustryProfile {
	text = norm(text)
	for _, p := range c.Industries {
		for _, kw := range p.Keywords {
			if kw = norm(kw); kw != "" && strings.Contains(text, kw) {
				return p
			}
		}
	}
	return c.Default
}

// Validate checks that every range and pool can be sampled from.
func (c *Catalog) Validate() error {
	var errs []error
	if c.Default.Industry == "" {
		errs = append(errs, errors.New("default industry name is empty"))
	}
	rows := append([]IndustryProfile{c.Default}, c.Industries...)
	seen := make(map[Industry]bool, len(rows))
	for _, p := range rows {
		name := string(p.Industry)
		if seen[p.Industry] {
			errs = append(errs, fmt.Errorf("industry %q is listed twice", name))
		}
		seen[p.Industry] = true
		if p.BaseRisk.Min > p.BaseRisk.Max {
			errs = append(errs, fmt.Errorf("industry %q: base_risk min %.1f exceeds max %.1f", name, p.BaseRisk.Min, p.BaseRisk.Max))
		}
		if p.Reputation.Min > p.Reputation.Max {
			errs = append(errs, fmt.Errorf("industry %q: reputation min %.1f exceeds max %.1f", name, p.Reputation.Min, p.Reputation.Max))
		}
		if len(p.FinancialHealth) == 0 {
			errs = append(errs, fmt.Errorf("industry %q: financial_health is empty", name))
		}
		if len(p.SecurityRatings) == 0 {
			errs = append(errs, fmt.Errorf("industry %q: security_ratings is empty", name))
		}
	}
	for _, p := range c.Industries {
		if len(p.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("industry %q has no keywords", p.Industry))
		}
	}
	if c.Founded.From > c.Founded.To {
		errs = append(errs, fmt.Errorf("founded range %d-%d is inverted", c.Founded.From, c.Founded.To))
	}
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes is empty"))
	}
	if len(c.Locations) == 0 {
		errs = append(errs, errors.New("locations is empty"))
	}
	if c.ComplianceMin < 0 || c.ComplianceMin > c.ComplianceMax {
		errs = append(errs, fmt.Errorf("compliance size range %d-%d is invalid", c.ComplianceMin, c.ComplianceMax))
	}
	if c.ComplianceMax > len(c.Certifications) {
		errs = append(errs, fmt.Errorf("compliance_max %d exceeds the %d available certifications", c.ComplianceMax, len(c.Certifications)))
	}
	return errors.Join(errs...)
}
