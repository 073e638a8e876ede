package domain

// Industry is the classification bucket used to pick sampling ranges and
// benchmark data. The zero value is never produced by the classifier.
type Industry string

const (
	IndustryTechnology        Industry = "Technology"
	IndustryFinancialServices Industry = "Financial Services"
	IndustryHealthcare        Industry = "Healthcare"
	IndustryGeneralServices   Industry = "General Services"
)

// Industries returns the built-in categories in classification priority
// order, followed by the fallback category.
func Industries() []Industry {
	return []Industry{
		IndustryTechnology,
		IndustryFinancialServices,
		IndustryHealthcare,
		IndustryGeneralServices,
	}
}

// RiskLevel is the coarse label attached to a base risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// Risk level thresholds (inclusive upper bounds).
const (
	lowRiskCeiling    = 3.0
	mediumRiskCeiling = 5.0
)

// RiskLevelFor maps a base risk score to its label.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score <= lowRiskCeiling:
		return RiskLevelLow
	case score <= mediumRiskCeiling:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}
