package domain

import "sort"

// CompanyProfile is the synthetic, risk-relevant description of a vendor.
// Profiles are created per request and never shared.
type CompanyProfile struct {
	Name            string   `json:"name"`
	Industry        Industry `json:"industry"`
	Founded         int      `json:"founded"`
	Size            string   `json:"size"`
	Location        string   `json:"location"`
	FinancialHealth string   `json:"financial_health"`
	ReputationScore float64  `json:"reputation_score"`
	SecurityRating  string   `json:"security_rating"`
	Compliance      []string `json:"compliance_status"`
	// BaseRiskScore is on a 0-10 scale; lower is less risky.
	BaseRiskScore float64 `json:"base_risk_score"`
}

// RiskLevel returns the label for the profile's base risk score.
func (p CompanyProfile) RiskLevel() RiskLevel {
	return RiskLevelFor(p.BaseRiskScore)
}

// RankByRisk returns a copy of profiles ordered by ascending base risk score.
// Profiles with equal scores keep their input order.
func RankByRisk(profiles []CompanyProfile) []CompanyProfile {
	ranked := make([]CompanyProfile, len(profiles))
	copy(ranked, profiles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BaseRiskScore < ranked[j].BaseRiskScore
	})
	return ranked
}
