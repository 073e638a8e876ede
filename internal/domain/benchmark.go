package domain

// IndustryBenchmark holds aggregate risk statistics for one industry.
type IndustryBenchmark struct {
	AverageRisk float64  `json:"avg_risk" yaml:"avg_risk"`
	Volatility  string   `json:"volatility" yaml:"volatility"`
	KeyRisks    []string `json:"key_risks" yaml:"key_risks"`
	Compliance  []string `json:"compliance" yaml:"compliance"`
}

func (b IndustryBenchmark) clone() IndustryBenchmark {
	b.KeyRisks = append([]string(nil), b.KeyRisks...)
	b.Compliance = append([]string(nil), b.Compliance...)
	return b
}
