package model

const (
	// HighRiskThreshold is inclusive lower bound of high churn risk
	HighRiskThreshold = 0.75
	// MediumRiskThreshold is inclusive lower bound of medium churn risk
	MediumRiskThreshold = 0.2
)

// RiskLevel buckets churn probability
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High Risk"
	RiskMedium RiskLevel = "Medium Risk"
	RiskLow    RiskLevel = "Low Risk"
)

func RiskLevelOf(probability float64) RiskLevel {
	switch {
	case probability >= HighRiskThreshold:
		return RiskHigh
	case probability >= MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// InterventionCounts splits customers by whether any outreach happened
type InterventionCounts struct {
	NoIntervention int64 `json:"noInterventionCount"`
	Intervention   int64 `json:"interventionCount"`
}

// DashboardSummary is aggregated view over all stored customers.
// Customers without probability are counted in total only.
type DashboardSummary struct {
	TotalCount         int64               `json:"totalCount"`
	HighProbCount      int64               `json:"highProbCount"`
	SatisfactionCounts map[string]int64    `json:"satisfactionCounts"`
	RiskCounts         map[RiskLevel]int64 `json:"riskCounts"`
	InterventionCounts InterventionCounts  `json:"interventionCounts"`
}

// NewDashboardSummary returns summary with every risk bucket present
func NewDashboardSummary() *DashboardSummary {
	return &DashboardSummary{
		SatisfactionCounts: make(map[string]int64),
		RiskCounts: map[RiskLevel]int64{
			RiskHigh:   0,
			RiskMedium: 0,
			RiskLow:    0,
		},
	}
}
