package models

type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeverityHigh          Severity = "high"
	SeverityMedium        Severity = "medium"
	SeverityLow           Severity = "low"
	SeverityInformational Severity = "informational"
)

// severityRank orders severities for report sorting. Higher is more severe.
var severityRank = map[Severity]int{
	SeverityCritical:      5,
	SeverityHigh:          4,
	SeverityMedium:        3,
	SeverityLow:           2,
	SeverityInformational: 1,
}

func (s Severity) Rank() int {
	return severityRank[s]
}

func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Display returns the severity label used in rendered reports.
func (s Severity) Display() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	case SeverityInformational:
		return "Informational"
	}
	return string(s)
}

// Color returns the hex color used for this severity in charts and tables.
func (s Severity) Color() string {
	switch s {
	case SeverityCritical:
		return "#8B0000"
	case SeverityHigh:
		return "#FF0000"
	case SeverityMedium:
		return "#FFA500"
	case SeverityLow:
		return "#FFFF00"
	case SeverityInformational:
		return "#0000FF"
	}
	return "#808080"
}

// ImpactDescription returns the boilerplate impact statement for the
// risk-rating legend of rendered reports.
func (s Severity) ImpactDescription() string {
	switch s {
	case SeverityCritical:
		return "Immediate threat of system compromise or data breach. Exploitation is straightforward and results in severe business impact."
	case SeverityHigh:
		return "Significant risk of compromise. Exploitation may lead to unauthorized access to sensitive data or systems."
	case SeverityMedium:
		return "Moderate risk. Exploitation requires specific conditions but could expose limited data or functionality."
	case SeverityLow:
		return "Limited risk. Exploitation is difficult or impact is minimal."
	case SeverityInformational:
		return "No direct risk. Observation provided for awareness and hardening."
	}
	return ""
}

// TestPlan is a catalog template a report test case is instantiated from.
type TestPlan struct {
	Model
	TestCaseID        string   `json:"testCaseId" gorm:"type:text;uniqueIndex;not null;"`
	VulnerabilityName string   `json:"vulnerabilityName" gorm:"type:text;not null;"`
	Severity          Severity `json:"severity" gorm:"type:text;default:'medium';not null;"`
	Description       string   `json:"description" gorm:"type:text"`
	TestProcedure     string   `json:"testProcedure" gorm:"type:text"`
	Remediation       string   `json:"remediation" gorm:"type:text"`
	Reference         string   `json:"reference" gorm:"type:text"`
}

func (t TestPlan) TableName() string {
	return "test_plans"
}
