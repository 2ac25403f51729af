package dtos

type TestPlanRequest struct {
	TestCaseID        string `json:"testCaseId"`
	VulnerabilityName string `json:"vulnerabilityName" validate:"required"`
	Severity          string `json:"severity" validate:"required,oneof=critical high medium low informational"`
	Description       string `json:"description"`
	TestProcedure     string `json:"testProcedure"`
	Remediation       string `json:"remediation"`
	Reference         string `json:"reference"`
}
