package dtos

import "io"

type GetOrCreateReportRequest struct {
	ClientID      string `json:"clientId" validate:"required,uuid"`
	ApplicationID string `json:"applicationId" validate:"required,uuid"`
	// ignored when the pair already has a report
	SelectedTestPlanIDs []string `json:"selectedTestPlanIds" validate:"omitempty,dive,uuid"`
}

type AddTestCasesRequest struct {
	TestPlanIDs []string `json:"testPlanIds" validate:"required,min=1,dive,uuid"`
}

// UpdateTestCaseRequest carries a tester's update for a single test case.
// Description and test procedure are accepted for form round-trips but are
// always re-copied from the template on save.
type UpdateTestCaseRequest struct {
	VulnerabilityStatus *string `json:"vulnerabilityStatus" validate:"omitempty,oneof=open closed in_progress not_applicable"`
	Severity            *string `json:"severity" validate:"omitempty,oneof=critical high medium low informational"`
	Description         string  `json:"description"`
	TestProcedure       string  `json:"testProcedure"`
	FindingDetails      *string `json:"findingDetails"`
	TesterComments      *string `json:"testerComments"`
	Remediation         *string `json:"remediation"`
	Reference           *string `json:"reference"`
}

// UpdateReportConfigRequest is a partial update: nil fields are left
// untouched, set fields are trimmed before storage.
type UpdateReportConfigRequest struct {
	ReportName       *string `json:"reportName"`
	Version          *string `json:"version"`
	PreparedBy       *string `json:"preparedBy"`
	ReviewedBy       *string `json:"reviewedBy"`
	SubmittedTo      *string `json:"submittedTo"`
	ApprovedBy       *string `json:"approvedBy"`
	AssessmentDate   *string `json:"assessmentDate"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	Objective        *string `json:"objective"`
	Approach         *string `json:"approach"`
	KeyHighlights    *string `json:"keyHighlights"`
	AssetType        *string `json:"assetType"`
	ExecutiveSummary *string `json:"executiveSummary"`
	Scope            *string `json:"scope"`
	Methodology      *string `json:"methodology"`
	ToolsUsed        *string `json:"toolsUsed"`
	Conclusion       *string `json:"conclusion"`
	Recommendations  *string `json:"recommendations"`
	NextSteps        *string `json:"nextSteps"`

	URLs    *[]string `json:"urls"`
	Testers *[]string `json:"testers"`
}

// PocUpload is the evidence file handed to the evidence service.
type PocUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Description string
	Content     io.Reader
}

type UpdatePocRequest struct {
	Description string `json:"description"`
}
