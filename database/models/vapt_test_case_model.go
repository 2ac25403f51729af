package models

import "github.com/google/uuid"

type TestCaseStatus string

const (
	TestCaseStatusNotStarted    TestCaseStatus = "not_started"
	TestCaseStatusInProgress    TestCaseStatus = "in_progress"
	TestCaseStatusPassed        TestCaseStatus = "passed"
	TestCaseStatusFailed        TestCaseStatus = "failed"
	TestCaseStatusNotApplicable TestCaseStatus = "not_applicable"
)

func (s TestCaseStatus) Display() string {
	switch s {
	case TestCaseStatusNotStarted:
		return "Not Started"
	case TestCaseStatusInProgress:
		return "In Progress"
	case TestCaseStatusPassed:
		return "Passed"
	case TestCaseStatusFailed:
		return "Failed"
	case TestCaseStatusNotApplicable:
		return "Not Applicable"
	}
	return string(s)
}

type VulnerabilityStatus string

const (
	VulnerabilityStatusOpen          VulnerabilityStatus = "open"
	VulnerabilityStatusClosed        VulnerabilityStatus = "closed"
	VulnerabilityStatusInProgress    VulnerabilityStatus = "in_progress"
	VulnerabilityStatusNotApplicable VulnerabilityStatus = "not_applicable"
)

func (s VulnerabilityStatus) Valid() bool {
	switch s {
	case VulnerabilityStatusOpen, VulnerabilityStatusClosed, VulnerabilityStatusInProgress, VulnerabilityStatusNotApplicable:
		return true
	}
	return false
}

// StatusForVulnerabilityStatus derives the test-case status from the
// vulnerability status: a closed vulnerability means the control passed, an
// open one means it failed, anything else leaves the case not started.
func StatusForVulnerabilityStatus(vs *VulnerabilityStatus) TestCaseStatus {
	if vs == nil {
		return TestCaseStatusNotStarted
	}
	switch *vs {
	case VulnerabilityStatusClosed:
		return TestCaseStatusPassed
	case VulnerabilityStatusOpen:
		return TestCaseStatusFailed
	}
	return TestCaseStatusNotStarted
}

// VaptTestCase is a test-plan template instantiated into a report. The
// description and test procedure stay pinned to the template; severity may be
// overridden per finding.
type VaptTestCase struct {
	Model
	VaptReportID uuid.UUID `json:"vaptReportId" gorm:"type:uuid;uniqueIndex:idx_vapt_test_cases_report_plan;not null;index;"`
	TestPlanID   uuid.UUID `json:"testPlanId" gorm:"type:uuid;uniqueIndex:idx_vapt_test_cases_report_plan;not null;"`
	TestPlan     TestPlan  `json:"testPlan" gorm:"foreignKey:TestPlanID;references:ID;"`

	TestCaseCode      string    `json:"testCaseCode" gorm:"type:text"`
	VulnerabilityName string    `json:"vulnerabilityName" gorm:"type:text"`
	Severity          *Severity `json:"severity" gorm:"type:text"`
	Description       string    `json:"description" gorm:"type:text"`
	TestProcedure     string    `json:"testProcedure" gorm:"type:text"`
	Remediation       string    `json:"remediation" gorm:"type:text"`
	Reference         string    `json:"reference" gorm:"type:text"`

	Status              TestCaseStatus       `json:"status" gorm:"type:text;default:'not_started';not null;"`
	VulnerabilityStatus *VulnerabilityStatus `json:"vulnerabilityStatus" gorm:"type:text"`
	FindingDetails      string               `json:"findingDetails" gorm:"type:text"`
	TesterComments      string               `json:"testerComments" gorm:"type:text"`
	UpdatedBy           string               `json:"updatedBy" gorm:"type:text"`

	Pocs []VaptPoc `json:"pocs,omitempty" gorm:"foreignKey:VaptTestCaseID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (t VaptTestCase) TableName() string {
	return "vapt_test_cases"
}

// EffectiveSeverity returns the per-finding severity override when set and
// falls back to the template severity otherwise.
func (t VaptTestCase) EffectiveSeverity() Severity {
	if t.Severity != nil && *t.Severity != "" {
		return *t.Severity
	}
	return t.TestPlan.Severity
}
