package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ReportStatus string

const (
	ReportStatusInitialized ReportStatus = "initialized"
	ReportStatusInProgress  ReportStatus = "in_progress"
	ReportStatusCompleted   ReportStatus = "completed"
)

type VaptReport struct {
	Model
	ClientID      uuid.UUID   `json:"clientId" gorm:"type:uuid;uniqueIndex:idx_vapt_reports_client_application;not null;"`
	Client        Client      `json:"client" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
	ApplicationID uuid.UUID   `json:"applicationId" gorm:"type:uuid;uniqueIndex:idx_vapt_reports_client_application;not null;"`
	Application   Application `json:"application" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE;"`

	ReportName string       `json:"reportName" gorm:"type:text"`
	Status     ReportStatus `json:"status" gorm:"type:text;default:'initialized';not null;"`
	CreatedBy  string       `json:"createdBy" gorm:"type:text"`

	AssessmentDate *time.Time `json:"assessmentDate" gorm:"type:date"`
	// assessment timeframe, distinct from the (freezable) assessment date
	StartDate *time.Time `json:"startDate" gorm:"type:date"`
	EndDate   *time.Time `json:"endDate" gorm:"type:date"`
	TotalDays int        `json:"totalDays" gorm:"default:0;"`

	Version     string `json:"version" gorm:"type:text"`
	PreparedBy  string `json:"preparedBy" gorm:"type:text"`
	ReviewedBy  string `json:"reviewedBy" gorm:"type:text"`
	SubmittedTo string `json:"submittedTo" gorm:"type:text"`
	ApprovedBy  string `json:"approvedBy" gorm:"type:text"`

	Objective     string         `json:"objective" gorm:"type:text"`
	Scope         string         `json:"scope" gorm:"type:text"`
	Approach      string         `json:"approach" gorm:"type:text"`
	KeyHighlights string         `json:"keyHighlights" gorm:"type:text"`
	AssetType     string         `json:"assetType" gorm:"type:text"`
	URLs          pq.StringArray `json:"urls" gorm:"type:text[]"`
	TesterNames   pq.StringArray `json:"testerNames" gorm:"type:text[]"`

	TotalTestCases         int `json:"totalTestCases" gorm:"default:0;"`
	PassedTestCases        int `json:"passedTestCases" gorm:"default:0;"`
	FailedTestCases        int `json:"failedTestCases" gorm:"default:0;"`
	NotApplicableTestCases int `json:"notApplicableTestCases" gorm:"default:0;"`

	CriticalCount      int `json:"criticalCount" gorm:"default:0;"`
	HighCount          int `json:"highCount" gorm:"default:0;"`
	MediumCount        int `json:"mediumCount" gorm:"default:0;"`
	LowCount           int `json:"lowCount" gorm:"default:0;"`
	InformationalCount int `json:"informationalCount" gorm:"default:0;"`

	OverallRisk  string `json:"overallRisk" gorm:"type:text;default:'Minimal Risk';"`
	PostureLevel string `json:"postureLevel" gorm:"type:text;default:'Minimal Risk';"`

	ExecutiveSummary string `json:"executiveSummary" gorm:"type:text"`
	Methodology      string `json:"methodology" gorm:"type:text"`
	ToolsUsed        string `json:"toolsUsed" gorm:"type:text"`
	Conclusion       string `json:"conclusion" gorm:"type:text"`
	Recommendations  string `json:"recommendations" gorm:"type:text"`
	NextSteps        string `json:"nextSteps" gorm:"type:text"`

	TestCases []VaptTestCase `json:"testCases,omitempty" gorm:"foreignKey:VaptReportID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (r VaptReport) TableName() string {
	return "vapt_reports"
}
