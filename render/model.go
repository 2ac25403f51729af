// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns an aggregated report into HTML, DOCX and PDF bytes.
// The content model assembled here is plain data so the aggregation logic
// can be tested without touching any document library.
package render

import (
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
)

type KeyValue struct {
	Key   string
	Value string
}

type RiskLegendEntry struct {
	Severity string
	Color    string
	Impact   string
}

type CounterRow struct {
	Label string
	Color string
	Count int
}

type EvidenceImage struct {
	Name        string
	Description string
	ContentType string
	// DataURI is set only for supported image types whose stored file
	// could be read. Non-image evidence is listed by name only. Typed as
	// template.URL so the data scheme survives HTML escaping.
	DataURI template.URL
	Bytes   []byte
}

type TestCaseBlock struct {
	Code              string
	VulnerabilityName string
	Severity          string
	SeverityColor     string
	Status            string
	VulnerabilityOpen bool
	Description       string
	TestProcedure     string
	FindingDetails    string
	Remediation       string
	Reference         string
	TesterComments    string
	Evidence          []EvidenceImage
}

type Charts struct {
	// base64 data URIs, empty when chart rendering degraded
	SeverityPie     template.URL
	StatusBar       template.URL
	TopApplications template.URL
}

// Document is the complete, ordered content model every render backend
// consumes. It carries no references back into the persistence layer.
type Document struct {
	ReportID        string
	ReportName      string
	ClientName      string
	ApplicationName string
	GeneratedAt     time.Time

	Attributes []KeyValue

	ExecutiveSummary string
	Objective        string
	Scope            string
	Approach         string
	KeyHighlights    string
	Methodology      string
	ToolsUsed        string
	Conclusion       string
	Recommendations  string
	NextSteps        string

	AssessmentStart string
	AssessmentEnd   string
	TotalDays       int

	OverallRisk    string
	RiskLegend     []RiskLegendEntry
	SeverityCounts []CounterRow
	StatusCounts   []CounterRow

	TestCases []TestCaseBlock

	Charts Charts

	PreparedBy  string
	ReviewedBy  string
	ApprovedBy  string
	SubmittedTo string
}

// EvidenceLoader resolves the stored bytes for an evidence record. Returning
// an error skips inlining that file without failing the whole document.
type EvidenceLoader func(poc models.VaptPoc) ([]byte, error)

var legendSeverities = []models.Severity{
	models.SeverityCritical,
	models.SeverityHigh,
	models.SeverityMedium,
	models.SeverityLow,
	models.SeverityInformational,
}

// BuildDocument assembles the content model from an aggregated report and
// its ordered test cases. Charts are generated fresh from the current
// counters, never cached.
func BuildDocument(report models.VaptReport, testCases []models.VaptTestCase, topApplications []dtos.ApplicationPassCount, loadEvidence EvidenceLoader) Document {
	doc := Document{
		ReportID:        report.ID.String(),
		ReportName:      report.ReportName,
		ClientName:      report.Client.Name,
		ApplicationName: report.Application.Name,
		GeneratedAt:     time.Now(),

		ExecutiveSummary: report.ExecutiveSummary,
		Objective:        report.Objective,
		Scope:            report.Scope,
		Approach:         report.Approach,
		KeyHighlights:    report.KeyHighlights,
		Methodology:      report.Methodology,
		ToolsUsed:        report.ToolsUsed,
		Conclusion:       report.Conclusion,
		Recommendations:  report.Recommendations,
		NextSteps:        report.NextSteps,

		TotalDays:   report.TotalDays,
		OverallRisk: report.OverallRisk,

		PreparedBy:  report.PreparedBy,
		ReviewedBy:  report.ReviewedBy,
		ApprovedBy:  report.ApprovedBy,
		SubmittedTo: report.SubmittedTo,
	}

	if report.StartDate != nil {
		doc.AssessmentStart = report.StartDate.Format("02 Jan 2006")
	}
	if report.EndDate != nil {
		doc.AssessmentEnd = report.EndDate.Format("02 Jan 2006")
	}

	doc.Attributes = []KeyValue{
		{"Report Name", report.ReportName},
		{"Version", report.Version},
		{"Asset Type", report.AssetType},
		{"Prepared By", report.PreparedBy},
		{"Reviewed By", report.ReviewedBy},
		{"Submitted To", report.SubmittedTo},
		{"Approved By", report.ApprovedBy},
		{"Assessment Start", doc.AssessmentStart},
		{"Assessment End", doc.AssessmentEnd},
		{"Total Days", fmt.Sprintf("%d", report.TotalDays)},
		{"Overall Risk", report.OverallRisk},
	}

	for _, severity := range legendSeverities {
		doc.RiskLegend = append(doc.RiskLegend, RiskLegendEntry{
			Severity: severity.Display(),
			Color:    severity.Color(),
			Impact:   severity.ImpactDescription(),
		})
	}

	severityCounts := map[models.Severity]int{
		models.SeverityCritical:      report.CriticalCount,
		models.SeverityHigh:          report.HighCount,
		models.SeverityMedium:        report.MediumCount,
		models.SeverityLow:           report.LowCount,
		models.SeverityInformational: report.InformationalCount,
	}
	for _, severity := range legendSeverities {
		doc.SeverityCounts = append(doc.SeverityCounts, CounterRow{
			Label: severity.Display(),
			Color: severity.Color(),
			Count: severityCounts[severity],
		})
	}

	doc.StatusCounts = []CounterRow{
		{Label: "Total", Color: "#455A64", Count: report.TotalTestCases},
		{Label: "Passed", Color: "#2E7D32", Count: report.PassedTestCases},
		{Label: "Failed", Color: "#C62828", Count: report.FailedTestCases},
		{Label: "Not Applicable", Color: "#9E9E9E", Count: report.NotApplicableTestCases},
	}

	statusBreakdown := map[models.TestCaseStatus]int{}
	for _, testCase := range testCases {
		statusBreakdown[testCase.Status]++
		doc.TestCases = append(doc.TestCases, buildTestCaseBlock(testCase, loadEvidence))
	}

	doc.Charts = Charts{
		SeverityPie:     severityPieChart(doc.SeverityCounts),
		StatusBar:       statusBarChart(statusBreakdown),
		TopApplications: topApplicationsChart(topApplications),
	}

	return doc
}

func buildTestCaseBlock(testCase models.VaptTestCase, loadEvidence EvidenceLoader) TestCaseBlock {
	severity := testCase.EffectiveSeverity()
	block := TestCaseBlock{
		Code:              testCase.TestCaseCode,
		VulnerabilityName: testCase.VulnerabilityName,
		Severity:          severity.Display(),
		SeverityColor:     severity.Color(),
		Status:            testCase.Status.Display(),
		VulnerabilityOpen: testCase.VulnerabilityStatus != nil && *testCase.VulnerabilityStatus == models.VulnerabilityStatusOpen,
		Description:       testCase.Description,
		TestProcedure:     testCase.TestProcedure,
		FindingDetails:    testCase.FindingDetails,
		Remediation:       testCase.Remediation,
		Reference:         testCase.Reference,
		TesterComments:    testCase.TesterComments,
	}

	for _, poc := range testCase.Pocs {
		image := EvidenceImage{
			Name:        poc.OriginalFileName,
			Description: poc.Description,
			ContentType: poc.ContentType,
		}
		if isInlinableImage(poc.ContentType) && loadEvidence != nil {
			content, err := loadEvidence(poc)
			if err != nil {
				slog.Warn("skipping unreadable evidence file", "file", poc.FileName, "err", err)
			} else {
				image.Bytes = content
				image.DataURI = encodeDataURI(poc.ContentType, content)
			}
		}
		block.Evidence = append(block.Evidence, image)
	}

	return block
}

func isInlinableImage(contentType string) bool {
	switch contentType {
	case "image/png", "image/jpeg", "image/jpg", "image/gif":
		return true
	}
	return false
}
