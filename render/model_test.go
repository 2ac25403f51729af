// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() models.VaptReport {
	assessmentDate := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)
	return models.VaptReport{
		Model:            models.Model{ID: uuid.New()},
		ReportName:       "VAPT Report - Acme Corp - Webshop",
		Client:           models.Client{Name: "Acme Corp"},
		Application:      models.Application{Name: "Webshop"},
		Status:           models.ReportStatusInProgress,
		Version:          "1.0.20260203",
		PreparedBy:       "Alice Tester",
		ReviewedBy:       "Security Team Lead",
		SubmittedTo:      "Acme Corp",
		AssessmentDate:   &assessmentDate,
		StartDate:        &assessmentDate,
		EndDate:          &endDate,
		TotalDays:        4,
		TotalTestCases:   3,
		PassedTestCases:  1,
		FailedTestCases:  2,
		CriticalCount:    1,
		MediumCount:      1,
		OverallRisk:      "Critical Risk",
		PostureLevel:     "Critical Risk",
		ExecutiveSummary: "Two findings remain open.",
		Conclusion:       "Remediate and re-test.",
	}
}

func sampleTestCases() []models.VaptTestCase {
	open := models.VulnerabilityStatusOpen
	closed := models.VulnerabilityStatusClosed
	critical := models.SeverityCritical
	return []models.VaptTestCase{
		{
			TestCaseCode:        "TP-001",
			VulnerabilityName:   "SQL Injection",
			Severity:            &critical,
			TestPlan:            models.TestPlan{Severity: models.SeverityMedium},
			Description:         "Injection via search parameter",
			TestProcedure:       "Submit a crafted payload",
			FindingDetails:      "Time-based blind injection confirmed",
			VulnerabilityStatus: &open,
			Status:              models.TestCaseStatusFailed,
			Pocs: []models.VaptPoc{
				{FileName: "1_shot.png", OriginalFileName: "shot.png", ContentType: "image/png"},
				{FileName: "2_writeup.pdf", OriginalFileName: "writeup.pdf", ContentType: "application/pdf"},
			},
		},
		{
			TestCaseCode:        "TP-002",
			VulnerabilityName:   "Security Headers",
			TestPlan:            models.TestPlan{Severity: models.SeverityLow},
			Description:         "Response header review",
			TestProcedure:       "Inspect response headers",
			VulnerabilityStatus: &closed,
			Status:              models.TestCaseStatusPassed,
		},
	}
}

func TestBuildDocument(t *testing.T) {
	report := sampleReport()

	loader := func(poc models.VaptPoc) ([]byte, error) {
		if strings.HasSuffix(poc.FileName, ".png") {
			return []byte("png bytes"), nil
		}
		return nil, errors.New("unreadable")
	}

	doc := BuildDocument(report, sampleTestCases(), []dtos.ApplicationPassCount{{ApplicationName: "Webshop", PassedCount: 7}}, loader)

	assert.Equal(t, report.ID.String(), doc.ReportID)
	assert.Equal(t, "Acme Corp", doc.ClientName)
	assert.Equal(t, "03 Feb 2026", doc.AssessmentStart)
	assert.Equal(t, "06 Feb 2026", doc.AssessmentEnd)
	assert.Equal(t, "Critical Risk", doc.OverallRisk)

	require.Len(t, doc.RiskLegend, 5)
	assert.Equal(t, "Critical", doc.RiskLegend[0].Severity)

	require.Len(t, doc.SeverityCounts, 5)
	assert.Equal(t, 1, doc.SeverityCounts[0].Count)
	assert.Equal(t, 0, doc.SeverityCounts[1].Count)

	require.Len(t, doc.TestCases, 2)
	first := doc.TestCases[0]
	// per-finding severity override wins over the template severity
	assert.Equal(t, "Critical", first.Severity)
	assert.True(t, first.VulnerabilityOpen)
	require.Len(t, first.Evidence, 2)
	assert.NotEmpty(t, first.Evidence[0].DataURI)
	assert.True(t, strings.HasPrefix(string(first.Evidence[0].DataURI), "data:image/png;base64,"))
	// non-image evidence is listed by name only
	assert.Empty(t, first.Evidence[1].DataURI)
	assert.Equal(t, "writeup.pdf", first.Evidence[1].Name)

	assert.False(t, doc.TestCases[1].VulnerabilityOpen)

	// charts render from real counters
	assert.NotEmpty(t, doc.Charts.SeverityPie)
	assert.NotEmpty(t, doc.Charts.StatusBar)
	assert.NotEmpty(t, doc.Charts.TopApplications)
}

func TestBuildDocumentWithUnreadableEvidence(t *testing.T) {
	loader := func(poc models.VaptPoc) ([]byte, error) {
		return nil, errors.New("gone")
	}

	doc := BuildDocument(sampleReport(), sampleTestCases(), nil, loader)

	require.Len(t, doc.TestCases[0].Evidence, 2)
	// the document still lists the file, just without inlined bytes
	assert.Equal(t, "shot.png", doc.TestCases[0].Evidence[0].Name)
	assert.Empty(t, doc.TestCases[0].Evidence[0].DataURI)
}

func TestIsInlinableImage(t *testing.T) {
	assert.True(t, isInlinableImage("image/png"))
	assert.True(t, isInlinableImage("image/jpeg"))
	assert.False(t, isInlinableImage("application/pdf"))
	assert.False(t, isInlinableImage("image/svg+xml"))
}
