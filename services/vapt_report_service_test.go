// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/mocks"
	"github.com/rootlockdefense/defectrix/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func runTransaction(f func(tx *gorm.DB) error) error {
	return f(nil)
}

func newReportServiceForTest(t *testing.T) (*vaptReportService, *mocks.ClientRepository, *mocks.ApplicationRepository, *mocks.TestPlanRepository, *mocks.VaptReportRepository, *mocks.VaptTestCaseRepository, *mocks.ArtifactService) {
	clientRepository := mocks.NewClientRepository(t)
	applicationRepository := mocks.NewApplicationRepository(t)
	testPlanRepository := mocks.NewTestPlanRepository(t)
	vaptReportRepository := mocks.NewVaptReportRepository(t)
	vaptTestCaseRepository := mocks.NewVaptTestCaseRepository(t)
	artifactService := mocks.NewArtifactService(t)

	service := NewVaptReportService(clientRepository, applicationRepository, testPlanRepository, vaptReportRepository, vaptTestCaseRepository, artifactService)
	return service, clientRepository, applicationRepository, testPlanRepository, vaptReportRepository, vaptTestCaseRepository, artifactService
}

func testClient() models.Client {
	return models.Client{
		Model: models.Model{ID: uuid.New()},
		Name:  "Acme Corp",
	}
}

func testApplication(clientID uuid.UUID) models.Application {
	return models.Application{
		Model:       models.Model{ID: uuid.New()},
		ClientID:    clientID,
		Name:        "Webshop",
		URL:         "https://shop.acme.example",
		Environment: models.EnvironmentProduction,
	}
}

func testPlanWithSeverity(code string, severity models.Severity) models.TestPlan {
	return models.TestPlan{
		Model:             models.Model{ID: uuid.New()},
		TestCaseID:        code,
		VulnerabilityName: "Vulnerability " + code,
		Severity:          severity,
		Description:       "Description " + code,
		TestProcedure:     "Procedure " + code,
	}
}

func TestGetOrCreate(t *testing.T) {
	t.Run("should return the existing report untouched when the pair already has one", func(t *testing.T) {
		service, clientRepository, applicationRepository, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		client := testClient()
		application := testApplication(client.ID)
		existing := models.VaptReport{
			Model:    models.Model{ID: uuid.New()},
			ClientID: client.ID,
			Status:   models.ReportStatusInProgress,
		}

		clientRepository.On("Read", client.ID).Return(client, nil)
		applicationRepository.On("Read", application.ID).Return(application, nil)
		vaptReportRepository.On("FindByClientAndApplication", client.ID, application.ID).Return(existing, nil)

		report, isExisting, err := service.GetOrCreate(client.ID, application.ID, []uuid.UUID{uuid.New()}, models.User{Username: "alice"})

		require.NoError(t, err)
		assert.True(t, isExisting)
		assert.Equal(t, existing.ID, report.ID)
		assert.Equal(t, models.ReportStatusInProgress, report.Status)
		// no transaction may have been opened for an existing report
		vaptReportRepository.AssertNotCalled(t, "Transaction", mock.Anything)
	})

	t.Run("should create the report with its default metadata and one test case per template", func(t *testing.T) {
		service, clientRepository, applicationRepository, testPlanRepository, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		client := testClient()
		application := testApplication(client.ID)
		planA := testPlanWithSeverity("TP-001", models.SeverityHigh)
		planB := testPlanWithSeverity("TP-002", models.SeverityLow)

		clientRepository.On("Read", client.ID).Return(client, nil)
		applicationRepository.On("Read", application.ID).Return(application, nil)
		vaptReportRepository.On("FindByClientAndApplication", client.ID, application.ID).Return(models.VaptReport{}, gorm.ErrRecordNotFound)
		testPlanRepository.On("List", mock.Anything).Return([]models.TestPlan{planA, planB}, nil)
		vaptReportRepository.On("Transaction", mock.Anything).Return(runTransaction)

		var createdReport *models.VaptReport
		vaptReportRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdReport = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		var createdTestCases []models.VaptTestCase
		vaptTestCaseRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdTestCases = args.Get(1).([]models.VaptTestCase)
		}).Return(nil)

		actor := models.User{Username: "alice", FullName: "Alice Tester"}
		_, isExisting, err := service.GetOrCreate(client.ID, application.ID, []uuid.UUID{planA.ID, planB.ID, planA.ID}, actor)

		require.NoError(t, err)
		assert.False(t, isExisting)
		require.NotNil(t, createdReport)

		assert.Equal(t, "VAPT Report - Acme Corp - Webshop", createdReport.ReportName)
		assert.Equal(t, models.ReportStatusInitialized, createdReport.Status)
		assert.Equal(t, "alice", createdReport.CreatedBy)
		assert.Equal(t, "Alice Tester", createdReport.PreparedBy)
		assert.Equal(t, "Security Team Lead", createdReport.ReviewedBy)
		assert.Equal(t, "Acme Corp", createdReport.SubmittedTo)
		assert.Equal(t, "Minimal Risk", createdReport.OverallRisk)
		require.NotNil(t, createdReport.AssessmentDate)
		assert.Equal(t, "1.0."+createdReport.AssessmentDate.Format("20060102"), createdReport.Version)
		assert.Contains(t, createdReport.Objective, "Webshop")
		assert.Equal(t, []string{"https://shop.acme.example"}, []string(createdReport.URLs))

		// the assessment timeframe starts on creation day
		require.NotNil(t, createdReport.StartDate)
		assert.True(t, createdReport.StartDate.Equal(*createdReport.AssessmentDate))

		// counters stay zeroed at creation time
		assert.Zero(t, createdReport.TotalTestCases)
		assert.Zero(t, createdReport.CriticalCount)
		assert.Zero(t, createdReport.FailedTestCases)

		// duplicate template ids collapse to one test case each
		require.Len(t, createdTestCases, 2)
		for _, testCase := range createdTestCases {
			require.NotNil(t, testCase.VulnerabilityStatus)
			assert.Equal(t, models.VulnerabilityStatusOpen, *testCase.VulnerabilityStatus)
			assert.Equal(t, models.TestCaseStatusFailed, testCase.Status)
			assert.Equal(t, "alice", testCase.UpdatedBy)
		}
		assert.Equal(t, planA.Description, createdTestCases[0].Description)
		assert.Equal(t, planA.TestProcedure, createdTestCases[0].TestProcedure)
	})

	t.Run("should return the winner's report when a concurrent creation wins the unique index race", func(t *testing.T) {
		service, clientRepository, applicationRepository, testPlanRepository, vaptReportRepository, _, _ := newReportServiceForTest(t)

		client := testClient()
		application := testApplication(client.ID)
		winner := models.VaptReport{Model: models.Model{ID: uuid.New()}, ClientID: client.ID}

		clientRepository.On("Read", client.ID).Return(client, nil)
		applicationRepository.On("Read", application.ID).Return(application, nil)
		vaptReportRepository.On("FindByClientAndApplication", client.ID, application.ID).Return(models.VaptReport{}, gorm.ErrRecordNotFound).Once()
		testPlanRepository.On("List", mock.Anything).Return([]models.TestPlan{}, nil)
		vaptReportRepository.On("Transaction", mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"idx_vapt_reports_client_application\" (SQLSTATE 23505)"))
		vaptReportRepository.On("FindByClientAndApplication", client.ID, application.ID).Return(winner, nil).Once()

		report, isExisting, err := service.GetOrCreate(client.ID, application.ID, nil, models.User{Username: "alice"})

		require.NoError(t, err)
		assert.True(t, isExisting)
		assert.Equal(t, winner.ID, report.ID)
	})

	t.Run("should fail with an aggregated not found error when templates cannot be resolved", func(t *testing.T) {
		service, clientRepository, applicationRepository, testPlanRepository, vaptReportRepository, _, _ := newReportServiceForTest(t)

		client := testClient()
		application := testApplication(client.ID)
		known := testPlanWithSeverity("TP-001", models.SeverityHigh)
		unknownID := uuid.New()

		clientRepository.On("Read", client.ID).Return(client, nil)
		applicationRepository.On("Read", application.ID).Return(application, nil)
		vaptReportRepository.On("FindByClientAndApplication", client.ID, application.ID).Return(models.VaptReport{}, gorm.ErrRecordNotFound)
		testPlanRepository.On("List", mock.Anything).Return([]models.TestPlan{known}, nil)

		_, _, err := service.GetOrCreate(client.ID, application.ID, []uuid.UUID{known.ID, unknownID}, models.User{Username: "alice"})

		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Contains(t, err.Error(), unknownID.String())
	})
}

func TestUpdateTestCase(t *testing.T) {
	plan := testPlanWithSeverity("TP-001", models.SeverityMedium)
	reportID := uuid.New()
	testCaseID := uuid.New()

	baseTestCase := func() models.VaptTestCase {
		open := models.VulnerabilityStatusOpen
		return models.VaptTestCase{
			Model:               models.Model{ID: testCaseID},
			VaptReportID:        reportID,
			TestPlanID:          plan.ID,
			TestPlan:            plan,
			VulnerabilityName:   plan.VulnerabilityName,
			Description:         "stale description",
			TestProcedure:       "stale procedure",
			VulnerabilityStatus: &open,
			Status:              models.TestCaseStatusFailed,
		}
	}

	recentDate := time.Now().AddDate(0, -1, 0)

	t.Run("should derive the workflow status and re-pin template fields", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress, AssessmentDate: &recentDate}
		testCase := baseTestCase()

		vaptTestCaseRepository.On("Read", testCaseID).Return(testCase, nil).Once()
		vaptReportRepository.On("Read", reportID).Return(report, nil)
		vaptReportRepository.On("Transaction", mock.Anything).Return(runTransaction)

		var savedTestCase *models.VaptTestCase
		vaptTestCaseRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			savedTestCase = args.Get(1).(*models.VaptTestCase)
		}).Return(nil)

		vaptReportRepository.On("GetByID", mock.Anything, reportID).Return(report, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{testCase}, nil)
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		vaptTestCaseRepository.On("Read", testCaseID).Return(testCase, nil)

		closed := "closed"
		update := dtos.UpdateTestCaseRequest{
			VulnerabilityStatus: &closed,
			Description:         "tester tampered with this",
			TestProcedure:       "and with this",
			FindingDetails:      shared.Ptr("cookie missing the Secure flag"),
		}

		_, err := service.UpdateTestCase(testCaseID, update, models.User{Username: "bob"})

		require.NoError(t, err)
		require.NotNil(t, savedTestCase)
		assert.Equal(t, models.TestCaseStatusPassed, savedTestCase.Status)
		assert.Equal(t, "cookie missing the Secure flag", savedTestCase.FindingDetails)
		assert.Equal(t, "bob", savedTestCase.UpdatedBy)
		// the template stays the system of record for these two fields
		assert.Equal(t, plan.Description, savedTestCase.Description)
		assert.Equal(t, plan.TestProcedure, savedTestCase.TestProcedure)
	})

	t.Run("should flip an initialized report into progress on the first mutation", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInitialized, AssessmentDate: &recentDate}
		testCase := baseTestCase()

		vaptTestCaseRepository.On("Read", testCaseID).Return(testCase, nil)
		vaptReportRepository.On("Read", reportID).Return(report, nil)
		vaptReportRepository.On("Transaction", mock.Anything).Return(runTransaction)
		vaptTestCaseRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		vaptReportRepository.On("GetByID", mock.Anything, reportID).Return(report, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{testCase}, nil)

		var savedStatuses []models.ReportStatus
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			savedStatuses = append(savedStatuses, args.Get(1).(*models.VaptReport).Status)
		}).Return(nil)

		_, err := service.UpdateTestCase(testCaseID, dtos.UpdateTestCaseRequest{TesterComments: shared.Ptr("checked manually")}, models.User{Username: "bob"})

		require.NoError(t, err)
		require.NotEmpty(t, savedStatuses)
		assert.Equal(t, models.ReportStatusInProgress, savedStatuses[0])
	})

	t.Run("should refuse updates on an expired report", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		expiredDate := time.Now().AddDate(0, -7, 0)
		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress, AssessmentDate: &expiredDate}

		vaptTestCaseRepository.On("Read", testCaseID).Return(baseTestCase(), nil)
		vaptReportRepository.On("Read", reportID).Return(report, nil)

		_, err := service.UpdateTestCase(testCaseID, dtos.UpdateTestCaseRequest{}, models.User{Username: "bob"})

		assert.ErrorIs(t, err, ErrReportExpired)
		vaptTestCaseRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAddTestCases(t *testing.T) {
	t.Run("should be a no-op when all requested templates are already present", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		reportID := uuid.New()
		planID := uuid.New()
		recentDate := time.Now().AddDate(0, -1, 0)
		existing := models.VaptTestCase{Model: models.Model{ID: uuid.New()}, VaptReportID: reportID, TestPlanID: planID}

		vaptReportRepository.On("Read", reportID).Return(models.VaptReport{Model: models.Model{ID: reportID}, AssessmentDate: &recentDate}, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{existing}, nil)
		vaptTestCaseRepository.On("FindByReportIDOrdered", reportID).Return([]models.VaptTestCase{existing}, nil)

		added, testCases, err := service.AddTestCases(reportID, []uuid.UUID{planID}, models.User{Username: "bob"})

		require.NoError(t, err)
		assert.Zero(t, added)
		assert.Len(t, testCases, 1)
		vaptReportRepository.AssertNotCalled(t, "Transaction", mock.Anything)
	})

	t.Run("should only materialize templates missing from the report", func(t *testing.T) {
		service, _, _, testPlanRepository, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		reportID := uuid.New()
		recentDate := time.Now().AddDate(0, -1, 0)
		presentPlan := testPlanWithSeverity("TP-001", models.SeverityHigh)
		missingPlan := testPlanWithSeverity("TP-002", models.SeverityLow)
		existing := models.VaptTestCase{Model: models.Model{ID: uuid.New()}, VaptReportID: reportID, TestPlanID: presentPlan.ID}

		vaptReportRepository.On("Read", reportID).Return(models.VaptReport{Model: models.Model{ID: reportID}, AssessmentDate: &recentDate}, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{existing}, nil)
		testPlanRepository.On("List", []uuid.UUID{missingPlan.ID}).Return([]models.TestPlan{missingPlan}, nil)
		vaptReportRepository.On("Transaction", mock.Anything).Return(runTransaction)

		var createdTestCases []models.VaptTestCase
		vaptTestCaseRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdTestCases = args.Get(1).([]models.VaptTestCase)
		}).Return(nil)

		// recompute inside the transaction
		vaptReportRepository.On("GetByID", mock.Anything, reportID).Return(models.VaptReport{Model: models.Model{ID: reportID}, AssessmentDate: &recentDate}, nil)
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		vaptTestCaseRepository.On("FindByReportIDOrdered", reportID).Return([]models.VaptTestCase{existing}, nil)

		added, _, err := service.AddTestCases(reportID, []uuid.UUID{presentPlan.ID, missingPlan.ID}, models.User{Username: "bob"})

		require.NoError(t, err)
		assert.Equal(t, 1, added)
		require.Len(t, createdTestCases, 1)
		assert.Equal(t, missingPlan.ID, createdTestCases[0].TestPlanID)
	})
}

func TestRecomputeCounts(t *testing.T) {
	service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

	reportID := uuid.New()
	start := time.Now().AddDate(0, 0, -4)
	report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress, AssessmentDate: &start, StartDate: &start}

	open := models.VulnerabilityStatusOpen
	closed := models.VulnerabilityStatusClosed
	critical := models.SeverityCritical

	testCases := []models.VaptTestCase{
		// open finding with a per-finding override wins over the template severity
		{TestPlan: testPlanWithSeverity("TP-001", models.SeverityLow), Severity: &critical, VulnerabilityStatus: &open, Status: models.TestCaseStatusFailed},
		// closed findings pass but never feed the severity counters
		{TestPlan: testPlanWithSeverity("TP-002", models.SeverityHigh), VulnerabilityStatus: &closed, Status: models.TestCaseStatusPassed},
		{TestPlan: testPlanWithSeverity("TP-003", models.SeverityMedium), VulnerabilityStatus: &open, Status: models.TestCaseStatusFailed},
		{TestPlan: testPlanWithSeverity("TP-004", models.SeverityInformational), Status: models.TestCaseStatusNotApplicable},
	}

	vaptReportRepository.On("GetByID", mock.Anything, reportID).Return(report, nil)
	vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return(testCases, nil)
	vaptReportRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.RecomputeCounts(nil, reportID)

	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalTestCases)
	assert.Equal(t, 1, result.PassedTestCases)
	assert.Equal(t, 2, result.FailedTestCases)
	assert.Equal(t, 1, result.NotApplicableTestCases)
	assert.Equal(t, 1, result.CriticalCount)
	assert.Equal(t, 0, result.HighCount)
	assert.Equal(t, 1, result.MediumCount)
	assert.Equal(t, 0, result.LowCount)
	assert.Equal(t, "Critical Risk", result.OverallRisk)
	assert.Equal(t, result.OverallRisk, result.PostureLevel)
	require.NotNil(t, result.EndDate)
	assert.Equal(t, 5, result.TotalDays)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		critical, high, medium, low int
		expected                    string
	}{
		{1, 0, 0, 0, "Critical Risk"},
		{1, 5, 9, 9, "Critical Risk"},
		{0, 3, 0, 0, "High Risk"},
		{0, 2, 0, 0, "Medium Risk"},
		{0, 1, 0, 0, "Medium Risk"},
		{0, 0, 4, 0, "Medium Risk"},
		{0, 0, 3, 0, "Low Risk"},
		{0, 0, 1, 0, "Low Risk"},
		{0, 0, 0, 1, "Low Risk"},
		{0, 0, 0, 0, "Minimal Risk"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyRisk(tt.critical, tt.high, tt.medium, tt.low))
		})
	}
}

func TestUpdateConfig(t *testing.T) {
	reportID := uuid.New()

	t.Run("should trim set fields and leave blank ones untouched", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		recentDate := time.Now().AddDate(0, -1, 0)
		report := models.VaptReport{
			Model:            models.Model{ID: reportID},
			Status:           models.ReportStatusInitialized,
			ReportName:       "original name",
			ExecutiveSummary: "original summary",
			AssessmentDate:   &recentDate,
		}

		vaptReportRepository.On("Read", reportID).Return(report, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		_, err := service.UpdateConfig(reportID, dtos.UpdateReportConfigRequest{
			ReportName:       shared.Ptr("  Q3 VAPT Report  "),
			ExecutiveSummary: shared.Ptr("   "),
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Q3 VAPT Report", saved.ReportName)
		assert.Equal(t, "original summary", saved.ExecutiveSummary)
	})

	t.Run("should apply narrative fields, lists and the assessment timeframe", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		frozen := dateOnly(time.Now().AddDate(0, -1, 0))
		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress, AssessmentDate: &frozen}

		vaptReportRepository.On("Read", reportID).Return(report, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		urls := []string{" https://shop.acme.example ", "", "https://api.acme.example"}
		testers := []string{"Alice Tester", "  Bob Tester  "}
		_, err := service.UpdateConfig(reportID, dtos.UpdateReportConfigRequest{
			Objective:     shared.Ptr("  Assess the webshop perimeter  "),
			Approach:      shared.Ptr("Black-box testing"),
			KeyHighlights: shared.Ptr("Two criticals resolved"),
			AssetType:     shared.Ptr("API"),
			URLs:          &urls,
			Testers:       &testers,
			StartDate:     shared.Ptr("2026-02-03"),
			EndDate:       shared.Ptr("2026-02-06"),
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Assess the webshop perimeter", saved.Objective)
		assert.Equal(t, "Black-box testing", saved.Approach)
		assert.Equal(t, "Two criticals resolved", saved.KeyHighlights)
		assert.Equal(t, "API", saved.AssetType)
		assert.Equal(t, []string{"https://shop.acme.example", "https://api.acme.example"}, []string(saved.URLs))
		assert.Equal(t, []string{"Alice Tester", "Bob Tester"}, []string(saved.TesterNames))
		// the timeframe is not subject to the assessment date freeze
		require.NotNil(t, saved.StartDate)
		require.NotNil(t, saved.EndDate)
		assert.Equal(t, "2026-02-03", saved.StartDate.Format("2006-01-02"))
		assert.Equal(t, "2026-02-06", saved.EndDate.Format("2006-01-02"))
		// while the frozen assessment date stays put
		assert.True(t, saved.AssessmentDate.Equal(frozen))
	})

	t.Run("should skip an unparseable assessment date", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		recentDate := dateOnly(time.Now().AddDate(0, -1, 0))
		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInitialized, AssessmentDate: &recentDate}

		vaptReportRepository.On("Read", reportID).Return(report, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		_, err := service.UpdateConfig(reportID, dtos.UpdateReportConfigRequest{AssessmentDate: shared.Ptr("not-a-date")})

		require.NoError(t, err)
		assert.True(t, saved.AssessmentDate.Equal(recentDate))
	})

	t.Run("should freeze a set assessment date once testing has started", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		frozen := dateOnly(time.Now().AddDate(0, -1, 0))
		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress, AssessmentDate: &frozen}

		vaptReportRepository.On("Read", reportID).Return(report, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		_, err := service.UpdateConfig(reportID, dtos.UpdateReportConfigRequest{AssessmentDate: shared.Ptr("2020-01-01")})

		require.NoError(t, err)
		assert.True(t, saved.AssessmentDate.Equal(frozen))
	})

	t.Run("should still accept a date while the report is initialized", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, _, _ := newReportServiceForTest(t)

		recentDate := dateOnly(time.Now().AddDate(0, -1, 0))
		report := models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInitialized, AssessmentDate: &recentDate}

		vaptReportRepository.On("Read", reportID).Return(report, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)

		newDate := dateOnly(time.Now().AddDate(0, 0, -2))
		_, err := service.UpdateConfig(reportID, dtos.UpdateReportConfigRequest{AssessmentDate: shared.Ptr(newDate.Format("2006-01-02"))})

		require.NoError(t, err)
		assert.Equal(t, newDate.Format("2006-01-02"), saved.AssessmentDate.Format("2006-01-02"))
	})
}

func TestGenerate(t *testing.T) {
	reportID := uuid.New()

	t.Run("should aggregate every incomplete test case into one validation error", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, _ := newReportServiceForTest(t)

		vaptReportRepository.On("Read", reportID).Return(models.VaptReport{Model: models.Model{ID: reportID}}, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{
			{VulnerabilityName: "SQL Injection", Description: "", TestProcedure: "procedure"},
			{VulnerabilityName: "Stored XSS", Description: "description", TestProcedure: "procedure"},
			{VulnerabilityName: "Weak TLS Configuration", Description: "description", TestProcedure: "  "},
		}, nil)

		_, err := service.Generate(reportID)

		var validationErr *GenerateValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"SQL Injection", "Weak TLS Configuration"}, validationErr.MissingTestCases)
		vaptReportRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should mark the report completed and write all artifacts", func(t *testing.T) {
		service, _, _, _, vaptReportRepository, vaptTestCaseRepository, artifactService := newReportServiceForTest(t)

		vaptReportRepository.On("Read", reportID).Return(models.VaptReport{Model: models.Model{ID: reportID}, Status: models.ReportStatusInProgress}, nil)
		vaptTestCaseRepository.On("FindByReportID", mock.Anything, reportID).Return([]models.VaptTestCase{
			{VulnerabilityName: "SQL Injection", Description: "description", TestProcedure: "procedure"},
		}, nil)

		var saved *models.VaptReport
		vaptReportRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.VaptReport)
		}).Return(nil)
		artifactService.On("WriteArtifacts", reportID).Return(nil)

		report, err := service.Generate(reportID)

		require.NoError(t, err)
		assert.Equal(t, models.ReportStatusCompleted, report.Status)
		assert.Equal(t, models.ReportStatusCompleted, saved.Status)
	})
}

func TestIsExpired(t *testing.T) {
	service, _, _, _, _, _, _ := newReportServiceForTest(t)

	assessmentDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	report := models.VaptReport{AssessmentDate: &assessmentDate}

	t.Run("should not expire exactly at six months", func(t *testing.T) {
		assert.False(t, service.IsExpired(report, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("should not expire during the boundary day", func(t *testing.T) {
		assert.False(t, service.IsExpired(report, time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)))
		assert.False(t, service.IsExpired(report, time.Date(2026, 7, 15, 23, 59, 59, 0, time.UTC)))
	})

	t.Run("should expire on the first day after the boundary", func(t *testing.T) {
		assert.True(t, service.IsExpired(report, time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("should ignore the time of day on the assessment date itself", func(t *testing.T) {
		noonAssessment := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
		noonReport := models.VaptReport{AssessmentDate: &noonAssessment}
		assert.False(t, service.IsExpired(noonReport, time.Date(2026, 7, 15, 23, 0, 0, 0, time.UTC)))
		assert.True(t, service.IsExpired(noonReport, time.Date(2026, 7, 16, 1, 0, 0, 0, time.UTC)))
	})

	t.Run("should never expire without an assessment date", func(t *testing.T) {
		assert.False(t, service.IsExpired(models.VaptReport{}, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestDaysBetweenInclusive(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, daysBetweenInclusive(start, start))
	assert.Equal(t, 3, daysBetweenInclusive(start, start.AddDate(0, 0, 2)))
	// a clock skew backwards never yields less than one day
	assert.Equal(t, 1, daysBetweenInclusive(start, start.AddDate(0, 0, -2)))
}
