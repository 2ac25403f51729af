// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/monitoring"
	"github.com/rootlockdefense/defectrix/shared"
	"gorm.io/gorm"
)

const reviewedByDefault = "Security Team Lead"

const recommendationsDefault = "Remediate all open findings in order of severity, starting with critical and high risk items. " +
	"Re-test remediated findings to confirm the fix before closing them."

const nextStepsDefault = "Schedule a re-assessment after remediation is complete. " +
	"Integrate the listed test cases into the regular release verification cycle."

// riskRules is evaluated top-down, first match wins.
var riskRules = []struct {
	label   string
	matches func(critical, high, medium, low int) bool
}{
	{"Critical Risk", func(critical, high, medium, low int) bool { return critical > 0 }},
	{"High Risk", func(critical, high, medium, low int) bool { return high > 2 }},
	{"Medium Risk", func(critical, high, medium, low int) bool { return high > 0 || medium > 3 }},
	{"Low Risk", func(critical, high, medium, low int) bool { return medium > 0 || low > 0 }},
}

func classifyRisk(critical, high, medium, low int) string {
	for _, rule := range riskRules {
		if rule.matches(critical, high, medium, low) {
			return rule.label
		}
	}
	return "Minimal Risk"
}

type vaptReportService struct {
	clientRepository       shared.ClientRepository
	applicationRepository  shared.ApplicationRepository
	testPlanRepository     shared.TestPlanRepository
	vaptReportRepository   shared.VaptReportRepository
	vaptTestCaseRepository shared.VaptTestCaseRepository
	artifactService        shared.ArtifactService

	now func() time.Time
}

func NewVaptReportService(
	clientRepository shared.ClientRepository,
	applicationRepository shared.ApplicationRepository,
	testPlanRepository shared.TestPlanRepository,
	vaptReportRepository shared.VaptReportRepository,
	vaptTestCaseRepository shared.VaptTestCaseRepository,
	artifactService shared.ArtifactService,
) *vaptReportService {
	return &vaptReportService{
		clientRepository:       clientRepository,
		applicationRepository:  applicationRepository,
		testPlanRepository:     testPlanRepository,
		vaptReportRepository:   vaptReportRepository,
		vaptTestCaseRepository: vaptTestCaseRepository,
		artifactService:        artifactService,
		now:                    time.Now,
	}
}

func actorDisplayName(actor models.User) string {
	if actor.FullName != "" {
		return actor.FullName
	}
	return actor.Username
}

func (service *vaptReportService) Get(reportID uuid.UUID) (models.VaptReport, error) {
	return service.vaptReportRepository.Read(reportID)
}

// GetOrCreate returns the existing report for the pair unchanged, ignoring
// the selected test plans. Otherwise it creates the report with its default
// metadata block and one test case per selected template in one transaction.
func (service *vaptReportService) GetOrCreate(clientID, applicationID uuid.UUID, selectedTestPlanIDs []uuid.UUID, actor models.User) (models.VaptReport, bool, error) {
	client, err := service.clientRepository.Read(clientID)
	if err != nil {
		return models.VaptReport{}, false, err
	}
	application, err := service.applicationRepository.Read(applicationID)
	if err != nil {
		return models.VaptReport{}, false, err
	}

	existing, err := service.vaptReportRepository.FindByClientAndApplication(clientID, applicationID)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.VaptReport{}, false, err
	}

	testPlans, err := service.resolveTestPlans(selectedTestPlanIDs)
	if err != nil {
		return models.VaptReport{}, false, err
	}

	report := service.newReportWithDefaults(client, application, actor)

	err = service.vaptReportRepository.Transaction(func(tx shared.DB) error {
		if err := service.vaptReportRepository.Create(tx, &report); err != nil {
			return err
		}

		testCases := make([]models.VaptTestCase, 0, len(testPlans))
		for _, plan := range testPlans {
			testCases = append(testCases, newTestCaseFromPlan(report.ID, plan, actor))
		}
		// counters stay zeroed until the first test-case mutation
		return service.vaptTestCaseRepository.CreateBatch(tx, testCases)
	})
	if err != nil {
		// a concurrent caller won the race on the (client, application)
		// unique index. return its fully materialized report.
		if database.IsDuplicateKeyError(err) {
			existing, readErr := service.vaptReportRepository.FindByClientAndApplication(clientID, applicationID)
			if readErr != nil {
				return models.VaptReport{}, false, readErr
			}
			return existing, true, nil
		}
		return models.VaptReport{}, false, err
	}

	return report, false, nil
}

func (service *vaptReportService) newReportWithDefaults(client models.Client, application models.Application, actor models.User) models.VaptReport {
	today := dateOnly(service.now())
	urls := pq.StringArray{}
	if application.URL != "" {
		urls = append(urls, application.URL)
	}

	return models.VaptReport{
		ClientID:       client.ID,
		ApplicationID:  application.ID,
		ReportName:     fmt.Sprintf("VAPT Report - %s - %s", client.Name, application.Name),
		Status:         models.ReportStatusInitialized,
		CreatedBy:      actor.Username,
		AssessmentDate: &today,
		StartDate:      &today,
		Version:        "1.0." + today.Format("20060102"),
		PreparedBy:     actorDisplayName(actor),
		ReviewedBy:     reviewedByDefault,
		SubmittedTo:    client.Name,
		Objective: fmt.Sprintf("Identify and assess security vulnerabilities in the %s application deployed in the %s environment.",
			application.Name, application.Environment),
		Scope: fmt.Sprintf("Vulnerability assessment and penetration testing of %s (%s environment).",
			application.Name, application.Environment),
		Approach: "Grey-box testing combining automated scanning with manual verification " +
			"of every finding against the agreed test plan.",
		AssetType:       "Web Application",
		URLs:            urls,
		TesterNames:     pq.StringArray{actorDisplayName(actor)},
		OverallRisk:     "Minimal Risk",
		PostureLevel:    "Minimal Risk",
		Recommendations: recommendationsDefault,
		NextSteps:       nextStepsDefault,
	}
}

// resolveTestPlans loads the requested templates and fails with an
// aggregated not-found error when any id cannot be resolved.
func (service *vaptReportService) resolveTestPlans(ids []uuid.UUID) ([]models.TestPlan, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	testPlans, err := service.testPlanRepository.List(unique)
	if err != nil {
		return nil, err
	}
	if len(testPlans) != len(unique) {
		found := make(map[uuid.UUID]struct{}, len(testPlans))
		for _, plan := range testPlans {
			found[plan.ID] = struct{}{}
		}
		missing := make([]string, 0)
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				missing = append(missing, id.String())
			}
		}
		return nil, errors.Wrapf(gorm.ErrRecordNotFound, "test plans not found: %s", strings.Join(missing, ", "))
	}
	return testPlans, nil
}

func newTestCaseFromPlan(reportID uuid.UUID, plan models.TestPlan, actor models.User) models.VaptTestCase {
	open := models.VulnerabilityStatusOpen
	return models.VaptTestCase{
		VaptReportID:        reportID,
		TestPlanID:          plan.ID,
		TestCaseCode:        plan.TestCaseID,
		VulnerabilityName:   plan.VulnerabilityName,
		Description:         plan.Description,
		TestProcedure:       plan.TestProcedure,
		Remediation:         plan.Remediation,
		Reference:           plan.Reference,
		VulnerabilityStatus: &open,
		Status:              models.StatusForVulnerabilityStatus(&open),
		UpdatedBy:           actor.Username,
	}
}

// AddTestCases materializes test cases only for templates not yet present on
// the report. Requesting only already-present templates is a valid no-op.
func (service *vaptReportService) AddTestCases(reportID uuid.UUID, testPlanIDs []uuid.UUID, actor models.User) (int, []models.VaptTestCase, error) {
	report, err := service.vaptReportRepository.Read(reportID)
	if err != nil {
		return 0, nil, err
	}
	if service.IsExpired(report, service.now()) {
		return 0, nil, ErrReportExpired
	}

	existing, err := service.vaptTestCaseRepository.FindByReportID(nil, reportID)
	if err != nil {
		return 0, nil, err
	}
	present := make(map[uuid.UUID]struct{}, len(existing))
	for _, testCase := range existing {
		present[testCase.TestPlanID] = struct{}{}
	}

	missing := make([]uuid.UUID, 0, len(testPlanIDs))
	for _, id := range testPlanIDs {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}

	added := 0
	if len(missing) > 0 {
		testPlans, err := service.resolveTestPlans(missing)
		if err != nil {
			return 0, nil, err
		}

		err = service.vaptReportRepository.Transaction(func(tx shared.DB) error {
			testCases := make([]models.VaptTestCase, 0, len(testPlans))
			for _, plan := range testPlans {
				testCases = append(testCases, newTestCaseFromPlan(reportID, plan, actor))
			}
			if err := service.vaptTestCaseRepository.CreateBatch(tx, testCases); err != nil {
				return err
			}
			_, err := service.RecomputeCounts(tx, reportID)
			return err
		})
		if err != nil {
			return 0, nil, err
		}
		added = len(testPlans)
	}

	testCases, err := service.vaptTestCaseRepository.FindByReportIDOrdered(reportID)
	if err != nil {
		return 0, nil, err
	}
	return added, testCases, nil
}

// UpdateTestCase applies a tester's update. Description and test procedure
// are always re-copied from the template, the workflow status is derived
// from the vulnerability status, and the parent report's counters are
// recomputed in the same transaction.
func (service *vaptReportService) UpdateTestCase(testCaseID uuid.UUID, update dtos.UpdateTestCaseRequest, actor models.User) (models.VaptTestCase, error) {
	testCase, err := service.vaptTestCaseRepository.Read(testCaseID)
	if err != nil {
		return models.VaptTestCase{}, err
	}

	report, err := service.vaptReportRepository.Read(testCase.VaptReportID)
	if err != nil {
		return models.VaptTestCase{}, err
	}
	if service.IsExpired(report, service.now()) {
		return models.VaptTestCase{}, ErrReportExpired
	}

	if update.VulnerabilityStatus != nil {
		status := models.VulnerabilityStatus(*update.VulnerabilityStatus)
		testCase.VulnerabilityStatus = &status
	}
	if update.Severity != nil {
		severity := models.Severity(*update.Severity)
		testCase.Severity = &severity
	}
	if update.FindingDetails != nil {
		testCase.FindingDetails = *update.FindingDetails
	}
	if update.TesterComments != nil {
		testCase.TesterComments = *update.TesterComments
	}
	if update.Remediation != nil {
		testCase.Remediation = *update.Remediation
	}
	if update.Reference != nil {
		testCase.Reference = *update.Reference
	}

	// the template stays the system of record for these two fields.
	// caller-submitted values are discarded.
	testCase.Description = testCase.TestPlan.Description
	testCase.TestProcedure = testCase.TestPlan.TestProcedure

	testCase.Status = models.StatusForVulnerabilityStatus(testCase.VulnerabilityStatus)
	testCase.UpdatedBy = actor.Username

	err = service.vaptReportRepository.Transaction(func(tx shared.DB) error {
		if err := service.vaptTestCaseRepository.Save(tx, &testCase); err != nil {
			return err
		}

		// the first mutation moves an initialized report into progress
		current, err := service.vaptReportRepository.GetByID(tx, testCase.VaptReportID)
		if err != nil {
			return err
		}
		if current.Status == models.ReportStatusInitialized {
			current.Status = models.ReportStatusInProgress
			if err := service.vaptReportRepository.Save(tx, &current); err != nil {
				return err
			}
		}

		_, err = service.RecomputeCounts(tx, testCase.VaptReportID)
		return err
	})
	if err != nil {
		return models.VaptTestCase{}, err
	}

	return service.vaptTestCaseRepository.Read(testCaseID)
}

// RecomputeCounts rebuilds the report's counters from its test cases. Only
// open vulnerabilities feed the severity counters.
func (service *vaptReportService) RecomputeCounts(tx shared.DB, reportID uuid.UUID) (models.VaptReport, error) {
	report, err := service.vaptReportRepository.GetByID(tx, reportID)
	if err != nil {
		return models.VaptReport{}, err
	}

	testCases, err := service.vaptTestCaseRepository.FindByReportID(tx, reportID)
	if err != nil {
		return models.VaptReport{}, err
	}

	report.TotalTestCases = len(testCases)
	report.PassedTestCases = 0
	report.FailedTestCases = 0
	report.NotApplicableTestCases = 0
	report.CriticalCount = 0
	report.HighCount = 0
	report.MediumCount = 0
	report.LowCount = 0
	report.InformationalCount = 0

	for _, testCase := range testCases {
		switch testCase.Status {
		case models.TestCaseStatusPassed:
			report.PassedTestCases++
		case models.TestCaseStatusFailed:
			report.FailedTestCases++
		case models.TestCaseStatusNotApplicable:
			report.NotApplicableTestCases++
		}

		if testCase.VulnerabilityStatus == nil || *testCase.VulnerabilityStatus != models.VulnerabilityStatusOpen {
			continue
		}
		switch testCase.EffectiveSeverity() {
		case models.SeverityCritical:
			report.CriticalCount++
		case models.SeverityHigh:
			report.HighCount++
		case models.SeverityMedium:
			report.MediumCount++
		case models.SeverityLow:
			report.LowCount++
		case models.SeverityInformational:
			report.InformationalCount++
		}
	}

	report.OverallRisk = classifyRisk(report.CriticalCount, report.HighCount, report.MediumCount, report.LowCount)
	report.PostureLevel = report.OverallRisk

	today := dateOnly(service.now())
	report.EndDate = &today
	if report.StartDate != nil {
		report.TotalDays = daysBetweenInclusive(*report.StartDate, today)
	}

	if err := service.vaptReportRepository.Save(tx, &report); err != nil {
		return models.VaptReport{}, err
	}
	return report, nil
}

// UpdateConfig applies a partial metadata update. Blank fields are ignored,
// strings are trimmed, unparseable dates are logged and skipped, and a set
// assessment date is frozen once testing has started.
func (service *vaptReportService) UpdateConfig(reportID uuid.UUID, update dtos.UpdateReportConfigRequest) (models.VaptReport, error) {
	report, err := service.vaptReportRepository.Read(reportID)
	if err != nil {
		return models.VaptReport{}, err
	}
	if service.IsExpired(report, service.now()) {
		return models.VaptReport{}, ErrReportExpired
	}

	applyTrimmed := func(target *string, value *string) {
		if value == nil {
			return
		}
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" {
			return
		}
		*target = trimmed
	}

	applyTrimmed(&report.ReportName, update.ReportName)
	applyTrimmed(&report.Version, update.Version)
	applyTrimmed(&report.PreparedBy, update.PreparedBy)
	applyTrimmed(&report.ReviewedBy, update.ReviewedBy)
	applyTrimmed(&report.SubmittedTo, update.SubmittedTo)
	applyTrimmed(&report.ApprovedBy, update.ApprovedBy)
	applyTrimmed(&report.Objective, update.Objective)
	applyTrimmed(&report.Approach, update.Approach)
	applyTrimmed(&report.KeyHighlights, update.KeyHighlights)
	applyTrimmed(&report.AssetType, update.AssetType)
	applyTrimmed(&report.ExecutiveSummary, update.ExecutiveSummary)
	applyTrimmed(&report.Scope, update.Scope)
	applyTrimmed(&report.Methodology, update.Methodology)
	applyTrimmed(&report.ToolsUsed, update.ToolsUsed)
	applyTrimmed(&report.Conclusion, update.Conclusion)
	applyTrimmed(&report.Recommendations, update.Recommendations)
	applyTrimmed(&report.NextSteps, update.NextSteps)

	if update.URLs != nil {
		report.URLs = trimmedList(*update.URLs)
	}
	if update.Testers != nil {
		report.TesterNames = trimmedList(*update.Testers)
	}

	if update.AssessmentDate != nil && strings.TrimSpace(*update.AssessmentDate) != "" {
		service.applyAssessmentDate(&report, strings.TrimSpace(*update.AssessmentDate))
	}
	// the assessment timeframe is never frozen, unlike the assessment date
	applyDate(&report.StartDate, update.StartDate, "startDate")
	applyDate(&report.EndDate, update.EndDate, "endDate")

	if err := service.vaptReportRepository.Save(nil, &report); err != nil {
		return models.VaptReport{}, err
	}
	return report, nil
}

func (service *vaptReportService) applyAssessmentDate(report *models.VaptReport, value string) {
	// frozen once set and testing has started. silently ignored, not an error.
	if report.AssessmentDate != nil &&
		(report.Status == models.ReportStatusInProgress || report.Status == models.ReportStatusCompleted) {
		return
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		slog.Warn("skipping unparseable assessment date", "value", value, "err", err)
		return
	}
	report.AssessmentDate = &parsed
}

// applyDate parses an optional yyyy-mm-dd field, logging and skipping
// unparseable values like the assessment date path does.
func applyDate(target **time.Time, value *string, field string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		slog.Warn("skipping unparseable date", "field", field, "value", *value, "err", err)
		return
	}
	*target = &parsed
}

func trimmedList(values []string) pq.StringArray {
	trimmed := make(pq.StringArray, 0, len(values))
	for _, value := range values {
		if v := strings.TrimSpace(value); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return trimmed
}

// Generate validates every test case carries a description and a test
// procedure, marks the report completed and renders all artifact formats.
// A failure in one format does not prevent the others.
func (service *vaptReportService) Generate(reportID uuid.UUID) (models.VaptReport, error) {
	report, err := service.vaptReportRepository.Read(reportID)
	if err != nil {
		return models.VaptReport{}, err
	}

	testCases, err := service.vaptTestCaseRepository.FindByReportID(nil, reportID)
	if err != nil {
		return models.VaptReport{}, err
	}

	missing := make([]string, 0)
	for _, testCase := range testCases {
		if strings.TrimSpace(testCase.Description) == "" || strings.TrimSpace(testCase.TestProcedure) == "" {
			missing = append(missing, testCase.VulnerabilityName)
		}
	}
	if len(missing) > 0 {
		return models.VaptReport{}, &GenerateValidationError{MissingTestCases: missing}
	}

	report.Status = models.ReportStatusCompleted
	if err := service.vaptReportRepository.Save(nil, &report); err != nil {
		return models.VaptReport{}, err
	}

	if err := service.artifactService.WriteArtifacts(reportID); err != nil {
		// per-format failures are already isolated and logged inside the
		// artifact service. anything surfacing here is unexpected.
		monitoring.Alert("writing report artifacts failed", err)
	}
	monitoring.ReportGenerationsTotal.Inc()

	return report, nil
}

// IsExpired reports whether today is strictly after the assessment date plus
// six months. The boundary day itself is not expired; the time of day never
// matters. Reports without an assessment date never expire.
func (service *vaptReportService) IsExpired(report models.VaptReport, now time.Time) bool {
	if report.AssessmentDate == nil {
		return false
	}
	expiry := dateOnly(*report.AssessmentDate).AddDate(0, 6, 0)
	return dateOnly(now).After(expiry)
}

func (service *vaptReportService) OrderedTestCases(reportID uuid.UUID) ([]models.VaptTestCase, error) {
	if _, err := service.vaptReportRepository.Read(reportID); err != nil {
		return nil, err
	}
	return service.vaptTestCaseRepository.FindByReportIDOrdered(reportID)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetweenInclusive(start, end time.Time) int {
	days := int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
