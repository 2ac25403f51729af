// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
)

type UserRepository interface {
	Read(id uuid.UUID) (models.User, error)
	FindByUsername(username string) (models.User, error)
	Count() (int64, error)
	Create(tx DB, user *models.User) error
	Save(tx DB, user *models.User) error
}

type ClientRepository interface {
	All() ([]models.Client, error)
	Read(id uuid.UUID) (models.Client, error)
	Count() (int64, error)
	Create(tx DB, client *models.Client) error
	Save(tx DB, client *models.Client) error
	Delete(tx DB, id uuid.UUID) error
}

type ApplicationRepository interface {
	All() ([]models.Application, error)
	Read(id uuid.UUID) (models.Application, error)
	FindByClientID(clientID uuid.UUID) ([]models.Application, error)
	Count() (int64, error)
	Create(tx DB, application *models.Application) error
	Save(tx DB, application *models.Application) error
	Delete(tx DB, id uuid.UUID) error
}

type TestPlanRepository interface {
	All() ([]models.TestPlan, error)
	Read(id uuid.UUID) (models.TestPlan, error)
	List(ids []uuid.UUID) ([]models.TestPlan, error)
	Search(query string) ([]models.TestPlan, error)
	MaxTestCaseNumber() (int, error)
	Count() (int64, error)
	Create(tx DB, testPlan *models.TestPlan) error
	CreateBatch(tx DB, testPlans []models.TestPlan) error
	Save(tx DB, testPlan *models.TestPlan) error
	Delete(tx DB, id uuid.UUID) error
}

type DefectRepository interface {
	Read(id uuid.UUID) (models.Defect, error)
	FindByDefectID(code string) (models.Defect, error)
	All() ([]models.Defect, error)
	FindByClientID(clientID uuid.UUID) ([]models.Defect, error)
	SearchByClient(clientID uuid.UUID, query string) ([]models.Defect, error)
	MaxDefectNumber() (int, error)
	Count() (int64, error)
	CountOpen() (int64, error)
	CountClosed() (int64, error)
	CountsByApplication() ([]dtos.NameCount, error)
	CountsByClient(limit int) ([]dtos.NameCount, error)
	Create(tx DB, defect *models.Defect) error
	Save(tx DB, defect *models.Defect) error
	Delete(tx DB, id uuid.UUID) error
	CreateHistory(tx DB, history *models.DefectHistory) error
	HistoryForDefect(defectID uuid.UUID) ([]models.DefectHistory, error)
	Transaction(f func(tx DB) error) error
}

type VaptReportRepository interface {
	Read(id uuid.UUID) (models.VaptReport, error)
	ReadWithTestCases(id uuid.UUID) (models.VaptReport, error)
	GetByID(tx DB, id uuid.UUID) (models.VaptReport, error)
	FindByClientAndApplication(clientID, applicationID uuid.UUID) (models.VaptReport, error)
	TopApplicationsByPassedCount(limit int) ([]dtos.ApplicationPassCount, error)
	Create(tx DB, report *models.VaptReport) error
	Save(tx DB, report *models.VaptReport) error
	Transaction(f func(tx DB) error) error
	GetDB(tx DB) DB
}

type VaptTestCaseRepository interface {
	Read(id uuid.UUID) (models.VaptTestCase, error)
	FindByReportID(tx DB, reportID uuid.UUID) ([]models.VaptTestCase, error)
	// FindByReportIDOrdered returns the report's test cases ordered by
	// effective severity descending, vulnerability name ascending.
	FindByReportIDOrdered(reportID uuid.UUID) ([]models.VaptTestCase, error)
	CreateBatch(tx DB, testCases []models.VaptTestCase) error
	Save(tx DB, testCase *models.VaptTestCase) error
	CountByVulnerabilityStatus(status models.VulnerabilityStatus) (int64, error)
	CountByEffectiveSeverity(severity models.Severity) (int64, error)
	MonthlyCounts(since time.Time) ([]dtos.MonthlyCount, error)
	GetDB(tx DB) DB
}

type VaptPocRepository interface {
	Read(id uuid.UUID) (models.VaptPoc, error)
	FindByTestCaseID(testCaseID uuid.UUID) ([]models.VaptPoc, error)
	Create(tx DB, poc *models.VaptPoc) error
	Save(tx DB, poc *models.VaptPoc) error
	Delete(tx DB, id uuid.UUID) error
}

type VaptReportService interface {
	// GetOrCreate is idempotent on the (client, application) pair. The
	// returned bool reports whether the report already existed.
	GetOrCreate(clientID, applicationID uuid.UUID, selectedTestPlanIDs []uuid.UUID, actor models.User) (models.VaptReport, bool, error)
	AddTestCases(reportID uuid.UUID, testPlanIDs []uuid.UUID, actor models.User) (int, []models.VaptTestCase, error)
	UpdateTestCase(testCaseID uuid.UUID, update dtos.UpdateTestCaseRequest, actor models.User) (models.VaptTestCase, error)
	RecomputeCounts(tx DB, reportID uuid.UUID) (models.VaptReport, error)
	UpdateConfig(reportID uuid.UUID, update dtos.UpdateReportConfigRequest) (models.VaptReport, error)
	Generate(reportID uuid.UUID) (models.VaptReport, error)
	Get(reportID uuid.UUID) (models.VaptReport, error)
	IsExpired(report models.VaptReport, now time.Time) bool
	OrderedTestCases(reportID uuid.UUID) ([]models.VaptTestCase, error)
}

type EvidenceService interface {
	AddPoc(testCaseID uuid.UUID, upload dtos.PocUpload, actor models.User) (models.VaptPoc, error)
	GetPoc(pocID uuid.UUID) (models.VaptPoc, error)
	UpdatePocDescription(pocID uuid.UUID, description string) (models.VaptPoc, error)
	DeletePoc(pocID uuid.UUID) error
	PocFilePath(poc models.VaptPoc) string
}

type ArtifactService interface {
	RenderHTML(reportID uuid.UUID) ([]byte, error)
	RenderDocx(reportID uuid.UUID) ([]byte, error)
	RenderPdf(reportID uuid.UUID) ([]byte, error)
	WriteArtifacts(reportID uuid.UUID) error
}

type TestPlanService interface {
	All() ([]models.TestPlan, error)
	Search(query string) ([]models.TestPlan, error)
	Get(id uuid.UUID) (models.TestPlan, error)
	Create(request dtos.TestPlanRequest) (models.TestPlan, error)
	Update(id uuid.UUID, request dtos.TestPlanRequest) (models.TestPlan, error)
	Delete(id uuid.UUID) error
	NextTestCaseID() (string, error)
}

type DefectService interface {
	Create(request dtos.DefectRequest, actor models.User) (models.Defect, error)
	Update(id uuid.UUID, request dtos.DefectRequest, actor models.User) (models.Defect, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (models.Defect, error)
	GetByDefectID(code string) (models.Defect, error)
	All() ([]models.Defect, error)
	ByClient(clientID uuid.UUID) ([]models.Defect, error)
	SearchByClient(clientID uuid.UUID, query string) ([]models.Defect, error)
	History(defectID uuid.UUID) ([]models.DefectHistory, error)
}

type DashboardService interface {
	Stats() (dtos.DashboardStats, error)
	DefectsByApplication() ([]dtos.NameCount, error)
	MonthlyTrends() ([]dtos.MonthlyCount, error)
	ClientsWithMostDefects() ([]dtos.NameCount, error)
}

type AuthService interface {
	Login(username, password string) (dtos.LoginResponse, error)
	VerifyToken(token string) (models.User, error)
	HashPassword(password string) (string, error)
}
