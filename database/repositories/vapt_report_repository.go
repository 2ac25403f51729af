// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type vaptReportRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.VaptReport]
}

func NewVaptReportRepository(db shared.DB) *vaptReportRepository {
	return &vaptReportRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.VaptReport](db),
	}
}

func (repository *vaptReportRepository) Read(id uuid.UUID) (models.VaptReport, error) {
	var report models.VaptReport
	err := repository.db.
		Preload("Client").
		Preload("Application").
		First(&report, "id = ?", id).Error
	return report, err
}

func (repository *vaptReportRepository) ReadWithTestCases(id uuid.UUID) (models.VaptReport, error) {
	var report models.VaptReport
	err := repository.db.
		Preload("Client").
		Preload("Application").
		Preload("TestCases.TestPlan").
		Preload("TestCases.Pocs").
		First(&report, "id = ?", id).Error
	return report, err
}

func (repository *vaptReportRepository) GetByID(tx shared.DB, id uuid.UUID) (models.VaptReport, error) {
	var report models.VaptReport
	err := repository.GetDB(tx).First(&report, "id = ?", id).Error
	return report, err
}

// TopApplicationsByPassedCount feeds the cross-report comparison chart.
func (repository *vaptReportRepository) TopApplicationsByPassedCount(limit int) ([]dtos.ApplicationPassCount, error) {
	var results []dtos.ApplicationPassCount
	err := repository.db.Model(&models.VaptReport{}).
		Select("applications.name AS application_name, vapt_reports.passed_test_cases AS passed_count").
		Joins("JOIN applications ON applications.id = vapt_reports.application_id").
		Where("vapt_reports.passed_test_cases > 0").
		Order("vapt_reports.passed_test_cases DESC, applications.name ASC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (repository *vaptReportRepository) FindByClientAndApplication(clientID, applicationID uuid.UUID) (models.VaptReport, error) {
	var report models.VaptReport
	err := repository.db.
		Preload("Client").
		Preload("Application").
		First(&report, "client_id = ? AND application_id = ?", clientID, applicationID).Error
	return report, err
}
