// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

// effective severity is the per-finding override falling back to the
// template severity. keep in sync with models.Severity ranks.
const effectiveSeverityRank = `CASE COALESCE(NULLIF(vapt_test_cases.severity, ''), test_plans.severity)
	WHEN 'critical' THEN 5
	WHEN 'high' THEN 4
	WHEN 'medium' THEN 3
	WHEN 'low' THEN 2
	WHEN 'informational' THEN 1
	ELSE 0 END`

type vaptTestCaseRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.VaptTestCase]
}

func NewVaptTestCaseRepository(db shared.DB) *vaptTestCaseRepository {
	return &vaptTestCaseRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.VaptTestCase](db),
	}
}

func (repository *vaptTestCaseRepository) Read(id uuid.UUID) (models.VaptTestCase, error) {
	var testCase models.VaptTestCase
	err := repository.db.
		Preload("TestPlan").
		Preload("Pocs").
		First(&testCase, "id = ?", id).Error
	return testCase, err
}

func (repository *vaptTestCaseRepository) FindByReportID(tx shared.DB, reportID uuid.UUID) ([]models.VaptTestCase, error) {
	var testCases []models.VaptTestCase
	err := repository.GetDB(tx).
		Preload("TestPlan").
		Where("vapt_report_id = ?", reportID).
		Find(&testCases).Error
	return testCases, err
}

func (repository *vaptTestCaseRepository) CountByVulnerabilityStatus(status models.VulnerabilityStatus) (int64, error) {
	var count int64
	err := repository.db.Model(&models.VaptTestCase{}).
		Where("vulnerability_status = ?", status).
		Count(&count).Error
	return count, err
}

// CountByEffectiveSeverity counts findings by the per-finding severity
// override falling back to the template severity.
func (repository *vaptTestCaseRepository) CountByEffectiveSeverity(severity models.Severity) (int64, error) {
	var count int64
	err := repository.db.Model(&models.VaptTestCase{}).
		Joins("JOIN test_plans ON test_plans.id = vapt_test_cases.test_plan_id").
		Where("COALESCE(NULLIF(vapt_test_cases.severity, ''), test_plans.severity) = ?", severity).
		Count(&count).Error
	return count, err
}

// MonthlyCounts buckets open and closed findings created since the given
// time by yyyy-mm month.
func (repository *vaptTestCaseRepository) MonthlyCounts(since time.Time) ([]dtos.MonthlyCount, error) {
	var results []dtos.MonthlyCount
	err := repository.db.Model(&models.VaptTestCase{}).
		Select(`to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count`).
		Where("created_at >= ? AND vulnerability_status IN ?", since,
			[]models.VulnerabilityStatus{models.VulnerabilityStatusOpen, models.VulnerabilityStatusClosed}).
		Group("month").
		Order("month ASC").
		Scan(&results).Error
	return results, err
}

func (repository *vaptTestCaseRepository) FindByReportIDOrdered(reportID uuid.UUID) ([]models.VaptTestCase, error) {
	var testCases []models.VaptTestCase
	err := repository.db.
		Preload("TestPlan").
		Preload("Pocs").
		Joins("JOIN test_plans ON test_plans.id = vapt_test_cases.test_plan_id").
		Where("vapt_test_cases.vapt_report_id = ?", reportID).
		Order(effectiveSeverityRank + " DESC, vapt_test_cases.vulnerability_name ASC").
		Find(&testCases).Error
	return testCases, err
}
