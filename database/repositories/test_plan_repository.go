// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/shared"
)

type testPlanRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.TestPlan]
}

func NewTestPlanRepository(db shared.DB) *testPlanRepository {
	return &testPlanRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.TestPlan](db),
	}
}

func (repository *testPlanRepository) All() ([]models.TestPlan, error) {
	var testPlans []models.TestPlan
	err := repository.db.Order("test_case_id ASC").Find(&testPlans).Error
	return testPlans, err
}

func (repository *testPlanRepository) Search(query string) ([]models.TestPlan, error) {
	var testPlans []models.TestPlan
	pattern := "%" + query + "%"
	err := repository.db.
		Where("vulnerability_name ILIKE ? OR test_case_id ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("test_case_id ASC").
		Find(&testPlans).Error
	return testPlans, err
}

func (repository *testPlanRepository) FindByTestCaseIDs(codes []string) ([]models.TestPlan, error) {
	if len(codes) == 0 {
		return []models.TestPlan{}, nil
	}
	var testPlans []models.TestPlan
	err := repository.db.Where("test_case_id = ANY(?)", pq.Array(codes)).Find(&testPlans).Error
	return testPlans, err
}

// MaxTestCaseNumber returns the highest numeric suffix among TP-NNN codes,
// 0 when the catalog is empty.
func (repository *testPlanRepository) MaxTestCaseNumber() (int, error) {
	var maxNumber int
	err := repository.db.Model(&models.TestPlan{}).
		Select(`COALESCE(MAX(CAST(SUBSTRING(test_case_id FROM 'TP-(\d+)') AS INTEGER)), 0)`).
		Scan(&maxNumber).Error
	return maxNumber, err
}
