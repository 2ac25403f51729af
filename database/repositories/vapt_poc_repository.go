// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/shared"
)

type vaptPocRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.VaptPoc]
}

func NewVaptPocRepository(db shared.DB) *vaptPocRepository {
	return &vaptPocRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.VaptPoc](db),
	}
}

func (repository *vaptPocRepository) FindByTestCaseID(testCaseID uuid.UUID) ([]models.VaptPoc, error) {
	var pocs []models.VaptPoc
	err := repository.db.Where("vapt_test_case_id = ?", testCaseID).Order("created_at ASC").Find(&pocs).Error
	return pocs, err
}
