// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/shared"
)

type applicationRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Application]
}

func NewApplicationRepository(db shared.DB) *applicationRepository {
	return &applicationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Application](db),
	}
}

func (repository *applicationRepository) FindByClientID(clientID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := repository.db.Where("client_id = ?", clientID).Order("name ASC").Find(&applications).Error
	return applications, err
}
