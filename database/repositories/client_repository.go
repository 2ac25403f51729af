// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/shared"
)

type clientRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Client]
}

func NewClientRepository(db shared.DB) *clientRepository {
	return &clientRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Client](db),
	}
}
