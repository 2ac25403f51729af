// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/shared"
)

type userRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.User]
}

func NewUserRepository(db shared.DB) *userRepository {
	return &userRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (repository *userRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := repository.db.First(&user, "username = ?", username).Error
	return user, err
}
