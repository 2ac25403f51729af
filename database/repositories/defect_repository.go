// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

// openDefectStatuses matches Defect.IsOpen.
var openDefectStatuses = []models.DefectStatus{
	models.DefectStatusOpen,
	models.DefectStatusInProgress,
	models.DefectStatusRetest,
}

type defectRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Defect]
}

func NewDefectRepository(db shared.DB) *defectRepository {
	return &defectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Defect](db),
	}
}

func (repository *defectRepository) Read(id uuid.UUID) (models.Defect, error) {
	var defect models.Defect
	err := repository.db.
		Preload("Client").
		Preload("Application").
		Preload("TestPlan").
		First(&defect, "id = ?", id).Error
	return defect, err
}

func (repository *defectRepository) FindByDefectID(code string) (models.Defect, error) {
	var defect models.Defect
	err := repository.db.
		Preload("Client").
		Preload("Application").
		Preload("TestPlan").
		First(&defect, "defect_id = ?", code).Error
	return defect, err
}

func (repository *defectRepository) All() ([]models.Defect, error) {
	var defects []models.Defect
	err := repository.db.Order("defect_id ASC").Find(&defects).Error
	return defects, err
}

func (repository *defectRepository) FindByClientID(clientID uuid.UUID) ([]models.Defect, error) {
	var defects []models.Defect
	err := repository.db.
		Where("client_id = ?", clientID).
		Order("defect_id ASC").
		Find(&defects).Error
	return defects, err
}

func (repository *defectRepository) SearchByClient(clientID uuid.UUID, query string) ([]models.Defect, error) {
	var defects []models.Defect
	pattern := "%" + query + "%"
	err := repository.db.
		Where("client_id = ? AND (defect_id ILIKE ? OR description ILIKE ?)", clientID, pattern, pattern).
		Order("defect_id ASC").
		Find(&defects).Error
	return defects, err
}

// MaxDefectNumber returns the highest numeric suffix among DEF-NNN codes,
// 0 when no defect exists yet.
func (repository *defectRepository) MaxDefectNumber() (int, error) {
	var maxNumber int
	err := repository.db.Model(&models.Defect{}).
		Select(`COALESCE(MAX(CAST(SUBSTRING(defect_id FROM 'DEF-(\d+)') AS INTEGER)), 0)`).
		Scan(&maxNumber).Error
	return maxNumber, err
}

func (repository *defectRepository) CountOpen() (int64, error) {
	var count int64
	err := repository.db.Model(&models.Defect{}).
		Where("status IN ?", openDefectStatuses).
		Count(&count).Error
	return count, err
}

func (repository *defectRepository) CountClosed() (int64, error) {
	var count int64
	err := repository.db.Model(&models.Defect{}).
		Where("status = ?", models.DefectStatusClosed).
		Count(&count).Error
	return count, err
}

func (repository *defectRepository) CountsByApplication() ([]dtos.NameCount, error) {
	var results []dtos.NameCount
	err := repository.db.Model(&models.Defect{}).
		Select("applications.name AS name, COUNT(*) AS count").
		Joins("JOIN applications ON applications.id = defects.application_id").
		Group("applications.name").
		Order("count DESC, name ASC").
		Scan(&results).Error
	return results, err
}

func (repository *defectRepository) CountsByClient(limit int) ([]dtos.NameCount, error) {
	var results []dtos.NameCount
	err := repository.db.Model(&models.Defect{}).
		Select("clients.name AS name, COUNT(*) AS count").
		Joins("JOIN clients ON clients.id = defects.client_id").
		Group("clients.name").
		Order("count DESC, name ASC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (repository *defectRepository) CreateHistory(tx shared.DB, history *models.DefectHistory) error {
	return repository.GetDB(tx).Create(history).Error
}

func (repository *defectRepository) HistoryForDefect(defectID uuid.UUID) ([]models.DefectHistory, error) {
	var history []models.DefectHistory
	err := repository.db.
		Where("defect_id = ?", defectID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}
