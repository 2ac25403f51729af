// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type defectService struct {
	defectRepository shared.DefectRepository
}

func NewDefectService(defectRepository shared.DefectRepository) *defectService {
	return &defectService{
		defectRepository: defectRepository,
	}
}

// Create assigns the next DEF-NNN code and records the initial history
// entry in the same transaction.
func (service *defectService) Create(request dtos.DefectRequest, actor models.User) (models.Defect, error) {
	defect, err := defectFromRequest(request)
	if err != nil {
		return models.Defect{}, err
	}
	defect.CreatedBy = actor.Username

	err = service.defectRepository.Transaction(func(tx shared.DB) error {
		maxNumber, err := service.defectRepository.MaxDefectNumber()
		if err != nil {
			return err
		}
		defect.DefectID = models.NextDefectID(maxNumber)

		if err := service.defectRepository.Create(tx, &defect); err != nil {
			return err
		}
		return service.defectRepository.CreateHistory(tx, &models.DefectHistory{
			DefectID:     defect.ID,
			NewStatus:    defect.Status,
			ChangeReason: "Defect created",
			ChangedBy:    actor.Username,
		})
	})
	if err != nil {
		return models.Defect{}, err
	}
	return service.defectRepository.Read(defect.ID)
}

// Update applies the request and appends a history entry when the status
// changed. The DEF-NNN code is never reassigned.
func (service *defectService) Update(id uuid.UUID, request dtos.DefectRequest, actor models.User) (models.Defect, error) {
	defect, err := service.defectRepository.Read(id)
	if err != nil {
		return models.Defect{}, err
	}

	updated, err := defectFromRequest(request)
	if err != nil {
		return models.Defect{}, err
	}

	oldStatus := defect.Status
	defect.ClientID = updated.ClientID
	defect.ApplicationID = updated.ApplicationID
	defect.TestPlanID = updated.TestPlanID
	defect.Severity = updated.Severity
	defect.Description = updated.Description
	defect.TestingProcedure = updated.TestingProcedure
	defect.AssignedToID = updated.AssignedToID
	defect.Status = updated.Status
	defect.Client = models.Client{}
	defect.Application = models.Application{}
	defect.TestPlan = models.TestPlan{}

	err = service.defectRepository.Transaction(func(tx shared.DB) error {
		if err := service.defectRepository.Save(tx, &defect); err != nil {
			return err
		}
		if oldStatus == defect.Status {
			return nil
		}
		return service.defectRepository.CreateHistory(tx, &models.DefectHistory{
			DefectID:     defect.ID,
			OldStatus:    &oldStatus,
			NewStatus:    defect.Status,
			ChangeReason: "Status updated",
			ChangedBy:    actor.Username,
		})
	})
	if err != nil {
		return models.Defect{}, err
	}
	return service.defectRepository.Read(id)
}

func (service *defectService) Delete(id uuid.UUID) error {
	if _, err := service.defectRepository.Read(id); err != nil {
		return err
	}
	return service.defectRepository.Delete(nil, id)
}

func (service *defectService) Get(id uuid.UUID) (models.Defect, error) {
	return service.defectRepository.Read(id)
}

func (service *defectService) GetByDefectID(code string) (models.Defect, error) {
	return service.defectRepository.FindByDefectID(code)
}

func (service *defectService) All() ([]models.Defect, error) {
	return service.defectRepository.All()
}

func (service *defectService) ByClient(clientID uuid.UUID) ([]models.Defect, error) {
	return service.defectRepository.FindByClientID(clientID)
}

func (service *defectService) SearchByClient(clientID uuid.UUID, query string) ([]models.Defect, error) {
	if strings.TrimSpace(query) == "" {
		return service.defectRepository.FindByClientID(clientID)
	}
	return service.defectRepository.SearchByClient(clientID, strings.TrimSpace(query))
}

func (service *defectService) History(defectID uuid.UUID) ([]models.DefectHistory, error) {
	if _, err := service.defectRepository.Read(defectID); err != nil {
		return nil, err
	}
	return service.defectRepository.HistoryForDefect(defectID)
}

func defectFromRequest(request dtos.DefectRequest) (models.Defect, error) {
	clientID, err := uuid.Parse(request.ClientID)
	if err != nil {
		return models.Defect{}, err
	}
	applicationID, err := uuid.Parse(request.ApplicationID)
	if err != nil {
		return models.Defect{}, err
	}
	testPlanID, err := uuid.Parse(request.TestPlanID)
	if err != nil {
		return models.Defect{}, err
	}

	defect := models.Defect{
		ClientID:         clientID,
		ApplicationID:    applicationID,
		TestPlanID:       testPlanID,
		Severity:         models.Severity(request.Severity),
		Description:      strings.TrimSpace(request.Description),
		TestingProcedure: strings.TrimSpace(request.TestingProcedure),
		Status:           models.DefectStatusNew,
	}
	if request.Status != nil {
		defect.Status = models.DefectStatus(*request.Status)
	}
	if request.AssignedToID != nil && *request.AssignedToID != "" {
		assignedToID, err := uuid.Parse(*request.AssignedToID)
		if err != nil {
			return models.Defect{}, err
		}
		defect.AssignedToID = &assignedToID
	}
	return defect, nil
}
