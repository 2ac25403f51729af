// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type testPlanService struct {
	testPlanRepository shared.TestPlanRepository
}

func NewTestPlanService(testPlanRepository shared.TestPlanRepository) *testPlanService {
	return &testPlanService{
		testPlanRepository: testPlanRepository,
	}
}

func (service *testPlanService) All() ([]models.TestPlan, error) {
	return service.testPlanRepository.All()
}

func (service *testPlanService) Search(query string) ([]models.TestPlan, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return service.testPlanRepository.All()
	}
	return service.testPlanRepository.Search(query)
}

func (service *testPlanService) Get(id uuid.UUID) (models.TestPlan, error) {
	return service.testPlanRepository.Read(id)
}

// NextTestCaseID returns the next free TP-NNN code: highest numeric suffix
// in the catalog plus one.
func (service *testPlanService) NextTestCaseID() (string, error) {
	maxNumber, err := service.testPlanRepository.MaxTestCaseNumber()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TP-%03d", maxNumber+1), nil
}

func (service *testPlanService) Create(request dtos.TestPlanRequest) (models.TestPlan, error) {
	code := strings.TrimSpace(request.TestCaseID)
	if code == "" {
		var err error
		code, err = service.NextTestCaseID()
		if err != nil {
			return models.TestPlan{}, err
		}
	}

	testPlan := models.TestPlan{
		TestCaseID:        code,
		VulnerabilityName: strings.TrimSpace(request.VulnerabilityName),
		Severity:          models.Severity(request.Severity),
		Description:       request.Description,
		TestProcedure:     request.TestProcedure,
		Remediation:       request.Remediation,
		Reference:         request.Reference,
	}
	if err := service.testPlanRepository.Create(nil, &testPlan); err != nil {
		return models.TestPlan{}, err
	}
	return testPlan, nil
}

// Update edits the catalog template. Test cases already materialized from it
// keep their pinned description and procedure until their next update.
func (service *testPlanService) Update(id uuid.UUID, request dtos.TestPlanRequest) (models.TestPlan, error) {
	testPlan, err := service.testPlanRepository.Read(id)
	if err != nil {
		return models.TestPlan{}, err
	}

	if code := strings.TrimSpace(request.TestCaseID); code != "" {
		testPlan.TestCaseID = code
	}
	testPlan.VulnerabilityName = strings.TrimSpace(request.VulnerabilityName)
	testPlan.Severity = models.Severity(request.Severity)
	testPlan.Description = request.Description
	testPlan.TestProcedure = request.TestProcedure
	testPlan.Remediation = request.Remediation
	testPlan.Reference = request.Reference

	if err := service.testPlanRepository.Save(nil, &testPlan); err != nil {
		return models.TestPlan{}, err
	}
	return testPlan, nil
}

func (service *testPlanService) Delete(id uuid.UUID) error {
	if _, err := service.testPlanRepository.Read(id); err != nil {
		return err
	}
	return service.testPlanRepository.Delete(nil, id)
}
