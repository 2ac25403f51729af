// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"testing"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNextTestCaseID(t *testing.T) {
	t.Run("should pad the next free number to three digits", func(t *testing.T) {
		testPlanRepository := mocks.NewTestPlanRepository(t)
		testPlanRepository.On("MaxTestCaseNumber").Return(3, nil)

		service := NewTestPlanService(testPlanRepository)

		code, err := service.NextTestCaseID()
		require.NoError(t, err)
		assert.Equal(t, "TP-004", code)
	})

	t.Run("should start at TP-001 on an empty catalog", func(t *testing.T) {
		testPlanRepository := mocks.NewTestPlanRepository(t)
		testPlanRepository.On("MaxTestCaseNumber").Return(0, nil)

		service := NewTestPlanService(testPlanRepository)

		code, err := service.NextTestCaseID()
		require.NoError(t, err)
		assert.Equal(t, "TP-001", code)
	})
}

func TestTestPlanCreate(t *testing.T) {
	t.Run("should auto-assign the code when none is given", func(t *testing.T) {
		testPlanRepository := mocks.NewTestPlanRepository(t)
		testPlanRepository.On("MaxTestCaseNumber").Return(12, nil)
		testPlanRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewTestPlanService(testPlanRepository)

		testPlan, err := service.Create(dtos.TestPlanRequest{
			VulnerabilityName: "  Broken Access Control ",
			Severity:          "high",
		})

		require.NoError(t, err)
		assert.Equal(t, "TP-013", testPlan.TestCaseID)
		assert.Equal(t, "Broken Access Control", testPlan.VulnerabilityName)
		assert.Equal(t, models.SeverityHigh, testPlan.Severity)
	})

	t.Run("should keep an explicitly given code", func(t *testing.T) {
		testPlanRepository := mocks.NewTestPlanRepository(t)
		testPlanRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewTestPlanService(testPlanRepository)

		testPlan, err := service.Create(dtos.TestPlanRequest{
			TestCaseID:        " TP-099 ",
			VulnerabilityName: "CSRF",
			Severity:          "medium",
		})

		require.NoError(t, err)
		assert.Equal(t, "TP-099", testPlan.TestCaseID)
	})
}

func TestTestPlanSearch(t *testing.T) {
	t.Run("should fall back to the full catalog on a blank query", func(t *testing.T) {
		testPlanRepository := mocks.NewTestPlanRepository(t)
		testPlanRepository.On("All").Return([]models.TestPlan{{TestCaseID: "TP-001"}}, nil)

		service := NewTestPlanService(testPlanRepository)

		testPlans, err := service.Search("   ")
		require.NoError(t, err)
		assert.Len(t, testPlans, 1)
		testPlanRepository.AssertNotCalled(t, "Search", mock.Anything)
	})
}
