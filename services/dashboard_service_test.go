// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"testing"
	"time"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardServiceForTest(t *testing.T) (*dashboardService, *mocks.DefectRepository, *mocks.VaptTestCaseRepository) {
	userRepository := mocks.NewUserRepository(t)
	clientRepository := mocks.NewClientRepository(t)
	applicationRepository := mocks.NewApplicationRepository(t)
	testPlanRepository := mocks.NewTestPlanRepository(t)
	defectRepository := mocks.NewDefectRepository(t)
	vaptTestCaseRepository := mocks.NewVaptTestCaseRepository(t)

	userRepository.On("Count").Return(int64(4), nil).Maybe()
	clientRepository.On("Count").Return(int64(3), nil).Maybe()
	applicationRepository.On("Count").Return(int64(7), nil).Maybe()
	testPlanRepository.On("Count").Return(int64(25), nil).Maybe()

	service := NewDashboardService(
		userRepository,
		clientRepository,
		applicationRepository,
		testPlanRepository,
		defectRepository,
		vaptTestCaseRepository,
	)
	return service, defectRepository, vaptTestCaseRepository
}

func TestDashboardStats(t *testing.T) {
	t.Run("should aggregate the overview counters and the severity distribution", func(t *testing.T) {
		service, defectRepository, vaptTestCaseRepository := newDashboardServiceForTest(t)

		defectRepository.On("Count").Return(int64(12), nil)
		defectRepository.On("CountOpen").Return(int64(9), nil)
		defectRepository.On("CountClosed").Return(int64(3), nil)
		vaptTestCaseRepository.On("CountByVulnerabilityStatus", models.VulnerabilityStatusOpen).Return(int64(6), nil)
		vaptTestCaseRepository.On("CountByVulnerabilityStatus", models.VulnerabilityStatusClosed).Return(int64(2), nil)
		vaptTestCaseRepository.On("CountByEffectiveSeverity", models.SeverityCritical).Return(int64(1), nil)
		vaptTestCaseRepository.On("CountByEffectiveSeverity", models.SeverityHigh).Return(int64(2), nil)
		vaptTestCaseRepository.On("CountByEffectiveSeverity", models.SeverityMedium).Return(int64(3), nil)
		vaptTestCaseRepository.On("CountByEffectiveSeverity", models.SeverityLow).Return(int64(0), nil)
		vaptTestCaseRepository.On("CountByEffectiveSeverity", models.SeverityInformational).Return(int64(0), nil)

		stats, err := service.Stats()
		require.NoError(t, err)

		assert.Equal(t, int64(4), stats.TotalUsers)
		assert.Equal(t, int64(3), stats.TotalClients)
		assert.Equal(t, int64(7), stats.TotalApplications)
		assert.Equal(t, int64(25), stats.TotalTestPlans)
		assert.Equal(t, int64(12), stats.TotalDefects)
		assert.Equal(t, int64(9), stats.OpenDefects)
		assert.Equal(t, int64(3), stats.ClosedDefects)
		assert.Equal(t, int64(6), stats.OpenVulnerabilities)
		assert.Equal(t, int64(2), stats.ClosedVulnerabilities)
		assert.Equal(t, map[string]int64{
			"critical":      1,
			"high":          2,
			"medium":        3,
			"low":           0,
			"informational": 0,
		}, stats.DefectsBySeverity)
	})

	t.Run("should fail fast on a broken counter", func(t *testing.T) {
		service, defectRepository, _ := newDashboardServiceForTest(t)

		defectRepository.On("Count").Return(int64(0), assert.AnError)

		_, err := service.Stats()
		require.Error(t, err)
	})
}

func TestDashboardMonthlyTrends(t *testing.T) {
	t.Run("should bucket the last six months", func(t *testing.T) {
		service, _, vaptTestCaseRepository := newDashboardServiceForTest(t)

		now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return now }

		vaptTestCaseRepository.On("MonthlyCounts", now.AddDate(0, -6, 0)).
			Return([]dtos.MonthlyCount{{Month: "2026-03", Count: 2}}, nil)

		trends, err := service.MonthlyTrends()
		require.NoError(t, err)
		require.Len(t, trends, 1)
		assert.Equal(t, "2026-03", trends[0].Month)
	})
}

func TestDashboardClientsWithMostDefects(t *testing.T) {
	t.Run("should cap the ranking at ten clients", func(t *testing.T) {
		service, defectRepository, _ := newDashboardServiceForTest(t)

		defectRepository.On("CountsByClient", 10).
			Return([]dtos.NameCount{{Name: "Acme", Count: 5}}, nil)

		ranking, err := service.ClientsWithMostDefects()
		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, "Acme", ranking[0].Name)
	})
}
