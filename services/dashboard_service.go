// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

const mostDefectsClientLimit = 10

type dashboardService struct {
	userRepository         shared.UserRepository
	clientRepository       shared.ClientRepository
	applicationRepository  shared.ApplicationRepository
	testPlanRepository     shared.TestPlanRepository
	defectRepository       shared.DefectRepository
	vaptTestCaseRepository shared.VaptTestCaseRepository

	now func() time.Time
}

func NewDashboardService(
	userRepository shared.UserRepository,
	clientRepository shared.ClientRepository,
	applicationRepository shared.ApplicationRepository,
	testPlanRepository shared.TestPlanRepository,
	defectRepository shared.DefectRepository,
	vaptTestCaseRepository shared.VaptTestCaseRepository,
) *dashboardService {
	return &dashboardService{
		userRepository:         userRepository,
		clientRepository:       clientRepository,
		applicationRepository:  applicationRepository,
		testPlanRepository:     testPlanRepository,
		defectRepository:       defectRepository,
		vaptTestCaseRepository: vaptTestCaseRepository,
		now:                    time.Now,
	}
}

// Stats aggregates the overview counters across all entities.
func (service *dashboardService) Stats() (dtos.DashboardStats, error) {
	var stats dtos.DashboardStats
	var err error

	counters := []struct {
		target *int64
		load   func() (int64, error)
	}{
		{&stats.TotalUsers, service.userRepository.Count},
		{&stats.TotalClients, service.clientRepository.Count},
		{&stats.TotalApplications, service.applicationRepository.Count},
		{&stats.TotalTestPlans, service.testPlanRepository.Count},
		{&stats.TotalDefects, service.defectRepository.Count},
		{&stats.OpenDefects, service.defectRepository.CountOpen},
		{&stats.ClosedDefects, service.defectRepository.CountClosed},
	}
	for _, counter := range counters {
		if *counter.target, err = counter.load(); err != nil {
			return dtos.DashboardStats{}, err
		}
	}

	if stats.OpenVulnerabilities, err = service.vaptTestCaseRepository.CountByVulnerabilityStatus(models.VulnerabilityStatusOpen); err != nil {
		return dtos.DashboardStats{}, err
	}
	if stats.ClosedVulnerabilities, err = service.vaptTestCaseRepository.CountByVulnerabilityStatus(models.VulnerabilityStatusClosed); err != nil {
		return dtos.DashboardStats{}, err
	}

	stats.DefectsBySeverity = make(map[string]int64, 5)
	for _, severity := range []models.Severity{
		models.SeverityCritical,
		models.SeverityHigh,
		models.SeverityMedium,
		models.SeverityLow,
		models.SeverityInformational,
	} {
		count, err := service.vaptTestCaseRepository.CountByEffectiveSeverity(severity)
		if err != nil {
			return dtos.DashboardStats{}, err
		}
		stats.DefectsBySeverity[string(severity)] = count
	}

	return stats, nil
}

func (service *dashboardService) DefectsByApplication() ([]dtos.NameCount, error) {
	return service.defectRepository.CountsByApplication()
}

// MonthlyTrends buckets the findings of the last six months by month.
func (service *dashboardService) MonthlyTrends() ([]dtos.MonthlyCount, error) {
	return service.vaptTestCaseRepository.MonthlyCounts(service.now().AddDate(0, -6, 0))
}

func (service *dashboardService) ClientsWithMostDefects() ([]dtos.NameCount, error) {
	return service.defectRepository.CountsByClient(mostDefectsClientLimit)
}
