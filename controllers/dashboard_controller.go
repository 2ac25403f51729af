// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/rootlockdefense/defectrix/shared"
)

type DashboardController struct {
	dashboardService shared.DashboardService
}

func NewDashboardController(dashboardService shared.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (c *DashboardController) Stats(ctx shared.Context) error {
	stats, err := c.dashboardService.Stats()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (c *DashboardController) DefectsByApplication(ctx shared.Context) error {
	counts, err := c.dashboardService.DefectsByApplication()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, counts)
}

func (c *DashboardController) MonthlyTrends(ctx shared.Context) error {
	trends, err := c.dashboardService.MonthlyTrends()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, trends)
}

func (c *DashboardController) ClientsWithMostDefects(ctx shared.Context) error {
	counts, err := c.dashboardService.ClientsWithMostDefects()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, counts)
}
