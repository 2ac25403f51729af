// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type DashboardRouter struct {
	*echo.Group
}

func NewDashboardRouter(
	sessionGroup SessionRouter,
	dashboardController *controllers.DashboardController,
) DashboardRouter {
	dashboardRouter := sessionGroup.Group.Group("/dashboard")

	dashboardRouter.GET("/stats/", dashboardController.Stats)
	dashboardRouter.GET("/defects-by-application/", dashboardController.DefectsByApplication)
	dashboardRouter.GET("/monthly-trends/", dashboardController.MonthlyTrends)
	dashboardRouter.GET("/clients-most-defects/", dashboardController.ClientsWithMostDefects)

	return DashboardRouter{Group: dashboardRouter}
}
