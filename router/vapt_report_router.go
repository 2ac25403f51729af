// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type VaptReportRouter struct {
	*echo.Group
}

func NewVaptReportRouter(
	sessionGroup SessionRouter,
	vaptReportController *controllers.VaptReportController,
) VaptReportRouter {
	vaptRouter := sessionGroup.Group.Group("/vapt-reports")

	vaptRouter.POST("/initialize/", vaptReportController.Initialize)
	vaptRouter.GET("/:reportID/", vaptReportController.Get)
	vaptRouter.GET("/:reportID/test-cases/", vaptReportController.TestCases)
	vaptRouter.GET("/:reportID/modify/", vaptReportController.Modify)
	vaptRouter.GET("/:reportID/html/", vaptReportController.HTML)
	vaptRouter.POST("/:reportID/add-test-cases/", vaptReportController.AddTestCases)
	vaptRouter.POST("/:reportID/generate/", vaptReportController.Generate)
	vaptRouter.PUT("/:reportID/config/", vaptReportController.UpdateConfig)
	vaptRouter.GET("/download/:reportID/:format/", vaptReportController.Download)

	vaptRouter.PUT("/test-cases/:testCaseID/", vaptReportController.UpdateTestCase)
	vaptRouter.POST("/test-cases/:testCaseID/pocs/", vaptReportController.AddPoc)

	vaptRouter.GET("/pocs/:pocID/", vaptReportController.GetPoc)
	vaptRouter.PUT("/pocs/:pocID/", vaptReportController.UpdatePoc)
	vaptRouter.DELETE("/pocs/:pocID/", vaptReportController.DeletePoc)

	return VaptReportRouter{Group: vaptRouter}
}
