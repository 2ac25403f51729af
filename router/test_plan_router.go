// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type TestPlanRouter struct {
	*echo.Group
}

func NewTestPlanRouter(
	sessionGroup SessionRouter,
	testPlanController *controllers.TestPlanController,
) TestPlanRouter {
	testPlanRouter := sessionGroup.Group.Group("/test-plans")

	testPlanRouter.GET("/", testPlanController.List)
	testPlanRouter.GET("/next-code/", testPlanController.NextCode)
	testPlanRouter.GET("/:testPlanID/", testPlanController.Get)
	testPlanRouter.POST("/", testPlanController.Create)
	testPlanRouter.PUT("/:testPlanID/", testPlanController.Update)
	testPlanRouter.DELETE("/:testPlanID/", testPlanController.Delete)

	return TestPlanRouter{Group: testPlanRouter}
}
