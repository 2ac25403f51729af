// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type ApplicationRouter struct {
	*echo.Group
}

func NewApplicationRouter(
	sessionGroup SessionRouter,
	applicationController *controllers.ApplicationController,
) ApplicationRouter {
	applicationRouter := sessionGroup.Group.Group("/applications")

	applicationRouter.GET("/", applicationController.List)
	applicationRouter.GET("/:applicationID/", applicationController.Get)
	applicationRouter.POST("/", applicationController.Create)
	applicationRouter.PUT("/:applicationID/", applicationController.Update)
	applicationRouter.DELETE("/:applicationID/", applicationController.Delete)

	return ApplicationRouter{Group: applicationRouter}
}
