// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type ClientRouter struct {
	*echo.Group
}

func NewClientRouter(
	sessionGroup SessionRouter,
	clientController *controllers.ClientController,
) ClientRouter {
	clientRouter := sessionGroup.Group.Group("/clients")

	clientRouter.GET("/", clientController.List)
	clientRouter.GET("/:clientID/", clientController.Get)
	clientRouter.POST("/", clientController.Create)
	clientRouter.PUT("/:clientID/", clientController.Update)
	clientRouter.DELETE("/:clientID/", clientController.Delete)

	return ClientRouter{Group: clientRouter}
}
