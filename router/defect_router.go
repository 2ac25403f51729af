// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
)

type DefectRouter struct {
	*echo.Group
}

func NewDefectRouter(
	sessionGroup SessionRouter,
	defectController *controllers.DefectController,
) DefectRouter {
	defectRouter := sessionGroup.Group.Group("/defects")

	defectRouter.GET("/", defectController.List)
	defectRouter.GET("/client/:clientID/", defectController.ListByClient)
	defectRouter.GET("/code/:code/", defectController.GetByCode)
	defectRouter.GET("/:defectID/", defectController.Get)
	defectRouter.GET("/:defectID/history/", defectController.History)
	defectRouter.POST("/", defectController.Create)
	defectRouter.PUT("/:defectID/", defectController.Update)
	defectRouter.DELETE("/:defectID/", defectController.Delete)

	return DefectRouter{Group: defectRouter}
}
