// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/controllers"
	"github.com/rootlockdefense/defectrix/middlewares"
	"github.com/rootlockdefense/defectrix/shared"
)

type SessionRouter struct {
	*echo.Group
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	authService shared.AuthService,
	authController *controllers.AuthController,
) SessionRouter {
	// login stays outside the session group
	apiV1Router.POST("/auth/login/", authController.Login)

	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware(authService))
	sessionRouter.GET("/auth/me/", authController.Me)

	return SessionRouter{Group: sessionRouter}
}
