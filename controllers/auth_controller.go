// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type AuthController struct {
	authService shared.AuthService
}

func NewAuthController(authService shared.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// Me resolves the actor from the bearer token the session middleware parsed.
func (c *AuthController) Me(ctx shared.Context) error {
	actor, err := shared.GetActor(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, actor)
}
