// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type ApplicationController struct {
	applicationRepository shared.ApplicationRepository
	clientRepository      shared.ClientRepository
}

func NewApplicationController(applicationRepository shared.ApplicationRepository, clientRepository shared.ClientRepository) *ApplicationController {
	return &ApplicationController{
		applicationRepository: applicationRepository,
		clientRepository:      clientRepository,
	}
}

func (c *ApplicationController) List(ctx shared.Context) error {
	if clientParam := ctx.QueryParam("clientId"); clientParam != "" {
		clientID, err := uuid.Parse(clientParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid client id").WithInternal(err)
		}
		applications, err := c.applicationRepository.FindByClientID(clientID)
		if err != nil {
			return httpError(err)
		}
		return ctx.JSON(http.StatusOK, applications)
	}

	applications, err := c.applicationRepository.All()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, applications)
}

func (c *ApplicationController) Get(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}

	application, err := c.applicationRepository.Read(id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, application)
}

func (c *ApplicationController) Create(ctx shared.Context) error {
	var req dtos.ApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clientID := uuid.MustParse(req.ClientID)
	if _, err := c.clientRepository.Read(clientID); err != nil {
		return httpError(err)
	}

	environment := models.Environment(req.Environment)
	if req.Environment == "" {
		environment = models.EnvironmentProduction
	}

	application := models.Application{
		ClientID:    clientID,
		Name:        strings.TrimSpace(req.Name),
		URL:         strings.TrimSpace(req.URL),
		Environment: environment,
		Description: req.Description,
	}
	if err := c.applicationRepository.Create(nil, &application); err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, application)
}

func (c *ApplicationController) Update(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}

	var req dtos.ApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := c.applicationRepository.Read(id)
	if err != nil {
		return httpError(err)
	}

	application.Name = strings.TrimSpace(req.Name)
	application.URL = strings.TrimSpace(req.URL)
	if req.Environment != "" {
		application.Environment = models.Environment(req.Environment)
	}
	application.Description = req.Description

	if err := c.applicationRepository.Save(nil, &application); err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, application)
}

func (c *ApplicationController) Delete(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}

	if _, err := c.applicationRepository.Read(id); err != nil {
		return httpError(err)
	}
	if err := c.applicationRepository.Delete(nil, id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
