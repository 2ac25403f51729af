// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type ClientController struct {
	clientRepository      shared.ClientRepository
	applicationRepository shared.ApplicationRepository
}

func NewClientController(clientRepository shared.ClientRepository, applicationRepository shared.ApplicationRepository) *ClientController {
	return &ClientController{
		clientRepository:      clientRepository,
		applicationRepository: applicationRepository,
	}
}

func (c *ClientController) List(ctx shared.Context) error {
	clients, err := c.clientRepository.All()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, clients)
}

func (c *ClientController) Get(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "clientID")
	if err != nil {
		return err
	}

	client, err := c.clientRepository.Read(id)
	if err != nil {
		return httpError(err)
	}

	applications, err := c.applicationRepository.FindByClientID(id)
	if err != nil {
		return httpError(err)
	}
	client.Applications = applications

	return ctx.JSON(http.StatusOK, client)
}

func (c *ClientController) Create(ctx shared.Context) error {
	var req dtos.ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client := models.Client{
		Name:         strings.TrimSpace(req.Name),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		Address:      strings.TrimSpace(req.Address),
	}
	if err := c.clientRepository.Create(nil, &client); err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, client)
}

func (c *ClientController) Update(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "clientID")
	if err != nil {
		return err
	}

	var req dtos.ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := c.clientRepository.Read(id)
	if err != nil {
		return httpError(err)
	}

	client.Name = strings.TrimSpace(req.Name)
	client.ContactEmail = strings.TrimSpace(req.ContactEmail)
	client.Address = strings.TrimSpace(req.Address)
	if err := c.clientRepository.Save(nil, &client); err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, client)
}

func (c *ClientController) Delete(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "clientID")
	if err != nil {
		return err
	}

	if _, err := c.clientRepository.Read(id); err != nil {
		return httpError(err)
	}
	if err := c.clientRepository.Delete(nil, id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
