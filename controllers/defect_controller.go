// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type DefectController struct {
	defectService shared.DefectService
}

func NewDefectController(defectService shared.DefectService) *DefectController {
	return &DefectController{
		defectService: defectService,
	}
}

func (c *DefectController) List(ctx shared.Context) error {
	defects, err := c.defectService.All()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, defects)
}

func (c *DefectController) ListByClient(ctx shared.Context) error {
	clientID, err := parseIDParam(ctx, "clientID")
	if err != nil {
		return err
	}

	defects, err := c.defectService.SearchByClient(clientID, ctx.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, defects)
}

func (c *DefectController) Get(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "defectID")
	if err != nil {
		return err
	}

	defect, err := c.defectService.Get(id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, defect)
}

func (c *DefectController) GetByCode(ctx shared.Context) error {
	defect, err := c.defectService.GetByDefectID(ctx.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, defect)
}

func (c *DefectController) Create(ctx shared.Context) error {
	var req dtos.DefectRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return err
	}

	defect, err := c.defectService.Create(req, actor)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, defect)
}

func (c *DefectController) Update(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "defectID")
	if err != nil {
		return err
	}

	var req dtos.DefectRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return err
	}

	defect, err := c.defectService.Update(id, req, actor)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, defect)
}

func (c *DefectController) Delete(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "defectID")
	if err != nil {
		return err
	}

	if err := c.defectService.Delete(id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *DefectController) History(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "defectID")
	if err != nil {
		return err
	}

	history, err := c.defectService.History(id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, history)
}
