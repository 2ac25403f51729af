// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type TestPlanController struct {
	testPlanService shared.TestPlanService
}

func NewTestPlanController(testPlanService shared.TestPlanService) *TestPlanController {
	return &TestPlanController{testPlanService: testPlanService}
}

func (c *TestPlanController) List(ctx shared.Context) error {
	if query := ctx.QueryParam("q"); query != "" {
		testPlans, err := c.testPlanService.Search(query)
		if err != nil {
			return httpError(err)
		}
		return ctx.JSON(http.StatusOK, testPlans)
	}

	testPlans, err := c.testPlanService.All()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, testPlans)
}

func (c *TestPlanController) Get(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "testPlanID")
	if err != nil {
		return err
	}

	testPlan, err := c.testPlanService.Get(id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, testPlan)
}

func (c *TestPlanController) NextCode(ctx shared.Context) error {
	code, err := c.testPlanService.NextTestCaseID()
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"testCaseId": code})
}

func (c *TestPlanController) Create(ctx shared.Context) error {
	var req dtos.TestPlanRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testPlan, err := c.testPlanService.Create(req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, testPlan)
}

func (c *TestPlanController) Update(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "testPlanID")
	if err != nil {
		return err
	}

	var req dtos.TestPlanRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testPlan, err := c.testPlanService.Update(id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, testPlan)
}

func (c *TestPlanController) Delete(ctx shared.Context) error {
	id, err := parseIDParam(ctx, "testPlanID")
	if err != nil {
		return err
	}

	if err := c.testPlanService.Delete(id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
