// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/services"
	"github.com/rootlockdefense/defectrix/shared"
	"gorm.io/gorm"
)

// httpError maps the service error taxonomy onto HTTP status codes. The
// central error handler takes care of logging and response shape.
func httpError(err error) error {
	var validationErr *services.GenerateValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found").WithInternal(err)
	case errors.Is(err, services.ErrReportExpired):
		return echo.NewHTTPError(http.StatusConflict, "report is expired").WithInternal(err)
	case errors.Is(err, services.ErrInvalidContentType):
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported content type").WithInternal(err)
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials").WithInternal(err)
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error()).WithInternal(err)
	}
	return err
}

func parseIDParam(ctx shared.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(shared.SanitizeParam(ctx.Param(name)))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id").WithInternal(err)
	}
	return id, nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id in list").WithInternal(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
