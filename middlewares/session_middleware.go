// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/shared"
)

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionMiddleware resolves the acting user from the bearer token and stores
// it on the request context. Requests without a valid token get a 401.
func SessionMiddleware(authService shared.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			user, err := authService.VerifyToken(token)
			if err != nil {
				slog.Debug("token verification failed", "err", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session").WithInternal(err)
			}

			shared.SetActor(ctx, user)
			return next(ctx)
		}
	}
}
