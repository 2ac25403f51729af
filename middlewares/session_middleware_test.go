// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/mocks"
	"github.com/rootlockdefense/defectrix/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	newContext := func(authorization string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		return echo.New().NewContext(req, httptest.NewRecorder())
	}

	t.Run("should reject a request without a bearer token", func(t *testing.T) {
		authService := mocks.NewAuthService(t)

		handler := SessionMiddleware(authService)(func(ctx echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})

		err := handler(newContext(""))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		authService := mocks.NewAuthService(t)
		authService.On("VerifyToken", "bogus").Return(models.User{}, assert.AnError)

		handler := SessionMiddleware(authService)(func(ctx echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})

		err := handler(newContext("Bearer bogus"))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should resolve the actor and run the handler", func(t *testing.T) {
		user := models.User{Model: models.Model{ID: uuid.New()}, Username: "alice"}

		authService := mocks.NewAuthService(t)
		authService.On("VerifyToken", "valid-token").Return(user, nil)

		var seen models.User
		handler := SessionMiddleware(authService)(func(ctx echo.Context) error {
			actor, err := shared.GetActor(ctx)
			require.NoError(t, err)
			seen = actor
			return nil
		})

		require.NoError(t, handler(newContext("Bearer valid-token")))
		assert.Equal(t, user.ID, seen.ID)
	})
}
