// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/middlewares"
	"github.com/rootlockdefense/defectrix/shared"
	"go.uber.org/fx"
)

// StartedAt is used for process uptime reporting.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance and binds its lifetime to the fx app.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	listenAddr := shared.GetEnv("LISTEN_ADDR", ":8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("failed to start server", "err", err)
				}
			}()
			slog.Info("server listening", "addr", listenAddr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
