// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rootlockdefense/defectrix/cmd/defectrix/api"
	"github.com/rootlockdefense/defectrix/controllers"
	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/database/repositories"
	"github.com/rootlockdefense/defectrix/router"
	"github.com/rootlockdefense/defectrix/services"
	"github.com/rootlockdefense/defectrix/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, pool := database.NewConnection(database.GetPoolConfigFromEnv())

	disableAutoMigrate := os.Getenv("DISABLE_AUTOMIGRATE")
	if disableAutoMigrate != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(sessionRouter router.SessionRouter) {}),
		fx.Invoke(func(vaptReportRouter router.VaptReportRouter) {}),
		fx.Invoke(func(testPlanRouter router.TestPlanRouter) {}),
		fx.Invoke(func(clientRouter router.ClientRouter) {}),
		fx.Invoke(func(applicationRouter router.ApplicationRouter) {}),
		fx.Invoke(func(defectRouter router.DefectRouter) {}),
		fx.Invoke(func(dashboardRouter router.DashboardRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}
