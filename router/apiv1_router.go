// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rootlockdefense/defectrix/cmd/defectrix/api"
	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/shared"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		poolCfg := database.GetPoolConfigFromEnv()
		poolInfo := PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    int(poolCfg.MaxOpenConns),
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		}

		dbInfo := DatabaseInfo{Status: "unknown"}
		sqlDB, err := db.DB()
		if err != nil {
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else {
			if err := sqlDB.Ping(); err != nil {
				errMsg := "database ping failed"
				dbInfo.Status = "unhealthy"
				dbInfo.Error = &errMsg
			} else {
				dbInfo.Status = "healthy"

				// prefer runtime stats from the pgx pool which backs the sql.DB
				if pool != nil {
					stats := pool.Stat()
					dbInfo.OpenConnections = int(stats.TotalConns())
					dbInfo.InUse = int(stats.AcquiredConns())
					dbInfo.Idle = int(stats.IdleConns())
					dbInfo.MaxOpenConnections = int(stats.MaxConns())

					poolInfo.TotalConns = int(stats.TotalConns())
					poolInfo.IdleConns = int(stats.IdleConns())
					poolInfo.AcquiredConns = int(stats.AcquiredConns())
					poolInfo.MaxConns = int(stats.MaxConns())
				} else {
					dbInfo.DBStats = sqlDB.Stats()
				}

				if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
					v := ver
					dbInfo.MigrationVersion = &v
					dbInfo.MigrationDirty = &dirty
				} else {
					errStr := err.Error()
					dbInfo.MigrationError = &errStr
				}
			}
		}
		dbInfo.Pool = &poolInfo
		resp.Database = dbInfo

		return c.JSON(200, resp)
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{Group: apiV1Router}
}
