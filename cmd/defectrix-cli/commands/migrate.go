// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint

			db, _ := database.NewConnection(database.GetPoolConfigFromEnv())

			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}

			slog.Info("migrations applied", "version", version, "dirty", dirty)
			return nil
		},
	}

	return &migrate
}
