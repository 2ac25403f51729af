// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"log/slog"
	"os"

	"github.com/rootlockdefense/defectrix/cmd/defectrix-cli/commands"
	"github.com/rootlockdefense/defectrix/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewUsersCommand())
	commands.GetRootCmd().AddCommand(commands.NewTestPlansCommand())
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
}

func main() {
	shared.InitLogger()
	Execute()
}
