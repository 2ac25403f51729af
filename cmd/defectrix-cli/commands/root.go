// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "defectrix-cli",
	Short: "Management cli",
	Long:  `The defectrix cli can be used to manage users and the test plan catalog of a defectrix instance.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeConfig() error {
	viper.SetConfigName("defectrix")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/defectrix/")

	if err := viper.ReadInConfig(); err != nil {
		// it's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("DEFECTRIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	return nil
}
