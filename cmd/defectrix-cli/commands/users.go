// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/database/repositories"
	"github.com/rootlockdefense/defectrix/services"
	"github.com/rootlockdefense/defectrix/shared"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func NewUsersCommand() *cobra.Command {
	users := cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	users.AddCommand(newCreateUserCommand())
	return &users
}

func newCreateUserCommand() *cobra.Command {
	createUser := cobra.Command{
		Use:   "create",
		Short: "Create a new user account",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			fullName, _ := cmd.Flags().GetString("full-name")
			role, _ := cmd.Flags().GetString("role")

			db, _ := database.NewConnection(database.GetPoolConfigFromEnv())

			userRepository := repositories.NewUserRepository(db)
			authService := services.NewAuthService(userRepository)

			if _, err := userRepository.FindByUsername(username); err == nil {
				slog.Error("user already exists", "username", username)
				return nil
			} else if err != gorm.ErrRecordNotFound {
				return err
			}

			hash, err := authService.HashPassword(password)
			if err != nil {
				return err
			}

			user := models.User{
				Username:     username,
				PasswordHash: hash,
				FullName:     fullName,
				Role:         models.UserRole(role),
			}
			if err := userRepository.Create(nil, &user); err != nil {
				return err
			}

			slog.Info("created user", "username", username, "role", role)
			return nil
		},
	}

	createUser.Flags().String("username", "", "Login name of the new user")
	createUser.Flags().String("password", "", "Initial password")
	createUser.Flags().String("full-name", "", "Display name")
	createUser.Flags().String("role", "tester", "Role of the user. Options: admin, tester, viewer")
	createUser.MarkFlagRequired("username") // nolint
	createUser.MarkFlagRequired("password") // nolint

	return &createUser
}
