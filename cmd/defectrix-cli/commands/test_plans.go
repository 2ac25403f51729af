// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/rootlockdefense/defectrix/database"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/database/repositories"
	"github.com/rootlockdefense/defectrix/shared"
	"github.com/spf13/cobra"
)

func NewTestPlansCommand() *cobra.Command {
	testPlans := cobra.Command{
		Use:   "test-plans",
		Short: "Manage the test plan catalog",
	}

	testPlans.AddCommand(newSeedTestPlansCommand())
	return &testPlans
}

type seedTestPlan struct {
	TestCaseID        string `json:"testCaseId"`
	VulnerabilityName string `json:"vulnerabilityName"`
	Severity          string `json:"severity"`
	Description       string `json:"description"`
	TestProcedure     string `json:"testProcedure"`
	Remediation       string `json:"remediation"`
	Reference         string `json:"reference"`
}

func newSeedTestPlansCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed the test plan catalog from a JSON file. Already existing test case ids are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint

			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var entries []seedTestPlan
			if err := json.Unmarshal(content, &entries); err != nil {
				return err
			}

			db, _ := database.NewConnection(database.GetPoolConfigFromEnv())
			testPlanRepository := repositories.NewTestPlanRepository(db)

			codes := make([]string, 0, len(entries))
			for _, entry := range entries {
				codes = append(codes, entry.TestCaseID)
			}

			existing, err := testPlanRepository.FindByTestCaseIDs(codes)
			if err != nil {
				return err
			}
			existingCodes := make(map[string]struct{}, len(existing))
			for _, testPlan := range existing {
				existingCodes[testPlan.TestCaseID] = struct{}{}
			}

			toCreate := make([]models.TestPlan, 0, len(entries))
			for _, entry := range entries {
				if _, ok := existingCodes[entry.TestCaseID]; ok {
					continue
				}
				severity := models.Severity(entry.Severity)
				if !severity.Valid() {
					slog.Warn("skipping entry with invalid severity", "testCaseId", entry.TestCaseID, "severity", entry.Severity)
					continue
				}
				toCreate = append(toCreate, models.TestPlan{
					TestCaseID:        entry.TestCaseID,
					VulnerabilityName: entry.VulnerabilityName,
					Severity:          severity,
					Description:       entry.Description,
					TestProcedure:     entry.TestProcedure,
					Remediation:       entry.Remediation,
					Reference:         entry.Reference,
				})
			}

			if len(toCreate) == 0 {
				slog.Info("nothing to seed", "total", len(entries), "skipped", len(entries))
				return nil
			}

			if err := testPlanRepository.CreateBatch(nil, toCreate); err != nil {
				return err
			}

			slog.Info("seeded test plans", "created", len(toCreate), "skipped", len(entries)-len(toCreate))
			return nil
		},
	}

	return &seed
}
