// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/stretchr/testify/assert"
)

func TestSeverityPieChart(t *testing.T) {
	t.Run("should degrade to empty with no open findings", func(t *testing.T) {
		counts := []CounterRow{
			{Label: "Critical", Color: "#8B0000", Count: 0},
			{Label: "High", Color: "#FF0000", Count: 0},
		}
		assert.Empty(t, severityPieChart(counts))
	})

	t.Run("should render a png data uri", func(t *testing.T) {
		counts := []CounterRow{
			{Label: "Critical", Color: "#8B0000", Count: 2},
			{Label: "Medium", Color: "#FFA500", Count: 3},
		}
		uri := severityPieChart(counts)
		assert.True(t, strings.HasPrefix(string(uri), "data:image/png;base64,"))
	})
}

func TestStatusBarChart(t *testing.T) {
	t.Run("should degrade to empty without any test cases", func(t *testing.T) {
		assert.Empty(t, statusBarChart(map[models.TestCaseStatus]int{}))
	})

	t.Run("should render a png data uri", func(t *testing.T) {
		uri := statusBarChart(map[models.TestCaseStatus]int{
			models.TestCaseStatusPassed: 4,
			models.TestCaseStatusFailed: 2,
		})
		assert.True(t, strings.HasPrefix(string(uri), "data:image/png;base64,"))
	})
}

func TestTopApplicationsChart(t *testing.T) {
	t.Run("should fall back to sample data on a fresh installation", func(t *testing.T) {
		uri := topApplicationsChart(nil)
		assert.True(t, strings.HasPrefix(string(uri), "data:image/png;base64,"))
	})

	t.Run("should cap the chart at five applications", func(t *testing.T) {
		apps := make([]dtos.ApplicationPassCount, 0, 8)
		for i := 0; i < 8; i++ {
			apps = append(apps, dtos.ApplicationPassCount{ApplicationName: "app", PassedCount: i})
		}
		uri := topApplicationsChart(apps)
		assert.True(t, strings.HasPrefix(string(uri), "data:image/png;base64,"))
	})
}
