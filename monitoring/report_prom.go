// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportGenerationsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "defectrix_report_generations_total",
	Help: "Number of completed report generations",
})

var RenderFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "defectrix_render_failures_total",
	Help: "Number of failed report renderings by format",
}, []string{"format"})

var EvidenceUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "defectrix_evidence_uploads_total",
	Help: "Number of stored evidence files",
})

var EvidenceUploadsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "defectrix_evidence_uploads_rejected_total",
	Help: "Number of evidence uploads rejected by the content type gate",
})
