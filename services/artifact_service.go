// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/monitoring"
	"github.com/rootlockdefense/defectrix/render"
	"github.com/rootlockdefense/defectrix/shared"
)

type artifactService struct {
	vaptReportRepository   shared.VaptReportRepository
	vaptTestCaseRepository shared.VaptTestCaseRepository
	evidenceService        shared.EvidenceService

	reportsDir string
	fontFile   string
}

func NewArtifactService(
	vaptReportRepository shared.VaptReportRepository,
	vaptTestCaseRepository shared.VaptTestCaseRepository,
	evidenceService shared.EvidenceService,
) *artifactService {
	return &artifactService{
		vaptReportRepository:   vaptReportRepository,
		vaptTestCaseRepository: vaptTestCaseRepository,
		evidenceService:        evidenceService,
		reportsDir:             shared.ReportsDir(),
		fontFile:               shared.ReportFontFile(),
	}
}

// buildDocument aggregates the freshest report state into the render content
// model. Downloads always regenerate, nothing is cached.
func (service *artifactService) buildDocument(reportID uuid.UUID) (render.Document, error) {
	report, err := service.vaptReportRepository.Read(reportID)
	if err != nil {
		return render.Document{}, err
	}

	testCases, err := service.vaptTestCaseRepository.FindByReportIDOrdered(reportID)
	if err != nil {
		return render.Document{}, err
	}

	topApplications, err := service.vaptReportRepository.TopApplicationsByPassedCount(5)
	if err != nil {
		slog.Warn("could not load top applications for chart", "err", err)
		topApplications = nil
	}

	loadEvidence := func(poc models.VaptPoc) ([]byte, error) {
		return os.ReadFile(service.evidenceService.PocFilePath(poc)) // #nosec G304
	}

	return render.BuildDocument(report, testCases, topApplications, loadEvidence), nil
}

func (service *artifactService) RenderHTML(reportID uuid.UUID) ([]byte, error) {
	doc, err := service.buildDocument(reportID)
	if err != nil {
		return nil, err
	}
	content, err := render.RenderHTML(doc)
	if err != nil {
		monitoring.RenderFailuresTotal.WithLabelValues("html").Inc()
		return nil, err
	}
	return content, nil
}

func (service *artifactService) RenderDocx(reportID uuid.UUID) ([]byte, error) {
	doc, err := service.buildDocument(reportID)
	if err != nil {
		return nil, err
	}
	content, err := render.RenderDocx(doc)
	if err != nil {
		monitoring.RenderFailuresTotal.WithLabelValues("docx").Inc()
		return nil, err
	}
	return content, nil
}

// RenderPdf tries the full renderer first and falls back to the minimal
// built-in-font document, so a PDF artifact always exists.
func (service *artifactService) RenderPdf(reportID uuid.UUID) ([]byte, error) {
	doc, err := service.buildDocument(reportID)
	if err != nil {
		return nil, err
	}
	content, err := render.RenderPdf(doc, service.fontFile)
	if err != nil {
		monitoring.RenderFailuresTotal.WithLabelValues("pdf").Inc()
		slog.Warn("primary pdf renderer failed, using fallback", "reportID", reportID, "err", err)
		return render.FallbackPdf(doc), nil
	}
	return content, nil
}

// WriteArtifacts renders all formats to the reports directory. Formats fail
// independently: one broken renderer does not stop the others.
func (service *artifactService) WriteArtifacts(reportID uuid.UUID) error {
	if err := os.MkdirAll(service.reportsDir, 0750); err != nil {
		return errors.Wrap(err, "could not create reports directory")
	}

	formats := []struct {
		extension string
		render    func(uuid.UUID) ([]byte, error)
	}{
		{"html", service.RenderHTML},
		{"docx", service.RenderDocx},
		{"pdf", service.RenderPdf},
	}

	for _, format := range formats {
		content, err := format.render(reportID)
		if err != nil {
			monitoring.Alert(fmt.Sprintf("rendering %s artifact failed", format.extension), err)
			continue
		}
		path := filepath.Join(service.reportsDir, fmt.Sprintf("vapt-report-%s.%s", reportID, format.extension))
		if err := os.WriteFile(path, content, 0640); err != nil {
			monitoring.Alert(fmt.Sprintf("writing %s artifact failed", format.extension), err)
		}
	}
	return nil
}
