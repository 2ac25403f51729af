// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/signintech/gopdf"
)

const (
	pdfPageWidth    = 595.28 // A4 portrait, points
	pdfPageHeight   = 841.89
	pdfMarginLeft   = 50.0
	pdfMarginTop    = 50.0
	pdfMarginBottom = 60.0
	pdfLineHeight   = 16.0
	pdfTextWidth    = pdfPageWidth - 2*pdfMarginLeft
)

type pdfWriter struct {
	pdf  *gopdf.GoPdf
	y    float64
	font string
}

func (w *pdfWriter) ensureSpace(height float64) {
	if w.y+height > pdfPageHeight-pdfMarginBottom {
		w.pdf.AddPage()
		w.y = pdfMarginTop
	}
}

func (w *pdfWriter) heading(text string, size float64) error {
	w.ensureSpace(size + 14)
	if err := w.pdf.SetFont(w.font, "", size); err != nil {
		return err
	}
	w.pdf.SetXY(pdfMarginLeft, w.y)
	if err := w.pdf.Cell(nil, text); err != nil {
		return err
	}
	w.y += size + 12
	return nil
}

func (w *pdfWriter) paragraph(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := w.pdf.SetFont(w.font, "", 11); err != nil {
		return err
	}
	lines, err := w.pdf.SplitTextWithWordWrap(text, pdfTextWidth)
	if err != nil {
		// fall back to an unwrapped single line
		lines = []string{text}
	}
	for _, line := range lines {
		w.ensureSpace(pdfLineHeight)
		w.pdf.SetXY(pdfMarginLeft, w.y)
		if err := w.pdf.Cell(nil, line); err != nil {
			return err
		}
		w.y += pdfLineHeight
	}
	w.y += 6
	return nil
}

func (w *pdfWriter) labeled(label, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return w.paragraph(label + ": " + text)
}

func (w *pdfWriter) chart(dataURI string) error {
	content, ok := decodeDataURIPNG(dataURI)
	if !ok {
		return nil
	}
	holder, err := gopdf.ImageHolderByBytes(content)
	if err != nil {
		return err
	}
	width := 360.0
	height := 280.0
	w.ensureSpace(height + 10)
	if err := w.pdf.ImageByHolder(holder, pdfMarginLeft, w.y, &gopdf.Rect{W: width, H: height}); err != nil {
		return err
	}
	w.y += height + 10
	return nil
}

func decodeDataURIPNG(dataURI string) ([]byte, bool) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		return nil, false
	}
	content, err := base64.StdEncoding.DecodeString(dataURI[len(prefix):])
	if err != nil {
		return nil, false
	}
	return content, true
}

// RenderPdf renders the document with the configured TTF font. A missing
// font file or any renderer error surfaces to the caller, who falls back to
// FallbackPdf.
func RenderPdf(doc Document, fontFile string) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont("report", fontFile); err != nil {
		return nil, errors.Wrapf(err, "could not load report font %q", fontFile)
	}

	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, y: pdfMarginTop, font: "report"}

	if err := w.heading(doc.ReportName, 20); err != nil {
		return nil, err
	}
	if err := w.paragraph(fmt.Sprintf("Client: %s", doc.ClientName)); err != nil {
		return nil, err
	}
	if err := w.paragraph(fmt.Sprintf("Application: %s", doc.ApplicationName)); err != nil {
		return nil, err
	}
	if err := w.paragraph(fmt.Sprintf("Overall Risk: %s", doc.OverallRisk)); err != nil {
		return nil, err
	}
	if err := w.paragraph("Generated " + doc.GeneratedAt.Format("02 Jan 2006 15:04")); err != nil {
		return nil, err
	}

	if err := w.heading("Document Attributes", 14); err != nil {
		return nil, err
	}
	for _, attribute := range doc.Attributes {
		if err := w.labeled(attribute.Key, attribute.Value); err != nil {
			return nil, err
		}
	}

	if err := w.heading("Executive Summary", 14); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.ExecutiveSummary); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.KeyHighlights); err != nil {
		return nil, err
	}

	if err := w.heading("Objective & Scope", 14); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.Objective); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.Scope); err != nil {
		return nil, err
	}
	if err := w.paragraph(fmt.Sprintf("Timeframe: %s to %s (%d days)", doc.AssessmentStart, doc.AssessmentEnd, doc.TotalDays)); err != nil {
		return nil, err
	}

	if err := w.heading("Approach & Methodology", 14); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.Approach); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.Methodology); err != nil {
		return nil, err
	}

	if err := w.heading("Vulnerability Summary", 14); err != nil {
		return nil, err
	}
	for _, row := range doc.SeverityCounts {
		if err := w.paragraph(fmt.Sprintf("%s: %d", row.Label, row.Count)); err != nil {
			return nil, err
		}
	}
	if err := w.chart(string(doc.Charts.SeverityPie)); err != nil {
		return nil, err
	}

	if err := w.heading("Test Case Status", 14); err != nil {
		return nil, err
	}
	for _, row := range doc.StatusCounts {
		if err := w.paragraph(fmt.Sprintf("%s: %d", row.Label, row.Count)); err != nil {
			return nil, err
		}
	}
	if err := w.chart(string(doc.Charts.StatusBar)); err != nil {
		return nil, err
	}
	if err := w.chart(string(doc.Charts.TopApplications)); err != nil {
		return nil, err
	}

	if err := w.heading("Detailed Observations", 14); err != nil {
		return nil, err
	}
	for _, testCase := range doc.TestCases {
		if err := w.heading(fmt.Sprintf("%s - %s", testCase.Code, testCase.VulnerabilityName), 12); err != nil {
			return nil, err
		}
		if err := w.paragraph(fmt.Sprintf("Severity: %s    Status: %s", testCase.Severity, testCase.Status)); err != nil {
			return nil, err
		}
		if err := w.labeled("Description", testCase.Description); err != nil {
			return nil, err
		}
		if err := w.labeled("Test Procedure", testCase.TestProcedure); err != nil {
			return nil, err
		}
		if err := w.labeled("Findings", testCase.FindingDetails); err != nil {
			return nil, err
		}
		if err := w.labeled("Remediation", testCase.Remediation); err != nil {
			return nil, err
		}
		if err := w.labeled("Reference", testCase.Reference); err != nil {
			return nil, err
		}
		for _, evidence := range testCase.Evidence {
			if err := w.labeled("Evidence", evidence.Name); err != nil {
				return nil, err
			}
			if len(evidence.Bytes) > 0 && evidence.ContentType == "image/png" {
				if err := w.chart(string(evidence.DataURI)); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := w.heading("Conclusion", 14); err != nil {
		return nil, err
	}
	if err := w.paragraph(doc.Conclusion); err != nil {
		return nil, err
	}
	if err := w.labeled("Recommendations", doc.Recommendations); err != nil {
		return nil, err
	}
	if err := w.labeled("Next Steps", doc.NextSteps); err != nil {
		return nil, err
	}

	if err := w.heading("Signatures", 14); err != nil {
		return nil, err
	}
	if err := w.labeled("Prepared By", doc.PreparedBy); err != nil {
		return nil, err
	}
	if err := w.labeled("Reviewed By", doc.ReviewedBy); err != nil {
		return nil, err
	}
	if err := w.labeled("Approved By", doc.ApprovedBy); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "could not write pdf")
	}
	return buf.Bytes(), nil
}

// FallbackPdf hand-assembles a minimal single-page PDF using the built-in
// Helvetica font. It depends on nothing that can be missing at runtime, so
// it can never fail; a minimal artifact always exists when the primary
// renderer errors.
func FallbackPdf(doc Document) []byte {
	lines := []string{
		"VAPT Report (fallback rendering)",
		"Report ID: " + doc.ReportID,
		"Client: " + doc.ClientName,
		"Application: " + doc.ApplicationName,
		"Overall Risk: " + doc.OverallRisk,
		"Generated: " + doc.GeneratedAt.Format(time.RFC1123),
	}

	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 50 780 Td 18 TL\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", escapePdfString(line))
	}
	content.WriteString("ET\n")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, 5)

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] " +
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	writeObj("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	writeObj(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
		content.Len(), content.String()))

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

func escapePdfString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "(", "\\(")
	s = strings.ReplaceAll(s, ")", "\\)")
	return s
}
