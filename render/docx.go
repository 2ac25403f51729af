// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

// emu per pixel at 96 dpi
const emuPerPixel = 9525

// max inline width, 6 inches
const maxImageWidthEMU = 5486400

var docxImageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpeg",
	"image/gif":  "gif",
}

type docxImage struct {
	id        int
	extension string
	content   []byte
}

type docxBuilder struct {
	body   bytes.Buffer
	images []docxImage
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

func (b *docxBuilder) paragraph(text string, bold bool, halfPointSize int) {
	if strings.TrimSpace(text) == "" {
		return
	}
	var props strings.Builder
	props.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, halfPointSize, halfPointSize))
	if bold {
		props.WriteString("<w:b/>")
	}
	b.body.WriteString(fmt.Sprintf(
		`<w:p><w:r><w:rPr>%s</w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		props.String(), escapeXML(text)))
}

func (b *docxBuilder) heading(text string) {
	b.paragraph(text, true, 28)
}

func (b *docxBuilder) subheading(text string) {
	b.paragraph(text, true, 24)
}

func (b *docxBuilder) text(text string) {
	b.paragraph(text, false, 22)
}

func (b *docxBuilder) labeled(label, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.text(label + ": " + text)
}

func (b *docxBuilder) table(rows [][]string) {
	b.body.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`<w:bottom w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`<w:left w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`<w:right w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`<w:insideH w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`<w:insideV w:val="single" w:sz="4" w:color="BDBDBD"/>` +
		`</w:tblBorders></w:tblPr>`)
	for i, row := range rows {
		b.body.WriteString("<w:tr>")
		for _, cell := range row {
			bold := ""
			if i == 0 {
				bold = "<w:b/>"
			}
			b.body.WriteString(fmt.Sprintf(
				`<w:tc><w:p><w:r><w:rPr>%s<w:sz w:val="22"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p></w:tc>`,
				bold, escapeXML(cell)))
		}
		b.body.WriteString("</w:tr>")
	}
	b.body.WriteString("</w:tbl>")
	// spacer after the table, word renders back to back tables oddly
	b.body.WriteString("<w:p/>")
}

// image inlines a picture where the content type is supported and the bytes
// decode; anything else is silently skipped.
func (b *docxBuilder) image(content []byte, contentType string) {
	extension, ok := docxImageExtensions[contentType]
	if !ok || len(content) == 0 {
		return
	}
	config, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return
	}

	cx := int64(config.Width) * emuPerPixel
	cy := int64(config.Height) * emuPerPixel
	if cx > maxImageWidthEMU {
		cy = cy * maxImageWidthEMU / cx
		cx = maxImageWidthEMU
	}

	id := len(b.images) + 1
	b.images = append(b.images, docxImage{id: id, extension: extension, content: content})

	b.body.WriteString(fmt.Sprintf(`<w:p><w:r><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="%d" name="Image%d"/>`+
		`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:nvPicPr><pic:cNvPr id="%d" name="Image%d"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="rIdImg%d"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		cx, cy, id, id, id, id, id, cx, cy))
}

func (b *docxBuilder) chart(dataURI string) {
	content, ok := decodeDataURIPNG(dataURI)
	if !ok {
		return
	}
	b.image(content, "image/png")
}

func (b *docxBuilder) build() ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	writePart := func(name, content string) error {
		part, err := archive.Create(name)
		if err != nil {
			return err
		}
		_, err = part.Write([]byte(content))
		return err
	}

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Default Extension="png" ContentType="image/png"/>` +
		`<Default Extension="jpeg" ContentType="image/jpeg"/>` +
		`<Default Extension="gif" ContentType="image/gif"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`
	if err := writePart("[Content_Types].xml", contentTypes); err != nil {
		return nil, err
	}

	rootRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`
	if err := writePart("_rels/.rels", rootRels); err != nil {
		return nil, err
	}

	var documentRels strings.Builder
	documentRels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, img := range b.images {
		documentRels.WriteString(fmt.Sprintf(
			`<Relationship Id="rIdImg%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image%d.%s"/>`,
			img.id, img.id, img.extension))
	}
	documentRels.WriteString(`</Relationships>`)
	if err := writePart("word/_rels/document.xml.rels", documentRels.String()); err != nil {
		return nil, err
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">` +
		`<w:body>` + b.body.String() + `<w:sectPr/></w:body></w:document>`
	if err := writePart("word/document.xml", document); err != nil {
		return nil, err
	}

	for _, img := range b.images {
		part, err := archive.Create(fmt.Sprintf("word/media/image%d.%s", img.id, img.extension))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(img.content); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDocx renders the document as a minimal WordprocessingML package
// mirroring the HTML section layout, charts and evidence images inlined.
func RenderDocx(doc Document) ([]byte, error) {
	b := &docxBuilder{}

	b.paragraph(doc.ReportName, true, 40)
	b.text("Client: " + doc.ClientName)
	b.text("Application: " + doc.ApplicationName)
	b.text("Overall Risk: " + doc.OverallRisk)
	b.text("Generated " + doc.GeneratedAt.Format("02 Jan 2006 15:04"))

	b.heading("Document Attributes")
	attributeRows := [][]string{{"Attribute", "Value"}}
	for _, attribute := range doc.Attributes {
		attributeRows = append(attributeRows, []string{attribute.Key, attribute.Value})
	}
	b.table(attributeRows)

	b.heading("Executive Summary")
	b.text(doc.ExecutiveSummary)
	b.text(doc.KeyHighlights)

	b.heading("Objective")
	b.text(doc.Objective)

	b.heading("Scope")
	b.text(doc.Scope)

	b.heading("Assessment Timeframe")
	b.table([][]string{
		{"Start Date", "End Date", "Total Days"},
		{doc.AssessmentStart, doc.AssessmentEnd, fmt.Sprintf("%d", doc.TotalDays)},
	})

	b.heading("Approach & Methodology")
	b.text(doc.Approach)
	b.text(doc.Methodology)

	b.heading("Risk Rating Legend")
	legendRows := [][]string{{"Severity", "Impact"}}
	for _, entry := range doc.RiskLegend {
		legendRows = append(legendRows, []string{entry.Severity, entry.Impact})
	}
	b.table(legendRows)

	b.heading("Vulnerability Summary")
	severityRows := [][]string{{"Severity", "Open Findings"}}
	for _, row := range doc.SeverityCounts {
		severityRows = append(severityRows, []string{row.Label, fmt.Sprintf("%d", row.Count)})
	}
	b.table(severityRows)
	b.chart(string(doc.Charts.SeverityPie))

	b.heading("Test Case Summary")
	summaryRows := [][]string{{"Code", "Vulnerability", "Severity", "Status"}}
	for _, testCase := range doc.TestCases {
		summaryRows = append(summaryRows, []string{testCase.Code, testCase.VulnerabilityName, testCase.Severity, testCase.Status})
	}
	b.table(summaryRows)
	b.chart(string(doc.Charts.StatusBar))
	b.chart(string(doc.Charts.TopApplications))

	b.heading("Detailed Observations")
	for _, testCase := range doc.TestCases {
		b.subheading(fmt.Sprintf("%s - %s", testCase.Code, testCase.VulnerabilityName))
		b.text(fmt.Sprintf("Severity: %s    Status: %s", testCase.Severity, testCase.Status))
		b.labeled("Description", testCase.Description)
		b.labeled("Test Procedure", testCase.TestProcedure)
		b.labeled("Findings", testCase.FindingDetails)
		b.labeled("Remediation", testCase.Remediation)
		b.labeled("Reference", testCase.Reference)
		b.labeled("Tester Comments", testCase.TesterComments)
		for _, evidence := range testCase.Evidence {
			b.labeled("Evidence", evidence.Name)
			b.image(evidence.Bytes, evidence.ContentType)
		}
	}

	b.heading("Tools Used")
	b.text(doc.ToolsUsed)

	b.heading("Conclusion")
	b.text(doc.Conclusion)
	b.labeled("Recommendations", doc.Recommendations)
	b.labeled("Next Steps", doc.NextSteps)

	b.heading("Signatures")
	b.table([][]string{
		{"Prepared By", "Reviewed By", "Approved By"},
		{doc.PreparedBy, doc.ReviewedBy, doc.ApprovedBy},
	})

	content, err := b.build()
	if err != nil {
		return nil, errors.Wrap(err, "could not assemble docx package")
	}
	return content, nil
}
