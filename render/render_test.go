// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return BuildDocument(sampleReport(), sampleTestCases(), nil, func(poc models.VaptPoc) ([]byte, error) {
		return nil, assert.AnError
	})
}

func TestRenderHTML(t *testing.T) {
	doc := sampleDocument()

	content, err := RenderHTML(doc)
	require.NoError(t, err)

	html := string(content)
	assert.Contains(t, html, "VAPT Report - Acme Corp - Webshop")
	assert.Contains(t, html, "Acme Corp")
	assert.Contains(t, html, "Executive Summary")
	assert.Contains(t, html, "Two findings remain open.")
	assert.Contains(t, html, "SQL Injection")
	assert.Contains(t, html, "Critical Risk")
	assert.Contains(t, html, "Security Team Lead")
	// charts survive template escaping as data uris
	assert.Contains(t, html, "data:image/png;base64,")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderDocx(t *testing.T) {
	doc := sampleDocument()

	content, err := RenderDocx(doc)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	names := make(map[string]bool, len(reader.File))
	var documentXML string
	for _, file := range reader.File {
		names[file.Name] = true
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			require.NoError(t, err)
			var buf bytes.Buffer
			_, err = buf.ReadFrom(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			documentXML = buf.String()
		}
	}

	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	assert.True(t, names["word/document.xml"])

	assert.Contains(t, documentXML, "SQL Injection")
	assert.Contains(t, documentXML, "Acme Corp")
}

func TestRenderPdf(t *testing.T) {
	t.Run("should fail without a usable font file", func(t *testing.T) {
		_, err := RenderPdf(sampleDocument(), "/nonexistent/font.ttf")
		assert.Error(t, err)
	})
}

func TestFallbackPdf(t *testing.T) {
	doc := sampleDocument()

	content := FallbackPdf(doc)

	require.NotEmpty(t, content)
	pdf := string(content)
	assert.True(t, strings.HasPrefix(pdf, "%PDF-1.4"))
	assert.Contains(t, pdf, "%%EOF")
	assert.Contains(t, pdf, doc.ReportID)
	assert.Contains(t, pdf, "Acme Corp")
}

func TestEscapePdfString(t *testing.T) {
	assert.Equal(t, `a \(b\) \\c`, escapePdfString(`a (b) \c`))
}
