// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedPocContentType(t *testing.T) {
	assert.True(t, isAllowedPocContentType("image/png"))
	assert.True(t, isAllowedPocContentType("image/jpeg"))
	assert.True(t, isAllowedPocContentType("application/pdf"))
	assert.True(t, isAllowedPocContentType("application/msword"))
	assert.True(t, isAllowedPocContentType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))

	assert.False(t, isAllowedPocContentType("text/plain"))
	assert.False(t, isAllowedPocContentType("application/zip"))
	assert.False(t, isAllowedPocContentType(""))
}

func TestAddPoc(t *testing.T) {
	t.Run("should reject a disallowed content type before anything is written", func(t *testing.T) {
		t.Setenv("EVIDENCE_DIR", t.TempDir())

		vaptTestCaseRepository := mocks.NewVaptTestCaseRepository(t)
		vaptPocRepository := mocks.NewVaptPocRepository(t)
		service := NewEvidenceService(vaptTestCaseRepository, vaptPocRepository)

		_, err := service.AddPoc(uuid.New(), dtos.PocUpload{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Content:     strings.NewReader("plain text"),
		}, models.User{Username: "bob"})

		assert.ErrorIs(t, err, ErrInvalidContentType)
		vaptTestCaseRepository.AssertNotCalled(t, "Read", mock.Anything)
		vaptPocRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

		entries, readErr := os.ReadDir(os.Getenv("EVIDENCE_DIR"))
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("should store the file under a collision resistant name and persist the record", func(t *testing.T) {
		evidenceDir := t.TempDir()
		t.Setenv("EVIDENCE_DIR", evidenceDir)

		testCaseID := uuid.New()

		vaptTestCaseRepository := mocks.NewVaptTestCaseRepository(t)
		vaptTestCaseRepository.On("Read", testCaseID).Return(models.VaptTestCase{Model: models.Model{ID: testCaseID}}, nil)

		vaptPocRepository := mocks.NewVaptPocRepository(t)
		var created *models.VaptPoc
		vaptPocRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.VaptPoc)
		}).Return(nil)

		service := NewEvidenceService(vaptTestCaseRepository, vaptPocRepository)

		poc, err := service.AddPoc(testCaseID, dtos.PocUpload{
			FileName:    "sql injection screenshot.png",
			ContentType: "image/png",
			Description: "payload reflected in the response",
			Content:     strings.NewReader("pretend this is a png"),
		}, models.User{Username: "bob"})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "sql injection screenshot.png", poc.OriginalFileName)
		assert.NotEqual(t, poc.OriginalFileName, poc.FileName)
		assert.True(t, strings.HasSuffix(poc.FileName, "_sql_injection_screenshot.png"), poc.FileName)
		assert.Equal(t, int64(len("pretend this is a png")), poc.FileSize)
		assert.Equal(t, "bob", poc.UploadedBy)

		content, readErr := os.ReadFile(filepath.Join(evidenceDir, poc.FileName)) // #nosec G304
		require.NoError(t, readErr)
		assert.Equal(t, "pretend this is a png", string(content))
	})

	t.Run("should not leave the file behind when the record cannot be persisted", func(t *testing.T) {
		evidenceDir := t.TempDir()
		t.Setenv("EVIDENCE_DIR", evidenceDir)

		testCaseID := uuid.New()

		vaptTestCaseRepository := mocks.NewVaptTestCaseRepository(t)
		vaptTestCaseRepository.On("Read", testCaseID).Return(models.VaptTestCase{Model: models.Model{ID: testCaseID}}, nil)

		vaptPocRepository := mocks.NewVaptPocRepository(t)
		vaptPocRepository.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		service := NewEvidenceService(vaptTestCaseRepository, vaptPocRepository)

		_, err := service.AddPoc(testCaseID, dtos.PocUpload{
			FileName:    "evidence.pdf",
			ContentType: "application/pdf",
			Content:     strings.NewReader("%PDF-1.4"),
		}, models.User{Username: "bob"})

		require.Error(t, err)
		entries, readErr := os.ReadDir(evidenceDir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestDeletePoc(t *testing.T) {
	t.Run("should remove the record even when the backing file is already gone", func(t *testing.T) {
		t.Setenv("EVIDENCE_DIR", t.TempDir())

		pocID := uuid.New()
		poc := models.VaptPoc{Model: models.Model{ID: pocID}, FileName: "123_missing.png"}

		vaptPocRepository := mocks.NewVaptPocRepository(t)
		vaptPocRepository.On("Read", pocID).Return(poc, nil)
		vaptPocRepository.On("Delete", mock.Anything, pocID).Return(nil)

		service := NewEvidenceService(mocks.NewVaptTestCaseRepository(t), vaptPocRepository)

		assert.NoError(t, service.DeletePoc(pocID))
	})
}

func TestPocFilePath(t *testing.T) {
	t.Setenv("EVIDENCE_DIR", "/srv/evidence")

	service := NewEvidenceService(mocks.NewVaptTestCaseRepository(t), mocks.NewVaptPocRepository(t))

	// stored names are flattened so a crafted record cannot escape the directory
	path := service.PocFilePath(models.VaptPoc{FileName: "../../etc/passwd"})
	assert.Equal(t, "/srv/evidence/passwd", path)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "report_final.png", sanitizeFileName("report final.png"))
	assert.Equal(t, "passwd", sanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "evidence", sanitizeFileName(""))
}
