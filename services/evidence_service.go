// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/monitoring"
	"github.com/rootlockdefense/defectrix/shared"
)

var allowedPocContentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func isAllowedPocContentType(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	for _, allowed := range allowedPocContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

type evidenceService struct {
	vaptTestCaseRepository shared.VaptTestCaseRepository
	vaptPocRepository      shared.VaptPocRepository

	evidenceDir string
	now         func() time.Time
}

func NewEvidenceService(vaptTestCaseRepository shared.VaptTestCaseRepository, vaptPocRepository shared.VaptPocRepository) *evidenceService {
	return &evidenceService{
		vaptTestCaseRepository: vaptTestCaseRepository,
		vaptPocRepository:      vaptPocRepository,
		evidenceDir:            shared.EvidenceDir(),
		now:                    time.Now,
	}
}

// AddPoc validates the content type before anything is written, stores the
// file under a collision-resistant name and persists the record.
func (service *evidenceService) AddPoc(testCaseID uuid.UUID, upload dtos.PocUpload, actor models.User) (models.VaptPoc, error) {
	if !isAllowedPocContentType(upload.ContentType) {
		monitoring.EvidenceUploadsRejectedTotal.Inc()
		return models.VaptPoc{}, errors.Wrapf(ErrInvalidContentType, "content type %q", upload.ContentType)
	}

	if _, err := service.vaptTestCaseRepository.Read(testCaseID); err != nil {
		return models.VaptPoc{}, err
	}

	if err := os.MkdirAll(service.evidenceDir, 0750); err != nil {
		return models.VaptPoc{}, errors.Wrap(err, "could not create evidence directory")
	}

	storedName := fmt.Sprintf("%d_%s", service.now().UnixMilli(), sanitizeFileName(upload.FileName))
	path := filepath.Join(service.evidenceDir, storedName)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0640) // #nosec G304
	if err != nil {
		return models.VaptPoc{}, errors.Wrap(err, "could not create evidence file")
	}
	written, err := io.Copy(file, upload.Content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// do not leave a partial write behind
		if removeErr := os.Remove(path); removeErr != nil {
			slog.Warn("could not remove partially written evidence file", "path", path, "err", removeErr)
		}
		return models.VaptPoc{}, errors.Wrap(err, "could not write evidence file")
	}

	poc := models.VaptPoc{
		VaptTestCaseID:   testCaseID,
		FileName:         storedName,
		OriginalFileName: upload.FileName,
		ContentType:      upload.ContentType,
		FileSize:         written,
		Description:      upload.Description,
		UploadedBy:       actor.Username,
	}
	if err := service.vaptPocRepository.Create(nil, &poc); err != nil {
		if removeErr := os.Remove(path); removeErr != nil {
			slog.Warn("could not remove orphaned evidence file", "path", path, "err", removeErr)
		}
		return models.VaptPoc{}, err
	}

	monitoring.EvidenceUploadsTotal.Inc()
	return poc, nil
}

func (service *evidenceService) GetPoc(pocID uuid.UUID) (models.VaptPoc, error) {
	return service.vaptPocRepository.Read(pocID)
}

func (service *evidenceService) UpdatePocDescription(pocID uuid.UUID, description string) (models.VaptPoc, error) {
	poc, err := service.vaptPocRepository.Read(pocID)
	if err != nil {
		return models.VaptPoc{}, err
	}
	poc.Description = description
	if err := service.vaptPocRepository.Save(nil, &poc); err != nil {
		return models.VaptPoc{}, err
	}
	return poc, nil
}

// DeletePoc unlinks the backing file best-effort. The record is removed
// regardless of whether the unlink succeeded.
func (service *evidenceService) DeletePoc(pocID uuid.UUID) error {
	poc, err := service.vaptPocRepository.Read(pocID)
	if err != nil {
		return err
	}

	if err := os.Remove(service.PocFilePath(poc)); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not remove evidence file", "path", service.PocFilePath(poc), "err", err)
	}

	return service.vaptPocRepository.Delete(nil, pocID)
}

func (service *evidenceService) PocFilePath(poc models.VaptPoc) string {
	return filepath.Join(service.evidenceDir, filepath.Base(poc.FileName))
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "evidence"
	}
	return name
}
