package models

import "github.com/google/uuid"

// VaptPoc is a proof-of-concept evidence file attached to a test case.
type VaptPoc struct {
	Model
	VaptTestCaseID uuid.UUID `json:"vaptTestCaseId" gorm:"type:uuid;not null;index;"`

	FileName         string `json:"fileName" gorm:"type:text;not null;"`
	OriginalFileName string `json:"originalFileName" gorm:"type:text"`
	ContentType      string `json:"contentType" gorm:"type:text"`
	FileSize         int64  `json:"fileSize" gorm:"default:0;"`
	Description      string `json:"description" gorm:"type:text"`
	UploadedBy       string `json:"uploadedBy" gorm:"type:text"`
}

func (p VaptPoc) TableName() string {
	return "vapt_pocs"
}
