package models

import (
	"fmt"

	"github.com/google/uuid"
)

type DefectStatus string

const (
	DefectStatusNew        DefectStatus = "new"
	DefectStatusOpen       DefectStatus = "open"
	DefectStatusInProgress DefectStatus = "in_progress"
	DefectStatusRetest     DefectStatus = "retest"
	DefectStatusClosed     DefectStatus = "closed"
)

func (s DefectStatus) Valid() bool {
	switch s {
	case DefectStatusNew, DefectStatusOpen, DefectStatusInProgress, DefectStatusRetest, DefectStatusClosed:
		return true
	}
	return false
}

// Defect is a standalone tracked finding outside the report lifecycle,
// identified by a human-readable DEF-NNN code.
type Defect struct {
	Model
	DefectID string `json:"defectId" gorm:"type:text;uniqueIndex;not null;"`

	ClientID      uuid.UUID   `json:"clientId" gorm:"type:uuid;not null;"`
	Client        Client      `json:"client,omitempty" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
	ApplicationID uuid.UUID   `json:"applicationId" gorm:"type:uuid;not null;"`
	Application   Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE;"`
	TestPlanID    uuid.UUID   `json:"testPlanId" gorm:"type:uuid;not null;"`
	TestPlan      TestPlan    `json:"testPlan,omitempty" gorm:"foreignKey:TestPlanID;references:ID;"`

	Severity         Severity     `json:"severity" gorm:"type:text;not null;"`
	Description      string       `json:"description" gorm:"type:text;not null;"`
	TestingProcedure string       `json:"testingProcedure" gorm:"type:text"`
	PocPath          string       `json:"pocPath" gorm:"type:text"`
	Status           DefectStatus `json:"status" gorm:"type:text;default:'new';not null;"`

	AssignedToID *uuid.UUID `json:"assignedToId" gorm:"type:uuid"`
	AssignedTo   *User      `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID;references:ID;"`
	CreatedBy    string     `json:"createdBy" gorm:"type:text"`

	History []DefectHistory `json:"history,omitempty" gorm:"foreignKey:DefectID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (d Defect) TableName() string {
	return "defects"
}

func (d Defect) IsOpen() bool {
	return d.Status == DefectStatusOpen || d.Status == DefectStatusInProgress || d.Status == DefectStatusRetest
}

func (d Defect) IsClosed() bool {
	return d.Status == DefectStatusClosed
}

// NextDefectID builds the DEF-NNN code following the highest number in use.
func NextDefectID(maxNumber int) string {
	return fmt.Sprintf("DEF-%03d", maxNumber+1)
}

// DefectHistory records one status transition of a defect.
type DefectHistory struct {
	Model
	DefectID uuid.UUID `json:"defectId" gorm:"type:uuid;not null;"`

	OldStatus    *DefectStatus `json:"oldStatus" gorm:"type:text"`
	NewStatus    DefectStatus  `json:"newStatus" gorm:"type:text;not null;"`
	ChangeReason string        `json:"changeReason" gorm:"type:text"`
	ChangedBy    string        `json:"changedBy" gorm:"type:text"`
}

func (h DefectHistory) TableName() string {
	return "defect_histories"
}
