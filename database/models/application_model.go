package models

import "github.com/google/uuid"

type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)

type Application struct {
	Model
	ClientID    uuid.UUID   `json:"clientId" gorm:"type:uuid;not null;index;"`
	Client      Client      `json:"-" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
	Name        string      `json:"name" gorm:"type:text;not null;"`
	URL         string      `json:"url" gorm:"type:text"`
	Environment Environment `json:"environment" gorm:"type:text;default:'production';not null;"`
	Description string      `json:"description" gorm:"type:text"`
}

func (a Application) TableName() string {
	return "applications"
}
