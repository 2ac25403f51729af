package dtos

type ClientRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Address      string `json:"address"`
}

type ApplicationRequest struct {
	ClientID    string `json:"clientId" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url"`
	Environment string `json:"environment" validate:"omitempty,oneof=production staging development"`
	Description string `json:"description"`
}
