package dtos

type DefectRequest struct {
	ClientID         string  `json:"clientId" validate:"required,uuid"`
	ApplicationID    string  `json:"applicationId" validate:"required,uuid"`
	TestPlanID       string  `json:"testPlanId" validate:"required,uuid"`
	Severity         string  `json:"severity" validate:"required,oneof=critical high medium low informational"`
	Description      string  `json:"description" validate:"required"`
	TestingProcedure string  `json:"testingProcedure"`
	AssignedToID     *string `json:"assignedToId" validate:"omitempty,uuid"`
	Status           *string `json:"status" validate:"omitempty,oneof=new open in_progress retest closed"`
}
