package dtos

import "github.com/justsurfingit/maya-pricing/internal/wizard"

// SavePricingRequest is the body of POST /save-pricing-info.
// TeamSize arrives as the raw text the visitor typed.
type SavePricingRequest struct {
	UserID        string            `json:"userId"`
	TeamSize      string            `json:"teamSize" binding:"required"`
	RoleType      string            `json:"roleType"`
	Roles         string            `json:"roles"`
	Experience    string            `json:"experience"`
	Description   string            `json:"description"`
	Industry      string            `json:"industry"`
	WorkplaceType string            `json:"workplaceType"`
	FormData      map[string]string `json:"formData"`
}

type SavePricingResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	UserID  string `json:"userId"`
}

// GenerateDescriptionRequest is the body of POST /generate-job-description.
type GenerateDescriptionRequest = wizard.DescriptionRequest

type GenerateDescriptionResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}

type CandidatesResponse struct {
	Success    bool               `json:"success"`
	Candidates []wizard.Candidate `json:"candidates"`
}
