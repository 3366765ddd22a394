package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/services"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

type PricingHandler struct {
	Pricing      *services.PricingService
	Descriptions wizard.DescriptionGenerator
}

func NewPricingHandler(p *services.PricingService, d wizard.DescriptionGenerator) *PricingHandler {
	return &PricingHandler{Pricing: p, Descriptions: d}
}

// SavePricing is the POST /save-pricing-info endpoint
func (h *PricingHandler) SavePricing(c *gin.Context) {
	var req dtos.SavePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	info, err := h.Pricing.Save(c.Request.Context(), &req)
	if errors.Is(err, models.ErrInvalidTeamSize) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("save pricing info")
		fail(c, http.StatusInternalServerError, "Failed to save pricing information")
		return
	}
	c.JSON(http.StatusCreated, dtos.SavePricingResponse{Success: true, ID: info.ID, UserID: info.UserID})
}

// GenerateDescription is the POST /generate-job-description endpoint
func (h *PricingHandler) GenerateDescription(c *gin.Context) {
	var req dtos.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	text, err := h.Descriptions.Generate(c.Request.Context(), req)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate job description")
		return
	}
	c.JSON(http.StatusOK, dtos.GenerateDescriptionResponse{Success: true, Description: text})
}
