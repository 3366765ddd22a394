package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/services"
)

type AutocompleteHandler struct {
	Autocomplete *services.AutocompleteService
}

func NewAutocompleteHandler(s *services.AutocompleteService) *AutocompleteHandler {
	return &AutocompleteHandler{Autocomplete: s}
}

// Suggest is the POST /autocomplete endpoint. It answers with a bare JSON
// array of suggestions, or a JSON string for type description.
func (h *AutocompleteHandler) Suggest(c *gin.Context) {
	var req dtos.AutocompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.Type == services.SuggestDescription {
		c.JSON(http.StatusOK, h.Autocomplete.Describe(c.Request.Context(), req))
		return
	}
	c.JSON(http.StatusOK, h.Autocomplete.Suggest(c.Request.Context(), req))
}
