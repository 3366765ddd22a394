package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/services"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

type CandidateHandler struct {
	Candidates *services.CandidateService
}

func NewCandidateHandler(s *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{Candidates: s}
}

// Recommendations is the GET /candidates/recommendations endpoint.
// Lookup failures answer with an empty list, like the widget expects.
func (h *CandidateHandler) Recommendations(c *gin.Context) {
	q := wizard.CandidateQuery{
		Role:            strings.TrimSpace(c.Query("role")),
		ExperienceLevel: strings.ToLower(strings.TrimSpace(c.Query("experience"))),
		Industry:        strings.TrimSpace(c.Query("industry")),
	}
	if q.Role == "" {
		fail(c, http.StatusBadRequest, "role is required")
		return
	}
	if q.ExperienceLevel == "" {
		q.ExperienceLevel = wizard.ExperienceMid
	}
	list, err := h.Candidates.Recommend(c.Request.Context(), q)
	if err != nil {
		log.Warn().Err(err).Str("role", q.Role).Msg("candidate recommendations unavailable")
		list = []wizard.Candidate{}
	}
	c.JSON(http.StatusOK, dtos.CandidatesResponse{Success: true, Candidates: list})
}

// BPOCUsers is the GET /bpoc-users endpoint
func (h *CandidateHandler) BPOCUsers(c *gin.Context) {
	list, err := h.Candidates.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list bpoc users")
		c.JSON(http.StatusInternalServerError, dtos.BPOCUsersResponse{
			Data:  []models.Candidate{},
			Error: "Failed to fetch BPOC users",
		})
		return
	}
	resp := dtos.BPOCUsersResponse{
		Success: true,
		Data:    list.Candidates,
		Total:   len(list.Candidates),
		Cached:  list.Cached,
		Stale:   list.Stale,
	}
	if list.Cached {
		resp.CacheAge = int(list.Age.Round(time.Second).Seconds())
	}
	c.JSON(http.StatusOK, resp)
}
