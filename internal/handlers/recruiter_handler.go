package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/services"
)

// UserIDHeader carries the signed-in user's id from the frontend.
const UserIDHeader = "X-User-Id"

type RecruiterHandler struct {
	Recruiters *services.RecruiterService
}

func NewRecruiterHandler(s *services.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{Recruiters: s}
}

// recruiter resolves the caller and writes the error response when they may
// not use the recruiter endpoints.
func (h *RecruiterHandler) recruiter(c *gin.Context) (*models.User, bool) {
	user, err := h.Recruiters.Recruiter(c.Request.Context(), c.GetHeader(UserIDHeader))
	switch {
	case err == nil:
		return user, true
	case errors.Is(err, models.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrUserNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrRecruiterOnly):
		fail(c, http.StatusForbidden, err.Error())
	default:
		log.Error().Err(err).Msg("resolve recruiter")
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return nil, false
}

// ListJobs is the GET /recruiter/jobs endpoint
func (h *RecruiterHandler) ListJobs(c *gin.Context) {
	user, ok := h.recruiter(c)
	if !ok {
		return
	}
	jobs, err := h.Recruiters.ListJobs(c.Request.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("recruiter", user.ID).Msg("list recruiter jobs")
		fail(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// CreateJob is the POST /recruiter/jobs endpoint
func (h *RecruiterHandler) CreateJob(c *gin.Context) {
	user, ok := h.recruiter(c)
	if !ok {
		return
	}
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	job, err := h.Recruiters.CreateJob(c.Request.Context(), user, &req)
	if errors.Is(err, models.ErrInvalidDate) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Str("recruiter", user.ID).Msg("create recruiter job")
		fail(c, http.StatusInternalServerError, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

// Activity is the GET /recruiter/activity endpoint. Database failures answer
// with an empty feed.
func (h *RecruiterHandler) Activity(c *gin.Context) {
	user, ok := h.recruiter(c)
	if !ok {
		return
	}
	feed, total, err := h.Recruiters.Activity(c.Request.Context(), user)
	if err != nil {
		log.Warn().Err(err).Str("recruiter", user.ID).Msg("recruiter activity unavailable")
		c.JSON(http.StatusOK, dtos.ActivityResponse{
			Success:    true,
			Activities: []dtos.Activity{},
			Error:      "Database connection issue - showing empty activities",
		})
		return
	}
	c.JSON(http.StatusOK, dtos.ActivityResponse{Success: true, Activities: feed, Total: total})
}

// RecentApplications is the GET /recruiter/recent-applications endpoint
func (h *RecruiterHandler) RecentApplications(c *gin.Context) {
	list, sample, err := h.Recruiters.RecentApplications(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("recent recruiter applications")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	msg := "Real recruiter application data found"
	if sample {
		msg = "Using sample recruiter application data - no real recruiter applications found"
	}
	c.JSON(http.StatusOK, dtos.RecentApplicationsResponse{RecentActivity: list, Message: msg})
}

// ApplicationTrends is the GET /admin/application-trends endpoint
func (h *RecruiterHandler) ApplicationTrends(c *gin.Context) {
	points, err := h.Recruiters.ApplicationTrends(c.Request.Context(), c.DefaultQuery("range", "7d"))
	if err != nil {
		log.Error().Err(err).Msg("application trends")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"application_trends": points})
}
