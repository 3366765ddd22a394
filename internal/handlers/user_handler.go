package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/services"
)

type UserHandler struct {
	Usernames *services.UsernameService
	Users     *services.UserService
}

func NewUserHandler(names *services.UsernameService, users *services.UserService) *UserHandler {
	return &UserHandler{Usernames: names, Users: users}
}

// CheckUsername is the POST /user/check-username endpoint
func (h *UserHandler) CheckUsername(c *gin.Context) {
	var req dtos.CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	ok, name, err := h.Usernames.CheckUsername(c.Request.Context(), req.Username, req.UserID)
	switch {
	case errors.Is(err, models.ErrUsernameRequired), errors.Is(err, models.ErrInvalidUsername):
		fail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("username", name).Msg("check username")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, dtos.CheckUsernameResponse{Available: ok, Username: name})
}

// SyncInfo is the GET /user/sync endpoint
func (h *UserHandler) SyncInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "User sync API is working",
		"methods":   []string{http.MethodGet, http.MethodPost},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Sync is the POST /user/sync endpoint
func (h *UserHandler) Sync(c *gin.Context) {
	var req dtos.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	user, action, err := h.Users.Sync(c.Request.Context(), &req)
	if err != nil {
		userError(c, err, "sync user")
		return
	}
	c.JSON(http.StatusOK, dtos.SyncUserResponse{
		Success: true,
		Action:  action,
		User: dtos.SyncedUser{
			ID:         user.ID,
			Email:      user.Email,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			AdminLevel: user.AdminLevel,
		},
	})
}

// UpdateProfile is the PUT /user/update-profile endpoint
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	user, err := h.Users.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		userError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdateWorkStatus is the PUT /user/update-work-status endpoint
func (h *UserHandler) UpdateWorkStatus(c *gin.Context) {
	var req dtos.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	ws, err := h.Users.UpdateWorkStatus(c.Request.Context(), &req)
	if err != nil {
		userError(c, err, "update work status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workStatus": ws})
}

func userError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, models.ErrMissingUserFields),
		errors.Is(err, models.ErrUserIDRequired),
		errors.Is(err, models.ErrInvalidUsername),
		errors.Is(err, models.ErrInvalidDate):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrUserNotFound), errors.Is(err, models.ErrWorkStatusNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg(op)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
