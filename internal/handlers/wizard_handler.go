package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// SessionCounter is told whenever a widget session opens.
type SessionCounter interface {
	SessionOpened()
}

// WizardHandler exposes the pricing wizard sessions over HTTP.
type WizardHandler struct {
	Store   *wizard.Store
	Counter SessionCounter
}

func NewWizardHandler(store *wizard.Store, counter SessionCounter) *WizardHandler {
	return &WizardHandler{Store: store, Counter: counter}
}

// Open is the POST /wizard/sessions endpoint
func (h *WizardHandler) Open(c *gin.Context) {
	var req dtos.OpenSessionRequest
	// The body is optional.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
			return
		}
	}
	s := h.Store.Open(req.UserID)
	if h.Counter != nil {
		h.Counter.SessionOpened()
	}
	c.JSON(http.StatusCreated, dtos.NewSessionView(s.ID, s.Snapshot()))
}

// Get is the GET /wizard/sessions/:id endpoint
func (h *WizardHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dtos.NewSessionView(s.ID, s.Snapshot()))
}

// Answer is the POST /wizard/sessions/:id/answer endpoint
func (h *WizardHandler) Answer(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req dtos.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	st, err := s.Answer(c.Request.Context(), req.Value)
	h.respond(c, s.ID, st, err)
}

// Confirm is the POST /wizard/sessions/:id/confirm endpoint
func (h *WizardHandler) Confirm(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	st, err := s.Confirm(c.Request.Context())
	h.respond(c, s.ID, st, err)
}

// Edit is the POST /wizard/sessions/:id/edit endpoint
func (h *WizardHandler) Edit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req dtos.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	st, err := s.Edit(req.Field)
	h.respond(c, s.ID, st, err)
}

// Description is the POST /wizard/sessions/:id/description endpoint. It
// returns a draft; the visitor still submits the text as their answer.
func (h *WizardHandler) Description(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	text, err := s.GenerateDescription(c.Request.Context())
	if err != nil {
		h.respond(c, s.ID, s.Snapshot(), err)
		return
	}
	c.JSON(http.StatusOK, dtos.DraftDescriptionResponse{Success: true, Description: text})
}

// Close is the DELETE /wizard/sessions/:id endpoint
func (h *WizardHandler) Close(c *gin.Context) {
	if err := h.Store.Close(c.Param("id")); err != nil {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	s, err := h.Store.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}

func (h *WizardHandler) respond(c *gin.Context, id string, st wizard.State, err error) {
	view := dtos.NewSessionView(id, st)
	if err == nil {
		c.JSON(http.StatusOK, view)
		return
	}
	view.Error = err.Error()
	c.JSON(wizardStatus(err), view)
}

func wizardStatus(err error) int {
	switch {
	case errors.Is(err, wizard.ErrInvalidInput),
		errors.Is(err, wizard.ErrInvalidChoice),
		errors.Is(err, wizard.ErrImmutableField),
		errors.Is(err, wizard.ErrUnknownField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wizard.ErrUnexpectedEvent), errors.Is(err, wizard.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrSessionNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
