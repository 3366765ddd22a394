package dtos

import "github.com/justsurfingit/maya-pricing/internal/wizard"

type OpenSessionRequest struct {
	UserID string `json:"userId"`
}

type AnswerRequest struct {
	Value string `json:"value"`
}

type EditRequest struct {
	Field string `json:"field" binding:"required"`
}

// SessionView is what the widget renders: the state plus the active prompt.
type SessionView struct {
	SessionID string            `json:"sessionId"`
	State     wizard.State      `json:"state"`
	Fields    map[string]string `json:"fields"`
	Prompt    wizard.Prompt     `json:"prompt"`
	Error     string            `json:"error,omitempty"`
}

func NewSessionView(id string, st wizard.State) SessionView {
	return SessionView{
		SessionID: id,
		State:     st,
		Fields:    st.Form.Fields(),
		Prompt:    wizard.PromptFor(st),
	}
}

type DraftDescriptionResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}
