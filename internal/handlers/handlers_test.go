package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/database/dbtest"
	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/services"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

type counter struct{ n int }

func (c *counter) SessionOpened() { c.n++ }

type testAPI struct {
	router  *gin.Engine
	db      *gorm.DB
	store   *wizard.Store
	opened  *counter
	pricing *services.PricingService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	pricing := services.NewPricingService(db)
	pricing.Now = func() time.Time { return time.UnixMilli(1741942800000) }
	descriptions := services.NewDescriptionService(nil, nil)
	candidates := services.NewCandidateService(db, time.Minute, 5, nil)
	store := wizard.NewStore(wizard.Deps{
		Descriptions: descriptions,
		Candidates:   candidates,
		Pricing:      pricing,
	}, time.Hour)
	opened := &counter{}

	api := &API{
		Pricing:      NewPricingHandler(pricing, descriptions),
		Candidates:   NewCandidateHandler(candidates),
		Autocomplete: NewAutocompleteHandler(services.NewAutocompleteService(nil, nil)),
		Users:        NewUserHandler(services.NewUsernameService(db), services.NewUserService(db)),
		Recruiters:   NewRecruiterHandler(services.NewRecruiterService(db)),
		Wizard:       NewWizardHandler(store, opened),
	}
	r := gin.New()
	r.Use(RequestLogger())
	api.Register(r.Group("/api/v1"))

	return &testAPI{router: r, db: db, store: store, opened: opened, pricing: pricing}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(t)
	w := a.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSavePricingInfo(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodPost, "/api/v1/save-pricing-info", map[string]any{
		"teamSize": "3", "roleType": "same", "roles": "Accountant", "experience": "mid", "description": "Not provided",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[dtos.SavePricingResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "anonymous_1741942800000", resp.UserID)

	w = a.do(t, http.MethodPost, "/api/v1/save-pricing-info", map[string]any{"teamSize": "lots"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"team size must be a whole number from 1 to 100"}`, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/v1/save-pricing-info", map[string]any{"teamSize": "9999999999999"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/save-pricing-info", map[string]any{"roles": "Dev"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateJobDescription(t *testing.T) {
	a := newTestAPI(t)
	w := a.do(t, http.MethodPost, "/api/v1/generate-job-description", map[string]any{
		"teamSize": "2", "roleType": "different", "roles": "Dev, QA", "experience": "senior", "industry": "Tech",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dtos.GenerateDescriptionResponse](t, w)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Description, "The roles include: Dev, QA.")
}

func TestCandidateRoutes(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, a.db.Create(&[]models.Candidate{
		{ID: "a", FullName: "ana cruz", Position: "Bookkeeper", ExperienceYears: 3, Industry: "Finance", OverallScore: 70},
		{ID: "b", FullName: "ben reyes", Position: "Designer", ExperienceYears: 3, OverallScore: 80},
	}).Error)

	w := a.do(t, http.MethodGet, "/api/v1/candidates/recommendations?role=bookkeeper&experience=Mid&industry=Finance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[dtos.CandidatesResponse](t, w)
	require.Len(t, rec.Candidates, 1)
	assert.Equal(t, "Ana Cruz", rec.Candidates[0].Name)
	assert.True(t, rec.Candidates[0].IsRecommended)

	w = a.do(t, http.MethodGet, "/api/v1/candidates/recommendations", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/bpoc-users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[dtos.BPOCUsersResponse](t, w)
	assert.Equal(t, 2, users.Total)
	assert.True(t, users.Cached, "recommendations warmed the cache")
	assert.Equal(t, "b", users.Data[0].ID)
}

func TestRecommendationsDegradeToEmptyList(t *testing.T) {
	a := newTestAPI(t)
	sqlDB, err := a.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := a.do(t, http.MethodGet, "/api/v1/candidates/recommendations?role=dev", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"candidates":[]}`, w.Body.String())

	w = a.do(t, http.MethodGet, "/api/v1/bpoc-users", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAutocomplete(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodPost, "/api/v1/autocomplete", map[string]any{"query": "a"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/v1/autocomplete", map[string]any{"query": "software", "type": "role"})
	got := decode[[]dtos.Suggestion](t, w)
	require.Len(t, got, 3)
	assert.Equal(t, "Software Developer", got[0].Title)

	w = a.do(t, http.MethodPost, "/api/v1/autocomplete", map[string]any{"query": "acc", "type": "description", "roleTitle": "Bookkeeper"})
	assert.Contains(t, decode[string](t, w), "We are looking for a Bookkeeper")
}

func TestCheckUsernameRoute(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, a.db.Create(&models.User{ID: "u1", Email: "x@example.com", Username: "taken"}).Error)

	w := a.do(t, http.MethodPost, "/api/v1/user/check-username", map[string]any{"username": "Taken"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":false,"username":"taken"}`, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/v1/user/check-username", map[string]any{"username": "no"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/user/check-username", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username is required")
}

func TestWizardSessionFlow(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, a.db.Create(&models.Candidate{
		ID: "c1", FullName: "ana cruz", Position: "Software Developer", ExperienceYears: 4, Industry: "Technology",
	}).Error)

	w := a.do(t, http.MethodPost, "/api/v1/wizard/sessions", map[string]any{"userId": "user-7"})
	require.Equal(t, http.StatusCreated, w.Code)
	view := decode[dtos.SessionView](t, w)
	id := view.SessionID
	assert.Equal(t, wizard.StepTeamSize, view.State.CurrentStep)
	assert.Equal(t, 1, a.opened.n)

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/answer", map[string]any{"value": "abc"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	view = decode[dtos.SessionView](t, w)
	assert.Equal(t, wizard.StepTeamSize, view.State.CurrentStep)
	assert.NotEmpty(t, view.Error)

	for _, v := range []string{"1", "Technology", "Software Developer", "mid"} {
		w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/answer", map[string]any{"value": v})
		require.Equal(t, http.StatusOK, w.Code, v)
	}

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/description", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[dtos.DraftDescriptionResponse](t, w).Description, "We are seeking 1 professionals")

	for _, v := range []string{"Not provided", "hybrid"} {
		w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/answer", map[string]any{"value": v})
		require.Equal(t, http.StatusOK, w.Code, v)
	}

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/edit", map[string]any{"field": "teamSize"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[dtos.SessionView](t, w)
	assert.Equal(t, wizard.StepCandidateRecommendation, view.State.CurrentStep)
	assert.Equal(t, "hybrid", view.Fields["workplaceType"])

	var saved models.PricingInfo
	require.NoError(t, a.db.First(&saved).Error)
	assert.Equal(t, "user-7", saved.UserID)
	assert.Equal(t, "Software Developer", saved.Roles)

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+id+"/answer", map[string]any{"value": "yes"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[dtos.SessionView](t, w)
	assert.Equal(t, wizard.StepShowCandidates, view.State.CurrentStep)
	require.Len(t, view.State.Candidates, 1)
	assert.Equal(t, "c1", view.State.Candidates[0].ID)
}

func TestWizardSessionNotFoundAndClose(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(t, http.MethodGet, "/api/v1/wizard/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s := a.store.Open("")
	_, err := s.Answer(context.Background(), "2")
	require.NoError(t, err)

	w = a.do(t, http.MethodGet, "/api/v1/wizard/sessions/"+s.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[dtos.SessionView](t, w)
	assert.Equal(t, wizard.StepRoleType, view.State.CurrentStep)
	assert.Equal(t, "2", view.Fields["teamSize"])

	w = a.do(t, http.MethodPost, "/api/v1/wizard/sessions/"+s.ID+"/description", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodDelete, "/api/v1/wizard/sessions/"+s.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(t, http.MethodDelete, "/api/v1/wizard/sessions/"+s.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOpenSessionWithoutBody(t *testing.T) {
	a := newTestAPI(t)
	w := a.do(t, http.MethodPost, "/api/v1/wizard/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, a.store.Len())
}
