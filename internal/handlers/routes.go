package handlers

import "github.com/gin-gonic/gin"

// API bundles the handlers served under /api/v1.
type API struct {
	Pricing      *PricingHandler
	Candidates   *CandidateHandler
	Autocomplete *AutocompleteHandler
	Users        *UserHandler
	Recruiters   *RecruiterHandler
	Wizard       *WizardHandler
}

// Register mounts every route on r.
func (a *API) Register(r gin.IRouter) {
	r.GET("/health", HealthCheck)

	// Pricing widget
	r.POST("/save-pricing-info", a.Pricing.SavePricing)
	r.POST("/generate-job-description", a.Pricing.GenerateDescription)
	r.POST("/autocomplete", a.Autocomplete.Suggest)

	// BPOC candidates
	r.GET("/candidates/recommendations", a.Candidates.Recommendations)
	r.GET("/bpoc-users", a.Candidates.BPOCUsers)
	r.POST("/user/check-username", a.Users.CheckUsername)
	r.GET("/user/sync", a.Users.SyncInfo)
	r.POST("/user/sync", a.Users.Sync)
	r.PUT("/user/update-profile", a.Users.UpdateProfile)
	r.PUT("/user/update-work-status", a.Users.UpdateWorkStatus)

	// Recruiter dashboard
	r.GET("/recruiter/jobs", a.Recruiters.ListJobs)
	r.POST("/recruiter/jobs", a.Recruiters.CreateJob)
	r.GET("/recruiter/activity", a.Recruiters.Activity)
	r.GET("/recruiter/recent-applications", a.Recruiters.RecentApplications)
	r.GET("/admin/application-trends", a.Recruiters.ApplicationTrends)

	w := r.Group("/wizard/sessions")
	{
		w.POST("", a.Wizard.Open)
		w.GET("/:id", a.Wizard.Get)
		w.POST("/:id/answer", a.Wizard.Answer)
		w.POST("/:id/confirm", a.Wizard.Confirm)
		w.POST("/:id/edit", a.Wizard.Edit)
		w.POST("/:id/description", a.Wizard.Description)
		w.DELETE("/:id", a.Wizard.Close)
	}
}
