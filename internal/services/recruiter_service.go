package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
)

// Recruiter job statuses.
const (
	JobStatusNewRequest = "new_request"
	JobStatusActive     = "active"
	JobStatusInactive   = "inactive"
	JobStatusClosed     = "closed"
)

const (
	activityJobLimit         = 10
	activityApplicationLimit = 20
	activityFeedLimit        = 20
	recentApplicationsLimit  = 10
)

// RecruiterService backs the recruiter dashboard: job requests, the activity
// feed and application statistics.
type RecruiterService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRecruiterService(db *gorm.DB) *RecruiterService {
	return &RecruiterService{DB: db, Now: time.Now}
}

// Recruiter loads userID and checks it is a recruiter account.
func (s *RecruiterService) Recruiter(ctx context.Context, userID string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, models.ErrUnauthorized
	}
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("recruiter: load user: %w", err)
	}
	if user.AdminLevel != models.AdminLevelRecruiter {
		return nil, models.ErrRecruiterOnly
	}
	return &user, nil
}

// ListJobs returns the recruiter's jobs, newest first.
func (s *RecruiterService) ListJobs(ctx context.Context, recruiterID string) ([]dtos.JobView, error) {
	var rows []models.RecruiterJob
	if err := s.DB.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("recruiter: list jobs: %w", err)
	}
	out := make([]dtos.JobView, len(rows))
	for i, row := range rows {
		out[i] = jobView(row, i)
	}
	return out, nil
}

// CreateJob stores a new job request for recruiter. It always starts as a
// new request.
func (s *RecruiterService) CreateJob(ctx context.Context, recruiter *models.User, req *dtos.CreateJobRequest) (*models.RecruiterJob, error) {
	deadline, err := parseDate(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}
	job := &models.RecruiterJob{
		RecruiterID:         recruiter.ID,
		CompanyID:           recruiter.Company,
		JobTitle:            req.JobTitle,
		JobDescription:      req.JobDescription,
		Industry:            req.Industry,
		Department:          req.Department,
		WorkType:            req.WorkType,
		WorkArrangement:     MapWorkArrangement(req.WorkArrangement),
		ExperienceLevel:     MapExperienceLevel(req.ExperienceLevel),
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Currency:            req.Currency,
		SalaryType:          req.SalaryType,
		ApplicationDeadline: deadline,
		Priority:            MapPriority(req.Priority),
		Shift:               MapShift(req.Shift),
		Requirements:        orEmpty(req.Requirements),
		Responsibilities:    orEmpty(req.Responsibilities),
		Benefits:            orEmpty(req.Benefits),
		Skills:              orEmpty(req.Skills),
		Status:              JobStatusNewRequest,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("recruiter: create job: %w", err)
	}
	log.Info().Uint("job", job.ID).Str("recruiter", recruiter.ID).Msg("recruiter job created")
	return job, nil
}

// MapExperienceLevel converts the widget spelling to the stored enum.
func MapExperienceLevel(level string) string {
	switch level {
	case "mid-level":
		return "mid_level"
	case "senior-level":
		return "senior_level"
	}
	return "entry_level"
}

func MapWorkArrangement(v string) string {
	return oneOf(v, "onsite", "onsite", "remote", "hybrid")
}

func MapPriority(v string) string {
	return oneOf(v, "medium", "low", "medium", "high", "urgent")
}

func MapShift(v string) string {
	return oneOf(v, "day", "day", "night", "both")
}

func oneOf(v, def string, allowed ...string) string {
	if slices.Contains(allowed, v) {
		return v
	}
	return def
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func jobView(row models.RecruiterJob, index int) dtos.JobView {
	return dtos.JobView{
		ID:                  fmt.Sprintf("recruiter_jobs_%d_%d", row.ID, index),
		OriginalID:          fmt.Sprint(row.ID),
		Title:               orDefault(row.JobTitle, "Untitled Role"),
		Description:         orDefault(row.JobDescription, "No description available"),
		Industry:            orDefault(row.Industry, "Not Specified"),
		Department:          orDefault(row.Department, "Not Specified"),
		ExperienceLevel:     orDefault(row.ExperienceLevel, "Not Specified"),
		SalaryMin:           row.SalaryMin,
		SalaryMax:           row.SalaryMax,
		Status:              orDefault(row.Status, JobStatusInactive),
		Company:             orDefault(row.CompanyID, "Unknown Company"),
		CreatedAt:           row.CreatedAt,
		WorkType:            row.WorkType,
		WorkArrangement:     row.WorkArrangement,
		Shift:               row.Shift,
		Priority:            row.Priority,
		Currency:            row.Currency,
		SalaryType:          row.SalaryType,
		ApplicationDeadline: row.ApplicationDeadline,
		Requirements:        orEmpty(row.Requirements),
		Responsibilities:    orEmpty(row.Responsibilities),
		Benefits:            orEmpty(row.Benefits),
		Skills:              orEmpty(row.Skills),
		SourceTable:         "recruiter_jobs",
	}
}

var friendlyJobStatus = map[string]string{
	JobStatusNewRequest: "new request",
	JobStatusActive:     "active",
	JobStatusInactive:   "inactive",
	JobStatusClosed:     "closed",
}

// Activity builds the recruiter's feed: jobs posted, job status changes and
// applications to their jobs, newest first. The total counts every entry
// before the feed is capped.
func (s *RecruiterService) Activity(ctx context.Context, recruiter *models.User) ([]dtos.Activity, int, error) {
	db := s.DB.WithContext(ctx)
	company := orDefault(recruiter.Company, "Your Company")

	var posted, changed []models.RecruiterJob
	if err := db.Where("recruiter_id = ?", recruiter.ID).
		Order("created_at DESC").Limit(activityJobLimit).Find(&posted).Error; err != nil {
		return nil, 0, fmt.Errorf("recruiter: activity jobs: %w", err)
	}
	if err := db.Where("recruiter_id = ?", recruiter.ID).
		Order("updated_at DESC").Limit(activityJobLimit).Find(&changed).Error; err != nil {
		return nil, 0, fmt.Errorf("recruiter: activity status changes: %w", err)
	}

	var apps []models.RecruiterApplication
	if err := db.Where("job_id IN (?)", db.Model(&models.RecruiterJob{}).Select("id").Where("recruiter_id = ?", recruiter.ID)).
		Order("updated_at DESC").Limit(activityApplicationLimit).Find(&apps).Error; err != nil {
		return nil, 0, fmt.Errorf("recruiter: activity applications: %w", err)
	}
	titles, err := s.jobTitles(ctx, jobIDs(apps))
	if err != nil {
		return nil, 0, err
	}
	names, err := s.userNames(ctx, userIDs(apps))
	if err != nil {
		return nil, 0, err
	}

	var feed []dtos.Activity
	for _, job := range posted {
		feed = append(feed, dtos.Activity{
			ID:        fmt.Sprintf("job-%d", job.ID),
			Type:      "job_posted",
			Title:     fmt.Sprintf("%s posted new job request: %s", company, job.JobTitle),
			Timestamp: job.CreatedAt,
			Status:    "active",
			Icon:      "briefcase",
			Color:     "blue",
		})
	}
	for _, job := range changed {
		if job.UpdatedAt.IsZero() || job.UpdatedAt.Equal(job.CreatedAt) {
			continue
		}
		status := orDefault(friendlyJobStatus[job.Status], job.Status)
		feed = append(feed, dtos.Activity{
			ID:        fmt.Sprintf("status-%d", job.ID),
			Type:      "status_change",
			Title:     fmt.Sprintf("%s changed the job status for %s to: %s", company, job.JobTitle, status),
			Timestamp: job.UpdatedAt,
			Status:    "updated",
			Icon:      "edit",
			Color:     "orange",
		})
	}
	for _, app := range apps {
		name := orDefault(names[app.UserID], "Unknown User")
		title := orDefault(titles[app.JobID], "Unknown Position")
		switch app.Status {
		case "hired":
			feed = append(feed, dtos.Activity{
				ID:        fmt.Sprintf("hire-%d", app.ID),
				Type:      "hired",
				Title:     fmt.Sprintf("Successfully hired %s for the %s position", name, title),
				Timestamp: app.UpdatedAt,
				Status:    "completed",
				Icon:      "check-circle",
				Color:     "green",
			})
		case "submitted", "applied":
			feed = append(feed, dtos.Activity{
				ID:        fmt.Sprintf("application-%d", app.ID),
				Type:      "application",
				Title:     fmt.Sprintf("Received application from %s for the %s position", name, title),
				Timestamp: app.CreatedAt,
				Status:    "pending",
				Icon:      "user-plus",
				Color:     "purple",
			})
		case "rejected", "interviewed", "shortlisted":
			feed = append(feed, dtos.Activity{
				ID:        fmt.Sprintf("app-status-%d", app.ID),
				Type:      "application_status",
				Title:     fmt.Sprintf("%s set the application status for %s to %s", company, title, app.Status),
				Timestamp: app.UpdatedAt,
				Status:    "updated",
				Icon:      "edit",
				Color:     "blue",
			})
		}
	}

	slices.SortStableFunc(feed, func(a, b dtos.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	total := len(feed)
	if len(feed) > activityFeedLimit {
		feed = feed[:activityFeedLimit]
	}
	if feed == nil {
		feed = []dtos.Activity{}
	}
	return feed, total, nil
}

// RecentApplications lists the latest applications to recruiter jobs. When
// there are none it returns placeholder rows and sample is true.
func (s *RecruiterService) RecentApplications(ctx context.Context) (list []dtos.RecentApplication, sample bool, err error) {
	var apps []models.RecruiterApplication
	if err := s.DB.WithContext(ctx).
		Where("user_id IN (?)", s.DB.Model(&models.User{}).Select("id")).
		Order("created_at DESC").Limit(recentApplicationsLimit).
		Find(&apps).Error; err != nil {
		return nil, false, fmt.Errorf("recruiter: recent applications: %w", err)
	}
	if len(apps) == 0 {
		return sampleApplications(s.now()), true, nil
	}

	titles, err := s.jobTitles(ctx, jobIDs(apps))
	if err != nil {
		return nil, false, err
	}
	var users []models.User
	if err := s.DB.WithContext(ctx).Where("id IN ?", userIDs(apps)).Find(&users).Error; err != nil {
		return nil, false, fmt.Errorf("recruiter: recent applicants: %w", err)
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	list = make([]dtos.RecentApplication, 0, len(apps))
	for _, app := range apps {
		u := byID[app.UserID]
		var avatar *string
		if u.AvatarURL != "" {
			avatar = &u.AvatarURL
		}
		list = append(list, dtos.RecentApplication{
			Type:         "applicants",
			UserName:     u.FullName,
			UserAvatar:   avatar,
			Action:       "Applied for: " + orDefault(titles[app.JobID], "Job Position"),
			ActivityTime: app.CreatedAt,
		})
	}
	return list, false, nil
}

func sampleApplications(now time.Time) []dtos.RecentApplication {
	rows := []struct{ name, job string }{
		{"John Doe", "Customer Service Representative"},
		{"Jane Smith", "Technical Support Specialist"},
		{"Mike Johnson", "Sales Representative"},
		{"Sarah Wilson", "Data Entry Specialist"},
		{"David Brown", "Customer Service Representative"},
	}
	out := make([]dtos.RecentApplication, len(rows))
	for i, r := range rows {
		out[i] = dtos.RecentApplication{
			Type:         "applicants",
			UserName:     r.name,
			Action:       "Applied for: " + r.job,
			ActivityTime: now.Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

var trendRanges = map[string]int{"7d": 7, "30d": 30, "90d": 90}

// ApplicationTrends counts job board applications per day over the last 7,
// 30 or 90 days, today included. Unknown ranges mean 7 days.
func (s *RecruiterService) ApplicationTrends(ctx context.Context, rng string) ([]dtos.TrendPoint, error) {
	days, ok := trendRanges[strings.ToLower(strings.TrimSpace(rng))]
	if !ok {
		days = 7
	}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(days - 1))

	var apps []models.Application
	if err := s.DB.WithContext(ctx).Select("id", "created_at").
		Where("created_at >= ?", start).
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("recruiter: application trends: %w", err)
	}
	counts := make(map[string]int, days)
	for _, a := range apps {
		counts[a.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	out := make([]dtos.TrendPoint, days)
	for i := range out {
		d := start.AddDate(0, 0, i)
		key := d.Format(time.DateOnly)
		out[i] = dtos.TrendPoint{Date: key, Count: counts[key], DisplayDate: d.Format("Jan 02")}
	}
	return out, nil
}

func (s *RecruiterService) jobTitles(ctx context.Context, ids []uint) (map[uint]string, error) {
	titles := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}
	var jobs []models.RecruiterJob
	if err := s.DB.WithContext(ctx).Select("id", "job_title").Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("recruiter: job titles: %w", err)
	}
	for _, j := range jobs {
		titles[j.ID] = j.JobTitle
	}
	return titles, nil
}

func (s *RecruiterService) userNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var users []models.User
	if err := s.DB.WithContext(ctx).Select("id", "full_name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("recruiter: user names: %w", err)
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}

func jobIDs(apps []models.RecruiterApplication) []uint {
	var ids []uint
	for _, a := range apps {
		if !slices.Contains(ids, a.JobID) {
			ids = append(ids, a.JobID)
		}
	}
	return ids
}

func userIDs(apps []models.RecruiterApplication) []string {
	var ids []string
	for _, a := range apps {
		if !slices.Contains(ids, a.UserID) {
			ids = append(ids, a.UserID)
		}
	}
	return ids
}

func (s *RecruiterService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
