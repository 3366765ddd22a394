package dtos

import "time"

// CreateJobRequest is the body of POST /recruiter/jobs. Enum fields use the
// widget spelling (entry-level, onsite, ...) and are mapped before storage.
type CreateJobRequest struct {
	JobTitle            string   `json:"job_title"`
	JobDescription      string   `json:"job_description"`
	Industry            string   `json:"industry"`
	Department          string   `json:"department"`
	WorkType            string   `json:"work_type"`
	WorkArrangement     string   `json:"work_arrangement"`
	ExperienceLevel     string   `json:"experience_level"`
	SalaryMin           int      `json:"salary_min"`
	SalaryMax           int      `json:"salary_max"`
	Currency            string   `json:"currency"`
	SalaryType          string   `json:"salary_type"`
	ApplicationDeadline string   `json:"application_deadline"`
	Priority            string   `json:"priority"`
	Shift               string   `json:"shift"`
	Requirements        []string `json:"requirements"`
	Responsibilities    []string `json:"responsibilities"`
	Benefits            []string `json:"benefits"`
	Skills              []string `json:"skills"`
}

// JobView is a recruiter job as the dashboard lists it.
type JobView struct {
	ID                  string     `json:"id"`
	OriginalID          string     `json:"originalId"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Industry            string     `json:"industry"`
	Department          string     `json:"department"`
	ExperienceLevel     string     `json:"experienceLevel"`
	SalaryMin           int        `json:"salaryMin"`
	SalaryMax           int        `json:"salaryMax"`
	Status              string     `json:"status"`
	Company             string     `json:"company"`
	CreatedAt           time.Time  `json:"created_at"`
	WorkType            string     `json:"work_type"`
	WorkArrangement     string     `json:"work_arrangement"`
	Shift               string     `json:"shift"`
	Priority            string     `json:"priority"`
	Currency            string     `json:"currency"`
	SalaryType          string     `json:"salary_type"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Benefits            []string   `json:"benefits"`
	Skills              []string   `json:"skills"`
	SourceTable         string     `json:"source_table"`
}

// Activity is one entry of the recruiter activity feed.
type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
}

type ActivityResponse struct {
	Success    bool       `json:"success"`
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
	Error      string     `json:"error,omitempty"`
}

// RecentApplication is one row of the recent applications widget.
type RecentApplication struct {
	Type         string    `json:"type"`
	UserName     string    `json:"user_name"`
	UserAvatar   *string   `json:"user_avatar"`
	Action       string    `json:"action"`
	Score        *int      `json:"score"`
	ActivityTime time.Time `json:"activity_time"`
}

type RecentApplicationsResponse struct {
	RecentActivity []RecentApplication `json:"recent_activity"`
	Message        string              `json:"message"`
}

// TrendPoint is the application count for one day.
type TrendPoint struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	DisplayDate string `json:"displayDate"`
}
