package models

import (
	"time"

	"gorm.io/gorm"
)

// PricingInfo is one confirmed pricing request from the Maya widget.
// Duplicate submissions are stored as separate rows.
type PricingInfo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID        string `gorm:"index;not null" json:"user_id"`
	TeamSize      int    `gorm:"not null" json:"team_size"`
	RoleType      string `json:"role_type"`
	Roles         string `gorm:"type:text" json:"roles"`
	Experience    string `json:"experience"`
	Industry      string `json:"industry"`
	Description   string `gorm:"type:text" json:"description"`
	WorkplaceType string `json:"workplace_type"`

	// Per-member answers, member 1 first.
	Members []MemberInfo `gorm:"serializer:json" json:"members"`
	// Flat widget layout (teamSize, member1Role, ...).
	FormData map[string]string `gorm:"serializer:json" json:"form_data"`
}

type MemberInfo struct {
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Workplace  string `json:"workplace"`
}

// Candidate mirrors a row of the BPOC v_user_complete_data view.
type Candidate struct {
	ID        string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName        string   `gorm:"not null" json:"full_name"`
	Position        string   `gorm:"index" json:"position"`
	Industry        string   `json:"industry"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	ExpectedSalary  string   `json:"expected_salary"`
	OverallScore    float64  `json:"overall_score"`
}

// User is a BPOC platform account.
type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Username     string     `gorm:"index" json:"username"`
	Slug         string     `json:"slug"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	FullName     string     `json:"full_name"`
	Location     string     `json:"location"`
	AvatarURL    string     `json:"avatar_url"`
	Phone        string     `json:"phone"`
	Bio          string     `gorm:"type:text" json:"bio"`
	Position     string     `json:"position"`
	Company      string     `json:"company"`
	Gender       string     `json:"gender"`
	GenderCustom string     `json:"gender_custom"`
	Birthday     *time.Time `json:"birthday"`
	// CompletedData never flips back to false once the profile is complete.
	CompletedData bool   `json:"completed_data"`
	AdminLevel    string `gorm:"not null;default:user" json:"admin_level"`
}

// Admin levels.
const (
	AdminLevelUser      = "user"
	AdminLevelRecruiter = "recruiter"
	AdminLevelAdmin     = "admin"
)

// WorkStatus is a row of user_work_status: where a candidate works now and
// what they are looking for.
type WorkStatus struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentEmployer    string `json:"current_employer"`
	CurrentPosition    string `json:"current_position"`
	CurrentSalary      string `json:"current_salary"`
	NoticePeriodDays   int    `json:"notice_period_days"`
	CurrentMood        string `json:"current_mood"`
	WorkStatus         string `json:"work_status"`
	PreferredShift     string `json:"preferred_shift"`
	ExpectedSalary     string `json:"expected_salary"`
	MinimumSalaryRange string `json:"minimum_salary_range"`
	MaximumSalaryRange string `json:"maximum_salary_range"`
	WorkSetup          string `json:"work_setup"`
}

func (WorkStatus) TableName() string { return "user_work_status" }

// RecruiterJob is a job request posted by a recruiter.
type RecruiterJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RecruiterID         string     `gorm:"index;not null" json:"recruiter_id"`
	CompanyID           string     `json:"company_id"`
	JobTitle            string     `json:"job_title"`
	JobDescription      string     `gorm:"type:text" json:"job_description"`
	Industry            string     `json:"industry"`
	Department          string     `json:"department"`
	WorkType            string     `json:"work_type"`
	WorkArrangement     string     `json:"work_arrangement"`
	ExperienceLevel     string     `json:"experience_level"`
	SalaryMin           int        `json:"salary_min"`
	SalaryMax           int        `json:"salary_max"`
	Currency            string     `json:"currency"`
	SalaryType          string     `json:"salary_type"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Priority            string     `json:"priority"`
	Shift               string     `json:"shift"`
	Requirements        []string   `gorm:"serializer:json" json:"requirements"`
	Responsibilities    []string   `gorm:"serializer:json" json:"responsibilities"`
	Benefits            []string   `gorm:"serializer:json" json:"benefits"`
	Skills              []string   `gorm:"serializer:json" json:"skills"`
	Status              string     `gorm:"not null;default:new_request" json:"status"`
}

// RecruiterApplication is a candidate's application to a RecruiterJob.
type RecruiterApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"index;not null" json:"user_id"`
	JobID  uint   `gorm:"index" json:"job_id"`
	Status string `json:"status"`
}

// Application is an application to a job on the public board.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	UserID string `gorm:"index;not null" json:"user_id"`
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}
