package dtos

import (
	"encoding/json"
	"fmt"
)

// AutocompleteRequest is the body of POST /autocomplete. Type is role,
// industry or description; anything else is treated as role.
type AutocompleteRequest struct {
	Query     string `json:"query"`
	Type      string `json:"type"`
	Industry  string `json:"industry"`
	RoleTitle string `json:"roleTitle"`
}

type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

type CheckUsernameRequest struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

type CheckUsernameResponse struct {
	Available bool   `json:"available"`
	Username  string `json:"username"`
}

// FlexString accepts a JSON string or number. Salary fields arrive as
// either depending on the form that sent them.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = FlexString(n.String())
	return nil
}

// SyncUserRequest is the body of POST /user/sync, sent after sign-in.
type SyncUserRequest struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	Location      string `json:"location"`
	AvatarURL     string `json:"avatar_url"`
	Phone         string `json:"phone"`
	Bio           string `json:"bio"`
	Position      string `json:"position"`
	Company       string `json:"company"`
	CompletedData *bool  `json:"completed_data"`
	Birthday      string `json:"birthday"`
	Gender        string `json:"gender"`
	AdminLevel    string `json:"admin_level"`
}

// SyncedUser is the subset of the user echoed back by /user/sync.
type SyncedUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	AdminLevel string `json:"admin_level"`
}

type SyncUserResponse struct {
	Success bool       `json:"success"`
	Action  string     `json:"action"`
	User    SyncedUser `json:"user"`
}

// UpdateProfileRequest is the body of PUT /user/update-profile. Empty
// fields leave the stored value alone.
type UpdateProfileRequest struct {
	UserID       string `json:"userId"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Location     string `json:"location"`
	Position     string `json:"position"`
	Gender       string `json:"gender"`
	GenderCustom string `json:"gender_custom"`
	Birthday     string `json:"birthday"`
}

// UpdateWorkStatusRequest is the body of PUT /user/update-work-status.
// Empty and zero fields leave the stored value alone.
type UpdateWorkStatusRequest struct {
	UserID            string     `json:"userId"`
	CurrentEmployer   string     `json:"current_employer"`
	CurrentPosition   string     `json:"current_position"`
	CurrentSalary     FlexString `json:"current_salary"`
	NoticePeriodDays  int        `json:"notice_period_days"`
	CurrentMood       string     `json:"current_mood"`
	WorkStatus        string     `json:"work_status"`
	PreferredShift    string     `json:"preferred_shift"`
	ExpectedSalary    FlexString `json:"expected_salary"`
	ExpectedSalaryMin FlexString `json:"expected_salary_min"`
	ExpectedSalaryMax FlexString `json:"expected_salary_max"`
	WorkSetup         string     `json:"work_setup"`
}
