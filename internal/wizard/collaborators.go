package wizard

import (
	"context"
	"fmt"
	"strings"
)

// DescriptionRequest is what the description generator gets to work with.
type DescriptionRequest struct {
	TeamSize   string `json:"teamSize"`
	RoleType   string `json:"roleType"`
	Roles      string `json:"roles"`
	Experience string `json:"experience"`
	Industry   string `json:"industry"`
	Budget     string `json:"budget"`
}

// DescriptionGenerator writes a job description from the collected answers.
type DescriptionGenerator interface {
	Generate(ctx context.Context, req DescriptionRequest) (string, error)
}

// CandidateQuery selects candidates for the recommendation step.
// ExperienceLevel is one of entry, mid or senior.
type CandidateQuery struct {
	Role            string
	ExperienceLevel string
	Industry        string
}

// Candidate is one ranked recommendation.
type Candidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Position       string   `json:"position"`
	Experience     string   `json:"experience"`
	Skills         []string `json:"skills"`
	ExpectedSalary string   `json:"expectedSalary"`
	MatchScore     float64  `json:"matchScore"`
	IsRecommended  bool     `json:"isRecommended"`
}

// CandidateRecommender returns candidates ordered by descending MatchScore.
type CandidateRecommender interface {
	Recommend(ctx context.Context, q CandidateQuery) ([]Candidate, error)
}

// PricingSubmission is the one-shot record written when the summary is confirmed.
type PricingSubmission struct {
	UserID string
	Form   FormData
}

// PricingSaver persists a confirmed submission. Calls are not retried and not
// deduplicated.
type PricingSaver interface {
	SavePricingInfo(ctx context.Context, sub PricingSubmission) error
}

// DescriptionRequestFor builds the generator input from the form.
func DescriptionRequestFor(f FormData) DescriptionRequest {
	req := DescriptionRequest{
		RoleType:   f.RoleType,
		Roles:      strings.Join(f.Roles(), ", "),
		Experience: f.Experience,
		Industry:   f.Industry,
	}
	if f.TeamSize > 0 {
		req.TeamSize = fmt.Sprint(f.TeamSize)
	}
	return req
}

// FallbackDescription is used when the generator is unavailable.
func FallbackDescription(req DescriptionRequest) string {
	who := "professionals"
	if req.RoleType == RoleTypeSame {
		who = "team members"
	}
	roles := req.Roles
	if roles == "" {
		roles = "various roles"
	}
	return fmt.Sprintf("We are looking for %s %s in %s with %s experience. This is a great opportunity to work with an international team.",
		req.TeamSize, who, roles, ExperienceLabel(req.Experience))
}

// CandidateQueryFor keys the lookup by primary role, experience and industry.
// Mixed or per-member experience is queried as mid level.
func CandidateQueryFor(f FormData) CandidateQuery {
	level := f.Experience
	if level == "" && len(f.Members) > 0 {
		level = f.Members[0].Experience
	}
	switch level {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
	default:
		level = ExperienceMid
	}
	return CandidateQuery{
		Role:            f.PrimaryRole(),
		ExperienceLevel: level,
		Industry:        f.Industry,
	}
}
