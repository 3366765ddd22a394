package wizard

import (
	"fmt"
	"strconv"
	"time"
)

// Step identifies which question the wizard is currently asking.
type Step string

const (
	StepTeamSize                Step = "teamSize"
	StepRoleType                Step = "roleType"
	StepIndustry                Step = "industry"
	StepIndividualRoles         Step = "individualRoles"
	StepExperienceSetup         Step = "experienceSetup"
	StepExperience              Step = "experience"
	StepExperienceIndividual    Step = "experienceIndividual"
	StepDescription             Step = "description"
	StepWorkplaceSetup          Step = "workplaceSetup"
	StepWorkplaceType           Step = "workplaceType"
	StepWorkplaceIndividual     Step = "workplaceIndividual"
	StepSummary                 Step = "summary"
	StepCandidateRecommendation Step = "candidateRecommendation"
	StepShowCandidates          Step = "showCandidates"
	StepNone                    Step = "none"
)

// AllSteps lists every step in flow order, terminal last.
var AllSteps = []Step{
	StepTeamSize, StepRoleType, StepIndustry, StepIndividualRoles,
	StepExperienceSetup, StepExperience, StepExperienceIndividual,
	StepDescription, StepWorkplaceSetup, StepWorkplaceType, StepWorkplaceIndividual,
	StepSummary, StepCandidateRecommendation, StepShowCandidates, StepNone,
}

// PerMember reports whether the step loops once per team member.
func (s Step) PerMember() bool {
	switch s {
	case StepIndividualRoles, StepExperienceIndividual, StepWorkplaceIndividual:
		return true
	}
	return false
}

// Choice answers accepted by the branching steps.
const (
	RoleTypeSame      = "same"
	RoleTypeDifferent = "different"

	AnswerYes = "yes"
	AnswerNo  = "no"

	NotProvided = "Not provided"
)

// Experience levels.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
	ExperienceMixed  = "mixed"
)

// Workplace arrangements.
const (
	WorkplaceHome   = "work-from-home"
	WorkplaceHybrid = "hybrid"
	WorkplaceOffice = "full-office"
)

var (
	experienceLevels = []string{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceMixed}
	workplaceTypes   = []string{WorkplaceHome, WorkplaceHybrid, WorkplaceOffice}
)

// Member is one role slot within the requested team.
type Member struct {
	Role       string `json:"role,omitempty"`
	Experience string `json:"experience,omitempty"`
	Workplace  string `json:"workplace,omitempty"`
}

// FormData is everything the wizard has collected so far.
type FormData struct {
	TeamSize        int      `json:"teamSize,omitempty"`
	RoleType        string   `json:"roleType,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	ExperienceSetup string   `json:"experienceSetup,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Description     string   `json:"description,omitempty"`
	WorkplaceSetup  string   `json:"workplaceSetup,omitempty"`
	WorkplaceType   string   `json:"workplaceType,omitempty"`
	Members         []Member `json:"members,omitempty"`
}

// Fields flattens the form into the widget's string-keyed layout
// (teamSize, member1Role, member2Experience, ...). Unset fields are omitted.
func (f FormData) Fields() map[string]string {
	out := make(map[string]string)
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	if f.TeamSize > 0 {
		out["teamSize"] = strconv.Itoa(f.TeamSize)
	}
	put("roleType", f.RoleType)
	put("industry", f.Industry)
	put("experienceSetup", f.ExperienceSetup)
	put("experience", f.Experience)
	put("description", f.Description)
	put("workplaceSetup", f.WorkplaceSetup)
	put("workplaceType", f.WorkplaceType)
	for i, m := range f.Members {
		n := i + 1
		put(fmt.Sprintf("member%dRole", n), m.Role)
		put(fmt.Sprintf("member%dExperience", n), m.Experience)
		put(fmt.Sprintf("member%dWorkplace", n), m.Workplace)
	}
	return out
}

// Roles returns the distinct member roles in member order.
func (f FormData) Roles() []string {
	seen := make(map[string]bool)
	var roles []string
	for _, m := range f.Members {
		if m.Role == "" || seen[m.Role] {
			continue
		}
		seen[m.Role] = true
		roles = append(roles, m.Role)
	}
	return roles
}

// PrimaryRole is the first member's role, used to look up candidates.
func (f FormData) PrimaryRole() string {
	if len(f.Members) == 0 {
		return ""
	}
	return f.Members[0].Role
}

// Clone returns a deep copy so callers can't mutate session state.
func (f FormData) Clone() FormData {
	c := f
	if f.Members != nil {
		c.Members = make([]Member, len(f.Members))
		copy(c.Members, f.Members)
	}
	return c
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat bubble in the transcript.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the full wizard state for one widget session.
type State struct {
	CurrentStep   Step        `json:"currentStep"`
	Form          FormData    `json:"formData"`
	CurrentMember int         `json:"currentMember"`
	Transcript    []Message   `json:"transcript"`
	Candidates    []Candidate `json:"candidateRecommendations"`
}

// NewState returns the state of a freshly opened widget.
func NewState() State {
	return State{CurrentStep: StepTeamSize, CurrentMember: 1}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Form = s.Form.Clone()
	if s.Transcript != nil {
		c.Transcript = make([]Message, len(s.Transcript))
		copy(c.Transcript, s.Transcript)
	}
	if s.Candidates != nil {
		c.Candidates = make([]Candidate, len(s.Candidates))
		copy(c.Candidates, s.Candidates)
	}
	return c
}

// Done reports whether the wizard has reached the terminal step.
func (s State) Done() bool {
	return s.CurrentStep == StepNone
}
