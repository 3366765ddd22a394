package wizard

import (
	"fmt"
	"strings"
)

// EventKind tags what the user did on the active step.
type EventKind int

const (
	// EventAnswer submits a value for the active step.
	EventAnswer EventKind = iota
	// EventConfirm accepts the summary.
	EventConfirm
	// EventEdit jumps from the summary back to the step owning Value.
	EventEdit
)

func (k EventKind) String() string {
	switch k {
	case EventAnswer:
		return "answer"
	case EventConfirm:
		return "confirm"
	case EventEdit:
		return "edit"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one user input against the wizard.
type Event struct {
	Kind  EventKind
	Value string
}

func Answer(v string) Event { return Event{Kind: EventAnswer, Value: v} }
func Confirm() Event { return Event{Kind: EventConfirm} }
func Edit(field string) Event { return Event{Kind: EventEdit, Value: field} }

// Advance applies ev to s and returns the resulting state. s itself is never
// modified; on error the returned state equals s.
func Advance(s State, ev Event) (State, error) {
	next := s.Clone()
	if err := next.apply(ev); err != nil {
		return s, fmt.Errorf("%s %s: %w", s.CurrentStep, ev.Kind, err)
	}
	return next, nil
}

func (s *State) apply(ev Event) error {
	if s.CurrentStep == StepNone {
		return ErrSessionClosed
	}
	switch ev.Kind {
	case EventConfirm:
		if s.CurrentStep != StepSummary {
			return ErrUnexpectedEvent
		}
		s.CurrentStep = StepCandidateRecommendation
		return nil
	case EventEdit:
		if s.CurrentStep != StepSummary {
			return ErrUnexpectedEvent
		}
		return s.edit(ev.Value)
	case EventAnswer:
		return s.answer(ev.Value)
	}
	return ErrUnexpectedEvent
}

func (s *State) answer(raw string) error {
	f := &s.Form
	switch s.CurrentStep {
	case StepTeamSize:
		if f.TeamSize != 0 {
			return ErrImmutableField
		}
		n, err := ParseTeamSize(raw)
		if err != nil {
			return err
		}
		f.TeamSize = n
		f.Members = make([]Member, n)
		s.CurrentMember = 1
		if n >= 2 {
			s.CurrentStep = StepRoleType
		} else {
			s.CurrentStep = StepIndustry
		}

	case StepRoleType:
		if f.RoleType != "" {
			return ErrImmutableField
		}
		v, err := choose(raw, []string{RoleTypeSame, RoleTypeDifferent})
		if err != nil {
			return err
		}
		f.RoleType = v
		s.CurrentStep = StepIndustry

	case StepIndustry:
		v, err := RequireText(raw)
		if err != nil {
			return err
		}
		f.Industry = v
		s.CurrentMember = 1
		s.CurrentStep = StepIndividualRoles

	case StepIndividualRoles:
		v, err := RequireText(raw)
		if err != nil {
			return err
		}
		f.Members[s.CurrentMember-1].Role = v
		same := f.RoleType == RoleTypeSame
		if same {
			for i := range f.Members {
				f.Members[i].Role = v
			}
		}
		if same || s.CurrentMember == f.TeamSize {
			s.afterRoles()
		} else {
			s.CurrentMember++
		}

	case StepExperienceSetup:
		if f.ExperienceSetup != "" {
			return ErrImmutableField
		}
		v, err := choose(raw, []string{AnswerYes, AnswerNo})
		if err != nil {
			return err
		}
		f.ExperienceSetup = v
		s.afterRoles()

	case StepExperience:
		v, err := choose(raw, experienceLevels)
		if err != nil {
			return err
		}
		f.Experience = v
		if f.ExperienceSetup != AnswerNo {
			for i := range f.Members {
				f.Members[i].Experience = v
			}
		}
		s.CurrentStep = StepDescription

	case StepExperienceIndividual:
		v, err := choose(raw, experienceLevels)
		if err != nil {
			return err
		}
		f.Members[s.CurrentMember-1].Experience = v
		if s.CurrentMember == f.TeamSize {
			s.CurrentStep = StepDescription
		} else {
			s.CurrentMember++
		}

	case StepDescription:
		f.Description = OrNotProvided(raw)
		s.afterDescription()

	case StepWorkplaceSetup:
		if f.WorkplaceSetup != "" {
			return ErrImmutableField
		}
		v, err := choose(raw, []string{AnswerYes, AnswerNo})
		if err != nil {
			return err
		}
		f.WorkplaceSetup = v
		s.afterDescription()

	case StepWorkplaceType:
		v, err := choose(raw, workplaceTypes)
		if err != nil {
			return err
		}
		f.WorkplaceType = v
		s.CurrentStep = StepSummary

	case StepWorkplaceIndividual:
		v, err := choose(raw, workplaceTypes)
		if err != nil {
			return err
		}
		f.Members[s.CurrentMember-1].Workplace = v
		if s.CurrentMember == f.TeamSize {
			s.CurrentStep = StepSummary
		} else {
			s.CurrentMember++
		}

	case StepCandidateRecommendation:
		v, err := choose(raw, []string{AnswerYes, AnswerNo})
		if err != nil {
			return err
		}
		if v == AnswerYes {
			s.CurrentStep = StepShowCandidates
		} else {
			s.CurrentStep = StepNone
		}

	default:
		return ErrUnexpectedEvent
	}
	return nil
}

// afterRoles routes past the role questions. The experience branch is asked
// once; later passes (after an edit) follow the recorded answer.
func (s *State) afterRoles() {
	f := &s.Form
	switch {
	case f.TeamSize == 1:
		s.CurrentStep = StepExperience
	case f.ExperienceSetup == "":
		s.CurrentStep = StepExperienceSetup
	case f.ExperienceSetup == AnswerNo:
		s.CurrentMember = 1
		s.CurrentStep = StepExperienceIndividual
	default:
		s.CurrentStep = StepExperience
	}
}

// afterDescription routes past the description the same way afterRoles does
// for experience. Single-member teams get workplaceSetup=yes implicitly.
func (s *State) afterDescription() {
	f := &s.Form
	switch {
	case f.TeamSize == 1:
		f.WorkplaceSetup = AnswerYes
		s.CurrentStep = StepWorkplaceType
	case f.WorkplaceSetup == "":
		s.CurrentStep = StepWorkplaceSetup
	case f.WorkplaceSetup == AnswerNo:
		s.CurrentMember = 1
		s.CurrentStep = StepWorkplaceIndividual
	default:
		s.CurrentStep = StepWorkplaceType
	}
}

func (s *State) edit(field string) error {
	f := &s.Form
	switch strings.TrimSpace(field) {
	case string(StepTeamSize), string(StepRoleType), string(StepExperienceSetup), string(StepWorkplaceSetup):
		return ErrImmutableField
	case string(StepIndustry):
		s.CurrentStep = StepIndustry
	case "roles", string(StepIndividualRoles):
		s.CurrentMember = 1
		s.CurrentStep = StepIndividualRoles
	case string(StepExperience), string(StepExperienceIndividual):
		if f.ExperienceSetup == AnswerNo {
			s.CurrentMember = 1
			s.CurrentStep = StepExperienceIndividual
		} else {
			s.CurrentStep = StepExperience
		}
	case string(StepDescription):
		s.CurrentStep = StepDescription
	case "workplace", string(StepWorkplaceType), string(StepWorkplaceIndividual):
		if f.WorkplaceSetup == AnswerNo {
			s.CurrentMember = 1
			s.CurrentStep = StepWorkplaceIndividual
		} else {
			s.CurrentStep = StepWorkplaceType
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, field)
	}
	return nil
}
