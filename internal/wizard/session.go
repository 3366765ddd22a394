package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Observer receives wizard telemetry. Implementations must be safe for
// concurrent use across sessions.
type Observer interface {
	StepCompleted(step Step, outcome string)
	Fallback(collaborator string)
}

// Collaborator names reported to Observer.Fallback.
const (
	CollaboratorDescription = "description"
	CollaboratorCandidates  = "candidates"
	CollaboratorPricing     = "pricing"
)

// Deps are the external services a session talks to. Any of them may be nil;
// a nil collaborator behaves like one that always fails.
type Deps struct {
	Descriptions DescriptionGenerator
	Candidates   CandidateRecommender
	Pricing      PricingSaver
	Observer     Observer
	Now          func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Session is one open pricing widget. Events against a session are
// serialized; separate sessions share nothing.
type Session struct {
	ID     string
	UserID string

	mu     sync.Mutex
	state  State
	deps   Deps
	onDone func()

	// Unix nanoseconds of the last event. Read by Store without taking mu.
	touched atomic.Int64
}

// NewSession opens a wizard at the team size question.
func NewSession(id, userID string, deps Deps) *Session {
	s := &Session{ID: id, UserID: userID, deps: deps, state: NewState()}
	s.touch()
	s.say(RoleAssistant, PromptFor(s.state).Question)
	return s
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Answer submits value for the active step. Invalid input leaves the session
// untouched and returns the error together with the unchanged state.
func (s *Session) Answer(ctx context.Context, value string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	prev := s.state
	next, err := Advance(prev, Answer(value))
	if err != nil {
		s.observe(prev.CurrentStep, "rejected")
		return prev.Clone(), err
	}
	s.state = next
	s.observe(prev.CurrentStep, "completed")
	s.say(RoleUser, answerText(prev, next, value))

	if next.CurrentStep == StepShowCandidates {
		s.state.Candidates = s.fetchCandidates(ctx)
	}
	s.say(RoleAssistant, PromptFor(s.state).Question)
	s.finishIfDone()
	return s.state.Clone(), nil
}

// Confirm accepts the summary, submits the form once and moves on to the
// candidate question. A failed submission is logged and does not block.
func (s *Session) Confirm(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	prev := s.state
	next, err := Advance(prev, Confirm())
	if err != nil {
		return prev.Clone(), err
	}
	s.state = next
	s.observe(prev.CurrentStep, "confirmed")
	s.save(ctx)
	s.say(RoleAssistant, completionText(next.Form))
	s.say(RoleAssistant, PromptFor(s.state).Question)
	return s.state.Clone(), nil
}

// Edit jumps from the summary to the step that owns field.
func (s *Session) Edit(field string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	prev := s.state
	next, err := Advance(prev, Edit(field))
	if err != nil {
		return prev.Clone(), err
	}
	s.state = next
	s.observe(prev.CurrentStep, "edited")
	s.say(RoleAssistant, PromptFor(s.state).Question)
	return s.state.Clone(), nil
}

// GenerateDescription drafts a job description for the description step. The
// draft is returned, not stored; the user submits it (or their own text) as
// the answer. Generator failures fall back to a templated sentence.
func (s *Session) GenerateDescription(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.state.CurrentStep != StepDescription {
		return "", fmt.Errorf("%s: %w", s.state.CurrentStep, ErrUnexpectedEvent)
	}
	req := DescriptionRequestFor(s.state.Form)
	if s.deps.Descriptions != nil {
		text, err := s.deps.Descriptions.Generate(ctx, req)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
		if err != nil {
			log.Warn().Err(err).Str("session", s.ID).Msg("description generation failed, using template")
		} else {
			log.Warn().Str("session", s.ID).Msg("description generator returned blank text, using template")
		}
	}
	s.fallback(CollaboratorDescription)
	return FallbackDescription(req), nil
}

// Close discards the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentStep = StepNone
	s.finishIfDone()
}

// LastActive is when the session last received an event.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.touched.Load())
}

func (s *Session) touch() {
	s.touched.Store(s.deps.now().UnixNano())
}

func (s *Session) fetchCandidates(ctx context.Context) []Candidate {
	q := CandidateQueryFor(s.state.Form)
	if s.deps.Candidates == nil {
		s.fallback(CollaboratorCandidates)
		return []Candidate{}
	}
	list, err := s.deps.Candidates.Recommend(ctx, q)
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID).Str("role", q.Role).Msg("candidate lookup failed")
		s.fallback(CollaboratorCandidates)
		return []Candidate{}
	}
	if list == nil {
		list = []Candidate{}
	}
	return list
}

func (s *Session) save(ctx context.Context) {
	userID := s.UserID
	if userID == "" {
		userID = fmt.Sprintf("anonymous_%d", s.deps.now().UnixMilli())
	}
	if s.deps.Pricing == nil {
		s.fallback(CollaboratorPricing)
		return
	}
	sub := PricingSubmission{UserID: userID, Form: s.state.Form.Clone()}
	if err := s.deps.Pricing.SavePricingInfo(ctx, sub); err != nil {
		log.Error().Err(err).Str("session", s.ID).Str("user", userID).Msg("saving pricing info failed")
		s.fallback(CollaboratorPricing)
		return
	}
	log.Info().Str("session", s.ID).Str("user", userID).Msg("pricing info saved")
}

func (s *Session) finishIfDone() {
	if s.state.CurrentStep == StepNone && s.onDone != nil {
		done := s.onDone
		s.onDone = nil
		done()
	}
}

func (s *Session) say(role, text string) {
	if text == "" {
		return
	}
	s.state.Transcript = append(s.state.Transcript, Message{Role: role, Text: text, Timestamp: s.deps.now()})
}

func (s *Session) observe(step Step, outcome string) {
	if s.deps.Observer != nil {
		s.deps.Observer.StepCompleted(step, outcome)
	}
}

func (s *Session) fallback(name string) {
	if s.deps.Observer != nil {
		s.deps.Observer.Fallback(name)
	}
}

// answerText echoes the user's answer the way the chat shows it.
func answerText(prev, next State, raw string) string {
	p := PromptFor(prev)
	label := strings.TrimSuffix(strings.TrimSpace(p.Title), "?")
	value := strings.TrimSpace(raw)
	switch prev.CurrentStep {
	case StepIndustry:
		value = TitleCase(next.Form.Industry)
	case StepIndividualRoles:
		value = TitleCase(next.Form.Members[prev.CurrentMember-1].Role)
		if prev.Form.TeamSize > 1 && prev.Form.RoleType != RoleTypeSame {
			label = fmt.Sprintf("%s (member %d)", label, prev.CurrentMember)
		}
	case StepDescription:
		value = next.Form.Description
	case StepExperienceIndividual, StepWorkplaceIndividual:
		label = fmt.Sprintf("%s (member %d)", label, prev.CurrentMember)
	}
	for _, o := range p.Options {
		if strings.EqualFold(o.Value, value) {
			value = o.Label
			break
		}
	}
	return label + ": " + value
}

func completionText(f FormData) string {
	roles := TitleCase(strings.Join(f.Roles(), ", "))
	var who string
	switch {
	case f.TeamSize == 1:
		who = roles
	case f.RoleType == RoleTypeSame:
		who = fmt.Sprintf("%s (same role for all %d members)", roles, f.TeamSize)
	default:
		who = fmt.Sprintf("%s (different roles)", roles)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Perfect! I have your team requirements: %d team members for %s.", f.TeamSize, who)
	if f.Description != "" && f.Description != NotProvided {
		fmt.Fprintf(&b, " Project details: %s", f.Description)
	}
	b.WriteString(" Let me analyze your needs and provide you with a personalized quote! 🎯")
	return b.String()
}
