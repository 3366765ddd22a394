package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// DescriptionService writes job descriptions for the pricing wizard.
type DescriptionService struct {
	LLM      Completer
	Observer CallObserver
}

func NewDescriptionService(llm Completer, obs CallObserver) *DescriptionService {
	return &DescriptionService{LLM: llm, Observer: obs}
}

var _ wizard.DescriptionGenerator = (*DescriptionService)(nil)

// Generate asks the model for a description and falls back to the standard
// template when the model is missing, fails or returns nothing. It only
// errors when ctx is already done.
func (s *DescriptionService) Generate(ctx context.Context, req wizard.DescriptionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.LLM != nil {
		started := time.Now()
		text, err := s.LLM.Complete(ctx, descriptionPrompt(req), CompletionOptions{MaxTokens: 500, Temperature: 0.3})
		observe(s.Observer, wizard.CollaboratorDescription, started, err)
		if err == nil && text != "" {
			return text, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		log.Warn().Err(err).Str("roles", req.Roles).Msg("AI description failed, using template")
	}
	return TemplateDescription(req), nil
}

var experienceText = map[string]string{
	wizard.ExperienceEntry:  "Entry level (0-2 years of experience)",
	wizard.ExperienceMid:    "Mid level (3-5 years of experience)",
	wizard.ExperienceSenior: "Senior level (6+ years of experience)",
	wizard.ExperienceMixed:  "Mixed experience levels",
}

const descriptionFooter = `

Requirements:
• Strong communication skills in English
• Relevant experience in the field
• Ability to work in a remote/offshore environment
• Commitment to quality and deadlines
• Collaborative team player

Benefits:
• Competitive salary package
• Flexible working hours
• Professional development opportunities
• International team exposure
• Career growth potential

This is an excellent opportunity to work with a dynamic international team and gain valuable experience in a professional offshore environment.`

// TemplateDescription builds the deterministic long-form description.
func TemplateDescription(req wizard.DescriptionRequest) string {
	var b strings.Builder
	who := "professionals"
	if req.RoleType == wizard.RoleTypeSame {
		who = "team members"
	}
	fmt.Fprintf(&b, "We are seeking %s %s to join our offshore team.", req.TeamSize, who)

	if req.Roles != "" {
		if req.RoleType == wizard.RoleTypeSame {
			fmt.Fprintf(&b, " All positions are for %s.", req.Roles)
		} else {
			fmt.Fprintf(&b, " The roles include: %s.", req.Roles)
		}
	}
	if req.Experience != "" {
		text, ok := experienceText[req.Experience]
		if !ok {
			text = req.Experience
		}
		fmt.Fprintf(&b, " We are looking for %s candidates.", text)
	}
	if req.Industry != "" {
		fmt.Fprintf(&b, " This position is in the %s industry.", req.Industry)
	}
	if req.Budget != "" {
		fmt.Fprintf(&b, " We offer competitive compensation within the %s range.", req.Budget)
	}
	b.WriteString(descriptionFooter)
	return strings.TrimSpace(b.String())
}

func descriptionPrompt(req wizard.DescriptionRequest) string {
	var b strings.Builder
	b.WriteString("You are helping a company hire an offshore team through a BPO provider. ")
	b.WriteString("Write a professional job description for the team below.\n\n")
	fmt.Fprintf(&b, "Team size: %s\n", req.TeamSize)
	if req.RoleType != "" {
		fmt.Fprintf(&b, "Role setup: %s role for every member\n", req.RoleType)
	}
	fmt.Fprintf(&b, "Roles: %s\n", orDefault(req.Roles, "not specified"))
	fmt.Fprintf(&b, "Experience: %s\n", orDefault(experienceText[req.Experience], orDefault(req.Experience, "not specified")))
	fmt.Fprintf(&b, "Industry: %s\n", orDefault(req.Industry, "not specified"))
	if req.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", req.Budget)
	}
	b.WriteString("\nInclude a short overview, key responsibilities, required skills and what the company offers. ")
	b.WriteString("Return only the description text, no markdown headings.")
	return b.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
