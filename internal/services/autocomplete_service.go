package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
)

// Autocomplete request types.
const (
	SuggestRole        = "role"
	SuggestIndustry    = "industry"
	SuggestDescription = "description"
)

const (
	maxSuggestions   = 5
	minQueryLength   = 2
	collaboratorAuto = "autocomplete"
)

// AutocompleteService suggests roles and industries as the visitor types.
type AutocompleteService struct {
	LLM      Completer
	Observer CallObserver
}

func NewAutocompleteService(llm Completer, obs CallObserver) *AutocompleteService {
	return &AutocompleteService{LLM: llm, Observer: obs}
}

// Suggest returns up to five suggestions for req.Query. Short queries get an
// empty list. Model failures and unparseable replies fall back to a fixed
// keyword list, so Suggest never fails.
func (s *AutocompleteService) Suggest(ctx context.Context, req dtos.AutocompleteRequest) []dtos.Suggestion {
	query := strings.TrimSpace(req.Query)
	if len([]rune(query)) < minQueryLength {
		return []dtos.Suggestion{}
	}
	if s.LLM == nil {
		return FallbackSuggestions(query, req.Type)
	}

	started := time.Now()
	text, err := s.LLM.Complete(ctx, suggestionPrompt(query, req.Type, req.Industry),
		CompletionOptions{MaxTokens: 300, Temperature: 0.3})
	observe(s.Observer, collaboratorAuto, started, err)
	if err != nil {
		log.Warn().Err(err).Str("type", req.Type).Msg("autocomplete call failed, using fallback")
		return FallbackSuggestions(query, req.Type)
	}

	suggestions, err := parseSuggestions(text)
	if err != nil {
		log.Warn().Err(err).Str("type", req.Type).Msg("unparseable suggestions, using fallback")
		return FallbackSuggestions(query, req.Type)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// Describe drafts a role description for the autocomplete widget.
func (s *AutocompleteService) Describe(ctx context.Context, req dtos.AutocompleteRequest) string {
	if s.LLM != nil {
		started := time.Now()
		text, err := s.LLM.Complete(ctx, roleDescriptionPrompt(req.RoleTitle, req.Industry),
			CompletionOptions{MaxTokens: 500, Temperature: 0.3})
		observe(s.Observer, collaboratorAuto, started, err)
		if err == nil && text != "" {
			return text
		}
		log.Warn().Err(err).Str("role", req.RoleTitle).Msg("role description failed, using fallback")
	}
	role := strings.TrimSpace(req.RoleTitle)
	if role == "" {
		role = "professional"
	}
	return fmt.Sprintf("We are looking for a %s to join our team. This role involves various responsibilities and requires relevant experience in the field.", role)
}

func parseSuggestions(text string) ([]dtos.Suggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var out []dtos.Suggestion
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("autocomplete: parse suggestions: %w", err)
	}
	if out == nil {
		return nil, errors.New("autocomplete: reply is not an array")
	}
	return out, nil
}

const suggestionFormat = `

Format your response as a JSON array of objects with "title", "description", and "level" fields:
[
  {"title": "%s", "description": "%s", "level": "%s"}
]

Only return the JSON array, no other text.`

func suggestionPrompt(query, kind, industry string) string {
	var b strings.Builder
	switch kind {
	case SuggestIndustry:
		fmt.Fprintf(&b, "You are helping a business name its industry. Based on the input %q, suggest %d relevant industries ", query, maxSuggestions)
		b.WriteString("that would be appropriate for offshore staffing. Keep them specific, professional and distinct from each other.")
		fmt.Fprintf(&b, suggestionFormat, "Technology", "Software development, IT services, and technology solutions", "Industry")
	default:
		fmt.Fprintf(&b, "You are helping a business specify the job roles it needs. Based on the input %q", query)
		if industry != "" {
			fmt.Fprintf(&b, " in the %s industry", industry)
		}
		fmt.Fprintf(&b, ", suggest %d relevant job roles that would be appropriate for offshore staffing. ", maxSuggestions)
		b.WriteString("Keep them specific, professional and distinct from each other. Level is entry, mid or senior.")
		fmt.Fprintf(&b, suggestionFormat, "Software Developer", "Develops software applications and systems", "mid")
	}
	return b.String()
}

func roleDescriptionPrompt(role, industry string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a job description for the role %q", role)
	if industry != "" {
		fmt.Fprintf(&b, " in the %s industry", industry)
	}
	b.WriteString(". Include an overview, key responsibilities, required skills, expected experience level " +
		"and any industry-specific requirements. It is for offshore staffing. Return only the description text.")
	return b.String()
}

var (
	industrySuggestions = []dtos.Suggestion{
		{Title: "Technology", Description: "Software development, IT services, and technology solutions", Level: "Industry"},
		{Title: "Healthcare", Description: "Healthcare services, medical practices, and wellness", Level: "Industry"},
		{Title: "Finance", Description: "Banking, accounting, and financial advisory services", Level: "Industry"},
		{Title: "Real Estate", Description: "Property management, real estate services, and construction", Level: "Industry"},
		{Title: "Marketing", Description: "Digital marketing, advertising, and brand management", Level: "Industry"},
	}

	defaultRoleSuggestions = []dtos.Suggestion{
		{Title: "Software Developer", Description: "Develops software applications and systems", Level: "mid"},
		{Title: "Marketing Manager", Description: "Develops and executes marketing strategies", Level: "senior"},
		{Title: "Customer Service Representative", Description: "Provides customer support and assistance", Level: "entry"},
	}

	// Checked in order; the first group with a matching keyword wins.
	roleSuggestions = []struct {
		keywords    []string
		suggestions []dtos.Suggestion
	}{
		{[]string{"dev", "software", "program"}, []dtos.Suggestion{
			{Title: "Software Developer", Description: "Develops software applications and systems", Level: "mid"},
			{Title: "Frontend Developer", Description: "Creates user interfaces and client-side applications", Level: "mid"},
			{Title: "Backend Developer", Description: "Develops server-side applications and APIs", Level: "mid"},
		}},
		{[]string{"market", "social", "content"}, []dtos.Suggestion{
			{Title: "Marketing Manager", Description: "Develops and executes marketing strategies", Level: "senior"},
			{Title: "Content Writer", Description: "Creates engaging content for various platforms", Level: "mid"},
			{Title: "Social Media Specialist", Description: "Manages social media presence and campaigns", Level: "mid"},
		}},
		{[]string{"customer", "service", "support"}, []dtos.Suggestion{
			{Title: "Customer Service Representative", Description: "Provides customer support and assistance", Level: "entry"},
			{Title: "Support Specialist", Description: "Handles technical support and troubleshooting", Level: "mid"},
			{Title: "Client Success Manager", Description: "Ensures client satisfaction and retention", Level: "senior"},
		}},
		{[]string{"admin", "assistant", "virtual"}, []dtos.Suggestion{
			{Title: "Virtual Assistant", Description: "Provides administrative and support services", Level: "entry"},
			{Title: "Administrative Assistant", Description: "Handles administrative tasks and coordination", Level: "entry"},
			{Title: "Executive Assistant", Description: "Supports senior executives with various tasks", Level: "mid"},
		}},
		{[]string{"account", "finance", "book"}, []dtos.Suggestion{
			{Title: "Accountant", Description: "Manages financial records and reporting", Level: "mid"},
			{Title: "Bookkeeper", Description: "Maintains financial records and transactions", Level: "entry"},
			{Title: "Financial Analyst", Description: "Analyzes financial data and market trends", Level: "mid"},
		}},
	}
)

// FallbackSuggestions is the offline list for query.
func FallbackSuggestions(query, kind string) []dtos.Suggestion {
	if kind == SuggestIndustry {
		return append([]dtos.Suggestion(nil), industrySuggestions...)
	}
	q := strings.ToLower(query)
	for _, group := range roleSuggestions {
		for _, k := range group.keywords {
			if strings.Contains(q, k) {
				return append([]dtos.Suggestion(nil), group.suggestions...)
			}
		}
	}
	return append([]dtos.Suggestion(nil), defaultRoleSuggestions...)
}
