package wizard

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

// Option is one clickable answer on a choice step.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Prompt is how a step is presented to the user.
type Prompt struct {
	Title        string   `yaml:"title" json:"title"`
	Question     string   `yaml:"question" json:"question"`
	SameQuestion string   `yaml:"sameQuestion" json:"-"`
	Placeholder  string   `yaml:"placeholder" json:"placeholder,omitempty"`
	Options      []Option `yaml:"options" json:"options,omitempty"`
}

var prompts = mustParsePrompts(promptsYAML)

// ParsePrompts decodes a prompt catalog and checks that every step has a title
// and question.
func ParsePrompts(data []byte) (map[Step]Prompt, error) {
	raw := make(map[string]Prompt)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wizard: decode prompts: %w", err)
	}
	out := make(map[Step]Prompt, len(raw))
	for _, step := range AllSteps {
		p, ok := raw[string(step)]
		if !ok {
			return nil, fmt.Errorf("wizard: no prompt for step %q", step)
		}
		if p.Title == "" || p.Question == "" {
			return nil, fmt.Errorf("wizard: prompt for step %q needs title and question", step)
		}
		out[step] = p
	}
	return out, nil
}

func mustParsePrompts(data []byte) map[Step]Prompt {
	p, err := ParsePrompts(data)
	if err != nil {
		panic(err)
	}
	return p
}

// PromptFor renders the prompt of the state's active step.
func PromptFor(s State) Prompt {
	p := prompts[s.CurrentStep]
	q := p.Question
	if s.CurrentStep == StepIndividualRoles && s.Form.RoleType == RoleTypeSame && p.SameQuestion != "" {
		q = p.SameQuestion
	}
	r := strings.NewReplacer(
		"{member}", strconv.Itoa(s.CurrentMember),
		"{teamSize}", strconv.Itoa(s.Form.TeamSize),
	)
	p.Question = r.Replace(q)
	return p
}
