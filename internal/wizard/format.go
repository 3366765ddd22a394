package wizard

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var teamSizePattern = regexp.MustCompile(`^\d+$`)

// MaxTeamSize is the largest team the widget will price. Every member gets
// a slot in the form, so the size has to stay bounded.
const MaxTeamSize = 100

// ValidTeamSize reports whether raw is an all-digit team size.
func ValidTeamSize(raw string) bool {
	return teamSizePattern.MatchString(raw)
}

// ParseTeamSize returns the team size encoded in raw, between 1 and
// MaxTeamSize.
func ParseTeamSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if !ValidTeamSize(raw) {
		return 0, ErrInvalidInput
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxTeamSize {
		return 0, ErrInvalidInput
	}
	return n, nil
}

// RequireText trims v and rejects it when nothing is left.
func RequireText(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrInvalidInput
	}
	return v, nil
}

// OrNotProvided coerces an empty optional answer to NotProvided.
func OrNotProvided(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotProvided
	}
	return v
}

// TitleCase upper-cases the first letter of every whitespace-separated
// token and lower-cases the rest. Runs of whitespace collapse to one space.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

func choose(v string, allowed []string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !slices.Contains(allowed, v) {
		return "", ErrInvalidChoice
	}
	return v, nil
}

// ExperienceLabel is the human label for an experience level.
func ExperienceLabel(level string) string {
	switch level {
	case ExperienceEntry:
		return "entry level"
	case ExperienceMid:
		return "mid level"
	case ExperienceSenior:
		return "senior level"
	case ExperienceMixed:
		return "mixed experience levels"
	case "":
		return "various experience levels"
	}
	return level
}
