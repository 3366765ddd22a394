package services

import (
	"math"
	"strings"
	"unicode"

	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// Score weights. They sum to 1 so a perfect match scores 1.0.
const (
	roleWeight       = 0.5
	experienceWeight = 0.3
	industryWeight   = 0.2

	// RecommendThreshold is the score at which a candidate is flagged as recommended.
	RecommendThreshold = 0.7
)

// LevelForYears buckets years of experience into entry, mid or senior.
func LevelForYears(years int) string {
	switch {
	case years <= 2:
		return wizard.ExperienceEntry
	case years <= 5:
		return wizard.ExperienceMid
	default:
		return wizard.ExperienceSenior
	}
}

var levelRank = map[string]int{
	wizard.ExperienceEntry:  0,
	wizard.ExperienceMid:    1,
	wizard.ExperienceSenior: 2,
}

// MatchCandidate scores how well c fits q, in [0, 1]. A candidate whose
// position shares nothing with the requested role scores 0.
func MatchCandidate(c models.Candidate, q wizard.CandidateQuery) float64 {
	role := roleScore(c.Position, q.Role)
	if role == 0 {
		return 0
	}
	score := roleWeight*role +
		experienceWeight*experienceScore(c.ExperienceYears, q.ExperienceLevel) +
		industryWeight*industryScore(c.Industry, q.Industry)
	return math.Round(score*100) / 100
}

func roleScore(position, role string) float64 {
	position = strings.ToLower(strings.TrimSpace(position))
	role = strings.ToLower(strings.TrimSpace(role))
	if position == "" || role == "" {
		return 0
	}
	// Rule 1: the whole role appears in the position title.
	if strings.Contains(position, role) {
		return 1
	}
	// Rule 2: share of role words found in the position.
	// Single letters ("a", "&") would match everything, skip them.
	posWords := make(map[string]bool)
	for _, w := range words(position) {
		posWords[w] = true
	}
	var total, hits int
	for _, w := range words(role) {
		if len(w) < 2 {
			continue
		}
		total++
		if posWords[w] {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

func experienceScore(years int, level string) float64 {
	want, ok := levelRank[level]
	if !ok {
		return 0.5
	}
	have := levelRank[LevelForYears(years)]
	switch d := have - want; {
	case d == 0:
		return 1
	case d == 1 || d == -1:
		return 0.5
	}
	return 0
}

func industryScore(have, want string) float64 {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return 1
	}
	have = strings.ToLower(strings.TrimSpace(have))
	if have == "" {
		return 0
	}
	if strings.Contains(have, want) || strings.Contains(want, have) {
		return 1
	}
	return 0
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
