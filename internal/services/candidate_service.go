package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// CandidateList is the candidate pool plus where it came from.
type CandidateList struct {
	Candidates []models.Candidate
	Cached     bool
	// Stale is set when the database failed and an expired copy was served.
	Stale bool
	Age   time.Duration
	Err   error
}

// CandidateService reads the BPOC candidate pool and ranks it against
// wizard requirements. The pool is cached in process for TTL.
type CandidateService struct {
	DB       *gorm.DB
	TTL      time.Duration
	Limit    int
	Observer CallObserver
	Now      func() time.Time

	mu       sync.Mutex
	cache    []models.Candidate
	cachedAt time.Time
}

func NewCandidateService(db *gorm.DB, ttl time.Duration, limit int, obs CallObserver) *CandidateService {
	return &CandidateService{DB: db, TTL: ttl, Limit: limit, Observer: obs, Now: time.Now}
}

var _ wizard.CandidateRecommender = (*CandidateService)(nil)

// List returns the candidate pool, from cache while it is fresh. When the
// database fails a stale cache is still served. The returned slice is the
// caller's own copy.
func (s *CandidateService) List(ctx context.Context) (CandidateList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cache != nil && now.Sub(s.cachedAt) < s.TTL {
		return CandidateList{Candidates: slices.Clone(s.cache), Cached: true, Age: now.Sub(s.cachedAt)}, nil
	}

	var rows []models.Candidate
	started := time.Now()
	err := s.DB.WithContext(ctx).Order("overall_score DESC").Find(&rows).Error
	observe(s.Observer, wizard.CollaboratorCandidates, started, err)
	if err != nil {
		if s.cache != nil {
			log.Warn().Err(err).Msg("candidate query failed, serving stale cache")
			return CandidateList{Candidates: slices.Clone(s.cache), Cached: true, Stale: true, Age: now.Sub(s.cachedAt), Err: err}, nil
		}
		return CandidateList{}, fmt.Errorf("%w: %w", models.ErrCandidatesOffline, err)
	}
	if rows == nil {
		rows = []models.Candidate{}
	}
	s.cache = rows
	s.cachedAt = now
	log.Debug().Int("count", len(rows)).Msg("candidate pool refreshed")
	return CandidateList{Candidates: slices.Clone(rows)}, nil
}

// Invalidate drops the cached pool.
func (s *CandidateService) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}

// Recommend ranks the pool for q, best match first, capped at Limit.
func (s *CandidateService) Recommend(ctx context.Context, q wizard.CandidateQuery) ([]wizard.Candidate, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		c     models.Candidate
		score float64
	}
	var matches []scored
	for _, c := range list.Candidates {
		if score := MatchCandidate(c, q); score > 0 {
			matches = append(matches, scored{c, score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		if matches[i].c.OverallScore != matches[j].c.OverallScore {
			return matches[i].c.OverallScore > matches[j].c.OverallScore
		}
		return matches[i].c.ID < matches[j].c.ID
	})
	if s.Limit > 0 && len(matches) > s.Limit {
		matches = matches[:s.Limit]
	}

	out := make([]wizard.Candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, toRecommendation(m.c, m.score))
	}
	return out, nil
}

func toRecommendation(c models.Candidate, score float64) wizard.Candidate {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	return wizard.Candidate{
		ID:             c.ID,
		Name:           wizard.TitleCase(c.FullName),
		Position:       c.Position,
		Experience:     yearsText(c.ExperienceYears),
		Skills:         skills,
		ExpectedSalary: c.ExpectedSalary,
		MatchScore:     score,
		IsRecommended:  score >= RecommendThreshold,
	}
}

func yearsText(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func (s *CandidateService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
