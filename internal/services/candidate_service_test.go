package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/database/dbtest"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

func seedCandidates(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []models.Candidate{
		{ID: "a", FullName: "ana cruz", Position: "Software Developer", ExperienceYears: 4, Industry: "Technology", OverallScore: 80, Skills: []string{"Go"}},
		{ID: "b", FullName: "ben reyes", Position: "Frontend Developer", ExperienceYears: 8, Industry: "Technology", OverallScore: 90},
		{ID: "c", FullName: "carla diaz", Position: "Developer", ExperienceYears: 4, Industry: "Retail", OverallScore: 70},
		{ID: "d", FullName: "dan lim", Position: "Accountant", ExperienceYears: 4, Industry: "Technology", OverallScore: 99},
		{ID: "e", FullName: "eve tan", Position: "Web Developer", ExperienceYears: 1, Industry: "Technology", OverallScore: 95},
		{ID: "f", FullName: "finn go", Position: "Web Developer", ExperienceYears: 3, Industry: "Technology", OverallScore: 95},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestRecommendRanksAndCaps(t *testing.T) {
	db := dbtest.Open(t)
	seedCandidates(t, db)
	svc := NewCandidateService(db, time.Minute, 4, nil)

	got, err := svc.Recommend(context.Background(), wizard.CandidateQuery{Role: "Developer", ExperienceLevel: "mid", Industry: "Technology"})
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	// f and a both score 1.0; f has the higher overall score.
	assert.Equal(t, []string{"f", "a", "e", "b"}, ids)

	assert.Equal(t, "Ana Cruz", got[1].Name)
	assert.Equal(t, "4 years", got[1].Experience)
	assert.Equal(t, []string{"Go"}, got[1].Skills)
	assert.NotNil(t, got[2].Skills)
	assert.True(t, got[0].IsRecommended)
	assert.InDelta(t, 0.85, got[2].MatchScore, 0.001)
	assert.InDelta(t, 0.85, got[3].MatchScore, 0.001)
}

func TestRecommendNoMatches(t *testing.T) {
	db := dbtest.Open(t)
	seedCandidates(t, db)
	svc := NewCandidateService(db, time.Minute, 5, nil)

	got, err := svc.Recommend(context.Background(), wizard.CandidateQuery{Role: "Pilot", ExperienceLevel: "mid"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCachesUntilTTL(t *testing.T) {
	db := dbtest.Open(t)
	seedCandidates(t, db)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewCandidateService(db, 5*time.Minute, 5, nil)
	svc.Now = func() time.Time { return now }

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Len(t, first.Candidates, 6)
	assert.Equal(t, "d", first.Candidates[0].ID)

	require.NoError(t, db.Create(&models.Candidate{ID: "g", FullName: "gil", Position: "Designer"}).Error)

	now = now.Add(time.Minute)
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, time.Minute, second.Age)
	assert.Len(t, second.Candidates, 6)

	now = now.Add(5 * time.Minute)
	third, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Len(t, third.Candidates, 7)

	svc.Invalidate()
	require.NoError(t, db.Create(&models.Candidate{ID: "h", FullName: "hal", Position: "Designer"}).Error)
	fourth, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, fourth.Candidates, 8)
}

func TestListServesStaleCacheWhenDatabaseFails(t *testing.T) {
	db := dbtest.Open(t)
	seedCandidates(t, db)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := newCallLog()
	svc := NewCandidateService(db, time.Minute, 5, calls)
	svc.Now = func() time.Time { return now }

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	now = now.Add(time.Hour)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, list.Stale)
	assert.Error(t, list.Err)
	assert.Len(t, list.Candidates, 6)
	assert.Equal(t, 1, calls.errs[wizard.CollaboratorCandidates])
}

func TestListWithoutCacheReportsOffline(t *testing.T) {
	db := dbtest.Open(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	svc := NewCandidateService(db, time.Minute, 5, nil)
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, models.ErrCandidatesOffline)

	_, err = svc.Recommend(context.Background(), wizard.CandidateQuery{Role: "Dev"})
	assert.ErrorIs(t, err, models.ErrCandidatesOffline)
}

func TestListReturnsCopyOfCache(t *testing.T) {
	db := dbtest.Open(t)
	seedCandidates(t, db)
	svc := NewCandidateService(db, time.Hour, 5, nil)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	first.Candidates[0].Position = "Pilot"
	first.Candidates = first.Candidates[:1]

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Len(t, second.Candidates, 6)
	assert.Equal(t, "Accountant", second.Candidates[0].Position)
}
