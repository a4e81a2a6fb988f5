package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/internal/model"
)

func followers(stats []model.ReferralStats) []int {
	out := make([]int, len(stats))
	for i, s := range stats {
		out[i] = s.EstimatedFollowers
	}
	return out
}

func TestReferralTotals(t *testing.T) {
	s := NewReferralService(nil)
	assert.Equal(t, 111, s.TotalFollowers())
	assert.Equal(t, 593, s.TotalClicks())
	assert.Equal(t, 245, s.TotalLinksShared())
	assert.Equal(t, 4.1, s.AverageEngagement())
}

func TestReferralEmptyAverage(t *testing.T) {
	s := NewReferralService(nil)
	s.stats = nil
	assert.Equal(t, 0.0, s.AverageEngagement())
	assert.Equal(t, 0, s.TotalFollowers())
	assert.Empty(t, s.TopPerformers(3))
}

func TestTopPerformers(t *testing.T) {
	s := NewReferralService(nil)

	top := s.TopPerformers(3)
	assert.Equal(t, []int{23, 18, 15}, followers(top))
	assert.Equal(t, "Ahmed Khan", top[0].EmployeeName)

	assert.Empty(t, s.TopPerformers(0))
	assert.Empty(t, s.TopPerformers(-2))
	assert.Len(t, s.TopPerformers(50), 10)
}

func TestLeaderboardStableTies(t *testing.T) {
	s := NewReferralService(nil)
	s.stats = []model.ReferralStats{
		{EmployeeCode: "A", EstimatedFollowers: 5, Rank: 9},
		{EmployeeCode: "B", EstimatedFollowers: 7},
		{EmployeeCode: "C", EstimatedFollowers: 5},
		{EmployeeCode: "D", EstimatedFollowers: 5},
	}

	board := s.Leaderboard()
	codes := make([]string, len(board))
	for i, b := range board {
		codes[i] = b.EmployeeCode
		assert.Equal(t, i+1, b.Rank)
	}
	assert.Equal(t, []string{"B", "A", "C", "D"}, codes)

	// stored order is untouched
	assert.Equal(t, "A", s.Stats()[0].EmployeeCode)
	assert.Equal(t, 9, s.Stats()[0].Rank)
}

func TestRecordClick(t *testing.T) {
	ctx := context.Background()
	s := NewReferralService(nil)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	rec, err := s.RecordClick(ctx, "DPS-JOHN-03", model.SourceWhatsApp, false)
	require.NoError(t, err)
	assert.Equal(t, at, rec.Timestamp)
	assert.Contains(t, rec.ID, "ref-")

	st, err := s.StatsFor("DPS-JOHN-03")
	require.NoError(t, err)
	assert.Equal(t, 79, st.LinkClicks)
	assert.Equal(t, 15, st.EstimatedFollowers)

	_, err = s.RecordClick(ctx, "DPS-JOHN-03", model.SourceQR, true)
	require.NoError(t, err)
	st, _ = s.StatsFor("DPS-JOHN-03")
	assert.Equal(t, 80, st.LinkClicks)
	assert.Equal(t, 16, st.EstimatedFollowers)
	assert.Equal(t, 16, st.ThisMonthFollowers)
	assert.Equal(t, 112, s.TotalFollowers())

	// other employees are unchanged
	other, _ := s.StatsFor("DPS-AHMED-01")
	assert.Equal(t, 120, other.LinkClicks)

	recs := s.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, model.SourceQR, recs[0].Source)

	_, err = s.RecordClick(ctx, "NOPE", model.SourceDirect, true)
	assert.ErrorIs(t, err, ErrUnknownEmployee)
	assert.Len(t, s.Records(), 2)
}

func TestUpdateStats(t *testing.T) {
	s := NewReferralService(nil)
	followers := 30
	rate := 6.5

	st, err := s.UpdateStats("DPS-ALI-10", model.StatsPatch{EstimatedFollowers: &followers, EngagementRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 30, st.EstimatedFollowers)
	assert.Equal(t, 6.5, st.EngagementRate)
	assert.Equal(t, 22, st.LinkClicks)

	assert.Equal(t, "Ali Mohammed", s.TopPerformers(1)[0].EmployeeName)

	_, err = s.UpdateStats("NOPE", model.StatsPatch{})
	assert.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestDashboard(t *testing.T) {
	d := NewReferralService(nil).Dashboard()
	assert.Equal(t, 111, d.TotalFollowers)
	assert.Len(t, d.TopPerformers, 3)
	assert.Len(t, d.Leaderboard, 10)
	assert.Len(t, d.Prizes, 11)
	assert.Equal(t, 2, d.Rules.PointsPerEngagedFollower)
}
