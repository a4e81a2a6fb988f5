package service

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"content-hub/internal/logger"
	"content-hub/internal/model"
)

var referralEmployees = []model.ReferralEmployee{
	{ID: "emp-1", Code: "DPS-AHMED-01", Name: "Ahmed Khan", Email: "ahmed@dpsexpo.com", Department: "Sales", AvatarURL: "https://i.pravatar.cc/150?u=ahmed", JoinedDate: "2025-01-15"},
	{ID: "emp-2", Code: "DPS-FATIMA-02", Name: "Fatima Ali", Email: "fatima@dpsexpo.com", Department: "Marketing", AvatarURL: "https://i.pravatar.cc/150?u=fatima", JoinedDate: "2025-01-15"},
	{ID: "emp-3", Code: "DPS-JOHN-03", Name: "John Smith", Email: "john@dpsexpo.com", Department: "Operations", AvatarURL: "https://i.pravatar.cc/150?u=john", JoinedDate: "2025-01-20"},
	{ID: "emp-4", Code: "DPS-SARA-04", Name: "Sara Hassan", Email: "sara@dpsexpo.com", Department: "Sales", AvatarURL: "https://i.pravatar.cc/150?u=sara", JoinedDate: "2025-01-20"},
	{ID: "emp-5", Code: "DPS-OMAR-05", Name: "Omar Rashid", Email: "omar@dpsexpo.com", Department: "Events", AvatarURL: "https://i.pravatar.cc/150?u=omar", JoinedDate: "2025-02-01"},
	{ID: "emp-6", Code: "DPS-LAYLA-06", Name: "Layla Mahmoud", Email: "layla@dpsexpo.com", Department: "Marketing", AvatarURL: "https://i.pravatar.cc/150?u=layla", JoinedDate: "2025-02-01"},
	{ID: "emp-7", Code: "DPS-RAVI-07", Name: "Ravi Patel", Email: "ravi@dpsexpo.com", Department: "Sales", AvatarURL: "https://i.pravatar.cc/150?u=ravi", JoinedDate: "2025-02-10"},
	{ID: "emp-8", Code: "DPS-NOOR-08", Name: "Noor Khalid", Email: "noor@dpsexpo.com", Department: "Events", AvatarURL: "https://i.pravatar.cc/150?u=noor", JoinedDate: "2025-02-10"},
	{ID: "emp-9", Code: "DPS-MARIA-09", Name: "Maria Santos", Email: "maria@dpsexpo.com", Department: "Operations", AvatarURL: "https://i.pravatar.cc/150?u=maria", JoinedDate: "2025-02-15"},
	{ID: "emp-10", Code: "DPS-ALI-10", Name: "Ali Mohammed", Email: "ali@dpsexpo.com", Department: "Sales", AvatarURL: "https://i.pravatar.cc/150?u=ali", JoinedDate: "2025-02-15"},
}

var mockReferralStats = []model.ReferralStats{
	{EmployeeCode: "DPS-AHMED-01", EmployeeName: "Ahmed Khan", LinksShared: 45, LinkClicks: 120, EstimatedFollowers: 23, LastWeekFollowers: 5, ThisMonthFollowers: 23, EngagementRate: 4.2, Rank: 1},
	{EmployeeCode: "DPS-FATIMA-02", EmployeeName: "Fatima Ali", LinksShared: 38, LinkClicks: 95, EstimatedFollowers: 18, LastWeekFollowers: 7, ThisMonthFollowers: 18, EngagementRate: 5.1, Rank: 2},
	{EmployeeCode: "DPS-JOHN-03", EmployeeName: "John Smith", LinksShared: 32, LinkClicks: 78, EstimatedFollowers: 15, LastWeekFollowers: 3, ThisMonthFollowers: 15, EngagementRate: 3.8, Rank: 3},
	{EmployeeCode: "DPS-SARA-04", EmployeeName: "Sara Hassan", LinksShared: 28, LinkClicks: 65, EstimatedFollowers: 12, LastWeekFollowers: 4, ThisMonthFollowers: 12, EngagementRate: 4.5, Rank: 4},
	{EmployeeCode: "DPS-OMAR-05", EmployeeName: "Omar Rashid", LinksShared: 25, LinkClicks: 58, EstimatedFollowers: 11, LastWeekFollowers: 2, ThisMonthFollowers: 11, EngagementRate: 3.2, Rank: 5},
	{EmployeeCode: "DPS-LAYLA-06", EmployeeName: "Layla Mahmoud", LinksShared: 22, LinkClicks: 50, EstimatedFollowers: 9, LastWeekFollowers: 3, ThisMonthFollowers: 9, EngagementRate: 4.8, Rank: 6},
	{EmployeeCode: "DPS-RAVI-07", EmployeeName: "Ravi Patel", LinksShared: 18, LinkClicks: 42, EstimatedFollowers: 8, LastWeekFollowers: 2, ThisMonthFollowers: 8, EngagementRate: 3.5, Rank: 7},
	{EmployeeCode: "DPS-NOOR-08", EmployeeName: "Noor Khalid", LinksShared: 15, LinkClicks: 35, EstimatedFollowers: 6, LastWeekFollowers: 1, ThisMonthFollowers: 6, EngagementRate: 4.0, Rank: 8},
	{EmployeeCode: "DPS-MARIA-09", EmployeeName: "Maria Santos", LinksShared: 12, LinkClicks: 28, EstimatedFollowers: 5, LastWeekFollowers: 2, ThisMonthFollowers: 5, EngagementRate: 3.9, Rank: 9},
	{EmployeeCode: "DPS-ALI-10", EmployeeName: "Ali Mohammed", LinksShared: 10, LinkClicks: 22, EstimatedFollowers: 4, LastWeekFollowers: 1, ThisMonthFollowers: 4, EngagementRate: 3.6, Rank: 10},
}

var rewardPrizes = []model.RewardPrize{
	{Tier: model.Weekly, Position: 1, Label: "1st Place", Prize: "AED 200 Voucher", Amount: 200},
	{Tier: model.Weekly, Position: 2, Label: "2nd Place", Prize: "AED 100 Voucher", Amount: 100},
	{Tier: model.Weekly, Position: 3, Label: "3rd Place", Prize: "Recognition on Board", Amount: 0},
	{Tier: model.Monthly, Position: 1, Label: "Top Ambassador", Prize: "AED 1,000 + Certificate", Amount: 1000},
	{Tier: model.Monthly, Position: 2, Label: "2nd Place", Prize: "AED 600", Amount: 600},
	{Tier: model.Monthly, Position: 3, Label: "3rd Place", Prize: "AED 400", Amount: 400},
	{Tier: model.Monthly, Position: 4, Label: "Top 5", Prize: "Free VIP Expo Passes", Amount: 0},
	{Tier: model.Monthly, Position: 5, Label: "Top 5", Prize: "Free VIP Expo Passes", Amount: 0},
	{Tier: model.Quarterly, Position: 1, Label: "#1 Overall", Prize: "AED 5,000 Bonus + Trophy", Amount: 5000},
	{Tier: model.Quarterly, Position: 2, Label: "Runner Up", Prize: "AED 2,500 Bonus", Amount: 2500},
	{Tier: model.Quarterly, Position: 3, Label: "3rd Place", Prize: "AED 1,000 Bonus", Amount: 1000},
}

var programRules = model.ProgramRules{
	PointsPerFollower:        1,
	PointsPerEngagedFollower: 2,
	Prohibited:               []string{"Buying followers", "Spam tactics", "Fake/bot accounts", "Multiple accounts for same person"},
	Encouraged:               []string{"Personal network outreach", "Professional connections", "Client referrals", "Industry events networking"},
}

// ReferralService aggregates the ambassador program counters. Rank on the
// stored records is informational; orderings are recomputed on read.
type ReferralService struct {
	mu        sync.RWMutex
	employees []model.ReferralEmployee
	stats     []model.ReferralStats
	records   []model.ReferralRecord
	now       func() time.Time
	catalog   *CatalogSync
}

func NewReferralService(catalog *CatalogSync) *ReferralService {
	return &ReferralService{
		employees: append([]model.ReferralEmployee(nil), referralEmployees...),
		stats:     append([]model.ReferralStats(nil), mockReferralStats...),
		now:       time.Now,
		catalog:   catalog,
	}
}

func (s *ReferralService) Employees() []model.ReferralEmployee {
	return append([]model.ReferralEmployee(nil), s.employees...)
}

func (s *ReferralService) Employee(code string) (model.ReferralEmployee, error) {
	for _, e := range s.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return model.ReferralEmployee{}, ErrUnknownEmployee
}

func (s *ReferralService) Stats() []model.ReferralStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ReferralStats(nil), s.stats...)
}

func (s *ReferralService) StatsFor(code string) (model.ReferralStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stats {
		if st.EmployeeCode == code {
			return st, nil
		}
	}
	return model.ReferralStats{}, ErrUnknownEmployee
}

// Records is newest first.
func (s *ReferralService) Records() []model.ReferralRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ReferralRecord(nil), s.records...)
}

func (s *ReferralService) TotalFollowers() int {
	return s.sum(func(st model.ReferralStats) int { return st.EstimatedFollowers })
}

func (s *ReferralService) TotalClicks() int {
	return s.sum(func(st model.ReferralStats) int { return st.LinkClicks })
}

func (s *ReferralService) TotalLinksShared() int {
	return s.sum(func(st model.ReferralStats) int { return st.LinksShared })
}

func (s *ReferralService) sum(field func(model.ReferralStats) int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, st := range s.stats {
		total += field(st)
	}
	return total
}

// AverageEngagement is rounded to one decimal; zero with no records.
func (s *ReferralService) AverageEngagement() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.stats) == 0 {
		return 0
	}
	var total float64
	for _, st := range s.stats {
		total += st.EngagementRate
	}
	return math.Round(total/float64(len(s.stats))*10) / 10
}

// Leaderboard orders every record by estimated followers, descending, ties
// in their original order, with Rank rewritten as the position.
func (s *ReferralService) Leaderboard() []model.ReferralStats {
	out := s.Stats()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedFollowers > out[j].EstimatedFollowers
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// TopPerformers returns the first min(n, len) leaderboard entries.
func (s *ReferralService) TopPerformers(n int) []model.ReferralStats {
	if n <= 0 {
		return []model.ReferralStats{}
	}
	board := s.Leaderboard()
	if n > len(board) {
		n = len(board)
	}
	return board[:n]
}

// RecordClick logs a referral link visit. Only the attributed employee's
// counters change; follower counters move only when followerEstimate is set.
func (s *ReferralService) RecordClick(ctx context.Context, code string, source model.ReferralSource, followerEstimate bool) (model.ReferralRecord, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.stats {
		if s.stats[i].EmployeeCode == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.ReferralRecord{}, ErrUnknownEmployee
	}

	rec := model.ReferralRecord{
		ID:               "ref-" + newID(),
		EmployeeCode:     code,
		Timestamp:        s.now(),
		Source:           source,
		FollowerEstimate: followerEstimate,
	}
	s.records = append([]model.ReferralRecord{rec}, s.records...)

	st := s.stats[idx]
	st.LinkClicks++
	if followerEstimate {
		st.EstimatedFollowers++
		st.ThisMonthFollowers++
		st.LastWeekFollowers++
	}
	s.stats[idx] = st
	s.mu.Unlock()

	logger.Info("referral.click", "code", code, "source", source, "follower", followerEstimate)

	if s.catalog != nil {
		s.catalog.SyncReferralClick(ctx, rec)
	}
	return rec, nil
}

// UpdateStats overwrites the fields set in patch.
func (s *ReferralService) UpdateStats(code string, patch model.StatsPatch) (model.ReferralStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stats {
		st := &s.stats[i]
		if st.EmployeeCode != code {
			continue
		}
		setInt(&st.LinksShared, patch.LinksShared)
		setInt(&st.LinkClicks, patch.LinkClicks)
		setInt(&st.EstimatedFollowers, patch.EstimatedFollowers)
		setInt(&st.LastWeekFollowers, patch.LastWeekFollowers)
		setInt(&st.ThisMonthFollowers, patch.ThisMonthFollowers)
		if patch.EngagementRate != nil {
			st.EngagementRate = *patch.EngagementRate
		}
		return *st, nil
	}
	return model.ReferralStats{}, ErrUnknownEmployee
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func (s *ReferralService) Prizes() []model.RewardPrize {
	return append([]model.RewardPrize(nil), rewardPrizes...)
}

func (s *ReferralService) Rules() model.ProgramRules { return programRules }

type ReferralDashboard struct {
	TotalFollowers    int                   `json:"total_followers"`
	TotalClicks       int                   `json:"total_clicks"`
	TotalLinksShared  int                   `json:"total_links_shared"`
	AverageEngagement float64               `json:"average_engagement"`
	TopPerformers     []model.ReferralStats `json:"top_performers"`
	Leaderboard       []model.ReferralStats `json:"leaderboard"`
	Prizes            []model.RewardPrize   `json:"prizes"`
	Rules             model.ProgramRules    `json:"rules"`
}

func (s *ReferralService) Dashboard() ReferralDashboard {
	return ReferralDashboard{
		TotalFollowers:    s.TotalFollowers(),
		TotalClicks:       s.TotalClicks(),
		TotalLinksShared:  s.TotalLinksShared(),
		AverageEngagement: s.AverageEngagement(),
		TopPerformers:     s.TopPerformers(3),
		Leaderboard:       s.Leaderboard(),
		Prizes:            s.Prizes(),
		Rules:             s.Rules(),
	}
}
