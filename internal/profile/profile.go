package profile

import (
	"context"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/session"
)

// Achievement is one badge on the profile page
type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Level is the trading level derived from opened cases
type Level struct {
	TradingLevel     int `json:"trading_level"`
	Progress         int `json:"progress"`
	CasesToNextLevel int `json:"cases_to_next_level"`
}

// View is the profile page
type View struct {
	User           domain.User     `json:"user"`
	Balance        economy.Balance `json:"balance"`
	Stats          domain.Stats    `json:"stats"`
	Level          Level           `json:"level"`
	Profit         int             `json:"profit"`
	InProfit       bool            `json:"in_profit"`
	InventoryCount int             `json:"inventory_count"`
	InventoryValue int             `json:"inventory_value"`
	Achievements   []Achievement   `json:"achievements"`
}

// ComputeLevel derives the level from the number of opened cases.
func ComputeLevel(casesOpened int) Level {
	if casesOpened < 0 {
		casesOpened = 0
	}
	rem := casesOpened % domain.CasesPerLevel
	return Level{
		TradingLevel:     1 + casesOpened/domain.CasesPerLevel,
		Progress:         rem * domain.LevelProgressStep,
		CasesToNextLevel: domain.CasesPerLevel - rem,
	}
}

type achievementRule struct {
	key, title, description string
	unlocked                func(domain.Stats) bool
}

var achievementRules = []achievementRule{
	{AchievementFirstCase, "First case", "Open your first case",
		func(s domain.Stats) bool { return s.CasesOpened >= FirstCaseThreshold }},
	{AchievementBeginnersLuck, "Beginner's luck", "Win 5 items",
		func(s domain.Stats) bool { return s.ItemsWon >= BeginnersLuckThreshold }},
	{AchievementLegendaryDrop, "Legendary drop", "Win a legendary item",
		func(s domain.Stats) bool { return s.LegendariesWon >= LegendaryDropThreshold }},
	{AchievementCollector, "Collector", "Open 50 cases",
		func(s domain.Stats) bool { return s.CasesOpened >= CollectorThreshold }},
	{AchievementMerchant, "Merchant", "Earn 10 000 from sales",
		func(s domain.Stats) bool { return s.TotalEarned >= MerchantThreshold }},
}

// Achievements evaluates every achievement against stats, in display order.
func Achievements(stats domain.Stats) []Achievement {
	out := make([]Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, Achievement{
			Key:         r.key,
			Title:       r.title,
			Description: r.description,
			Unlocked:    r.unlocked(stats),
		})
	}
	return out
}

// Build assembles the profile view from a session snapshot.
func Build(sess session.Session) View {
	return View{
		User:           sess.User,
		Balance:        economy.NewBalance(sess.Balance),
		Stats:          sess.Stats,
		Level:          ComputeLevel(sess.Stats.CasesOpened),
		Profit:         sess.Stats.Profit(),
		InProfit:       sess.Stats.TotalEarned > sess.Stats.TotalSpent,
		InventoryCount: len(sess.Inventory),
		InventoryValue: domain.InventoryValue(sess.Inventory),
		Achievements:   Achievements(sess.Stats),
	}
}

// SessionReader reads session snapshots
type SessionReader interface {
	Get(ctx context.Context, id string) (session.Session, error)
}

// Service serves profile views
type Service struct {
	store SessionReader
}

// NewService creates a profile service
func NewService(store SessionReader) *Service {
	return &Service{store: store}
}

// Get returns the profile of a session.
func (s *Service) Get(ctx context.Context, sessionID string) (View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	return Build(sess), nil
}
