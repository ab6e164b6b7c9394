package domain

import "time"

// User is the mock account created by the stub Steam login.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	SteamID  string    `json:"steam_id"`
	Verified bool      `json:"verified"`
	JoinDate time.Time `json:"join_date"`
}

// Stats are the aggregate counters shown on the profile.
type Stats struct {
	CasesOpened    int `json:"cases_opened"`
	ItemsWon       int `json:"items_won"`
	TotalSpent     int `json:"total_spent"`
	TotalEarned    int `json:"total_earned"`
	LegendariesWon int `json:"legendaries_won"`
}

// Profit is earnings minus spending. Negative when the user is down.
func (s Stats) Profit() int {
	return s.TotalEarned - s.TotalSpent
}
