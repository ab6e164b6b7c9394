package profile

// Achievement keys
const (
	AchievementFirstCase     = "first_case"
	AchievementBeginnersLuck = "beginners_luck"
	AchievementLegendaryDrop = "legendary_drop"
	AchievementCollector     = "collector"
	AchievementMerchant      = "merchant"
)

// Achievement thresholds
const (
	FirstCaseThreshold     = 1
	BeginnersLuckThreshold = 5
	LegendaryDropThreshold = 1
	CollectorThreshold     = 50
	MerchantThreshold      = 10000
)
