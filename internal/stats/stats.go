package stats

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ConsistencyBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type UserStats struct {
	TodayLogged   bool    `json:"today_logged"`
	LogsThisWeek  int     `json:"logs_this_week"`
	LogsThisMonth int     `json:"logs_this_month"`
	TotalLogs     int     `json:"total_logs"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	XPTotal       int     `json:"xp_total"`
	Level         int     `json:"level"`
	LevelTitle    string  `json:"level_title"`
	XPProgress    float64 `json:"xp_progress"`
	NextLevelXP   int     `json:"next_level_xp"`
	StreakBonus   int     `json:"streak_bonus"`
	FormattedXP   string  `json:"formatted_xp"`
	WeightLost    float64 `json:"weight_lost"`
	BadgesCount   int     `json:"badges_count"`
	FriendsCount  int     `json:"friends_count"`
	Rank          int     `json:"rank"`

	HealthStatus         *HealthStatus       `json:"health_status"`
	ConsistencyBreakdown []ConsistencyBucket `json:"consistency_breakdown"`
}
