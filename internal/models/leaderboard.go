package models

// LeaderboardEntry is one donor on the leaderboard
type LeaderboardEntry struct {
	Name      string
	WeightLbs float64
}

// DefaultLeaderboard returns the fixed, already ranked list of donors
func DefaultLeaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Name: "John", WeightLbs: 100},
		{Name: "Jane", WeightLbs: 80},
		{Name: "Bob", WeightLbs: 70},
		{Name: "Alice", WeightLbs: 60},
		{Name: "Tom", WeightLbs: 50},
	}
}

// Medal returns the marker shown next to the 1-based rank, or "" below third place
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🏆"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}
