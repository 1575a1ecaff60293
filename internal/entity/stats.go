package entity

import "fmt"

type Stats struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Draws       int `json:"draws"`
	GamesPlayed int `json:"games_played"`
	Points      int `json:"points"`
}

// Add - returns the record with every counter of delta added.
func (that Stats) Add(delta Stats) Stats {
	return Stats{
		Wins:        that.Wins + delta.Wins,
		Losses:      that.Losses + delta.Losses,
		Draws:       that.Draws + delta.Draws,
		GamesPlayed: that.GamesPlayed + delta.GamesPlayed,
		Points:      that.Points + delta.Points,
	}
}

// WinRate - wins over games played as a percentage, 0 when nothing was played.
func (that Stats) WinRate() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}

	return float64(that.Wins) / float64(that.GamesPlayed) * 100
}

func (that Stats) FormatWinRate() string {
	return fmt.Sprintf("%.2f", that.WinRate())
}

type PlayerStats struct {
	PlayerID string `json:"player_id"`
	Stats    Stats  `json:"stats"`
	WinRate  string `json:"win_rate"`
}

func NewPlayerStats(playerID string, stats Stats) PlayerStats {
	return PlayerStats{
		PlayerID: playerID,
		Stats:    stats,
		WinRate:  stats.FormatWinRate(),
	}
}
