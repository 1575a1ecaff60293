package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	statsKeyPrefix = "stats:"
	leaderboardKey = "leaderboard:points"
)

type StatsRepository interface {
	Increment(ctx context.Context, playerID string, delta entity.Stats) (entity.Stats, error)
	GetByID(ctx context.Context, playerID string) (entity.Stats, error)
	Top(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

type dbStats struct {
	client *redis.Client
}

// statsRecord - hash layout of a player's record under stats:<player id>.
type statsRecord struct {
	Wins        int `redis:"wins"`
	Losses      int `redis:"losses"`
	Draws       int `redis:"draws"`
	GamesPlayed int `redis:"games"`
	Points      int `redis:"points"`
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

// Increment - applies delta in one MULTI/EXEC so concurrent updates never lose counts.
func (that *dbStats) Increment(ctx context.Context, playerID string, delta entity.Stats) (entity.Stats, error) {
	statsKey := statsKeyPrefix + playerID

	var wins, losses, draws, games, points *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		wins = pipe.HIncrBy(ctx, statsKey, "wins", int64(delta.Wins))
		losses = pipe.HIncrBy(ctx, statsKey, "losses", int64(delta.Losses))
		draws = pipe.HIncrBy(ctx, statsKey, "draws", int64(delta.Draws))
		games = pipe.HIncrBy(ctx, statsKey, "games", int64(delta.GamesPlayed))
		points = pipe.HIncrBy(ctx, statsKey, "points", int64(delta.Points))
		pipe.ZIncrBy(ctx, leaderboardKey, float64(delta.Points), playerID)

		return nil
	})
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to increment stats: %w", err)
	}

	return entity.Stats{
		Wins:        int(wins.Val()),
		Losses:      int(losses.Val()),
		Draws:       int(draws.Val()),
		GamesPlayed: int(games.Val()),
		Points:      int(points.Val()),
	}, nil
}

// GetByID - a player that never played gets a zeroed record.
func (that *dbStats) GetByID(ctx context.Context, playerID string) (entity.Stats, error) {
	var record statsRecord
	if err := that.client.HGetAll(ctx, statsKeyPrefix+playerID).Scan(&record); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats by id: %w", err)
	}

	return entity.Stats(record), nil
}

func (that *dbStats) Top(ctx context.Context, limit int) ([]entity.PlayerStats, error) {
	if limit <= 0 {
		return []entity.PlayerStats{}, nil
	}

	members, err := that.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	top := make([]entity.PlayerStats, 0, len(members))
	for _, playerID := range members {
		stats, err := that.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}

		top = append(top, entity.NewPlayerStats(playerID, stats))
	}

	return top, nil
}
