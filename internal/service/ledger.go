package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Scoring policy.
const (
	WinPoints  = 3
	DrawPoints = 1
	LossPoints = 0
)

type statsRepo interface {
	Increment(ctx context.Context, playerID string, delta entity.Stats) (entity.Stats, error)
	GetByID(ctx context.Context, playerID string) (entity.Stats, error)
	Top(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

// StatsLedger - monotonic per-player record of finished games.
type StatsLedger struct {
	statsRepo statsRepo
}

func NewStatsLedger(statsRepo statsRepo) *StatsLedger {
	return &StatsLedger{
		statsRepo: statsRepo,
	}
}

func (that *StatsLedger) RecordWin(ctx context.Context, playerID string) (entity.Stats, error) {
	return that.record(ctx, playerID, entity.Stats{Wins: 1, GamesPlayed: 1, Points: WinPoints})
}

func (that *StatsLedger) RecordLoss(ctx context.Context, playerID string) (entity.Stats, error) {
	return that.record(ctx, playerID, entity.Stats{Losses: 1, GamesPlayed: 1, Points: LossPoints})
}

func (that *StatsLedger) RecordDraw(ctx context.Context, playerID string) (entity.Stats, error) {
	return that.record(ctx, playerID, entity.Stats{Draws: 1, GamesPlayed: 1, Points: DrawPoints})
}

func (that *StatsLedger) Get(ctx context.Context, playerID string) (entity.Stats, error) {
	stats, err := that.statsRepo.GetByID(ctx, playerID)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("could not get stats: %w", err)
	}

	return stats, nil
}

func (that *StatsLedger) Top(ctx context.Context, limit int) ([]entity.PlayerStats, error) {
	top, err := that.statsRepo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get leaderboard: %w", err)
	}

	return top, nil
}

func (that *StatsLedger) record(ctx context.Context, playerID string, delta entity.Stats) (entity.Stats, error) {
	stats, err := that.statsRepo.Increment(ctx, playerID, delta)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("could not record result for %s: %w", playerID, err)
	}

	return stats, nil
}
