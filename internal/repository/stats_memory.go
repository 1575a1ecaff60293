package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type memoryStats struct {
	mu      sync.RWMutex
	records map[string]entity.Stats
}

// NewMemoryStatsRepository - process-lifetime store, nothing survives a restart.
func NewMemoryStatsRepository() StatsRepository {
	return &memoryStats{
		records: make(map[string]entity.Stats),
	}
}

func (that *memoryStats) Increment(_ context.Context, playerID string, delta entity.Stats) (entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	updated := that.records[playerID].Add(delta)
	that.records[playerID] = updated

	return updated, nil
}

func (that *memoryStats) GetByID(_ context.Context, playerID string) (entity.Stats, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.records[playerID], nil
}

func (that *memoryStats) Top(_ context.Context, limit int) ([]entity.PlayerStats, error) {
	if limit <= 0 {
		return []entity.PlayerStats{}, nil
	}

	that.mu.RLock()
	top := make([]entity.PlayerStats, 0, len(that.records))
	for playerID, stats := range that.records {
		top = append(top, entity.NewPlayerStats(playerID, stats))
	}
	that.mu.RUnlock()

	sort.Slice(top, func(i, j int) bool {
		if top[i].Stats.Points != top[j].Stats.Points {
			return top[i].Stats.Points > top[j].Stats.Points
		}
		return top[i].PlayerID < top[j].PlayerID
	})

	if len(top) > limit {
		top = top[:limit]
	}

	return top, nil
}
