package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const maxLeaderboardSize = 100

type statsService interface {
	Get(ctx context.Context, playerID string) (entity.Stats, error)
	Top(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

type StatsHandler struct {
	logger       *slog.Logger
	statsService statsService
	defaultLimit int
}

func NewStatsHandler(logger *slog.Logger, statsService statsService, defaultLimit int) *StatsHandler {
	return &StatsHandler{
		logger:       logger.With("component", "stats_handler"),
		statsService: statsService,
		defaultLimit: defaultLimit,
	}
}

// GetStats - GET /stats/{playerID}, unknown players get an empty record.
func (that *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	stats, err := that.statsService.Get(r.Context(), playerID)
	if err != nil {
		that.logger.Error("failed to get stats", "player", playerID, tint.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, entity.NewPlayerStats(playerID, stats))
}

// GetLeaderboard - GET /leaderboard?limit=n.
func (that *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := that.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxLeaderboardSize {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	top, err := that.statsService.Top(r.Context(), limit)
	if err != nil {
		that.logger.Error("failed to get leaderboard", tint.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if top == nil {
		top = []entity.PlayerStats{}
	}

	that.writeJSON(w, top)
}

func (that *StatsHandler) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", tint.Err(err))
	}
}
