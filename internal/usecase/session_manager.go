package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-bot/internal/scheduler"
)

const messagingTimeout = 10 * time.Second

// messenger - chat platform port. AddReaction attaches the input control for a cell.
type messenger interface {
	Send(ctx context.Context, channelID string, payload *entity.RenderPayload) (entity.MessageHandle, error)
	Edit(ctx context.Context, handle entity.MessageHandle, payload *entity.RenderPayload) error
	AddReaction(ctx context.Context, handle entity.MessageHandle, cell int) error
}

type statsLedger interface {
	RecordWin(ctx context.Context, playerID string) (entity.Stats, error)
	RecordLoss(ctx context.Context, playerID string) (entity.Stats, error)
	RecordDraw(ctx context.Context, playerID string) (entity.Stats, error)
}

type sessionMetrics interface {
	SessionStarted()
	SessionFinished(status entity.Status)
	Move(result string)
	MessagingError(op string)
}

// sessionEntry - mu serializes every operation on one session. Lock order is entry then manager.
type sessionEntry struct {
	mu      sync.Mutex
	session *entity.Session
	timer   scheduler.Timer
	done    bool
}

type Option func(*GameSessionManager)

// WithClock - replaces time.Now as the source of session timestamps.
func WithClock(now func() time.Time) Option {
	return func(that *GameSessionManager) {
		that.now = now
	}
}

// GameSessionManager - owns the active sessions, at most one per unordered player pair.
type GameSessionManager struct {
	logger      *slog.Logger
	ledger      statsLedger
	messenger   messenger
	scheduler   scheduler.Scheduler
	metrics     sessionMetrics
	idleTimeout time.Duration
	now         func() time.Time

	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	byMessage map[string]string
	closed    bool
}

func NewGameSessionManager(
	logger *slog.Logger,
	ledger statsLedger,
	messenger messenger,
	scheduler scheduler.Scheduler,
	metrics sessionMetrics,
	idleTimeout time.Duration,
	opts ...Option,
) *GameSessionManager {
	manager := &GameSessionManager{
		logger:      logger.With("component", "session_manager"),
		ledger:      ledger,
		messenger:   messenger,
		scheduler:   scheduler,
		metrics:     metrics,
		idleTimeout: idleTimeout,
		now:         time.Now,

		sessions:  make(map[string]*sessionEntry),
		byMessage: make(map[string]string),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// StartSession - creates a session for the pair, renders the empty board and arms the idle timer.
func (that *GameSessionManager) StartSession(ctx context.Context, channelID string, initiator, opponent entity.Player) (*entity.RenderPayload, error) {
	log := that.logger.With("method", "StartSession", "initiator", initiator.ID, "opponent", opponent.ID)

	session, err := entity.NewSession(uuid.NewString(), initiator, opponent, channelID, that.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	entry := &sessionEntry{session: session}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return nil, apperror.ErrManagerClosed
	}
	if _, exists := that.sessions[session.Key]; exists {
		that.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionAlreadyActive, session.Key)
	}
	that.sessions[session.Key] = entry
	that.mu.Unlock()

	// armed before any platform call so the deadline stays createdAt + idleTimeout
	key, sessionID := session.Key, session.ID
	entry.timer = that.scheduler.After(that.idleTimeout, func() {
		that.expireScheduled(key, sessionID)
	})

	that.metrics.SessionStarted()
	log.Info("session started", "session", session.Key, "session_id", session.ID)

	payload := session.Render()

	handle, err := that.messenger.Send(ctx, channelID, payload)
	if err != nil {
		that.metrics.MessagingError("send")
		log.Error("failed to render board", tint.Err(err))
	} else {
		session.MessageID = handle.MessageID

		that.mu.Lock()
		that.byMessage[handle.MessageID] = session.Key
		that.mu.Unlock()

		for cell := range entity.BoardSize {
			if err = that.messenger.AddReaction(ctx, handle, cell); err != nil {
				that.metrics.MessagingError("react")
				log.Warn("failed to add move reaction", "cell", cell, tint.Err(err))
			}
		}
	}

	return payload, nil
}

// ApplyMove - off-turn, occupied, out-of-range and stale input is dropped without error.
// Returns nil when no session is active for the key.
func (that *GameSessionManager) ApplyMove(ctx context.Context, sessionKey, playerID string, cell int) *entity.RenderPayload {
	log := that.logger.With("method", "ApplyMove", "session", sessionKey, "player", playerID, "cell", cell)

	entry, ok := that.lookup(sessionKey)
	if !ok {
		that.metrics.Move(metrics.MoveIgnored)
		log.Debug("move for inactive session ignored")
		return nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.done {
		that.metrics.Move(metrics.MoveIgnored)
		log.Debug("move for finished session ignored")
		return nil
	}

	session := entry.session
	if err := session.MakeTurn(playerID, cell); err != nil {
		that.metrics.Move(metrics.MoveIgnored)
		log.Debug("move ignored", "reason", err)
		return session.Render()
	}

	that.metrics.Move(metrics.MoveApplied)

	payload := session.Render()

	switch session.Status {
	case entity.StatusWon:
		payload.Stats = that.recordWin(ctx, session)
		that.finish(entry)
		log.Info("session won", "winner", session.WinnerID)
	case entity.StatusDraw:
		payload.Stats = that.recordDraw(ctx, session)
		that.finish(entry)
		log.Info("session drawn")
	}

	that.render(ctx, session, payload)

	return payload
}

// ExpireIfIdle - ends the session when now is at least idleTimeout past its creation. Stats are not touched.
func (that *GameSessionManager) ExpireIfIdle(ctx context.Context, sessionKey string, now time.Time, idleTimeout time.Duration) (*entity.RenderPayload, bool) {
	return that.expire(ctx, sessionKey, "", now, idleTimeout)
}

// Abort - a participant cancels the session. Stats are not touched.
func (that *GameSessionManager) Abort(ctx context.Context, sessionKey, playerID string) (*entity.RenderPayload, error) {
	entry, ok := that.lookup(sessionKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionKey)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.done {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionKey)
	}

	session := entry.session
	if session.IndexOf(playerID) < 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotParticipant, playerID)
	}

	session.Abort()
	that.finish(entry)

	that.logger.Info("session aborted", "session", sessionKey, "player", playerID)

	payload := session.Render()
	that.render(ctx, session, payload)

	return payload, nil
}

// Shutdown - aborts every active session, used when the process stops. Later starts are rejected.
func (that *GameSessionManager) Shutdown(ctx context.Context) {
	that.mu.Lock()
	that.closed = true
	entries := make([]*sessionEntry, 0, len(that.sessions))
	for _, entry := range that.sessions {
		entries = append(entries, entry)
	}
	that.mu.Unlock()

	for _, entry := range entries {
		entry.mu.Lock()
		if !entry.done {
			entry.session.Abort()
			that.finish(entry)
			that.render(ctx, entry.session, entry.session.Render())
		}
		entry.mu.Unlock()
	}

	that.logger.Info("session manager stopped", "aborted", len(entries))
}

// SessionKeyByMessage - resolves the board message a reaction was added to.
func (that *GameSessionManager) SessionKeyByMessage(messageID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	key, ok := that.byMessage[messageID]

	return key, ok
}

func (that *GameSessionManager) Active() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}

func (that *GameSessionManager) expireScheduled(sessionKey, sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), messagingTimeout)
	defer cancel()

	that.expire(ctx, sessionKey, sessionID, that.now(), that.idleTimeout)
}

// expire - sessionID, when set, pins the check to one session instance so a
// late timer never ends a newer game between the same pair.
func (that *GameSessionManager) expire(ctx context.Context, sessionKey, sessionID string, now time.Time, idleTimeout time.Duration) (*entity.RenderPayload, bool) {
	entry, ok := that.lookup(sessionKey)
	if !ok {
		return nil, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	if entry.done || (sessionID != "" && session.ID != sessionID) {
		return nil, false
	}

	if !session.IsIdle(now, idleTimeout) {
		return nil, false
	}

	session.Expire()
	that.finish(entry)

	that.logger.Info("session expired", "session", sessionKey, "session_id", session.ID)

	payload := session.Render()
	that.render(ctx, session, payload)

	return payload, true
}

func (that *GameSessionManager) lookup(sessionKey string) (*sessionEntry, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	entry, ok := that.sessions[sessionKey]

	return entry, ok
}

// finish - caller holds entry.mu.
func (that *GameSessionManager) finish(entry *sessionEntry) {
	entry.done = true
	if entry.timer != nil {
		entry.timer.Stop()
	}

	that.mu.Lock()
	delete(that.sessions, entry.session.Key)
	if entry.session.MessageID != "" {
		delete(that.byMessage, entry.session.MessageID)
	}
	that.mu.Unlock()

	that.metrics.SessionFinished(entry.session.Status)
}

func (that *GameSessionManager) recordWin(ctx context.Context, session *entity.Session) []entity.PlayerStats {
	winner, loser := session.Winner(), session.Loser()

	results := map[string]entity.Stats{}
	if stats, err := that.ledger.RecordWin(ctx, winner.ID); err != nil {
		that.logger.Error("failed to record win", "player", winner.ID, tint.Err(err))
	} else {
		results[winner.ID] = stats
	}

	if stats, err := that.ledger.RecordLoss(ctx, loser.ID); err != nil {
		that.logger.Error("failed to record loss", "player", loser.ID, tint.Err(err))
	} else {
		results[loser.ID] = stats
	}

	return summarize(session, results)
}

func (that *GameSessionManager) recordDraw(ctx context.Context, session *entity.Session) []entity.PlayerStats {
	results := map[string]entity.Stats{}
	for _, player := range session.Players {
		stats, err := that.ledger.RecordDraw(ctx, player.ID)
		if err != nil {
			that.logger.Error("failed to record draw", "player", player.ID, tint.Err(err))
			continue
		}
		results[player.ID] = stats
	}

	return summarize(session, results)
}

// render - updates the board message, or posts a new one if the first send failed.
func (that *GameSessionManager) render(ctx context.Context, session *entity.Session, payload *entity.RenderPayload) {
	if session.MessageID == "" {
		if _, err := that.messenger.Send(ctx, session.ChannelID, payload); err != nil {
			that.metrics.MessagingError("send")
			that.logger.Error("failed to send session update", "session", session.Key, tint.Err(err))
		}
		return
	}

	handle := entity.MessageHandle{ChannelID: session.ChannelID, MessageID: session.MessageID}
	if err := that.messenger.Edit(ctx, handle, payload); err != nil {
		that.metrics.MessagingError("edit")
		that.logger.Error("failed to edit session message", "session", session.Key, tint.Err(err))
	}
}

func summarize(session *entity.Session, results map[string]entity.Stats) []entity.PlayerStats {
	summary := make([]entity.PlayerStats, 0, len(session.Players))
	for _, player := range session.Players {
		if stats, ok := results[player.ID]; ok {
			summary = append(summary, entity.NewPlayerStats(player.ID, stats))
		}
	}

	return summary
}
