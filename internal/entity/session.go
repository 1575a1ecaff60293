package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
	StatusExpired    Status = "expired"
	StatusAborted    Status = "aborted"
)

const sessionKeySeparator = ":"

// SessionKey - order-independent identifier of a player pair.
func SessionKey(first, second string) string {
	ids := []string{first, second}
	sort.Strings(ids)

	return strings.Join(ids, sessionKeySeparator)
}

// Session - one match between two players. Players[0] holds MarkX and moves first.
type Session struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Board     Board     `json:"board"`
	Players   [2]Player `json:"players"`
	Turn      int       `json:"turn"`
	WinnerID  string    `json:"winner_id,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ChannelID string    `json:"channel_id"`
	MessageID string    `json:"message_id,omitempty"`
}

func NewSession(id string, initiator, opponent Player, channelID string, now time.Time) (*Session, error) {
	if initiator.ID == opponent.ID {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSelfChallenge, initiator.ID)
	}

	return &Session{
		ID:        id,
		Key:       SessionKey(initiator.ID, opponent.ID),
		Players:   [2]Player{initiator, opponent},
		Turn:      0,
		Status:    StatusInProgress,
		CreatedAt: now,
		ChannelID: channelID,
	}, nil
}

func (that *Session) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Session) CurrentPlayer() Player {
	return that.Players[that.Turn]
}

func (that *Session) MarkOf(index int) Mark {
	if index == 0 {
		return MarkX
	}
	return MarkO
}

// IndexOf - position of the player in Players or -1.
func (that *Session) IndexOf(playerID string) int {
	for i, player := range that.Players {
		if player.ID == playerID {
			return i
		}
	}

	return -1
}

// MakeTurn - places the acting player's mark and resolves the game state.
func (that *Session) MakeTurn(playerID string, cell int) error {
	if !that.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if that.CurrentPlayer().ID != playerID {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(that.MarkOf(that.Turn), cell); err != nil {
		return err
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState - win is checked before draw, so a full winning board is a win.
func (that *Session) UpdateGameState() {
	if winner := that.Board.Winner(); winner != EmptyCell {
		that.Status = StatusWon
		if winner == MarkX {
			that.WinnerID = that.Players[0].ID
		} else {
			that.WinnerID = that.Players[1].ID
		}
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusDraw
		return
	}

	that.Turn = 1 - that.Turn
}

func (that *Session) Winner() Player {
	return that.Players[that.IndexOf(that.WinnerID)]
}

func (that *Session) Loser() Player {
	return that.Players[1-that.IndexOf(that.WinnerID)]
}

// IsIdle - reports whether the idle deadline measured from creation has passed.
func (that *Session) IsIdle(now time.Time, idleTimeout time.Duration) bool {
	return that.IsInProgress() && now.Sub(that.CreatedAt) >= idleTimeout
}

func (that *Session) Expire() {
	that.Status = StatusExpired
}

func (that *Session) Abort() {
	that.Status = StatusAborted
}

func (that *Session) Render() *RenderPayload {
	payload := &RenderPayload{
		SessionKey: that.Key,
		Board:      that.Board.Glyphs(),
		Status:     that.Status,
		Players:    that.Players,
		WinnerID:   that.WinnerID,
	}

	if that.IsInProgress() {
		payload.TurnPlayerID = that.CurrentPlayer().ID
	}

	return payload
}
