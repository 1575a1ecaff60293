package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botID = "999"

var (
	alice = &discordgo.User{ID: "100", Username: "alice"}
	bob   = &discordgo.User{ID: "200", Username: "bob", GlobalName: "Bobby"}
	robot = &discordgo.User{ID: "300", Username: "robot", Bot: true}
)

type startCall struct {
	channelID string
	initiator entity.Player
	opponent  entity.Player
}

type moveCall struct {
	sessionKey string
	playerID   string
	cell       int
}

type fakeSessions struct {
	startErr error
	abortErr error
	byMessage map[string]string

	starts []startCall
	moves  []moveCall
	aborts []string
}

func (that *fakeSessions) StartSession(_ context.Context, channelID string, initiator, opponent entity.Player) (*entity.RenderPayload, error) {
	that.starts = append(that.starts, startCall{channelID: channelID, initiator: initiator, opponent: opponent})
	if that.startErr != nil {
		return nil, that.startErr
	}

	return &entity.RenderPayload{SessionKey: entity.SessionKey(initiator.ID, opponent.ID)}, nil
}

func (that *fakeSessions) ApplyMove(_ context.Context, sessionKey, playerID string, cell int) *entity.RenderPayload {
	that.moves = append(that.moves, moveCall{sessionKey: sessionKey, playerID: playerID, cell: cell})

	return &entity.RenderPayload{SessionKey: sessionKey}
}

func (that *fakeSessions) Abort(_ context.Context, sessionKey, _ string) (*entity.RenderPayload, error) {
	that.aborts = append(that.aborts, sessionKey)
	if that.abortErr != nil {
		return nil, that.abortErr
	}

	return &entity.RenderPayload{SessionKey: sessionKey, Status: entity.StatusAborted}, nil
}

func (that *fakeSessions) SessionKeyByMessage(messageID string) (string, bool) {
	key, ok := that.byMessage[messageID]

	return key, ok
}

type fakeStats struct {
	stats map[string]entity.Stats
	top   []entity.PlayerStats
	err   error

	limit int
}

func (that *fakeStats) Get(_ context.Context, playerID string) (entity.Stats, error) {
	return that.stats[playerID], that.err
}

func (that *fakeStats) Top(_ context.Context, limit int) ([]entity.PlayerStats, error) {
	that.limit = limit

	return that.top, that.err
}

type routerEnv struct {
	router   *Router
	session  *fakeSession
	sessions *fakeSessions
	stats    *fakeStats
}

func newRouterEnv() *routerEnv {
	env := &routerEnv{
		session:  &fakeSession{},
		sessions: &fakeSessions{byMessage: map[string]string{"msg-1": entity.SessionKey(alice.ID, bob.ID)}},
		stats:    &fakeStats{stats: map[string]entity.Stats{}},
	}
	env.router = NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), env.session, env.sessions, env.stats, "+", 5)

	return env
}

func message(author *discordgo.User, content string, mentions ...*discordgo.User) *discordgo.Message {
	return &discordgo.Message{ChannelID: "chan", Author: author, Content: content, Mentions: mentions}
}

func TestRouter_HandleMessage_Challenge(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a session with the mentioned user", func(t *testing.T) {
		// Given: alice mentions bob
		env := newRouterEnv()

		// When: the command arrives
		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe <@200>", bob))

		// Then: a session is started in the channel with labels resolved
		require.Len(t, env.sessions.starts, 1)
		assert.Equal(t, startCall{
			channelID: "chan",
			initiator: entity.Player{ID: "100", Label: "alice"},
			opponent:  entity.Player{ID: "200", Label: "Bobby"},
		}, env.sessions.starts[0])
		assert.Empty(t, env.session.sent)
	})

	t.Run("Command name is case insensitive", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(alice, "+TicTacToe <@200>", bob))

		assert.Len(t, env.sessions.starts, 1)
	})

	t.Run("Ignores other messages", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(alice, "hello <@200>", bob))
		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoes <@200>", bob))
		env.router.HandleMessage(ctx, botID, message(alice, ""))

		assert.Empty(t, env.sessions.starts)
		assert.Empty(t, env.session.sent)
	})

	t.Run("Ignores bots and itself", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(robot, "+tictactoe <@200>", bob))
		env.router.HandleMessage(ctx, botID, message(&discordgo.User{ID: botID}, "+tictactoe <@200>", bob))

		assert.Empty(t, env.sessions.starts)
	})

	t.Run("Rejects a bot opponent", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe <@300>", robot))

		assert.Empty(t, env.sessions.starts)
		assert.Contains(t, env.session.lastSent(), "Bots can't play")
	})

	t.Run("Asks for a mention", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe"))

		assert.Empty(t, env.sessions.starts)
		assert.Contains(t, env.session.lastSent(), "+tictactoe @user")
	})

	t.Run("Explains rejected challenges", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want string
		}{
			{"self", apperror.ErrSelfChallenge, "yourself"},
			{"already active", apperror.ErrSessionAlreadyActive, "already running"},
			{"unexpected", errors.New("boom"), "Something went wrong"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				env := newRouterEnv()
				env.sessions.startErr = tt.err

				env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe <@200>", bob))

				assert.Contains(t, env.session.lastSent(), tt.want)
			})
		}
	})
}

func TestRouter_HandleMessage_Subcommands(t *testing.T) {
	ctx := context.Background()

	t.Run("Stats for the author", func(t *testing.T) {
		env := newRouterEnv()
		env.stats.stats[alice.ID] = entity.Stats{Wins: 1, Losses: 1, GamesPlayed: 2, Points: 3}

		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe stats"))

		assert.Equal(t, "<@100>: 1W / 1L / 0D, 3 pts, win rate 50.00%", env.session.lastSent())
	})

	t.Run("Stats for a mentioned user", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe stats <@200>", bob))

		assert.Equal(t, "<@200>: 0W / 0L / 0D, 0 pts, win rate 0.00%", env.session.lastSent())
	})

	t.Run("Top uses the configured size", func(t *testing.T) {
		env := newRouterEnv()
		env.stats.top = []entity.PlayerStats{entity.NewPlayerStats("100", entity.Stats{Wins: 1, GamesPlayed: 1, Points: 3})}

		env.router.HandleMessage(ctx, botID, message(alice, "+tictactoe top"))

		assert.Equal(t, 5, env.stats.limit)
		assert.Contains(t, env.session.lastSent(), "1. <@100>")
	})

	t.Run("Cancel aborts the pair's session", func(t *testing.T) {
		env := newRouterEnv()

		env.router.HandleMessage(ctx, botID, message(bob, "+tictactoe cancel <@100>", alice))

		assert.Equal(t, []string{entity.SessionKey(alice.ID, bob.ID)}, env.sessions.aborts)
	})

	t.Run("Cancel without a game", func(t *testing.T) {
		env := newRouterEnv()
		env.sessions.abortErr = apperror.ErrSessionNotFound

		env.router.HandleMessage(ctx, botID, message(bob, "+tictactoe cancel <@100>", alice))

		assert.Contains(t, env.session.lastSent(), "No game")
	})
}

func TestRouter_HandleReaction(t *testing.T) {
	ctx := context.Background()

	reaction := func(userID, messageID, emoji string) *discordgo.MessageReaction {
		return &discordgo.MessageReaction{
			UserID:    userID,
			MessageID: messageID,
			ChannelID: "chan",
			Emoji:     discordgo.Emoji{Name: emoji},
		}
	}

	t.Run("Keycap on a board message is a move", func(t *testing.T) {
		// Given: msg-1 renders alice vs bob
		env := newRouterEnv()

		// When: alice reacts with 5️⃣
		env.router.HandleReaction(ctx, botID, reaction(alice.ID, "msg-1", "5️⃣"))

		// Then: a move into the center is applied and the reaction is cleared
		require.Len(t, env.sessions.moves, 1)
		assert.Equal(t, moveCall{sessionKey: entity.SessionKey(alice.ID, bob.ID), playerID: alice.ID, cell: 4}, env.sessions.moves[0])
		assert.Equal(t, []string{alice.ID + ":5️⃣"}, env.session.removed)
	})

	t.Run("Ignored reactions", func(t *testing.T) {
		tests := []struct {
			name     string
			reaction *discordgo.MessageReaction
		}{
			{"bot seeding controls", reaction(botID, "msg-1", "1️⃣")},
			{"other emoji", reaction(alice.ID, "msg-1", "👍")},
			{"unknown message", reaction(alice.ID, "msg-2", "1️⃣")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				env := newRouterEnv()

				env.router.HandleReaction(ctx, botID, tt.reaction)

				assert.Empty(t, env.sessions.moves)
				assert.Empty(t, env.session.removed)
			})
		}
	})
}
