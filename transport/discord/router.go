package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	commandName    = "tictactoe"
	handlerTimeout = 10 * time.Second
)

type uSession interface {
	StartSession(ctx context.Context, channelID string, initiator, opponent entity.Player) (*entity.RenderPayload, error)
	ApplyMove(ctx context.Context, sessionKey, playerID string, cell int) *entity.RenderPayload
	Abort(ctx context.Context, sessionKey, playerID string) (*entity.RenderPayload, error)
	SessionKeyByMessage(messageID string) (string, bool)
}

type uStats interface {
	Get(ctx context.Context, playerID string) (entity.Stats, error)
	Top(ctx context.Context, limit int) ([]entity.PlayerStats, error)
}

type commandHandler func(ctx context.Context, msg *discordgo.Message, args []string) error

// Router - turns gateway events into session manager calls.
type Router struct {
	logger          *slog.Logger
	session         Session
	uSession        uSession
	uStats          uStats
	prefix          string
	leaderboardSize int

	handlers map[string]commandHandler
}

func NewRouter(logger *slog.Logger, session Session, uSession uSession, uStats uStats, prefix string, leaderboardSize int) *Router {
	router := &Router{
		logger:          logger.With("component", "discord_router"),
		session:         session,
		uSession:        uSession,
		uStats:          uStats,
		prefix:          prefix,
		leaderboardSize: leaderboardSize,

		handlers: make(map[string]commandHandler),
	}

	router.handlers["stats"] = router.handleStats
	router.handlers["top"] = router.handleTop
	router.handlers["cancel"] = router.handleCancel

	return router
}

// OnMessageCreate - discordgo handler for MessageCreate events.
func (that *Router) OnMessageCreate(s *discordgo.Session, event *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	that.HandleMessage(ctx, s.State.User.ID, event.Message)
}

// OnMessageReactionAdd - discordgo handler for MessageReactionAdd events.
func (that *Router) OnMessageReactionAdd(s *discordgo.Session, event *discordgo.MessageReactionAdd) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	that.HandleReaction(ctx, s.State.User.ID, event.MessageReaction)
}

// HandleMessage - dispatches `<prefix>tictactoe ...` commands, everything else is ignored.
func (that *Router) HandleMessage(ctx context.Context, botID string, msg *discordgo.Message) {
	if msg.Author == nil || msg.Author.Bot || msg.Author.ID == botID {
		return
	}

	args, ok := that.parseCommand(msg.Content)
	if !ok {
		return
	}

	log := that.logger.With("method", "HandleMessage", "author", msg.Author.ID, "channel", msg.ChannelID)

	handler := that.handleChallenge
	if len(args) > 0 {
		if sub, exists := that.handlers[strings.ToLower(args[0])]; exists {
			handler = sub
			args = args[1:]
		}
	}

	if err := handler(ctx, msg, args); err != nil {
		log.Error("failed to handle command", tint.Err(err))
		that.reply(ctx, msg.ChannelID, "⚠️ Something went wrong, try again later.")
	}
}

// HandleReaction - a 1️⃣..9️⃣ reaction on a board message is a move.
func (that *Router) HandleReaction(ctx context.Context, botID string, reaction *discordgo.MessageReaction) {
	if reaction.UserID == botID {
		return
	}

	cell, ok := CellFromEmoji(reaction.Emoji.Name)
	if !ok {
		return
	}

	sessionKey, ok := that.uSession.SessionKeyByMessage(reaction.MessageID)
	if !ok {
		return
	}

	that.uSession.ApplyMove(ctx, sessionKey, reaction.UserID, cell)

	// clear the player's reaction so the control stays usable
	if err := that.session.MessageReactionRemove(reaction.ChannelID, reaction.MessageID, reaction.Emoji.Name, reaction.UserID, discordgo.WithContext(ctx)); err != nil {
		that.logger.Debug("failed to remove reaction", "message", reaction.MessageID, tint.Err(err))
	}
}

func (that *Router) parseCommand(content string) ([]string, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.EqualFold(fields[0], that.prefix+commandName) {
		return nil, false
	}

	return fields[1:], true
}

func (that *Router) handleChallenge(ctx context.Context, msg *discordgo.Message, _ []string) error {
	opponent, ok := firstMention(msg)
	if !ok {
		that.reply(ctx, msg.ChannelID, fmt.Sprintf("⚠️ Mention someone: `%s%s @user`", that.prefix, commandName))
		return nil
	}

	if opponent.Bot {
		that.reply(ctx, msg.ChannelID, "⚠️ Bots can't play.")
		return nil
	}

	_, err := that.uSession.StartSession(ctx, msg.ChannelID, toPlayer(msg.Author), toPlayer(opponent))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrSelfChallenge):
		that.reply(ctx, msg.ChannelID, "⚠️ You can't play against yourself.")
		return nil
	case errors.Is(err, apperror.ErrSessionAlreadyActive):
		that.reply(ctx, msg.ChannelID, "⚠️ A game between you two is already running.")
		return nil
	default:
		return fmt.Errorf("failed to start session: %w", err)
	}
}

func (that *Router) handleStats(ctx context.Context, msg *discordgo.Message, _ []string) error {
	player, ok := firstMention(msg)
	if !ok {
		player = msg.Author
	}

	stats, err := that.uStats.Get(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	that.reply(ctx, msg.ChannelID, formatStats(entity.NewPlayerStats(player.ID, stats)))

	return nil
}

func (that *Router) handleTop(ctx context.Context, msg *discordgo.Message, _ []string) error {
	top, err := that.uStats.Top(ctx, that.leaderboardSize)
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	that.reply(ctx, msg.ChannelID, formatLeaderboard(top))

	return nil
}

func (that *Router) handleCancel(ctx context.Context, msg *discordgo.Message, _ []string) error {
	opponent, ok := firstMention(msg)
	if !ok {
		that.reply(ctx, msg.ChannelID, fmt.Sprintf("⚠️ Mention your opponent: `%s%s cancel @user`", that.prefix, commandName))
		return nil
	}

	_, err := that.uSession.Abort(ctx, entity.SessionKey(msg.Author.ID, opponent.ID), msg.Author.ID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrSessionNotFound):
		that.reply(ctx, msg.ChannelID, "⚠️ No game with that player is running.")
		return nil
	default:
		return fmt.Errorf("failed to abort session: %w", err)
	}
}

func (that *Router) reply(ctx context.Context, channelID, content string) {
	if _, err := that.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		that.logger.Error("failed to reply", "channel", channelID, tint.Err(err))
	}
}

func firstMention(msg *discordgo.Message) (*discordgo.User, bool) {
	if len(msg.Mentions) == 0 || msg.Mentions[0] == nil {
		return nil, false
	}

	return msg.Mentions[0], true
}

func toPlayer(user *discordgo.User) entity.Player {
	label := user.GlobalName
	if label == "" {
		label = user.Username
	}

	return entity.Player{ID: user.ID, Label: label}
}
