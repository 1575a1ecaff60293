package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsMessageContent

// Bot - gateway connection to Discord.
type Bot struct {
	logger  *slog.Logger
	session *discordgo.Session
}

func NewBot(logger *slog.Logger, token string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = intents

	return &Bot{
		logger:  logger.With("component", "discord_bot"),
		session: session,
	}, nil
}

// Session - REST side of the connection, shared with the messenger and router.
func (that *Bot) Session() *discordgo.Session {
	return that.session
}

// Start - registers the router and opens the gateway.
func (that *Bot) Start(router *Router) error {
	that.session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		that.logger.Info("logged in", "user", ready.User.Username, "guilds", len(ready.Guilds))
	})
	that.session.AddHandler(router.OnMessageCreate)
	that.session.AddHandler(router.OnMessageReactionAdd)

	if err := that.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	return nil
}

func (that *Bot) Close() error {
	if err := that.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord gateway: %w", err)
	}

	return nil
}
