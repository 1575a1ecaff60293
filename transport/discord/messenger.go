package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Messenger - renders sessions as Discord messages with reaction controls.
type Messenger struct {
	session Session
}

func NewMessenger(session Session) *Messenger {
	return &Messenger{session: session}
}

func (that *Messenger) Send(ctx context.Context, channelID string, payload *entity.RenderPayload) (entity.MessageHandle, error) {
	msg, err := that.session.ChannelMessageSend(channelID, FormatPayload(payload), discordgo.WithContext(ctx))
	if err != nil {
		return entity.MessageHandle{}, fmt.Errorf("failed to send message: %w", err)
	}

	return entity.MessageHandle{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

func (that *Messenger) Edit(ctx context.Context, handle entity.MessageHandle, payload *entity.RenderPayload) error {
	if _, err := that.session.ChannelMessageEdit(handle.ChannelID, handle.MessageID, FormatPayload(payload), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", handle.MessageID, err)
	}

	return nil
}

func (that *Messenger) AddReaction(ctx context.Context, handle entity.MessageHandle, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", entity.ErrInvalidCell, cell)
	}

	if err := that.session.MessageReactionAdd(handle.ChannelID, handle.MessageID, cellEmoji[cell], discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add reaction to message %s: %w", handle.MessageID, err)
	}

	return nil
}
