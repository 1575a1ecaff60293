package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

type sentMessage struct {
	channelID string
	messageID string
	content   string
}

type fakeSession struct {
	mu        sync.Mutex
	sent      []sentMessage
	edited    []sentMessage
	reactions []string
	removed   []string
	err       error
}

func (that *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.err != nil {
		return nil, that.err
	}

	that.sent = append(that.sent, sentMessage{channelID: channelID, content: content})

	return &discordgo.Message{ID: "msg-1", ChannelID: channelID, Content: content}, nil
}

func (that *fakeSession) ChannelMessageEdit(channelID, messageID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.err != nil {
		return nil, that.err
	}

	that.edited = append(that.edited, sentMessage{channelID: channelID, messageID: messageID, content: content})

	return &discordgo.Message{ID: messageID, ChannelID: channelID, Content: content}, nil
}

func (that *fakeSession) MessageReactionAdd(_, _, emojiID string, _ ...discordgo.RequestOption) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.err != nil {
		return that.err
	}

	that.reactions = append(that.reactions, emojiID)

	return nil
}

func (that *fakeSession) MessageReactionRemove(_, _, emojiID, userID string, _ ...discordgo.RequestOption) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removed = append(that.removed, userID+":"+emojiID)

	return that.err
}

func (that *fakeSession) lastSent() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.sent) == 0 {
		return ""
	}

	return that.sent[len(that.sent)-1].content
}
