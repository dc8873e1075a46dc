package discord

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/log"
	"titlebot/utils/ctxutil"
)

// CommandPrefix starts a message asking the bot to title-case the rest of it
const CommandPrefix = "!titlecase"

// trackLookupTimeout bounds the spotify lookups made for a single message
const trackLookupTimeout = 10 * time.Second

// TrackTitler finds the title-cased titles of the tracks linked in content
type TrackTitler interface {
	TrackTitles(ctx context.Context, content string) ([]string, error)
}

// MessageHandler replies to "!titlecase" messages and to messages with track links
type MessageHandler struct {
	// Channels limits the handler to these channel IDs; empty means every channel
	Channels []string

	// Titler looks up linked tracks; nil disables track replies
	Titler TrackTitler
}

func (h *MessageHandler) String() string {
	return "MessageHandler"
}

// Add registers the handler with the session
func (h *MessageHandler) Add(session *discordgo.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	session.AddHandler(h.Handle)
	return nil
}

// Handle replies to a newly created message
func (h *MessageHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s == nil {
		logger.Error("session is nil")
		return
	}
	if err := validateMessage(m); err != nil {
		logger.With(zap.Error(err)).Error("invalid message")
		return
	}

	ctx, fields := ctxutil.WithZapFields(
		context.Background(),
		zap.String(zapkey.ChannelID, m.ChannelID),
		zap.String(zapkey.ID, m.ID),
		zap.String(zapkey.UserName, m.Author.Username),
		zap.String(zapkey.UserID, m.Author.ID),
	)

	if m.Author.Bot {
		logger.Debug("ignoring bot message", fields...)
		return
	}
	if log.VerboseLogsEnabled(ctx) {
		logger.With(zap.String(zapkey.Content, m.Content)).Info("Received message", fields...)
	}

	ctx, cancel := context.WithTimeout(ctx, trackLookupTimeout)
	defer cancel()
	reply, ok := h.reply(ctx, m.ChannelID, m.Content)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		logger.With(zap.Error(err)).Error("Failed to send reply", fields...)
		return
	}
	logger.With(zap.String(zapkey.Reply, reply)).Info("Sent reply", fields...)
}

// reply returns the bot's answer to content posted in channelID, if any
func (h *MessageHandler) reply(ctx context.Context, channelID, content string) (string, bool) {
	if len(h.Channels) > 0 && !slices.Contains(h.Channels, channelID) {
		return "", false
	}

	if text, ok := strings.CutPrefix(content, CommandPrefix); ok {
		// "!titlecaser" is not the command
		if text != "" && !strings.ContainsAny(text[:1], " \t\n") {
			return "", false
		}
		return titlecaseReply(text), true
	}

	if h.Titler == nil {
		return "", false
	}
	titles, err := h.Titler.TrackTitles(ctx, content)
	if err != nil {
		ctxutil.Logger(ctx, logger).Warn("Failed to look up tracks", zap.Error(err))
		return "", false
	}
	if len(titles) == 0 {
		return "", false
	}
	return truncate(strings.Join(titles, "\n")), true
}

func validateMessage(m *discordgo.MessageCreate) error {
	if m == nil {
		return fmt.Errorf("message create is nil")
	}
	if m.Message == nil {
		return fmt.Errorf("message is nil")
	}
	if m.Content == "" {
		return fmt.Errorf("message content is empty")
	}
	if m.Author == nil {
		return fmt.Errorf("message author is nil")
	}
	return nil
}
