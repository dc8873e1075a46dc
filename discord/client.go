package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/discord/config"
)

// -- Client --

// Handler is a discord event handler that can attach itself to a session
type Handler interface {
	fmt.Stringer
	Add(session *discordgo.Session) error
}

// Client represents a discord client
type Client struct {
	session  *discordgo.Session
	config   *config.Config
	handlers []Handler
}

// NewClient creates a new discord client
func NewClient(options ...Option) (*Client, error) {
	// Initialize client
	c := &Client{}

	// Apply options to override defaults
	for _, opt := range options {
		opt(c)
	}

	// If a config wasn't provided, create the default config
	if c.config == nil {
		config, err := config.NewConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create config: %w", err)
		}
		c.config = config
	}

	// If a session wasn't provided, create a new one
	if c.session == nil {
		if err := c.config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		if err := c.createSession(); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	}

	// Register discord event handlers
	if err := c.registerHandlers(); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return c, nil
}

// createSession creates a new discord session
func (c *Client) createSession() error {
	session, err := discordgo.New("Bot " + c.config.Token)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent
	c.session = session

	return nil
}

// registerHandlers sets callbacks for the discord session to handle registered events
func (c *Client) registerHandlers() error {
	if c.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if len(c.handlers) == 0 {
		return fmt.Errorf("no discord handlers to register")
	}

	for _, handler := range c.handlers {
		logger.Info("adding handler", zap.Stringer(zapkey.Handler, handler))
		if err := handler.Add(c.session); err != nil {
			return fmt.Errorf("failed to add %q handler: %w", handler, err)
		}
	}

	return nil
}

// registerCommands creates or replaces the bot's slash commands
func (c *Client) registerCommands() error {
	if c.config.AppID == "" {
		logger.Warn("skipping slash command registration, no app ID")
		return nil
	}
	registered, err := c.session.ApplicationCommandBulkOverwrite(c.config.AppID, c.config.GuildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	logger.Info("registered slash commands",
		zap.Int(zapkey.Count, len(registered)),
		zap.String(zapkey.AppID, c.config.AppID),
		zap.String(zapkey.GuildID, c.config.GuildID))
	return nil
}

// String returns a string representation of the client
func (c *Client) String() string {
	return "Discord Client"
}

// ---- Start/Stop ----

// Start the discord client
func (c *Client) Start() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	if err := c.registerCommands(); err != nil {
		return err
	}
	return nil
}

// Stop the discord client
func (c *Client) Stop() error {
	if err := c.session.Close(); err != nil {
		logger.Error("failed to close discord session", zap.Error(err))
	}
	return nil
}
