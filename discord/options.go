package discord

import (
	"github.com/bwmarrin/discordgo"

	"titlebot/discord/config"
)

// Option is a function that overrides a default client value
type Option func(*Client)

// WithConfig uses config instead of reading the environment
func WithConfig(config *config.Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithHandlers adds event handlers, skipping nil ones
func WithHandlers(handlers ...Handler) Option {
	return func(c *Client) {
		for _, handler := range handlers {
			if handler == nil {
				logger.Warn("nil handler provided")
				continue
			}
			c.handlers = append(c.handlers, handler)
		}
	}
}

// WithSession uses an existing session instead of creating one
func WithSession(session *discordgo.Session) Option {
	return func(c *Client) {
		c.session = session
	}
}
