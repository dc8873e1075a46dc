// Package config provides utilities for managing Discord configuration
package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"

	"titlebot/constants/envvar"
)

// Config represents the configuration for the Discord client
type Config struct {
	Token   string
	AppID   string
	GuildID string

	// PublicKey verifies requests sent to the HTTP interactions endpoint.
	// Verification is skipped when it is empty.
	PublicKey ed25519.PublicKey
}

// NewConfig creates a new configuration struct for the Discord client
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Token:   os.Getenv(envvar.DiscordToken),
		AppID:   os.Getenv(envvar.DiscordAppID),
		GuildID: os.Getenv(envvar.DiscordGuildID),
	}
	if raw := os.Getenv(envvar.DiscordPublicKey); raw != "" {
		key, err := ParsePublicKey(raw)
		if err != nil {
			return nil, err
		}
		c.PublicKey = key
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParsePublicKey decodes the hex-encoded application public key shown in the
// Discord developer portal
func ParsePublicKey(raw string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid discord public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid discord public key: want %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	return ed25519.PublicKey(key), nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("discord token is not set")
	}
	if c.AppID == "" {
		// Slash commands need the application ID; messages still work without it
		logger.Warn("discord app ID is not set, slash commands will not be registered")
	}
	return nil
}

// Option is a function that overrides a default configuration value
type Option func(*Config)

// WithToken sets the discord token
func WithToken(token string) Option {
	return func(c *Config) {
		c.Token = token
	}
}

// WithAppID sets the discord application ID
func WithAppID(appID string) Option {
	return func(c *Config) {
		c.AppID = appID
	}
}

// WithGuildID restricts slash commands to a single guild
func WithGuildID(guildID string) Option {
	return func(c *Config) {
		c.GuildID = guildID
	}
}

// WithPublicKey sets the key used to verify HTTP interactions
func WithPublicKey(key ed25519.PublicKey) Option {
	return func(c *Config) {
		c.PublicKey = key
	}
}
