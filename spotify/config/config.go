// Package config provides utilities for managing Spotify configuration
package config

import (
	"fmt"
	"os"
	"strings"

	"titlebot/constants/envvar"
)

// Config represents the configuration for the Spotify client
type Config struct {
	ClientID     string
	ClientSecret string
}

// NewConfig creates a new configuration struct for the Spotify client
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		ClientID:     os.Getenv(envvar.SpotifyAppID),
		ClientSecret: os.Getenv(envvar.SpotifySecret),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Validate config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate all configuration
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, envvar.SpotifyAppID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, envvar.SpotifySecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Configured reports whether the environment holds Spotify credentials at all
func Configured() bool {
	return os.Getenv(envvar.SpotifyAppID) != "" || os.Getenv(envvar.SpotifySecret) != ""
}

// Option is a function that overrides a default configuration value
type Option func(*Config)

// WithClientID overrides the default Client ID
func WithClientID(clientID string) Option {
	return func(c *Config) {
		c.ClientID = clientID
	}
}

// WithClientSecret overrides the default Client Secret
func WithClientSecret(clientSecret string) Option {
	return func(c *Config) {
		c.ClientSecret = clientSecret
	}
}
