// Package spotify looks up Spotify tracks linked in chat messages
package spotify

import (
	"context"
	"fmt"
	"net/http"

	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"titlebot/spotify/config"
)

// Client reads track metadata from the Spotify Web API
type Client struct {
	api        *spotifyapi.Client
	config     *config.Config
	httpClient *http.Client
	apiOptions []spotifyapi.ClientOption
}

// NewClient creates a Spotify client. Unless WithHTTPClient is given it
// authenticates with the client-credentials flow, which needs no user login.
func NewClient(ctx context.Context, options ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.httpClient == nil {
		if c.config == nil {
			cfg, err := config.NewConfig()
			if err != nil {
				return nil, fmt.Errorf("failed to create config: %w", err)
			}
			c.config = cfg
		}
		credentials := &clientcredentials.Config{
			ClientID:     c.config.ClientID,
			ClientSecret: c.config.ClientSecret,
			TokenURL:     spotifyauth.TokenURL,
		}
		// Fail early on bad credentials instead of on the first lookup
		if _, err := credentials.Token(ctx); err != nil {
			return nil, fmt.Errorf("failed to get spotify token: %w", err)
		}
		c.httpClient = credentials.Client(context.WithoutCancel(ctx))
	}

	c.api = spotifyapi.New(c.httpClient, c.apiOptions...)
	return c, nil
}

// String returns a string representation of the client
func (c *Client) String() string {
	return "Spotify Client"
}
