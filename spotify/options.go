package spotify

import (
	"fmt"
	"net/http"
	"strings"

	spotifyapi "github.com/zmb3/spotify/v2"

	"titlebot/spotify/config"
)

// Option is a function that configures a Client
type Option func(*Client) error

// WithConfig uses config instead of reading the environment
func WithConfig(config *config.Config) Option {
	return func(c *Client) error {
		if config == nil {
			return fmt.Errorf("nil config")
		}
		c.config = config
		return nil
	}
}

// WithHTTPClient uses an already authenticated HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("nil http client")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithBaseURL points the client at another Web API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("empty base URL")
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.apiOptions = append(c.apiOptions, spotifyapi.WithBaseURL(baseURL))
		return nil
	}
}
