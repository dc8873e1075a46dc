package api

import (
	"fmt"
	"net/http"
)

// Option is a function that configures a Client
type Option func(*Client) error

// WithAddr overrides the listen address
func WithAddr(addr string) Option {
	return func(c *Client) error {
		if addr == "" {
			return fmt.Errorf("empty listen address")
		}
		c.addr = addr
		return nil
	}
}

// WithRoute serves handler under pattern next to the built-in routes
func WithRoute(pattern string, handler http.Handler) Option {
	return func(c *Client) error {
		if handler == nil {
			return fmt.Errorf("nil handler for %q", pattern)
		}
		if _, ok := c.routes[pattern]; ok {
			return fmt.Errorf("duplicate route %q", pattern)
		}
		c.routes[pattern] = handler
		return nil
	}
}
