// Package api serves the title-casing HTTP API
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/utils/ctxutil"
	"titlebot/utils/httputil"
)

const shutdownTimeout = 5 * time.Second

// Client serves the HTTP API
type Client struct {
	addr     string
	mux      *http.ServeMux
	server   *http.Server
	listener net.Listener
	routes   map[string]http.Handler
}

// NewClient creates a new API client. It listens on httputil.Port() unless
// WithAddr says otherwise.
func NewClient(options ...Option) (*Client, error) {
	c := &Client{
		addr:   httputil.Port(),
		routes: map[string]http.Handler{},
	}
	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	c.mux = http.NewServeMux()
	c.mux.HandleFunc("GET /{$}", homeHandler)
	c.mux.HandleFunc("GET /health", healthHandler)
	c.mux.HandleFunc("GET /titlecase", titlecaseQueryHandler)
	c.mux.HandleFunc("POST /titlecase", titlecaseBodyHandler)
	for pattern, handler := range c.routes {
		logger.Info("adding route", zap.String(zapkey.Path, pattern))
		c.mux.Handle(pattern, handler)
	}

	c.server = &http.Server{
		Addr:              c.addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return c, nil
}

// Handler returns the API routes wrapped in request logging
func (c *Client) Handler() http.Handler {
	return withRequestLogging(c.mux)
}

// String returns a string representation of the client
func (c *Client) String() string {
	return "API Client"
}

// Addr returns the address the client listens on once started
func (c *Client) Addr() string {
	if c.listener != nil {
		return c.listener.Addr().String()
	}
	return c.addr
}

// ---- Start/Stop ----

// Start listening and serve requests in the background
func (c *Client) Start() error {
	listener, err := net.Listen("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.addr, err)
	}
	c.listener = listener

	logger.Info("Server starting", zap.String(zapkey.Port, c.Addr()))
	go func() {
		if err := c.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

// Stop the server, giving in-flight requests a moment to finish
func (c *Client) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := c.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// withRequestLogging attaches request fields to the context and logs each request
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, fields := ctxutil.WithZapFields(r.Context(),
			zap.String(zapkey.Method, r.Method),
			zap.String(zapkey.Path, r.URL.Path),
		)
		logger.Info("Handling request", fields...)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
