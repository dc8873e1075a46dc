// Package main provides the entry point for the title-casing bot and API server
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"titlebot/api"
	"titlebot/constants/envvar"
	"titlebot/discord"
	discordconfig "titlebot/discord/config"
	"titlebot/log"
	"titlebot/spotify"
	spotifyconfig "titlebot/spotify/config"
)

var logger = log.Named("main")

// service is a long-running component started and stopped by main
type service interface {
	fmt.Stringer
	Start() error
	Stop() error
}

func main() {
	os.Exit(run())
}

func run() int {
	defer func() { _ = log.Logger.Sync() }()

	if err := loadDotEnv(); err != nil {
		logger.Error("Failed to load env file", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := buildServices(ctx)
	if err != nil {
		logger.Error("Failed to set up services", zap.Error(err))
		return 1
	}

	var started []service
	for _, svc := range services {
		logger.Info("Starting service", zap.Stringer("service", svc))
		if err := svc.Start(); err != nil {
			logger.Error("Failed to start service", zap.Stringer("service", svc), zap.Error(err))
			stopAll(started)
			return 1
		}
		started = append(started, svc)
	}

	<-ctx.Done()
	logger.Info("Shutting down")
	stopAll(started)
	return 0
}

// loadDotEnv loads variables from DOTENV_FILE, or .env, without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(envvar.DotEnvFile)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Info("Loaded env file", zap.String("path", path))
	return nil
}

// buildServices wires the API server and, when configured, the discord bot
func buildServices(ctx context.Context) ([]service, error) {
	var services []service
	var apiOptions []api.Option

	if os.Getenv(envvar.DiscordToken) != "" {
		cfg, err := discordconfig.NewConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create discord config: %w", err)
		}

		messages := &discord.MessageHandler{}
		if titler := newTrackTitler(ctx); titler != nil {
			messages.Titler = titler
		}

		bot, err := discord.NewClient(
			discord.WithConfig(cfg),
			discord.WithHandlers(&discord.CommandHandler{}, messages),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create discord client: %w", err)
		}
		services = append(services, bot)
		apiOptions = append(apiOptions, api.WithRoute("POST /interactions", discord.Endpoint(cfg.PublicKey)))
	} else {
		logger.Info("Discord token not set, running the HTTP API only")
	}

	server, err := api.NewClient(apiOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	// The API goes first so the interactions endpoint is up before the bot registers commands
	return append([]service{server}, services...), nil
}

// newTrackTitler returns a spotify client, or nil when spotify is not configured or unreachable
func newTrackTitler(ctx context.Context) *spotify.Client {
	if !spotifyconfig.Configured() {
		return nil
	}
	client, err := spotify.NewClient(ctx)
	if err != nil {
		logger.Warn("Spotify lookups disabled", zap.Error(err))
		return nil
	}
	return client
}

// stopAll stops services in reverse start order
func stopAll(services []service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(); err != nil {
			logger.Error("Failed to stop service", zap.Stringer("service", services[i]), zap.Error(err))
		}
	}
}
