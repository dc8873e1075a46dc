// Package envvar defines environment variable keys as constants
package envvar

// General constants
const (
	VerboseLogsEnabled = "VERBOSE_LOGS_ENABLED"
	DotEnvFile         = "DOTENV_FILE"
)

// HTTP-related constants
const (
	Port = "PORT"
)

// Discord-related constants
const (
	// Authentication
	DiscordAppID     = "DISCORD_APP_ID"
	DiscordToken     = "DISCORD_TOKEN"
	DiscordPublicKey = "DISCORD_PUBLIC_KEY"

	// Slash commands are registered globally unless a guild is given
	DiscordGuildID = "DISCORD_GUILD_ID"
)

// Spotify-related constants
const (
	SpotifyAppID  = "SPOTIFY_APP_ID"
	SpotifySecret = "SPOTIFY_SECRET"
)
