package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titlebot/constants/envvar"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TITLEBOT_TEST_VALUE=from-file\n"), 0o600))

	t.Setenv(envvar.DotEnvFile, path)
	t.Setenv("TITLEBOT_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("TITLEBOT_TEST_VALUE"))

	require.NoError(t, loadDotEnv())
	assert.Equal(t, "from-file", os.Getenv("TITLEBOT_TEST_VALUE"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv(envvar.DotEnvFile, filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, loadDotEnv())
}

func TestBuildServices_APIOnly(t *testing.T) {
	t.Setenv(envvar.DiscordToken, "")
	t.Setenv(envvar.Port, "0")

	services, err := buildServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "API Client", services[0].String())
}

func TestBuildServices_WithDiscord(t *testing.T) {
	t.Setenv(envvar.DiscordToken, "test")
	t.Setenv(envvar.DiscordPublicKey, "")
	t.Setenv(envvar.SpotifyAppID, "")
	t.Setenv(envvar.SpotifySecret, "")
	t.Setenv(envvar.Port, "0")

	services, err := buildServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "API Client", services[0].String())
	assert.Equal(t, "Discord Client", services[1].String())
}

func TestNewTrackTitler_NotConfigured(t *testing.T) {
	t.Setenv(envvar.SpotifyAppID, "")
	t.Setenv(envvar.SpotifySecret, "")
	assert.Nil(t, newTrackTitler(context.Background()))
}
