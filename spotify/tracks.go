package spotify

import (
	"context"
	"fmt"
	"strings"

	spotifyapi "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/log"
	"titlebot/spotify/track"
	"titlebot/titlecase"
	"titlebot/utils/ctxutil"
)

// maxTracksPerMessage caps the lookups made for a single message
const maxTracksPerMessage = 5

// -- Tracks ---

// Track fetches a single track
func (c *Client) Track(ctx context.Context, id spotifyapi.ID) (*spotifyapi.FullTrack, error) {
	if c.api == nil {
		return nil, fmt.Errorf("spotify client not initialized")
	}
	if id == "" {
		return nil, fmt.Errorf("no track ID provided")
	}
	return c.api.GetTrack(ctx, id)
}

// TrackTitles returns "Title - Artist" for every track linked in content,
// with the title in title case. Content without track links yields nothing.
func (c *Client) TrackTitles(ctx context.Context, content string) ([]string, error) {
	urls, ok := track.ExtractURLs(content)
	if !ok {
		return nil, nil
	}
	trackIDs := track.ToTrackIDs(urls)
	if len(trackIDs) > maxTracksPerMessage {
		trackIDs = trackIDs[:maxTracksPerMessage]
	}

	ctx, fields := ctxutil.WithZapFields(ctx,
		zap.Strings(zapkey.TrackURLs, urls),
		zap.Any(zapkey.TrackIDs, trackIDs),
	)
	if log.VerboseLogsEnabled(ctx) {
		logger.Info("Looking up tracks", fields...)
	}

	titles := make([]string, 0, len(trackIDs))
	for _, id := range trackIDs {
		t, err := c.Track(ctx, id)
		if err != nil {
			logger.With(zap.Error(err), zap.String(zapkey.TrackID, string(id))).Error("Spotify API error", fields...)
			return nil, fmt.Errorf("failed to get track %s: %w", id, err)
		}
		titles = append(titles, FormatTitle(t))
	}

	logger.Info("Found tracks", append(fields, zap.Int(zapkey.Count, len(titles)))...)
	return titles, nil
}

// FormatTitle renders a track as "Title - Artist, Artist" with the title in
// title case. Artist names are kept as spelled by Spotify.
func FormatTitle(t *spotifyapi.FullTrack) string {
	if t == nil {
		return ""
	}
	title := titlecase.String(t.Name)

	artists := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		if artist.Name != "" {
			artists = append(artists, artist.Name)
		}
	}
	if len(artists) == 0 {
		return title
	}
	return title + " - " + strings.Join(artists, ", ")
}
