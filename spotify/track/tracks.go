// Package track finds Spotify track links in free text
package track

import (
	"regexp"
	"strings"

	"github.com/zmb3/spotify/v2"
)

var (
	reURL     = regexp.MustCompile(`https?://[^\s]+`)
	reTrackID = regexp.MustCompile(`open\.spotify\.com/(?:intl-[a-z]+/)?track/([A-Za-z0-9]+)`)
)

// ExtractURLs extracts all Spotify track URLs from the given content
func ExtractURLs(content string) ([]string, bool) {
	var spotifyTracks []string
	for _, url := range reURL.FindAllString(content, -1) {
		if reTrackID.MatchString(url) {
			spotifyTracks = append(spotifyTracks, url)
		}
	}
	return spotifyTracks, len(spotifyTracks) > 0
}

// ExtractTrackID extracts the track ID from a Spotify track URL, or "" if
// the URL does not point at a track
func ExtractTrackID(url string) string {
	matches := reTrackID.FindStringSubmatch(url)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// ToTrackIDs converts Spotify track URLs to a spotify.ID slice, dropping
// duplicates and keeping the first-seen order
func ToTrackIDs(urls []string) []spotify.ID {
	var trackIDs []spotify.ID
	seen := make(map[spotify.ID]struct{})
	for _, trackURL := range urls {
		trackID := spotify.ID(ExtractTrackID(strings.TrimSpace(trackURL)))
		if trackID == "" {
			continue
		}
		if _, ok := seen[trackID]; ok {
			continue
		}
		seen[trackID] = struct{}{}
		trackIDs = append(trackIDs, trackID)
	}
	return trackIDs
}
