package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spotifyapi "github.com/zmb3/spotify/v2"
)

// newFakeAPI serves a tiny subset of the Spotify Web API
func newFakeAPI(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	requests := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tracks/queen":
			fmt.Fprint(w, `{"id":"queen","name":"bohemian rhapsody - remastered 2011","artists":[{"name":"Queen"}]}`)
		case "/tracks/beatles":
			fmt.Fprint(w, `{"id":"beatles","name":"a day in the life","artists":[{"name":"The Beatles"},{"name":"George Martin"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"status":404,"message":"non existing id"}}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, requests
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(context.Background(), WithHTTPClient(srv.Client()), WithBaseURL(srv.URL))
	require.NoError(t, err)
	return c
}

func TestTrackTitles(t *testing.T) {
	srv, _ := newFakeAPI(t)
	c := newTestClient(t, srv)

	content := "new favorites https://open.spotify.com/track/queen?si=1 and https://open.spotify.com/track/beatles"
	titles, err := c.TrackTitles(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Bohemian Rhapsody - Remastered 2011 - Queen",
		"A Day in the Life - The Beatles, George Martin",
	}, titles)
}

func TestTrackTitles_NoLinks(t *testing.T) {
	srv, requests := newFakeAPI(t)
	c := newTestClient(t, srv)

	titles, err := c.TrackTitles(context.Background(), "just chatting")
	require.NoError(t, err)
	assert.Empty(t, titles)
	assert.Zero(t, requests.Load())
}

func TestTrackTitles_Dedupes(t *testing.T) {
	srv, requests := newFakeAPI(t)
	c := newTestClient(t, srv)

	content := "https://open.spotify.com/track/queen https://open.spotify.com/track/queen?si=2"
	titles, err := c.TrackTitles(context.Background(), content)
	require.NoError(t, err)
	assert.Len(t, titles, 1)
	assert.Equal(t, int32(1), requests.Load())
}

func TestTrackTitles_APIError(t *testing.T) {
	srv, _ := newFakeAPI(t)
	c := newTestClient(t, srv)

	_, err := c.TrackTitles(context.Background(), "https://open.spotify.com/track/missing")
	assert.ErrorContains(t, err, "missing")
}

func TestTrack_Validation(t *testing.T) {
	_, err := (&Client{}).Track(context.Background(), "x")
	assert.Error(t, err)

	srv, _ := newFakeAPI(t)
	_, err = newTestClient(t, srv).Track(context.Background(), "")
	assert.Error(t, err)
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "", FormatTitle(nil))

	tr := &spotifyapi.FullTrack{}
	tr.Name = "the sound of silence"
	assert.Equal(t, "The Sound of Silence", FormatTitle(tr))

	tr.Artists = []spotifyapi.SimpleArtist{{Name: "Simon & Garfunkel"}, {Name: ""}}
	assert.Equal(t, "The Sound of Silence - Simon & Garfunkel", FormatTitle(tr))
}

func TestOptions_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, WithHTTPClient(nil))
	assert.Error(t, err)

	_, err = NewClient(ctx, WithConfig(nil))
	assert.Error(t, err)

	_, err = NewClient(ctx, WithBaseURL(""))
	assert.Error(t, err)
}
