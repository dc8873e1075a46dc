package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pingBody    = `{"type":1,"id":"1"}`
	commandBody = `{"type":2,"id":"2","member":{"user":{"id":"42"}},"data":{"id":"3","name":"titlecase","options":[{"name":"text","type":3,"value":"the lord of the rings"}]}}`
)

func postInteraction(t *testing.T, h http.Handler, body string, sign func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	if sign != nil {
		sign(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInteractionResponse(t *testing.T, rec *httptest.ResponseRecorder) discordgo.InteractionResponse {
	t.Helper()
	var resp discordgo.InteractionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestEndpoint_Ping(t *testing.T) {
	rec := postInteraction(t, Endpoint(nil), pingBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, discordgo.InteractionResponsePong, decodeInteractionResponse(t, rec).Type)
}

func TestEndpoint_TitlecaseCommand(t *testing.T) {
	rec := postInteraction(t, Endpoint(nil), commandBody, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeInteractionResponse(t, rec)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "The Lord of the Rings", resp.Data.Content)
}

func TestEndpoint_UnknownCommand(t *testing.T) {
	body := `{"type":2,"id":"2","data":{"id":"3","name":"shout"}}`
	rec := postInteraction(t, Endpoint(nil), body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndpoint_UnsupportedType(t *testing.T) {
	body := `{"type":3,"id":"2","data":{"custom_id":"button"}}`
	rec := postInteraction(t, Endpoint(nil), body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndpoint_MalformedBody(t *testing.T) {
	rec := postInteraction(t, Endpoint(nil), `{"type":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndpoint_Signature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	h := Endpoint(pub)

	signWith := func(key ed25519.PrivateKey, body string) func(*http.Request) {
		return func(r *http.Request) {
			timestamp := "1700000000"
			sig := ed25519.Sign(key, []byte(timestamp+body))
			r.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
			r.Header.Set("X-Signature-Timestamp", timestamp)
		}
	}

	rec := postInteraction(t, h, pingBody, signWith(priv, pingBody))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postInteraction(t, h, pingBody, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, otherPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	rec = postInteraction(t, h, pingBody, signWith(otherPriv, pingBody))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInteractionHandler_UserID(t *testing.T) {
	h := &InteractionHandler{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "dm"}}}
	assert.Equal(t, "dm", h.userID())

	h = &InteractionHandler{Interaction: &discordgo.Interaction{Member: &discordgo.Member{User: &discordgo.User{ID: "guild"}}}}
	assert.Equal(t, "guild", h.userID())

	h = &InteractionHandler{Interaction: &discordgo.Interaction{}}
	assert.Equal(t, "", h.userID())
}

func TestInteractionHandler_NilResponse(t *testing.T) {
	var h *InteractionHandler
	_, err := h.Response()
	assert.Error(t, err)
}
