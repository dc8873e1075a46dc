package discord

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/utils/ctxutil"
	"titlebot/utils/httputil"
)

// maxInteractionBytes bounds interaction request bodies
const maxInteractionBytes = 1 << 20

// InteractionHandler answers a single interaction
type InteractionHandler struct {
	*discordgo.Interaction
}

// NewInteractionHandler decodes the interaction sent in the request body
func NewInteractionHandler(r *http.Request) (*InteractionHandler, error) {
	var interaction discordgo.Interaction
	if err := json.NewDecoder(io.LimitReader(r.Body, maxInteractionBytes)).Decode(&interaction); err != nil {
		return nil, fmt.Errorf("failed to decode interaction: %w", err)
	}
	return &InteractionHandler{Interaction: &interaction}, nil
}

// Response builds the reply for the interaction
func (h *InteractionHandler) Response() (*discordgo.InteractionResponse, error) {
	if h == nil || h.Interaction == nil {
		return nil, fmt.Errorf("interaction is nil")
	}

	switch h.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil
	case discordgo.InteractionApplicationCommand:
		return commandResponse(h.ApplicationCommandData())
	default:
		return nil, fmt.Errorf("no responder for interaction type %s", h.Type)
	}
}

// userID returns the ID of the user who triggered the interaction, in a guild or a DM
func (h *InteractionHandler) userID() string {
	if h.User != nil {
		return h.User.ID
	}
	if h.Member != nil && h.Member.User != nil {
		return h.Member.User.ID
	}
	return ""
}

// Handle writes the interaction response to w
func (h *InteractionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Interaction == nil {
		logger.Error("interaction is nil")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	_, fields := ctxutil.WithZapFields(r.Context(),
		zap.String(zapkey.Type, h.Type.String()),
		zap.String(zapkey.ID, h.ID),
		zap.String(zapkey.UserID, h.userID()),
	)
	logger.Info("Received interaction", fields...)

	response, err := h.Response()
	if err != nil {
		logger.With(zap.Error(err)).Warn("Cannot respond to interaction", fields...)
		httputil.WriteError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, response, logger)
}

// Endpoint returns the HTTP handler for discord's interactions endpoint URL.
// Requests are checked against publicKey unless it is empty.
func Endpoint(publicKey ed25519.PublicKey) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(publicKey) > 0 && !discordgo.VerifyInteraction(r, publicKey) {
			logger.Warn("Rejected interaction with bad signature", zap.String(zapkey.Path, r.URL.Path))
			http.Error(w, "invalid request signature", http.StatusUnauthorized)
			return
		}

		handler, err := NewInteractionHandler(r)
		if err != nil {
			logger.Warn("Failed to read interaction", zap.Error(err))
			http.Error(w, "invalid interaction", http.StatusBadRequest)
			return
		}
		handler.Handle(w, r)
	})
}

// CommandHandler answers slash commands received over the gateway
type CommandHandler struct{}

func (h *CommandHandler) String() string {
	return "CommandHandler"
}

// Add registers the handler with the session
func (h *CommandHandler) Add(session *discordgo.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	session.AddHandler(h.Handle)
	return nil
}

// Handle responds to an interaction event
func (h *CommandHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if s == nil || i == nil || i.Interaction == nil {
		logger.Error("session or interaction is nil")
		return
	}
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	interaction := &InteractionHandler{Interaction: i.Interaction}
	fields := []zap.Field{
		zap.String(zapkey.Command, i.ApplicationCommandData().Name),
		zap.String(zapkey.ID, i.ID),
		zap.String(zapkey.UserID, interaction.userID()),
	}

	response, err := interaction.Response()
	if err != nil {
		logger.With(zap.Error(err)).Warn("Cannot respond to command", fields...)
		return
	}
	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		logger.With(zap.Error(err)).Error("Failed to respond to command", fields...)
		return
	}
	logger.With(zap.String(zapkey.Reply, response.Data.Content)).Info("Responded to command", fields...)
}
