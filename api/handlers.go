package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"titlebot/constants/zapkey"
	"titlebot/log"
	"titlebot/titlecase"
	"titlebot/utils/ctxutil"
	"titlebot/utils/httputil"
)

// maxBodyBytes bounds POST /titlecase request bodies
const maxBodyBytes = 1 << 20

// TitlecaseRequest is the POST /titlecase request body. A null or missing
// text is treated as empty.
type TitlecaseRequest struct {
	Text    *string `json:"text"`
	Explain bool    `json:"explain"`
}

// TitlecaseResponse is returned by both /titlecase routes
type TitlecaseResponse struct {
	Text  string           `json:"text"`
	Title string           `json:"title"`
	Words []titlecase.Word `json:"words,omitempty"`
}

// homeHandler handles the default route
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "Hello, World!"); err != nil {
		logger.Error("Failed to write response", zap.Error(err), zap.String(zapkey.Path, r.URL.Path))
	}
}

// healthHandler handles the health check route
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "OK"); err != nil {
		logger.Error("Failed to write response", zap.Error(err), zap.String(zapkey.Path, r.URL.Path))
	}
}

// titlecaseQueryHandler handles GET /titlecase?text=...&explain=...
func titlecaseQueryHandler(w http.ResponseWriter, r *http.Request) {
	reqLogger := ctxutil.Logger(r.Context(), logger)
	query := r.URL.Query()

	req := TitlecaseRequest{}
	if query.Has("text") {
		text := query.Get("text")
		req.Text = &text
	}
	if raw := query.Get("explain"); raw != "" {
		explain, err := strconv.ParseBool(raw)
		if err != nil {
			reqLogger.Warn("Invalid explain parameter", zap.Error(err))
			httputil.WriteError(w, http.StatusBadRequest, "explain must be a boolean", reqLogger)
			return
		}
		req.Explain = explain
	}

	respond(w, r, req)
}

// titlecaseBodyHandler handles POST /titlecase with a JSON TitlecaseRequest
func titlecaseBodyHandler(w http.ResponseWriter, r *http.Request) {
	reqLogger := ctxutil.Logger(r.Context(), logger)

	var req TitlecaseRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		reqLogger.Warn("Failed to decode request", zap.Error(err))
		httputil.WriteError(w, http.StatusBadRequest, "invalid JSON body", reqLogger)
		return
	}

	respond(w, r, req)
}

func respond(w http.ResponseWriter, r *http.Request, req TitlecaseRequest) {
	ctx := r.Context()
	reqLogger := ctxutil.Logger(ctx, logger)

	resp := TitlecaseResponse{Title: titlecase.Ptr(req.Text)}
	if req.Text != nil {
		resp.Text = *req.Text
	}
	if req.Explain {
		resp.Words = titlecase.Explain(resp.Text)
	}

	if log.VerboseLogsEnabled(ctx) {
		reqLogger.Info("Title-cased text",
			zap.String(zapkey.Input, resp.Text),
			zap.String(zapkey.Output, resp.Title),
			zap.Any(zapkey.Words, titlecase.Explain(resp.Text)))
	}

	httputil.WriteJSON(w, http.StatusOK, resp, reqLogger)
}
