package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxRequestBytes = 64 << 10

// Asker answers a free-text query. The reply is never empty.
type Asker interface {
	Ask(ctx context.Context, query string) string
}

// ChatHandler handles chat requests.
type ChatHandler struct {
	asker  Asker
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(asker Asker, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		asker:  asker,
		logger: logger,
	}
}

// ChatRequest is the body of POST /chat/ask.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the reply to POST /chat/ask.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleAsk handles POST /chat/ask. Any well-formed body gets a 200 reply;
// upstream data problems show up as placeholders in the text, not as errors.
func (h *ChatHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	err := dec.Decode(&req)
	if err != nil {
		h.logger.Debug("chat-request-malformed", zap.Error(err))
		msg := "invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	reply := h.asker.Ask(r.Context(), req.Query)

	h.writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
}

func (h *ChatHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.logger.Error("failed-to-encode-response", zap.Error(err))
	}
}
