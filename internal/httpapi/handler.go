package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/easyconstruct/chatbot-service/internal/chatbot"
	"github.com/easyconstruct/chatbot-service/shared/dto"
	"github.com/easyconstruct/chatbot-service/shared/logging"
)

const (
	serviceName    = "AI Construction Chatbot"
	serviceVersion = "1.0.0"
	maxBodyBytes   = 1 << 20

	msgNoPayload       = "No JSON data provided"
	msgMessageRequired = "Message is required"
	msgUpstreamFailed  = "Failed to get response from AI"

	replyUnavailable = "Sorry, the AI service is currently unavailable. Please ensure the %s is configured."
	replyUpstream    = "I apologize, but I'm having trouble processing your request right now. Please try again."
	replyUnexpected  = "An unexpected error occurred. Please try again."
)

// RegisterRoutes registers the root status route and the chatbot API.
func RegisterRoutes(r chi.Router, service *chatbot.Service, logger *slog.Logger) {
	h := &handler{service: service, logger: logger}

	r.Get("/", h.index)
	r.Route("/api/chatbot", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/chat", h.chat)
		r.Get("/languages", h.languages)
	})
}

type handler struct {
	service *chatbot.Service
	logger  *slog.Logger
}

type chatResponse struct {
	Reply            string           `json:"reply"`
	DetectedLanguage chatbot.Language `json:"detected_language"`
	Success          bool             `json:"success"`
}

type languagesResponse struct {
	Languages []chatbot.LanguageOption `json:"languages"`
}

func (h *handler) index(w http.ResponseWriter, _ *http.Request) {
	llmStatus := "not configured"
	if h.service.Status().Initialized {
		llmStatus = "connected"
	}
	writeJSON(w, http.StatusOK, dto.IndexResponse{
		Status:    "online",
		Service:   serviceName,
		Version:   serviceVersion,
		LLMStatus: llmStatus,
	})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	status := h.service.Status()
	writeJSON(w, http.StatusOK, dto.ChatbotHealthResponse{
		Status:         "healthy",
		GroqConfigured: status.Configured,
		LLMInitialized: status.Initialized,
	})
}

func (h *handler) languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: chatbot.SupportedLanguages()})
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.logger, middleware.GetReqID(r.Context()))

	req, err := decodeChatRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if errors.Is(err, errNoPayload) {
		writeError(w, codeBadRequest, msgNoPayload, "")
		return
	}
	if err != nil {
		logger.Error("error in chat endpoint", slog.String("error", err.Error()))
		writeError(w, codeInternal, err.Error(), replyUnexpected)
		return
	}

	reply, err := h.service.Ask(r.Context(), req)
	if err != nil {
		h.respondChatError(w, logger, err)
		return
	}

	logger.Info("chat answered",
		slog.String("exchangeId", reply.ExchangeID),
		slog.String("language", string(reply.Language)),
	)
	writeJSON(w, http.StatusOK, chatResponse{
		Reply:            reply.Text,
		DetectedLanguage: reply.Language,
		Success:          true,
	})
}

func (h *handler) respondChatError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var upstreamErr *chatbot.UpstreamError
	switch {
	case errors.Is(err, chatbot.ErrEmptyMessage):
		writeError(w, codeBadRequest, msgMessageRequired, "")
	case errors.Is(err, chatbot.ErrAssistantUnavailable):
		env := h.service.Status().CredentialEnv
		if env == "" {
			env = "API key"
		}
		writeError(w, codeServiceUnavailable,
			fmt.Sprintf("AI service not configured. Please set %s in environment variables.", env),
			fmt.Sprintf(replyUnavailable, env))
	case errors.As(err, &upstreamErr):
		// detail already logged by the service; never echoed
		writeError(w, codeUpstreamFailed, msgUpstreamFailed, replyUpstream)
	default:
		logger.Error("error in chat endpoint", slog.String("error", err.Error()))
		writeError(w, codeInternal, err.Error(), replyUnexpected)
	}
}

var errNoPayload = errors.New("no JSON payload")

// decodeChatRequest treats an absent, unparsable or empty payload as no payload.
// A payload of the wrong shape is an unexpected error and reported as such.
func decodeChatRequest(body io.Reader) (chatbot.ChatRequest, error) {
	var req chatbot.ChatRequest

	raw, err := io.ReadAll(body)
	if err != nil {
		return req, fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return req, errNoPayload
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return req, errNoPayload
	}
	if isEmptyJSON(generic) {
		return req, errNoPayload
	}
	obj, ok := generic.(map[string]any)
	if !ok {
		return req, fmt.Errorf("payload must be a JSON object, got %s", jsonKind(generic))
	}
	if message, present := obj["message"]; present && message == nil {
		return req, errors.New("message must be a string, got null")
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	return req, nil
}

func isEmptyJSON(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return "unknown"
	}
}
