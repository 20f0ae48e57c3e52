package chatbot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var requestValidator = validator.New()

// Service turns chat requests into model replies. It holds no per-request state.
type Service struct {
	assistant Assistant
	status    Status
	logger    *slog.Logger
}

// NewService wires the chatbot service. A nil assistant leaves the service
// reporting itself unavailable for every chat request.
func NewService(assistant Assistant, status Status, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	status.Initialized = assistant != nil
	if assistant != nil && status.Provider == "" {
		status.Provider = assistant.Name()
	}
	return &Service{assistant: assistant, status: status, logger: logger}
}

// Status reports backend configuration for health endpoints.
func (s *Service) Status() Status {
	return s.status
}

// Ask validates req, resolves its language, builds the prompt and makes exactly one model call.
func (s *Service) Ask(ctx context.Context, req ChatRequest) (*Reply, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := requestValidator.Struct(req); err != nil {
		return nil, ErrEmptyMessage
	}

	if s.assistant == nil {
		return nil, ErrAssistantUnavailable
	}

	lang := ResolveLanguage(req.RequestedLanguage(), req.Message)
	prompt := BuildPrompt(req.Message, lang)
	exchangeID := uuid.NewString()

	logger := s.logger.With(
		slog.String("exchangeId", exchangeID),
		slog.String("provider", s.assistant.Name()),
		slog.String("language", string(lang)),
	)
	logger.Debug("sending prompt", slog.Int("promptChars", len(prompt)))

	text, err := s.assistant.Respond(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		logger.Error("model call failed", slog.String("error", err.Error()))
		return nil, &UpstreamError{Provider: s.assistant.Name(), Err: err}
	}

	return &Reply{Text: strings.TrimSpace(text), Language: lang, ExchangeID: exchangeID}, nil
}
