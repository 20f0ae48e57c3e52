package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/easyconstruct/chatbot-service/internal/chatbot"
	"github.com/easyconstruct/chatbot-service/internal/config"
	"github.com/easyconstruct/chatbot-service/internal/httpapi"
	"github.com/easyconstruct/chatbot-service/shared/logging"
	sharedserver "github.com/easyconstruct/chatbot-service/shared/server"
)

func main() {
	ctx := context.Background()

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger("chatbot-service", logging.ParseLevel(cfg.LogLevel))

	status := chatbot.Status{
		Provider:      cfg.LLM.Provider,
		Model:         cfg.LLM.Model,
		CredentialEnv: cfg.LLM.APIKeyEnv,
		Configured:    cfg.LLM.Configured(),
	}

	var assistant chatbot.Assistant
	if !status.Configured {
		logger.Warn("model credential not configured; chat requests will be rejected",
			slog.String("env", cfg.LLM.APIKeyEnv))
	} else {
		assistant, err = chatbot.NewAssistant(ctx, chatbot.AssistantConfig{
			Provider:        cfg.LLM.Provider,
			APIKey:          cfg.LLM.APIKey,
			Model:           cfg.LLM.Model,
			BaseURL:         cfg.LLM.BaseURL,
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		})
		if err != nil {
			logger.Error("model client initialisation failed", slog.String("reason", err.Error()))
		} else {
			defer assistant.Close()
			logger.Info("model client initialised",
				slog.String("provider", assistant.Name()),
				slog.String("model", cfg.LLM.Model),
				slog.Any("languages", []string{"English", "Hindi", "Kannada", "Tamil", "Telugu", "Marathi"}),
			)
		}
	}

	chatbotService := chatbot.NewService(assistant, status, logger)

	router := sharedserver.NewRouter("chatbot-service", sharedserver.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, func(r chi.Router) {
		httpapi.RegisterRoutes(r, chatbotService, logger)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := sharedserver.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
