package assistant

import (
	"context"

	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/store"
)

type AssistantContainer struct {
	Handler *Handler
}

func NewAssistantContainer(sessions *store.Manager) *AssistantContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.Logger().WithError(err).Warn("Assistant disabled: Gemini provider unavailable")
	}
	service := NewService(provider)
	handler := NewHandler(service, sessions)

	return &AssistantContainer{
		Handler: handler,
	}
}
