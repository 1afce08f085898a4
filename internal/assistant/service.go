package assistant

import (
	"context"
	"errors"

	"github.com/pedrolmns/big-lambda/internal/store"
)

var ErrUnavailable = errors.New("assistant provider unavailable")

type Service interface {
	Complete(ctx context.Context, session *store.Session, req CompletionRequest) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Complete(ctx context.Context, session *store.Session, req CompletionRequest) (string, error) {
	if s.provider == nil {
		return "", ErrUnavailable
	}

	snapshot, err := session.Snapshot()
	if err != nil {
		return "", err
	}
	return s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req.Prompt, snapshot))
}
