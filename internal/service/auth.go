package service

import (
	"context"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"
)

type AuthServiceImpl struct {
	sessionRepo repository.SessionRepository
}

func NewAuthService(sessionRepo repository.SessionRepository) AuthService {
	return &AuthServiceImpl{sessionRepo: sessionRepo}
}

// Authenticate resolves a bearer token to its user via the session store
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrUnauthorized
	}

	user, err := s.sessionRepo.GetUserByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}
