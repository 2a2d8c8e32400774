package service

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

type AuthService interface {
	// ObtainToken verifies a username/password pair and returns the user's
	// opaque API token, creating it on first use.
	ObtainToken(ctx context.Context, username, password string) (*models.Token, *models.User, error)
	// ResolveToken maps an opaque token key to its user.
	ResolveToken(ctx context.Context, key string) (*models.User, error)
	// Login verifies credentials and opens a cookie-backed session.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	// ResolveSession maps a session cookie value to its user.
	ResolveSession(ctx context.Context, key string) (*models.User, error)
	Logout(ctx context.Context, key string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	sessions  storage.SessionStore
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, sessions storage.SessionStore) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		sessions:  sessions,
	}
}

func (s *authService) ObtainToken(ctx context.Context, username, password string) (*models.Token, *models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, nil, err
	}

	token, err := s.tokenRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to obtain token: %w", err)
	}

	return token, user, nil
}

func (s *authService) ResolveToken(ctx context.Context, key string) (*models.User, error) {
	return s.tokenRepo.GetUserByKey(ctx, key)
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	if s.sessions == nil {
		return "", nil, errors.New("session store is not configured")
	}

	key, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	return key, user, nil
}

func (s *authService) ResolveSession(ctx context.Context, key string) (*models.User, error) {
	if s.sessions == nil {
		return nil, repository.ErrNotFound
	}

	userID, err := s.sessions.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *authService) Logout(ctx context.Context, key string) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, key)
}
