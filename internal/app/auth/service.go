package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
	"github.com/Duncanian/develop-v2/internal/token"
)

// Service registers users and exchanges credentials for signed tokens.
type Service struct {
	users  interfaces.UserRepository
	tokens *token.Manager
	logger logger.Logger
}

func NewService(users interfaces.UserRepository, tokens *token.Manager, lgr logger.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: lgr}
}

func (s *Service) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user_registered", "User registered", "", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}

	signed, err := s.tokens.Issue(user.ID, user.Admin)
	if err != nil {
		return "", err
	}

	s.logger.Info("user_logged_in", "User logged in", "", map[string]interface{}{
		"user_id": user.ID,
	})
	return signed, nil
}
