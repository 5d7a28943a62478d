// Package auth implements the demo credential login.
package auth

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/shared/config"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
}

type UserInfo struct {
	Username string `json:"username"`
}

// PasswordVerifier checks a password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type Service struct {
	cfg    config.AuthConfig
	hasher PasswordVerifier
	tokens *auth.JWTService
	logger logger.Interface
}

func NewService(cfg config.AuthConfig, hasher PasswordVerifier, tokens *auth.JWTService, logger logger.Interface) *Service {
	return &Service{
		cfg:    cfg,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks the single demo credential and issues an access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.cfg.DemoUsername {
		s.logger.Warnw("login failed", "username", req.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := s.hasher.Verify(req.Password, s.cfg.DemoPasswordHash); err != nil {
		s.logger.Warnw("login failed", "username", req.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := s.tokens.Generate(req.Username)
	if err != nil {
		s.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("login succeeded", "username", req.Username)
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Username:    req.Username,
	}, nil
}

// Me returns the identity bound to a verified token.
func (s *Service) Me(ctx context.Context, username string) *UserInfo {
	return &UserInfo{Username: username}
}
