package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/request"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenRevoker blacklists access tokens by jti until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// ClientInfo describes the caller that opens a session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.TokenResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.TokenResponse, error)
	Logout(ctx context.Context, req *request.LogoutRequest) error
	CleanExpiredSessions(ctx context.Context, retention time.Duration) (int64, error)
}

type authService struct {
	repo    *repository.Repository
	config  utils.JWTConfig
	revoker TokenRevoker
	log     *zap.Logger
}

func NewAuthService(repo *repository.Repository, config utils.JWTConfig, revoker TokenRevoker, log *zap.Logger) AuthService {
	return &authService{
		repo:    repo,
		config:  config,
		revoker: revoker,
		log:     log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashedPassword,
		Name:         req.Name,
		LastName:     req.LastName,
		Role:         entity.RoleUser,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		switch {
		case repository.IsUniqueViolation(err, "users_email_key"):
			return nil, ErrEmailTaken
		case repository.IsUniqueViolation(err, "users_username_key"):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Login accepts a username or an email, then opens a refresh session and
// issues an access token.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.TokenResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Login)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Login)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("login", req.Login))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountInactive
	}

	now := time.Now().UTC()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		Token:      uuid.New(),
		UserAgent:  optional(client.UserAgent),
		IPAddress:  optional(client.IPAddress),
		ExpiresAt:  now.Add(s.config.RefreshTTL()),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	resp, err := s.issueAccessToken(user)
	if err != nil {
		return nil, err
	}
	resp.RefreshToken = session.Token.String()
	resp.RefreshExpiresAt = &session.ExpiresAt

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return resp, nil
}

func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.TokenResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	token, err := uuid.Parse(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || !session.Usable(time.Now()) {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	return s.issueAccessToken(user)
}

// Logout blacklists the current access token and revokes the given refresh
// session, or every session of the caller when none is given.
func (s *authService) Logout(ctx context.Context, req *request.LogoutRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrInvalidToken
	}

	if jti, exp, ok := utils.GetTokenFromContext(ctx); ok && s.revoker != nil {
		if err := s.revoker.Revoke(ctx, jti, time.Until(exp)); err != nil {
			return fmt.Errorf("revoke access token: %w", err)
		}
	}

	if req.RefreshToken == "" {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
	} else {
		token, err := uuid.Parse(req.RefreshToken)
		if err != nil {
			return ErrInvalidToken
		}
		if err := s.repo.Session.Revoke(ctx, token); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("revoke session: %w", err)
		}
	}

	s.log.Info("User logged out", zap.String("user_id", userID.String()))
	return nil
}

// CleanExpiredSessions removes sessions that ended more than retention ago.
func (s *authService) CleanExpiredSessions(ctx context.Context, retention time.Duration) (int64, error) {
	removed, err := s.repo.Session.CleanExpiredSessions(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.log.Info("Expired sessions removed", zap.Int64("count", removed))
	}
	return removed, nil
}

func (s *authService) issueAccessToken(user *entity.User) (*response.TokenResponse, error) {
	token, claims, err := utils.GenerateAccessToken(s.config, user.ID, user.Username, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	profile := response.UserToResponse(user)
	return &response.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        &profile,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
