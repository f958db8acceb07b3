package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeedService interface {
	// SeedDefaultUsers creates the Admin and User accounts when missing.
	SeedDefaultUsers(ctx context.Context) error
}

type seedService struct {
	repo   *repository.Repository
	config utils.SeedConfig
	log    *zap.Logger
}

func NewSeedService(repo *repository.Repository, config utils.SeedConfig, log *zap.Logger) SeedService {
	return &seedService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "seed")),
	}
}

func (s *seedService) SeedDefaultUsers(ctx context.Context) error {
	accounts := []struct {
		username string
		password string
		role     entity.UserRole
	}{
		{"Admin", s.config.AdminPassword, entity.RoleAdmin},
		{"User", s.config.UserPassword, entity.RoleUser},
	}

	for _, acc := range accounts {
		if err := s.ensureUser(ctx, acc.username, acc.password, acc.role); err != nil {
			return err
		}
	}
	return nil
}

func (s *seedService) ensureUser(ctx context.Context, username, password string, role entity.UserRole) error {
	existing, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("seed %s: %w", username, err)
	}
	if existing != nil {
		s.log.Debug("Seed user already present", zap.String("username", username))
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed %s: hash password: %w", username, err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        strings.ToLower(username) + "@film-catalog.local",
		PasswordHash: hash,
		Name:         username,
		LastName:     "Default",
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("seed %s: %w", username, err)
	}

	s.log.Info("Seed user created",
		zap.String("username", username),
		zap.String("role", string(role)))
	return nil
}
