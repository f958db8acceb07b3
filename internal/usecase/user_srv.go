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

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, id string) (*response.UserResponse, error)
	ChangeRole(ctx context.Context, id string, req *request.ChangeRoleRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	ListRoles() []string
}

type userService struct {
	repo       *repository.Repository
	pagination utils.PaginationConfig
	log        *zap.Logger
}

func NewUserService(repo *repository.Repository, pagination utils.PaginationConfig, log *zap.Logger) UserService {
	return &userService{
		repo:       repo,
		pagination: pagination,
		log:        log.With(zap.String("service", "user")),
	}
}

func (s *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)
	if !strings.EqualFold(email, user.Email) {
		other, err := s.repo.User.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.ID != user.ID {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.LastName = req.LastName
	user.Email = email
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if repository.IsUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	page := utils.GeneratePagination(req.Page, req.PerPage, total,
		s.pagination.DefaultPageSize, s.pagination.MaxPageSize)

	var users []*entity.User
	if total > 0 {
		users, err = s.repo.User.FindAll(ctx, page.PageSize, page.Offset)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
	}

	return response.NewPaginatedResponse(response.UsersToResponse(users), page), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*response.UserResponse, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *userService) ChangeRole(ctx context.Context, id string, req *request.ChangeRoleRequest) (*response.UserResponse, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"Role": "Unknown role"}}
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("change role: %w", err)
	}

	s.log.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser soft deletes the account and revokes its refresh sessions.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Delete(ctx, userID); err != nil {
			return err
		}
		return tx.Session.RevokeAllUserSessions(ctx, userID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("user_id", id))
	return nil
}

func (s *userService) ListRoles() []string {
	roles := entity.Roles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
