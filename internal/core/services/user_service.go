package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_microservices/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
)

// UserService provides business logic for users and their posts.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo, now: time.Now}
}

func (s *UserService) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user in service: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	return users, nil
}

// CreateUser validates and stores a new user. The store assigns the ID.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if len([]rune(name)) < 2 {
		return nil, apperrors.NewValidationError("name should have at least 2 characters")
	}
	if !req.BirthDate.Before(s.now()) {
		return nil, apperrors.NewValidationError("birth date should be in the past")
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{Name: name, BirthDate: req.BirthDate})
	if err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("name", name))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user in service: %w", err)
	}
	return nil
}

func (s *UserService) ListPostsForUser(ctx context.Context, userID int) ([]domain.Post, error) {
	posts, err := s.userRepo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts in service: %w", err)
	}
	return posts, nil
}

// CreatePostForUser stores a post under an existing user.
func (s *UserService) CreatePostForUser(ctx context.Context, userID int, req dto.CreatePostRequest) (*domain.Post, error) {
	description := strings.TrimSpace(req.Description)
	if len([]rune(description)) < 10 {
		return nil, apperrors.NewValidationError("description should have at least 10 characters")
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to create post in service: %w", err)
	}

	post, err := s.userRepo.SavePost(ctx, domain.Post{Description: description, UserID: userID})
	if err != nil {
		s.LogError(ctx, err, "Failed to save post", slog.Int("user_id", userID))
		return nil, fmt.Errorf("failed to create post in service: %w", err)
	}
	return post, nil
}
