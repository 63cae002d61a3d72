package services

import (
	"context"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

// PostSvc defines operations on a user's posts
type PostSvc interface {
	ListPostsForUser(ctx context.Context, userID int) ([]domain.Post, error)
	CreatePostForUser(ctx context.Context, userID int, req dto.CreatePostRequest) (*domain.Post, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	PostSvc
}
