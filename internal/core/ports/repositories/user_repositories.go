package repositories

import (
	"context"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser assigns an ID when user.ID is zero and stores the user.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

// PostRepository defines operations on posts owned by users
type PostRepository interface {
	ListPostsByUser(ctx context.Context, userID int) ([]domain.Post, error)
	SavePost(ctx context.Context, post domain.Post) (*domain.Post, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	PostRepository
}
