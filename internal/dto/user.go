package dto

import (
	"time"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Name      string    `json:"name" binding:"required,min=2"`
	BirthDate time.Time `json:"birthDate" binding:"required,past"`
}

// CreatePostRequest defines the data needed to create a post for a user.
type CreatePostRequest struct {
	Description string `json:"description" binding:"required,min=10"`
}

// Link is a hypermedia reference to a related resource.
type Link struct {
	Href string `json:"href"`
}

// UserResponse defines the data returned for a single user, with hypermedia links.
type UserResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birthDate"`
	Links     map[string]Link `json:"_links,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO without links.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		BirthDate: user.BirthDate.Format(time.DateOnly),
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return userResponses
}

// PostResponse defines the data returned for a post.
type PostResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// ToListPostResponse converts a slice of domain.Post to PostResponse DTOs.
func ToListPostResponse(posts []domain.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = PostResponse{ID: p.ID, Description: p.Description}
	}
	return responses
}
