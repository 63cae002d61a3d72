package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
)

// UserStore keeps users and their posts in memory.
type UserStore struct {
	mu         sync.RWMutex
	users      map[int]domain.User
	posts      map[int][]domain.Post
	lastUserID int
	lastPostID int
}

// NewUserStore creates a store holding the given users.
func NewUserStore(seed ...domain.User) *UserStore {
	s := &UserStore{
		users: make(map[int]domain.User),
		posts: make(map[int][]domain.Post),
	}
	for _, u := range seed {
		s.users[u.ID] = u
		if u.ID > s.lastUserID {
			s.lastUserID = u.ID
		}
	}
	return s
}

// DefaultUsers returns the three users every fresh store starts with.
func DefaultUsers(now time.Time) []domain.User {
	return []domain.User{
		{ID: 1, Name: "Adam", BirthDate: now.AddDate(-30, 0, 0)},
		{ID: 2, Name: "Eve", BirthDate: now.AddDate(-25, 0, 0)},
		{ID: 3, Name: "Jim", BirthDate: now.AddDate(-20, 0, 0)},
	}
}

func (s *UserStore) FindUserByID(_ context.Context, userID int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("id:" + strconv.Itoa(userID))
	}
	return &u, nil
}

func (s *UserStore) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) SaveUser(_ context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		s.lastUserID++
		user.ID = s.lastUserID
	} else if user.ID > s.lastUserID {
		s.lastUserID = user.ID
	}
	s.users[user.ID] = user
	return &user, nil
}

// DeleteUser removes the user and its posts. Deleting an unknown user is a no-op.
func (s *UserStore) DeleteUser(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	delete(s.posts, userID)
	return nil
}

func (s *UserStore) ListPostsByUser(_ context.Context, userID int) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("id:" + strconv.Itoa(userID))
	}
	posts := make([]domain.Post, len(s.posts[userID]))
	copy(posts, s.posts[userID])
	return posts, nil
}

func (s *UserStore) SavePost(_ context.Context, post domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[post.UserID]; !ok {
		return nil, apperrors.NewNotFoundError("id:" + strconv.Itoa(post.UserID))
	}
	s.lastPostID++
	post.ID = s.lastPostID
	s.posts[post.UserID] = append(s.posts[post.UserID], post)
	return &post, nil
}
