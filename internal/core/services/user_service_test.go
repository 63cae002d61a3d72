package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	store   *memory.UserStore
	service *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.store = memory.NewUserStore(memory.DefaultUsers(time.Now())...)
	suite.service = services.NewUserService(suite.store)
}

func (suite *UserServiceTestSuite) TestListUsers_Seeded() {
	users, err := suite.service.ListUsers(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(users, 3)
	suite.Equal("Adam", users[0].Name)
	suite.Equal("Eve", users[1].Name)
	suite.Equal("Jim", users[2].Name)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	user, err := suite.service.GetUserByID(context.Background(), 42)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "id:42")
}

func (suite *UserServiceTestSuite) TestCreateUser_AssignsNextID() {
	ctx := context.Background()
	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:      "  Ravi ",
		BirthDate: time.Now().AddDate(-40, 0, 0),
	})

	suite.Require().NoError(err)
	suite.Equal(4, user.ID)
	suite.Equal("Ravi", user.Name)

	fetched, err := suite.service.GetUserByID(ctx, 4)
	suite.Require().NoError(err)
	suite.Equal(user.Name, fetched.Name)
}

func (suite *UserServiceTestSuite) TestCreateUser_Validation() {
	ctx := context.Background()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Name: "R", BirthDate: time.Now().AddDate(-1, 0, 0)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateUser(ctx, dto.CreateUserRequest{Name: "Ravi", BirthDate: time.Now().Add(time.Hour)})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	ctx := context.Background()
	suite.Require().NoError(suite.service.DeleteUser(ctx, 1))

	_, err := suite.service.GetUserByID(ctx, 1)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NoError(suite.service.DeleteUser(ctx, 1), "deleting twice is a no-op")
}

func (suite *UserServiceTestSuite) TestPosts() {
	ctx := context.Background()

	post, err := suite.service.CreatePostForUser(ctx, 2, dto.CreatePostRequest{Description: "I want to learn Go"})
	suite.Require().NoError(err)
	suite.Equal("I want to learn Go", post.Description)

	posts, err := suite.service.ListPostsForUser(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(posts, 1)
	suite.Equal(post.ID, posts[0].ID)

	_, err = suite.service.CreatePostForUser(ctx, 2, dto.CreatePostRequest{Description: "short"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreatePostForUser(ctx, 99, dto.CreatePostRequest{Description: "long enough text"})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.ListPostsForUser(ctx, 99)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
