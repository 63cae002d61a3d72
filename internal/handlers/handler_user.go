package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users and their posts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg gin.IRouter, userService portssvc.UserSvcFacade) {
	registerValidators()
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.DELETE("/:id", h.deleteUser)
		users.GET("/:id/posts", h.listPosts)
		users.POST("/:id/posts", h.createPost)
	}
}

func userIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid user id %q", c.Param("id")))
	}
	return id, nil
}

// absoluteURL builds a link on the host the request came in on.
func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + path
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user
// @Description Returns the user with a link to the user collection
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorDetails
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := userIDParam(c)
	if err != nil {
		respondError(c, logger, err, "Invalid user id")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to get user")
		return
	}

	resp := dto.ToUserResponse(user)
	resp.Links = map[string]dto.Link{"all-users": {Href: absoluteURL(c, "/users")}}
	c.JSON(http.StatusOK, resp)
}

// createUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorDetails
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.Int("user_id", user.ID))
	c.Header("Location", absoluteURL(c, "/users/"+strconv.Itoa(user.ID)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 200
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := userIDParam(c)
	if err != nil {
		respondError(c, logger, err, "Invalid user id")
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusOK)
}

// listPosts godoc
// @Summary List a user's posts
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.PostResponse
// @Failure 404 {object} dto.ErrorDetails
// @Router /users/{id}/posts [get]
func (h *userHandler) listPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := userIDParam(c)
	if err != nil {
		respondError(c, logger, err, "Invalid user id")
		return
	}
	posts, err := h.userService.ListPostsForUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPostResponse(posts))
}

// createPost godoc
// @Summary Create a post for a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorDetails
// @Failure 404 {object} dto.ErrorDetails
// @Router /users/{id}/posts [post]
func (h *userHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := userIDParam(c)
	if err != nil {
		respondError(c, logger, err, "Invalid user id")
		return
	}
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	post, err := h.userService.CreatePostForUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create post")
		return
	}

	c.Header("Location", absoluteURL(c, fmt.Sprintf("/users/%d/posts/%d", id, post.ID)))
	c.JSON(http.StatusCreated, dto.PostResponse{ID: post.ID, Description: post.Description})
}
