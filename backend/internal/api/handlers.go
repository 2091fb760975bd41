package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hobbygraph/backend/internal/graph"
	apperrors "hobbygraph/backend/pkg/errors"
)

type handlers struct {
	store  Store
	logger *zap.Logger
}

type createUserRequest struct {
	Username string   `json:"username" binding:"required"`
	Age      int      `json:"age" binding:"required,gt=0"`
	Hobbies  []string `json:"hobbies" binding:"required"`
}

type updateUserRequest struct {
	Username *string   `json:"username"`
	Age      *int      `json:"age"`
	Hobbies  *[]string `json:"hobbies"`
}

type friendRequest struct {
	FriendID string `json:"friendId" binding:"required"`
}

func (h *handlers) listUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *handlers) getGraph(c *gin.Context) {
	data, err := h.store.ProjectGraph(c.Request.Context())
	if err != nil {
		h.fail(c, "project graph", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *handlers) getUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *handlers) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Username, req.Age, req.Hobbies)
	if err != nil {
		h.fail(c, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *handlers) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
		return
	}
	if req.Username != nil && *req.Username == "" {
		h.fail(c, "update user", apperrors.NewInvalidPayload("username cannot be empty"))
		return
	}
	if req.Age != nil && *req.Age <= 0 {
		h.fail(c, "update user", apperrors.NewInvalidPayload("age must be positive"))
		return
	}

	user, err := h.store.UpdateUser(c.Request.Context(), c.Param("id"), graph.UserPatch{
		Username: req.Username,
		Age:      req.Age,
		Hobbies:  req.Hobbies,
	})
	if err != nil {
		h.fail(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *handlers) deleteUser(c *gin.Context) {
	if err := h.store.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *handlers) linkUser(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "friendId required"})
		return
	}

	if err := h.store.LinkUsers(c.Request.Context(), c.Param("id"), req.FriendID); err != nil {
		h.fail(c, "link users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Users linked"})
}

func (h *handlers) unlinkUser(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "friendId required"})
		return
	}

	if err := h.store.UnlinkUsers(c.Request.Context(), c.Param("id"), req.FriendID); err != nil {
		h.fail(c, "unlink users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Users unlinked"})
}

// fail maps domain errors to status codes. Domain errors carry messages that
// describe the violated rule; anything else is logged and hidden behind a
// generic 500.
func (h *handlers) fail(c *gin.Context, op string, err error) {
	switch {
	case apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": apperrors.Message(err)})
	case apperrors.IsErrorType(err, apperrors.ErrorTypeConflict):
		c.JSON(http.StatusConflict, gin.H{"message": apperrors.Message(err)})
	case apperrors.IsErrorType(err, apperrors.ErrorTypeValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": apperrors.Message(err)})
	default:
		h.logger.Error("Request failed", zap.String("operation", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
