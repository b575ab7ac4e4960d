package http

import (
	"net/http"

	"vitacoin/internal/usecase"
	"vitacoin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Register godoc
// @Summary      Register user
// @Description  Create a new user with a zero coin balance
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterUserRequest true "User details"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.Register(req.Username, req.Email)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to register user: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// List godoc
// @Summary      List users
// @Description  List all users, newest first
// @Tags         users
// @Produce      json
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUseCase.List()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
