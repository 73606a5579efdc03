package controller

import (
	"ctchen222/travel-assistant/internal/api/models"
	"ctchen222/travel-assistant/internal/api/response"
	"ctchen222/travel-assistant/internal/api/service"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var form models.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := uc.userService.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			response.ErrorResponse(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if errors.Is(err, service.ErrPasswordTooLong) {
			response.ErrorResponse(c, http.StatusBadRequest, "Password must be at most 72 bytes")
			return
		}
		internalError(c, "register", err)
		return
	}

	response.SuccessResponse(c, models.MessageResponse{Message: "User registered successfully"})
}

// Login handles the user login endpoint.
func (uc *UserController) Login(c *gin.Context) {
	var form models.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		internalError(c, "login", err)
		return
	}

	response.SuccessResponse(c, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func internalError(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), "Request failed", "op", op, "error", err)
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
