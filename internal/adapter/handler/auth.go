package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/auth"
	"github.com/hosteldesk/hosteldesk/internal/adapter/dto/common"
	"github.com/hosteldesk/hosteldesk/internal/adapter/presenter"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	authUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /auth/login
// @Summary      Log in with email and password
// @Description  Verifies credentials and returns access and refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest  true  "Login credentials"
// @Success      200      {object}  auth.LoginResponse  "Authenticated"
// @Failure      400      {object}  errors.AppError  "Malformed request"
// @Failure      401      {object}  errors.AppError  "Invalid credentials"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, &authdto.LoginResponse{
		User:         presenter.ToUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Register handles POST /auth/register
// @Summary      Provision an account
// @Description  Creates a student or admin account. Admin only.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      auth.RegisterRequest  true  "Account details"
// @Success      201      {object}  auth.UserResponse  "Account created"
// @Failure      400      {object}  errors.AppError  "Malformed request"
// @Failure      409      {object}  errors.AppError  "Email already in use"
// @Router       /auth/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), authUsecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entities.UserRole(req.Role),
		Faculty:  req.Faculty,
		Batch:    req.Batch,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToUserResponse(user))
}

// Refresh handles POST /auth/refresh
// @Summary      Refresh an access token
// @Description  Exchanges a valid refresh token for a new access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  auth.LoginResponse  "New access token"
// @Failure      401      {object}  errors.AppError  "Invalid or revoked token"
// @Router       /auth/refresh [post]
func (h *Auth) Refresh(c echo.Context) error {
	var req authdto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, &authdto.LoginResponse{
		User:        presenter.ToUserResponse(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
// @Summary      Log out
// @Description  Revokes the session behind a refresh token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LogoutRequest  true  "Refresh token"
// @Success      200      {object}  common.MessageResponse  "Logged out"
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	var req authdto.LogoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, &common.MessageResponse{Message: "logged out"})
}

// Me handles GET /auth/me
// @Summary      Get the authenticated user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.UserResponse  "Current user"
// @Failure      401  {object}  errors.AppError  "Not authenticated"
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return c.JSON(http.StatusOK, presenter.ToUserResponse(user))
}
