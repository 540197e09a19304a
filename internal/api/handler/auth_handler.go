package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/api/middleware"
	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new user and issues an access token.
//
// @Summary      Sign up with email and password
// @Description  Creates a new user and issues an opaque bearer token stored hashed in the database.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := ports.SignupInput{Email: req.Email, Password: req.Password}
	if req.Username != nil {
		in.Username = *req.Username
	}
	if req.DisplayName != nil {
		in.DisplayName = *req.DisplayName
	}

	issued, err := h.authService.Signup(c.Request().Context(), requestContext(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{Status: statusOK, IssuedSession: issued})
}

// Login authenticates a user and issues an access token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	issued, err := h.authService.Login(c.Request().Context(), requestContext(c), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Status: statusOK, IssuedSession: issued})
}

// Logout revokes the presented access token. It is idempotent: a token
// that is already revoked or expired reports revoked=false.
//
// @Summary      Log out (revoke current access token)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return domain.ErrMissingToken
	}

	res, err := h.authService.Logout(c.Request().Context(), requestContext(c), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Status: statusOK, Revoked: res.Revoked})
}

// Me returns the authenticated user.
//
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		Status:  statusOK,
		User:    p.User,
		Session: sessionInfo{ID: p.SessionID, Type: p.SessionType},
	})
}
