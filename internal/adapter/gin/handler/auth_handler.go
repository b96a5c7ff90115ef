package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auth-service/internal/usecase/auth"
	apperrors "auth-service/pkg/errors"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	uc  auth.Usecase
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		log: log,
	}
}

// RegisterRequest represents the HTTP request body for registration
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents the HTTP request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Root handles GET /
func (h *AuthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "service is up and running",
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("malformed register request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request body",
		})
		return
	}

	resp, err := h.uc.Register(c.Request.Context(), auth.RegisterRequest{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.log.Info("register succeeded", zap.String("id", resp.ID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("malformed login request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request body",
		})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "authentication successful",
		"token":   resp.Token,
	})
}

// handleAuthError maps use case errors onto the auth endpoints' contract:
// every client-caused failure (validation, duplicate email, unknown email,
// wrong password) reports 422; anything else is a generic 500. The lookup
// endpoint maps NotFound differently, which is why this stays local.
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
		authErr       *apperrors.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "already_exists",
			Message: conflictErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "not_found",
			Message: notFoundErr.Error(),
		})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_credentials",
			Message: authErr.Message,
		})
	default:
		// Internal detail has already been logged where it happened.
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "something went wrong on the server, please try again later",
		})
	}
}
