package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auth-service/internal/usecase/user"
	apperrors "auth-service/pkg/errors"
)

// UserHandler handles HTTP requests for the protected profile lookup.
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse represents the HTTP response for user data.
// The password hash is excluded by construction.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser handles GET /user/:id. The id comes from the path; the verified
// bearer token only proves that some valid session exists.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.uc.GetProfile(c.Request.Context(), user.GetProfileRequest{ID: id})
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("profile lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "something went wrong on the server, please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": UserResponse{
			ID:    resp.ID,
			Name:  resp.Name,
			Email: resp.Email,
		},
	})
}
