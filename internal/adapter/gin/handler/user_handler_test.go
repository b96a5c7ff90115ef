package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"auth-service/internal/usecase/user"
	apperrors "auth-service/pkg/errors"
)

// MockUserUsecase is a mock implementation of the user.Usecase interface
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, in user.GetProfileRequest) (*user.GetProfileResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.GetProfileResponse), args.Error(1)
}

func setupUserHandler(t *testing.T) (*gin.Engine, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	uc := new(MockUserUsecase)
	h := NewUserHandler(uc, zaptest.NewLogger(t))
	r := gin.New()
	r.GET("/user/:id", h.GetUser)
	return r, uc
}

func TestGetUser_Success(t *testing.T) {
	r, uc := setupUserHandler(t)

	uc.On("GetProfile", mock.Anything, user.GetProfileRequest{ID: "u-1"}).
		Return(&user.GetProfileResponse{ID: "u-1", Name: "Ana", Email: "a@x.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/u-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body.User.ID)
	assert.Equal(t, "Ana", body.User.Name)
	assert.Equal(t, "a@x.com", body.User.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetUser_NotFound(t *testing.T) {
	r, uc := setupUserHandler(t)

	uc.On("GetProfile", mock.Anything, user.GetProfileRequest{ID: "missing"}).
		Return(nil, apperrors.NewNotFoundError("user", "user not found"))

	req := httptest.NewRequest(http.MethodGet, "/user/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestGetUser_InternalError(t *testing.T) {
	r, uc := setupUserHandler(t)

	uc.On("GetProfile", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInternalError("boom", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/user/u-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "something went wrong on the server")
	assert.NotContains(t, w.Body.String(), "boom")
}
