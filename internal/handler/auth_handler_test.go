package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loreforge/internal/dto"
	"loreforge/internal/handler"
	"loreforge/internal/models"
	"loreforge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupAuthRouter(mockService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewAuthHandler(mockService, 30*time.Minute).RegisterRoutes(r.Group("/api/auth"))
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		user := &models.User{ID: "user-123", Username: "testuser", Email: "test@example.com", Role: models.RoleUser}
		mockService.On("Register", mock.Anything, "testuser", "password123", "test@example.com").
			Return(user, nil).Once()

		body, _ := json.Marshal(dto.RegisterRequest{
			Username: "testuser",
			Password: "password123",
			Email:    "test@example.com",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]string
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "user-123", response["user_id"])
		assert.Equal(t, "testuser", response["username"])
		mockService.AssertExpectations(t)
	})

	t.Run("UsernameInUse", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		mockService.On("Register", mock.Anything, "testuser", "password123", "test@example.com").
			Return(nil, service.ErrNameInUse).Once()

		body, _ := json.Marshal(dto.RegisterRequest{
			Username: "testuser",
			Password: "password123",
			Email:    "test@example.com",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		// password below the 8 char minimum
		body, _ := json.Marshal(dto.RegisterRequest{
			Username: "testuser",
			Password: "short",
			Email:    "test@example.com",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		user := &models.User{ID: "user-123", Username: "testuser", Role: models.RoleUser}
		mockService.On("Login", mock.Anything, "testuser", "password123").
			Return("access-token", "refresh-token", user, nil).Once()

		body, _ := json.Marshal(dto.LoginRequest{Username: "testuser", Password: "password123"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AuthResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "access-token", response.AccessToken)
		assert.Equal(t, "refresh-token", response.RefreshToken)
		assert.Equal(t, models.RoleUser, response.Role)
		// expires_in reflects the configured access token TTL
		assert.Equal(t, int64(1800), response.ExpiresIn)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		mockService.On("Login", mock.Anything, "testuser", "wrong").
			Return("", "", nil, service.ErrInvalidCredentials).Once()

		body, _ := json.Marshal(dto.LoginRequest{Username: "testuser", Password: "wrong"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		mockService.On("RefreshAccessToken", mock.Anything, "old-refresh").
			Return("new-access", "new-refresh", nil).Once()

		body, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "old-refresh"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RefreshResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "new-access", response.AccessToken)
		assert.Equal(t, "new-refresh", response.RefreshToken)
		assert.Equal(t, int64(1800), response.ExpiresIn)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		mockService.On("RefreshAccessToken", mock.Anything, "bogus").
			Return("", "", service.ErrInvalidToken).Once()

		body, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "bogus"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_RevokeToken(t *testing.T) {
	// revoke always reports success to avoid token fishing
	mockService := new(MockAuthService)
	r := setupAuthRouter(mockService)

	mockService.On("RevokeToken", mock.Anything, "unknown").
		Return(service.ErrInvalidToken).Once()

	body, _ := json.Marshal(dto.RevokeTokenRequest{RefreshToken: "unknown"})
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/revoke", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
