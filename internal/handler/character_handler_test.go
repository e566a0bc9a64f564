package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loreforge/internal/apperr"
	"loreforge/internal/dto"
	"loreforge/internal/handler"
	"loreforge/internal/middleware"
	"loreforge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- HELPER FUNCTIONS FOR POINTERS ---
func stringPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64    { return &i }

// --- MOCK SERVICE ---

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) List(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, id int64) (*models.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterService) Create(ctx context.Context, viewer *models.User, in dto.CreateCharacterRequest) (*models.Character, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateCharacterRequest) (*models.Character, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

// --- SETUP ---

// mockAuthMiddleware injects the context keys the real JWT middleware sets.
func mockAuthMiddleware(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUsername, "testuser")
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func setupCharacterRouter(svc *MockCharacterService, authMW gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCharacterHandler(svc)
	h.RegisterRoutes(r.Group("/api/characters"), authMW)
	return r
}

// --- TESTS ---

func TestCharacterHandler_List(t *testing.T) {
	mockService := new(MockCharacterService)
	r := setupCharacterRouter(mockService, passthrough())

	expected := []models.Character{
		{ID: 1, Name: "Thrag", Title: stringPtr("Warlord")},
		{ID: 2, Name: "Lyra"},
	}

	t.Run("Success", func(t *testing.T) {
		mockService.On("List", mock.Anything).Return(expected, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/characters", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "Thrag", response[0]["name"])
		assert.Equal(t, "Warlord", response[0]["title"])
	})
}

func TestCharacterHandler_Get(t *testing.T) {
	mockService := new(MockCharacterService)
	r := setupCharacterRouter(mockService, passthrough())

	t.Run("Success", func(t *testing.T) {
		mockService.On("Get", mock.Anything, int64(101)).
			Return(&models.Character{ID: 101, Name: "Thrag", RaceID: int64Ptr(3)}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/characters/101", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Thrag", response["name"])
		assert.Equal(t, float64(3), response["race_id"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.On("Get", mock.Anything, int64(999)).
			Return(nil, apperr.NotFound("character not found")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/characters/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "character not found", response["message"])
	})

	t.Run("InvalidID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/characters/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCharacterHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("user-1", models.RoleUser))

		in := dto.CreateCharacterRequest{Name: "Thrag", CustomRace: stringPtr("Voidborn")}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u != nil && u.ID == "user-1"
		}), mock.MatchedBy(func(req dto.CreateCharacterRequest) bool {
			return req.Name == "Thrag" && *req.CustomRace == "Voidborn"
		})).Return(&models.Character{ID: 1, Name: "Thrag"}, nil).Once()

		body, _ := json.Marshal(in)
		req, _ := http.NewRequest(http.MethodPost, "/api/characters", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("user-1", models.RoleUser))

		mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("name")).Once()

		body, _ := json.Marshal(dto.CreateCharacterRequest{Name: "  "})
		req, _ := http.NewRequest(http.MethodPost, "/api/characters", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCharacterHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("user-1", models.RoleUser))

		mockService.On("Update", mock.Anything, mock.Anything, int64(10),
			mock.MatchedBy(func(req dto.UpdateCharacterRequest) bool {
				return req.Name != nil && *req.Name == "Thrag II"
			})).Return(&models.Character{ID: 10, Name: "Thrag II"}, nil).Once()

		body, _ := json.Marshal(dto.UpdateCharacterRequest{Name: stringPtr("Thrag II")})
		req, _ := http.NewRequest(http.MethodPut, "/api/characters/10", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Forbidden", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("stranger-1", models.RoleUser))

		mockService.On("Update", mock.Anything, mock.Anything, int64(10), mock.Anything).
			Return(nil, apperr.ErrForbidden).Once()

		body, _ := json.Marshal(dto.UpdateCharacterRequest{Name: stringPtr("X")})
		req, _ := http.NewRequest(http.MethodPut, "/api/characters/10", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCharacterHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("admin-1", models.RoleAdmin))

		mockService.On("Delete", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u != nil && u.Role == models.RoleAdmin
		}), int64(55)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/characters/55", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"character deleted"}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Forbidden", func(t *testing.T) {
		mockService := new(MockCharacterService)
		r := setupCharacterRouter(mockService, mockAuthMiddleware("user-1", models.RoleUser))

		mockService.On("Delete", mock.Anything, mock.Anything, int64(55)).
			Return(apperr.ErrForbidden).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/characters/55", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
