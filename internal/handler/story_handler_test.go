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
	"loreforge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStoryService struct {
	mock.Mock
}

func (m *MockStoryService) List(ctx context.Context, viewer *models.User) ([]models.Story, error) {
	args := m.Called(ctx, viewer)
	return args.Get(0).([]models.Story), args.Error(1)
}

func (m *MockStoryService) Get(ctx context.Context, viewer *models.User, id int64) (*models.Story, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Story), args.Error(1)
}

func (m *MockStoryService) Create(ctx context.Context, viewer *models.User, in dto.CreateStoryRequest) (*models.Story, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Story), args.Error(1)
}

func (m *MockStoryService) Update(ctx context.Context, viewer *models.User, id int64, in dto.UpdateStoryRequest) (*models.Story, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Story), args.Error(1)
}

func (m *MockStoryService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

// rejectAnonymous stands in for the real JWT middleware on write routes.
func rejectAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed authorization header"})
		c.Abort()
	}
}

func setupStoryRouter(svc *MockStoryService, requireAuth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewStoryHandler(svc)
	h.RegisterRoutes(r.Group("/api/stories"), requireAuth, passthrough())
	return r
}

func TestStoryHandler_List_Anonymous(t *testing.T) {
	mockService := new(MockStoryService)
	r := setupStoryRouter(mockService, rejectAnonymous())

	mockService.On("List", mock.Anything, (*models.User)(nil)).
		Return([]models.Story{{ID: 1, Title: "Live", Published: true}}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/stories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestStoryHandler_Get_Draft(t *testing.T) {
	t.Run("anonymous gets 401", func(t *testing.T) {
		mockService := new(MockStoryService)
		r := setupStoryRouter(mockService, rejectAnonymous())

		mockService.On("Get", mock.Anything, (*models.User)(nil), int64(2)).
			Return(nil, apperr.ErrUnauthorized).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/stories/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stranger gets 403", func(t *testing.T) {
		mockService := new(MockStoryService)
		gin.SetMode(gin.TestMode)
		r := gin.New()
		h := handler.NewStoryHandler(mockService)
		h.RegisterRoutes(r.Group("/api/stories"),
			mockAuthMiddleware("stranger-1", models.RoleUser),
			mockAuthMiddleware("stranger-1", models.RoleUser))

		mockService.On("Get", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u != nil && u.ID == "stranger-1"
		}), int64(2)).Return(nil, apperr.ErrForbidden).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/stories/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStoryHandler_Create_RequiresAuth(t *testing.T) {
	mockService := new(MockStoryService)
	r := setupStoryRouter(mockService, rejectAnonymous())

	body, _ := json.Marshal(dto.CreateStoryRequest{Title: "Saga", Content: "once upon"})
	req, _ := http.NewRequest(http.MethodPost, "/api/stories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoryHandler_Update_Conflict(t *testing.T) {
	mockService := new(MockStoryService)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewStoryHandler(mockService)
	h.RegisterRoutes(r.Group("/api/stories"),
		mockAuthMiddleware("user-1", models.RoleUser), passthrough())

	mockService.On("Update", mock.Anything, mock.Anything, int64(3), mock.Anything).
		Return(nil, apperr.Conflict("story title already in use")).Once()

	body, _ := json.Marshal(dto.UpdateStoryRequest{Title: stringPtr("Taken")})
	req, _ := http.NewRequest(http.MethodPut, "/api/stories/3", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
