package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) GetAllCourses(ctx context.Context) []*entity.Course {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Course)
}

func (m *MockCatalogUseCase) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCatalogUseCase) SearchCourses(ctx context.Context, query string) []*entity.Course {
	args := m.Called(ctx, query)
	return args.Get(0).([]*entity.Course)
}

func (m *MockCatalogUseCase) GetCoursesByCategory(ctx context.Context, category string) []*entity.Course {
	args := m.Called(ctx, category)
	return args.Get(0).([]*entity.Course)
}

func (m *MockCatalogUseCase) CreateCourse(ctx context.Context, course entity.Course) (*entity.Course, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateCourse(ctx context.Context, id string, updates entity.CourseUpdate) (*entity.Course, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteCourse(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) UploadCourseImage(ctx context.Context, id string, file io.Reader, fileKey, contentType string) (*entity.Course, error) {
	args := m.Called(ctx, id, file, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetCourses(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/courses", handler.GetCourses)

	mockUseCase.On("GetAllCourses", mock.Anything).Return([]*entity.Course{
		{ID: "gk-001", Title: "Gospel Piano Foundations", Price: "$49.00"},
		{ID: "gk-002", Title: "Worship Chords Demystified", Price: "$59.00"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
	mockUseCase.AssertExpectations(t)
}

func TestGetCourses_SearchQuery(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/courses", handler.GetCourses)

	mockUseCase.On("SearchCourses", mock.Anything, "worship").Return([]*entity.Course{
		{ID: "gk-002", Title: "Worship Chords Demystified"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses?search=worship", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetCourse_NotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/courses/:id", handler.GetCourse)

	mockUseCase.On("GetCourseByID", mock.Anything, "nope").Return(nil, entity.ErrCourseNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCourse(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/admin/courses", handler.CreateCourse)

	mockUseCase.On("CreateCourse", mock.Anything, mock.AnythingOfType("entity.Course")).
		Return(&entity.Course{ID: "1756500000000", Title: "New Course", Author: "Marcus Reed", Price: "$10.00"}, nil)

	body, _ := json.Marshal(CreateCourseRequest{Title: "New Course", Author: "Marcus Reed", Price: "$10.00"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created entity.Course
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "1756500000000", created.ID)
	mockUseCase.AssertExpectations(t)
}

func TestCreateCourse_MissingFields(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/admin/courses", handler.CreateCourse)

	body, _ := json.Marshal(map[string]string{"title": "No price"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateCourse")
}

func TestUpdateCourse_BundledAnswersNotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/admin/courses/:id", handler.UpdateCourse)

	mockUseCase.On("UpdateCourse", mock.Anything, "gk-001", mock.AnythingOfType("entity.CourseUpdate")).
		Return(nil, entity.ErrCourseNotFound)

	body, _ := json.Marshal(map[string]string{"title": "Hijacked"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/courses/gk-001", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
