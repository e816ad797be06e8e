package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Create(ctx context.Context, name string, categoryID int64, releaseDate string) (*models.Movie, error) {
	args := m.Called(ctx, name, categoryID, releaseDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, params service.ListParams) (*service.ListResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockMovieService) Recent(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

// --- SETUP ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupMovieRouter(mockService *MockMovieService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMovieHandler(mockService, testLogger())
	h.RegisterRoutes(r.Group("/movie"))
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestMovieCreateReturns201(t *testing.T) {
	mockService := &MockMovieService{}
	release := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("Create", mock.Anything, "Interstellar", int64(2), "2026-03-01").
		Return(&models.Movie{ID: 1, Name: "Interstellar", CategoryID: 2, ReleaseDate: release}, nil)

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/create", gin.H{"name": "Interstellar", "category": 2, "release_date": "2026-03-01"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Movie   struct {
			ID          int64  `json:"id"`
			ReleaseDate string `json:"release_date"`
		} `json:"movie"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Movie.ID)
	assert.Equal(t, "2026-03-01", resp.Movie.ReleaseDate)
}

func TestMovieCreateDuplicateNameReturns400(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("Create", mock.Anything, "The Godfathers", int64(1), "2026-01-15").
		Return(nil, &apperr.DuplicateNameError{Target: "The Godfather", Score: 0.96})

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/create", gin.H{"name": "The Godfathers", "category": 1, "release_date": "2026-01-15"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "The Godfather")
	assert.Contains(t, w.Body.String(), "96%")
}

func TestMovieCreateValidationReturnsAllFields(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("Create", mock.Anything, "x", int64(9), "bad").
		Return(nil, apperr.Validation(
			apperr.FieldError{Field: "name", Message: "name must be between 2 and 30 characters"},
			apperr.FieldError{Field: "category", Message: "category must be a number between 1 and 3"},
			apperr.FieldError{Field: "release_date", Message: "invalid date, must be in YYYY-MM-DD format"},
		))

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/create", gin.H{"name": "x", "category": 9, "release_date": "bad"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []apperr.FieldError `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 3)
}

func TestMovieListPassesQueryParams(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("List", mock.Anything, service.ListParams{
		FilterName: "god",
		Order:      "new",
		Page:       2,
		Limit:      5,
	}).Return(&service.ListResult{
		Movies:     []models.Movie{},
		Page:       2,
		Limit:      5,
		Total:      25,
		TotalPages: 5,
	}, nil)

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/list?page=2&limit=5", gin.H{"filter_name": "god", "order": "new"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, int64(5), resp.TotalPages)
}

func TestMovieListDefaultsQueryParams(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("List", mock.Anything, service.ListParams{Page: 1, Limit: 10}).
		Return(&service.ListResult{Movies: []models.Movie{}, Page: 1, Limit: 10}, nil)

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/list?page=abc&limit=-4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestMovieRecentReturnsMovies(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("Recent", mock.Anything).
		Return([]models.Movie{{ID: 1, Name: "Fresh"}}, nil)

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/recent", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fresh")
}

func TestMovieRecentInternalErrorReturns500(t *testing.T) {
	mockService := &MockMovieService{}
	mockService.On("Recent", mock.Anything).
		Return([]models.Movie{}, errors.New("connection refused"))

	r := setupMovieRouter(mockService)
	w := postJSON(r, "/movie/recent", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internals must not leak to the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}
