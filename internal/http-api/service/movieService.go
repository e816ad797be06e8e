package service

import (
	"context"
	"errors"
	"time"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/similarity"
)

const (
	minCategoryID = 1
	maxCategoryID = 3

	defaultPageSize = 10

	// recentWindowDays is how far back /movie/recent looks, inclusive.
	recentWindowDays = 21

	releaseDateLayout = "2006-01-02"
)

// ListParams are the normalized inputs of a listing request.
type ListParams struct {
	FilterName     string
	FilterCategory int64
	Order          string
	Page           int
	Limit          int
}

// ListResult is one page of movies plus pagination metadata.
type ListResult struct {
	Movies     []models.Movie
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

type MovieService interface {
	Create(ctx context.Context, name string, categoryID int64, releaseDate string) (*models.Movie, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Recent(ctx context.Context) ([]models.Movie, error)
}

type movieService struct {
	movies     repository.MovieRepository
	categories repository.CategoryRepository
	threshold  float64
	maxLimit   int
	now        func() time.Time
}

func NewMovieService(movies repository.MovieRepository, categories repository.CategoryRepository, threshold float64, maxLimit int) MovieService {
	return &movieService{
		movies:     movies,
		categories: categories,
		threshold:  threshold,
		maxLimit:   maxLimit,
		now:        time.Now,
	}
}

// Create validates the movie, rejects near-duplicate names, and stores
// the record. All shape violations come back in a single
// ValidationError.
func (s *movieService) Create(ctx context.Context, name string, categoryID int64, releaseDate string) (*models.Movie, error) {
	var fields []apperr.FieldError
	if !validNameLength(name) {
		fields = append(fields, apperr.FieldError{Field: "name", Message: "name must be between 2 and 30 characters"})
	}
	if categoryID < minCategoryID || categoryID > maxCategoryID {
		fields = append(fields, apperr.FieldError{Field: "category", Message: "category must be a number between 1 and 3"})
	}
	parsed, dateErr := time.Parse(releaseDateLayout, releaseDate)
	if dateErr != nil {
		fields = append(fields, apperr.FieldError{Field: "release_date", Message: "invalid date, must be in YYYY-MM-DD format"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	exists, err := s.categories.ExistsByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Validation(apperr.FieldError{Field: "category", Message: "category does not exist"})
	}

	names, err := s.movies.AllNames(ctx)
	if err != nil {
		return nil, err
	}
	match, err := similarity.BestMatch(name, names)
	switch {
	case errors.Is(err, similarity.ErrEmptyCorpus):
		// First movie ever, nothing to collide with.
	case err != nil:
		return nil, err
	case match.Score >= s.threshold:
		return nil, &apperr.DuplicateNameError{Target: match.Target, Score: match.Score}
	}

	// Near-duplicates below the exact-equality level stay check-then-act;
	// the unique index on name still rejects a concurrent equal title.
	m := models.Movie{Name: name, CategoryID: categoryID, ReleaseDate: parsed}
	if err := s.movies.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *movieService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultPageSize
	}
	if params.Limit > s.maxLimit {
		params.Limit = s.maxLimit
	}

	filter := repository.MovieFilter{Name: params.FilterName}
	// Out-of-range category filters are ignored, not rejected.
	if params.FilterCategory >= minCategoryID && params.FilterCategory <= maxCategoryID {
		filter.CategoryID = params.FilterCategory
	}
	switch params.Order {
	case "new", "old":
		filter.Order = params.Order
	}

	movies, total, err := s.movies.List(ctx, filter, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Movies:     movies,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages(total, params.Limit),
	}, nil
}

func (s *movieService) Recent(ctx context.Context) ([]models.Movie, error) {
	from, to := recentWindow(s.now())
	return s.movies.ReleasedBetween(ctx, from, to)
}

// recentWindow returns the inclusive [today-21d, today] date range.
func recentWindow(now time.Time) (from, to time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -recentWindowDays), today
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
