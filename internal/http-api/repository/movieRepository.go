package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

// MovieFilter narrows a listing query. Zero values mean "no filter".
type MovieFilter struct {
	Name       string // substring match on the movie name
	CategoryID int64  // exact category match when > 0
	Order      string // "new" (newest first), "old" (oldest first), "" (unspecified)
}

type MovieRepository interface {
	Create(ctx context.Context, m *models.Movie) error
	AllNames(ctx context.Context) ([]string, error)
	List(ctx context.Context, filter MovieFilter, page, limit int) ([]models.Movie, int64, error)
	ReleasedBetween(ctx context.Context, from, to time.Time) ([]models.Movie, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("a movie with that name already exists")
		}
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// AllNames returns every movie name for the duplicate-title check.
func (r *movieRepository) AllNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("get movie names: %w", err)
	}
	return names, nil
}

// List returns one page of movies matching the filter plus the total
// matching count.
func (r *movieRepository) List(ctx context.Context, filter MovieFilter, page, limit int) ([]models.Movie, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	switch filter.Order {
	case "new":
		query = query.Order("release_date desc")
	case "old":
		query = query.Order("release_date asc")
	}

	offset := (page - 1) * limit

	var list []models.Movie
	if err := query.Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	return list, total, nil
}

func (r *movieRepository) ReleasedBetween(ctx context.Context, from, to time.Time) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Where("release_date BETWEEN ? AND ?", from, to).
		Order("release_date desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent movies: %w", err)
	}
	return list, nil
}

func (r *movieRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return count > 0, nil
}
