package repository

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	AddWatched(ctx context.Context, userID, movieID int64) error
	WatchedMovies(ctx context.Context, userID int64) ([]models.Movie, error)
	RemoveWatched(ctx context.Context, userID, movieID int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("email already registered")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return list, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return count > 0, nil
}

// Delete removes the user and their watched rows in one transaction so
// a failure partway leaves nothing orphaned.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Watched{}).Error; err != nil {
			return fmt.Errorf("delete watched rows: %w", err)
		}
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("user")
		}
		return nil
	})
}

// AddWatched inserts the (user, movie) pair. The composite primary key
// rejects a second writer, which surfaces as a ConflictError.
func (r *userRepository) AddWatched(ctx context.Context, userID, movieID int64) error {
	w := models.Watched{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Create(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("movie already marked as watched")
		}
		return fmt.Errorf("add watched: %w", err)
	}
	return nil
}

func (r *userRepository) WatchedMovies(ctx context.Context, userID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Joins("JOIN watched w ON w.movie_id = movies.id").
		Where("w.user_id = ?", userID).
		Order("movies.id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get watched movies: %w", err)
	}
	return list, nil
}

func (r *userRepository) RemoveWatched(ctx context.Context, userID, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.Watched{})
	if result.Error != nil {
		return fmt.Errorf("remove watched: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("watched movie")
	}
	return nil
}
