package service

import (
	"context"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

type UserService interface {
	Create(ctx context.Context, name, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
	WatchMovie(ctx context.Context, userID, movieID int64) error
	WatchedMovies(ctx context.Context, userID int64) ([]models.Movie, error)
	UnwatchMovie(ctx context.Context, userID, movieID int64) error
}

type userService struct {
	users  repository.UserRepository
	movies repository.MovieRepository
}

func NewUserService(users repository.UserRepository, movies repository.MovieRepository) UserService {
	return &userService{users: users, movies: movies}
}

func (s *userService) Create(ctx context.Context, name, email string) (*models.User, error) {
	var fields []apperr.FieldError
	if !validEmail(email) {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "invalid email"})
	}
	if !validNameLength(name) {
		fields = append(fields, apperr.FieldError{Field: "name", Message: "name must be between 2 and 30 characters"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	// The unique index on email rejects a concurrent duplicate; the
	// repository maps that to a ConflictError.
	u := models.User{Name: name, Email: email}
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation(apperr.FieldError{Field: "user_id", Message: "invalid user id"})
	}
	return s.users.Delete(ctx, id)
}

func (s *userService) WatchMovie(ctx context.Context, userID, movieID int64) error {
	if err := requireIDs(userID, movieID); err != nil {
		return err
	}

	userExists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return apperr.NotFound("user")
	}

	movieExists, err := s.movies.ExistsByID(ctx, movieID)
	if err != nil {
		return err
	}
	if !movieExists {
		return apperr.NotFound("movie")
	}

	return s.users.AddWatched(ctx, userID, movieID)
}

func (s *userService) WatchedMovies(ctx context.Context, userID int64) ([]models.Movie, error) {
	if userID <= 0 {
		return nil, apperr.Validation(apperr.FieldError{Field: "user_id", Message: "invalid user id"})
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user")
	}

	return s.users.WatchedMovies(ctx, userID)
}

func (s *userService) UnwatchMovie(ctx context.Context, userID, movieID int64) error {
	if err := requireIDs(userID, movieID); err != nil {
		return err
	}
	return s.users.RemoveWatched(ctx, userID, movieID)
}

func requireIDs(userID, movieID int64) error {
	var fields []apperr.FieldError
	if userID <= 0 {
		fields = append(fields, apperr.FieldError{Field: "user_id", Message: "user id is required"})
	}
	if movieID <= 0 {
		fields = append(fields, apperr.FieldError{Field: "movie_id", Message: "movie id is required"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}
