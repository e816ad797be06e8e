package dto

import (
	"time"

	"moviehub/internal/http-api/models"
)

// CreateUserDTO for POST /user/create
type CreateUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WatchMovieDTO for POST /user/seen/movie and /user/seen/movie/remove
type WatchMovieDTO struct {
	UserID  int64 `json:"user_id"`
	MovieID int64 `json:"movie_id"`
}

// UserIDDTO for POST /user/seen/movies and /user/delete
type UserIDDTO struct {
	UserID int64 `json:"user_id"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}

func UserFromModel(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func UserListFromModels(users []models.User) UserListResponse {
	resp := UserListResponse{Total: len(users), Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, UserFromModel(u))
	}
	return resp
}
