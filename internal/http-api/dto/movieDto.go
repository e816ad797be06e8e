package dto

import (
	"time"

	"moviehub/internal/http-api/models"
)

// CreateMovieDTO for POST /movie/create. ReleaseDate is a calendar date
// in YYYY-MM-DD form.
type CreateMovieDTO struct {
	Name        string `json:"name"`
	Category    int64  `json:"category"`
	ReleaseDate string `json:"release_date"`
}

// ListMoviesDTO for POST /movie/list. All filters are optional; page and
// limit travel as query parameters.
type ListMoviesDTO struct {
	FilterName     string `json:"filter_name"`
	FilterCategory int64  `json:"filter_category"`
	Order          string `json:"order"`
}

type MovieResponse struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	ReleaseDate string    `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovieListResponse carries one page plus pagination metadata.
type MovieListResponse struct {
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int64           `json:"total"`
	TotalPages int64           `json:"totalPages"`
	Movies     []MovieResponse `json:"movies"`
}

func MovieFromModel(m models.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		ReleaseDate: m.ReleaseDate.Format("2006-01-02"),
		CreatedAt:   m.CreatedAt,
	}
}

func MoviesFromModels(movies []models.Movie) []MovieResponse {
	resp := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, MovieFromModel(m))
	}
	return resp
}
