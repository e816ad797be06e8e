package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc    service.MovieService
	logger *slog.Logger
}

func NewMovieHandler(svc service.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{svc: svc, logger: logger}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create", h.Create)
	rg.POST("/list", h.List)
	rg.POST("/recent", h.Recent)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.Create(ctx, in.Name, in.Category, in.ReleaseDate)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "movie created successfully",
		"movie":   dto.MovieFromModel(*m),
	})
}

func (h *MovieHandler) List(c *gin.Context) {
	var in dto.ListMoviesDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.svc.List(ctx, service.ListParams{
		FilterName:     in.FilterName,
		FilterCategory: in.FilterCategory,
		Order:          in.Order,
		Page:           queryInt(c, "page", 1),
		Limit:          queryInt(c, "limit", 10),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MovieListResponse{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Movies:     dto.MoviesFromModels(result.Movies),
	})
}

func (h *MovieHandler) Recent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.Recent(ctx)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": dto.MoviesFromModels(movies)})
}

// queryInt reads an integer query parameter, falling back to def on
// anything unparsable or non-positive.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
