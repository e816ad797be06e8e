package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc    service.UserService
	logger *slog.Logger
}

func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create", h.Create)
	rg.POST("/list", h.List)
	rg.POST("/delete", h.Delete)
	rg.POST("/seen/movie", h.WatchMovie)
	rg.POST("/seen/movies", h.WatchedMovies)
	rg.POST("/seen/movie/remove", h.UnwatchMovie)
}

func (h *UserHandler) Create(c *gin.Context) {
	var in dto.CreateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u, err := h.svc.Create(ctx, in.Name, in.Email)
	if err != nil {
		// A taken email answers 400 rather than the usual 409.
		var conflictErr *apperr.ConflictError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": conflictErr.Error()})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"user":    dto.UserFromModel(*u),
	})
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.svc.GetAll(ctx)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserListFromModels(users))
}

func (h *UserHandler) Delete(c *gin.Context) {
	var in dto.UserIDDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, in.UserID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *UserHandler) WatchMovie(c *gin.Context) {
	var in dto.WatchMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.WatchMovie(ctx, in.UserID, in.MovieID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "movie added to watched successfully"})
}

func (h *UserHandler) WatchedMovies(c *gin.Context) {
	var in dto.UserIDDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movies, err := h.svc.WatchedMovies(ctx, in.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": dto.MoviesFromModels(movies)})
}

func (h *UserHandler) UnwatchMovie(c *gin.Context) {
	var in dto.WatchMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.UnwatchMovie(ctx, in.UserID, in.MovieID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movie removed from watched successfully"})
}
