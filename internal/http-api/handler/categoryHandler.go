package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc    service.CategoryService
	logger *slog.Logger
}

func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, logger: logger}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/view", h.View)
}

func (h *CategoryHandler) View(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.svc.GetAll(ctx)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesFromModels(categories))
}
