package service

import (
	"context"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(r repository.CategoryRepository) CategoryService {
	return &categoryService{repo: r}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}
