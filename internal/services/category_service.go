package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return s.CategoryRepo.CreateCategory(ctx, category)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

func (s *CategoryService) GetCategories(ctx context.Context, limit, offset int) ([]models.Category, error) {
	return s.CategoryRepo.GetCategories(ctx, limit, offset)
}

func (s *CategoryService) GetParentCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetParentCategories(ctx)
}

func (s *CategoryService) GetSubcategories(ctx context.Context, parentID int) ([]models.Category, error) {
	return s.CategoryRepo.GetSubcategories(ctx, parentID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, upd models.CategoryUpdate) (models.Category, error) {
	return s.CategoryRepo.UpdateCategory(ctx, id, upd)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.CategoryRepo.DeleteCategory(ctx, id)
}
