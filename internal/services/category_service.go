package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kilimopesa_backend/internal/logger"
	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/pkg/apperrors"
)

type CategoryService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Category, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Category, error)
	// Seed inserts the fixed category set, skipping names that already exist.
	Seed(ctx context.Context, db *gorm.DB) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "category", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Seed(ctx context.Context, db *gorm.DB) error {
	for _, name := range models.AllCategoryNames() {
		_, err := s.categoryRepo.FindByName(db, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.InternalError(err)
		}
		if err := s.categoryRepo.Create(db, &models.Category{Name: name}); err != nil {
			return apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "seeded category", "name", string(name))
	}
	return nil
}
