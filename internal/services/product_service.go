package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/services/dto"
	"kilimopesa_backend/pkg/apperrors"
)

type ProductService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProductRequest) (*models.Product, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Product, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Product, error)
	Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id string) error
}

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *ProductServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProductRequest) (*models.Product, error) {
	if err := s.checkCategory(db, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}
	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(ctx, db, product.ID)
}

func (s *ProductServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrNotFound(err, "product", "Product not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Product, error) {
	products, err := s.productRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(product.UserID, userID); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if err := s.checkCategory(db, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.productRepo.Update(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(ctx, db, product.ID)
}

func (s *ProductServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, id string) error {
	product, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(product.UserID, userID); err != nil {
		return err
	}
	if err := s.productRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProductServiceImpl) checkCategory(db *gorm.DB, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrInvalidOperation("product", "Category does not exist")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
