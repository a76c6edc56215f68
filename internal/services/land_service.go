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

type LandService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateLandRequest) (*models.Land, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Land, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Land, error)
	Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateLandRequest) (*models.Land, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id string) error
}

type LandServiceImpl struct {
	landRepo repositories.LandRepository
}

func NewLandService(landRepo repositories.LandRepository) LandService {
	return &LandServiceImpl{landRepo: landRepo}
}

func (s *LandServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateLandRequest) (*models.Land, error) {
	land := &models.Land{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Size:        req.Size,
		Location:    req.Location,
		Price:       req.Price,
		IsForSale:   true,
		ImageURL:    req.ImageURL,
	}
	if req.IsForSale != nil {
		land.IsForSale = *req.IsForSale
	}
	if err := s.landRepo.Create(db, land); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return land, nil
}

func (s *LandServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Land, error) {
	land, err := s.landRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLandNotFound) {
			return nil, apperrors.ErrNotFound(err, "land", "Land listing not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return land, nil
}

func (s *LandServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Land, error) {
	listings, err := s.landRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

func (s *LandServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateLandRequest) (*models.Land, error) {
	land, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(land.UserID, userID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		land.Title = *req.Title
	}
	if req.Description != nil {
		land.Description = *req.Description
	}
	if req.Size != nil {
		land.Size = *req.Size
	}
	if req.Location != nil {
		land.Location = *req.Location
	}
	if req.Price != nil {
		land.Price = *req.Price
	}
	if req.IsForSale != nil {
		land.IsForSale = *req.IsForSale
	}
	if req.ImageURL != nil {
		land.ImageURL = *req.ImageURL
	}

	if err := s.landRepo.Update(db, land); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return land, nil
}

func (s *LandServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, id string) error {
	land, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(land.UserID, userID); err != nil {
		return err
	}
	if err := s.landRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
