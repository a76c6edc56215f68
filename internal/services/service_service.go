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

type FarmServiceService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*models.Service, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Service, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Service, error)
	Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id string) error
}

type FarmServiceServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewFarmServiceService(serviceRepo repositories.ServiceRepository) FarmServiceService {
	return &FarmServiceServiceImpl{serviceRepo: serviceRepo}
}

func (s *FarmServiceServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}
	if err := s.serviceRepo.Create(db, svc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *FarmServiceServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Service, error) {
	svc, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err, "service", "Service listing not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *FarmServiceServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Service, error) {
	listings, err := s.serviceRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

func (s *FarmServiceServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(svc.UserID, userID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = req.Price
	}
	if req.Location != nil {
		svc.Location = *req.Location
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}

	if err := s.serviceRepo.Update(db, svc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *FarmServiceServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, id string) error {
	svc, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(svc.UserID, userID); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
