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

type InputService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateInputRequest) (*models.Input, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Input, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Input, error)
	Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateInputRequest) (*models.Input, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id string) error
}

type InputServiceImpl struct {
	inputRepo repositories.InputRepository
}

func NewInputService(inputRepo repositories.InputRepository) InputService {
	return &InputServiceImpl{inputRepo: inputRepo}
}

func (s *InputServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateInputRequest) (*models.Input, error) {
	input := &models.Input{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}
	if err := s.inputRepo.Create(db, input); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return input, nil
}

func (s *InputServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Input, error) {
	input, err := s.inputRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInputNotFound) {
			return nil, apperrors.ErrNotFound(err, "input", "Input listing not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return input, nil
}

func (s *InputServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Input, error) {
	inputs, err := s.inputRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return inputs, nil
}

func (s *InputServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateInputRequest) (*models.Input, error) {
	input, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(input.UserID, userID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Price != nil {
		input.Price = *req.Price
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}
	if req.ImageURL != nil {
		input.ImageURL = *req.ImageURL
	}

	if err := s.inputRepo.Update(db, input); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return input, nil
}

func (s *InputServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, id string) error {
	input, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(input.UserID, userID); err != nil {
		return err
	}
	if err := s.inputRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
