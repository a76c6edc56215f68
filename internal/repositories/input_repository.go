package repositories

import (
	"errors"

	"kilimopesa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInputNotFound = errors.New("input listing not found")

type InputRepository interface {
	Create(db *gorm.DB, input *models.Input) error
	FindByID(db *gorm.DB, id string) (*models.Input, error)
	FindAll(db *gorm.DB) ([]models.Input, error)
	Update(db *gorm.DB, input *models.Input) error
	Delete(db *gorm.DB, id string) error
}

type InputRepositoryImpl struct{}

func NewInputRepository() InputRepository {
	return &InputRepositoryImpl{}
}

func (r *InputRepositoryImpl) Create(db *gorm.DB, input *models.Input) error {
	return db.Create(input).Error
}

func (r *InputRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Input, error) {
	var input models.Input
	err := db.First(&input, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInputNotFound
		}
		return nil, err
	}
	return &input, nil
}

func (r *InputRepositoryImpl) FindAll(db *gorm.DB) ([]models.Input, error) {
	var inputs []models.Input
	err := db.Order("created_at DESC").Find(&inputs).Error
	return inputs, err
}

func (r *InputRepositoryImpl) Update(db *gorm.DB, input *models.Input) error {
	return db.Save(input).Error
}

func (r *InputRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Input{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInputNotFound
	}
	return nil
}
