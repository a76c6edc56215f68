package repositories

import (
	"errors"

	"kilimopesa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLandNotFound = errors.New("land listing not found")

type LandRepository interface {
	Create(db *gorm.DB, land *models.Land) error
	FindByID(db *gorm.DB, id string) (*models.Land, error)
	FindAll(db *gorm.DB) ([]models.Land, error)
	Update(db *gorm.DB, land *models.Land) error
	Delete(db *gorm.DB, id string) error
}

type LandRepositoryImpl struct{}

func NewLandRepository() LandRepository {
	return &LandRepositoryImpl{}
}

func (r *LandRepositoryImpl) Create(db *gorm.DB, land *models.Land) error {
	return db.Create(land).Error
}

func (r *LandRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Land, error) {
	var land models.Land
	err := db.First(&land, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandNotFound
		}
		return nil, err
	}
	return &land, nil
}

func (r *LandRepositoryImpl) FindAll(db *gorm.DB) ([]models.Land, error) {
	var lands []models.Land
	err := db.Order("created_at DESC").Find(&lands).Error
	return lands, err
}

func (r *LandRepositoryImpl) Update(db *gorm.DB, land *models.Land) error {
	return db.Save(land).Error
}

func (r *LandRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Land{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLandNotFound
	}
	return nil
}
