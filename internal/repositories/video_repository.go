package repositories

import (
	"errors"

	"kilimopesa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoRepository interface {
	Create(db *gorm.DB, video *models.Video) error
	FindByID(db *gorm.DB, id string) (*models.Video, error)
	FindAll(db *gorm.DB) ([]models.Video, error)
	Update(db *gorm.DB, video *models.Video) error
	Delete(db *gorm.DB, id string) error
}

type VideoRepositoryImpl struct{}

func NewVideoRepository() VideoRepository {
	return &VideoRepositoryImpl{}
}

func (r *VideoRepositoryImpl) Create(db *gorm.DB, video *models.Video) error {
	return db.Create(video).Error
}

func (r *VideoRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Video, error) {
	var video models.Video
	err := db.First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepositoryImpl) FindAll(db *gorm.DB) ([]models.Video, error) {
	var videos []models.Video
	err := db.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (r *VideoRepositoryImpl) Update(db *gorm.DB, video *models.Video) error {
	return db.Save(video).Error
}

func (r *VideoRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}
