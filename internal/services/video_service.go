package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"kilimopesa_backend/internal/logger"
	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/pkg/youtube"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/services/dto"
	"kilimopesa_backend/pkg/apperrors"
)

// defaultSearchQuery keeps the proxy useful for clients that render a feed
// without any user input yet.
const defaultSearchQuery = "agriculture"

type VideoService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateVideoRequest) (*models.Video, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Video, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Video, error)
	Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateVideoRequest) (*models.Video, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id string) error
	// SearchYouTube proxies a keyword search and returns the upstream
	// response body as-is. An empty query searches for "agriculture".
	SearchYouTube(ctx context.Context, query string) (json.RawMessage, error)
}

type VideoServiceImpl struct {
	videoRepo repositories.VideoRepository
	youtube   youtube.Client
}

func NewVideoService(videoRepo repositories.VideoRepository, youtubeClient youtube.Client) VideoService {
	return &VideoServiceImpl{videoRepo: videoRepo, youtube: youtubeClient}
}

func (s *VideoServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateVideoRequest) (*models.Video, error) {
	video := &models.Video{
		UserID:         userID,
		Title:          req.Title,
		YouTubeVideoID: req.YouTubeVideoID,
		Description:    req.Description,
	}
	if err := s.videoRepo.Create(db, video); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return video, nil
}

func (s *VideoServiceImpl) Get(ctx context.Context, db *gorm.DB, id string) (*models.Video, error) {
	video, err := s.videoRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, apperrors.ErrNotFound(err, "video", "Video not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return video, nil
}

func (s *VideoServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Video, error) {
	videos, err := s.videoRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return videos, nil
}

func (s *VideoServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(video.UserID, userID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.YouTubeVideoID != nil {
		video.YouTubeVideoID = *req.YouTubeVideoID
	}
	if req.Description != nil {
		video.Description = *req.Description
	}

	if err := s.videoRepo.Update(db, video); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return video, nil
}

func (s *VideoServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, id string) error {
	video, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := requireOwner(video.UserID, userID); err != nil {
		return err
	}
	if err := s.videoRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VideoServiceImpl) SearchYouTube(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		query = defaultSearchQuery
	}

	result, err := s.youtube.Search(ctx, query)
	if err != nil {
		logger.CtxError(ctx, "youtube search failed", "query", query, "error", err)
		return nil, apperrors.ErrUpstreamUnavailable(err, "video", "YouTube search is currently unavailable")
	}
	return result, nil
}
