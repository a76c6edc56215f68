package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kilimopesa_backend/internal/services"
	"kilimopesa_backend/internal/services/dto"
)

type VideoHandler struct {
	*BaseHandler
	videoService services.VideoService
	sessionMW    gin.HandlerFunc
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService, sessionMW gin.HandlerFunc) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  base,
		videoService: videoService,
		sessionMW:    sessionMW,
	}
}

func (h *VideoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	videos := rg.Group("/videos")
	{
		videos.GET("", h.List)
		videos.GET("/youtube_search", h.YouTubeSearch)
		videos.GET("/:id", h.Get)
	}

	authed := rg.Group("/videos")
	authed.Use(h.sessionMW)
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *VideoHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	video, err := h.videoService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	video, err := h.videoService.Get(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	videos, err := h.videoService.List(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	video, err := h.videoService.Update(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.videoService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// YouTubeSearch proxies a keyword search to the YouTube Data API and relays
// the upstream JSON body unchanged.
func (h *VideoHandler) YouTubeSearch(c *gin.Context) {
	query := c.Query("q")

	result, err := h.videoService.SearchYouTube(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}
