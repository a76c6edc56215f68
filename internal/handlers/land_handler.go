package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kilimopesa_backend/internal/services"
	"kilimopesa_backend/internal/services/dto"
)

type LandHandler struct {
	*BaseHandler
	landService services.LandService
	sessionMW   gin.HandlerFunc
}

func NewLandHandler(base *BaseHandler, landService services.LandService, sessionMW gin.HandlerFunc) *LandHandler {
	return &LandHandler{
		BaseHandler: base,
		landService: landService,
		sessionMW:   sessionMW,
	}
}

func (h *LandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	land := rg.Group("/land")
	{
		land.GET("", h.List)
		land.GET("/:id", h.Get)
	}

	authed := rg.Group("/land")
	authed.Use(h.sessionMW)
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *LandHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	land, err := h.landService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, land)
}

func (h *LandHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	land, err := h.landService.Get(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, land)
}

func (h *LandHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	listings, err := h.landService.List(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *LandHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	land, err := h.landService.Update(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, land)
}

func (h *LandHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.landService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
