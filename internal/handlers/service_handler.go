package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kilimopesa_backend/internal/services"
	"kilimopesa_backend/internal/services/dto"
)

type ServiceHandler struct {
	*BaseHandler
	serviceService services.FarmServiceService
	sessionMW      gin.HandlerFunc
}

func NewServiceHandler(base *BaseHandler, serviceService services.FarmServiceService, sessionMW gin.HandlerFunc) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		serviceService: serviceService,
		sessionMW:      sessionMW,
	}
}

func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	svcs := rg.Group("/services")
	{
		svcs.GET("", h.List)
		svcs.GET("/:id", h.Get)
	}

	authed := rg.Group("/services")
	authed.Use(h.sessionMW)
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	svc, err := h.serviceService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	svc, err := h.serviceService.Get(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	listings, err := h.serviceService.List(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	svc, err := h.serviceService.Update(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.serviceService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
