package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kilimopesa_backend/internal/services"
	"kilimopesa_backend/internal/services/dto"
)

type InputHandler struct {
	*BaseHandler
	inputService services.InputService
	sessionMW    gin.HandlerFunc
}

func NewInputHandler(base *BaseHandler, inputService services.InputService, sessionMW gin.HandlerFunc) *InputHandler {
	return &InputHandler{
		BaseHandler:  base,
		inputService: inputService,
		sessionMW:    sessionMW,
	}
}

func (h *InputHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inputs := rg.Group("/inputs")
	{
		inputs.GET("", h.List)
		inputs.GET("/:id", h.Get)
	}

	authed := rg.Group("/inputs")
	authed.Use(h.sessionMW)
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *InputHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInputRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	input, err := h.inputService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, input)
}

func (h *InputHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	input, err := h.inputService.Get(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, input)
}

func (h *InputHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	inputs, err := h.inputService.List(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, inputs)
}

func (h *InputHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInputRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	input, err := h.inputService.Update(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, input)
}

func (h *InputHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.inputService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
