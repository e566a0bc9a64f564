package handler

import (
	"context"
	"net/http"

	"loreforge/internal/dto"
	"loreforge/internal/middleware"
	"loreforge/internal/service"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	svc service.FAQService
}

func NewFAQHandler(svc service.FAQService) *FAQHandler {
	return &FAQHandler{svc: svc}
}

func (h *FAQHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:item_id", h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:item_id", requireAuth, h.Update)
	rg.DELETE("/:item_id", requireAuth, h.Delete)
}

func (h *FAQHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FAQHandler) Create(c *gin.Context) {
	var in dto.CreateFAQItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.svc.Create(ctx, middleware.CurrentUser(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	var in dto.UpdateFAQItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.svc.Update(ctx, middleware.CurrentUser(c), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "faq item deleted"})
}
