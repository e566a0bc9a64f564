package handler

import (
	"context"
	"net/http"

	"loreforge/internal/dto"
	"loreforge/internal/middleware"
	"loreforge/internal/service"

	"github.com/gin-gonic/gin"
)

type DevblogHandler struct {
	svc service.DevblogService
}

func NewDevblogHandler(svc service.DevblogService) *DevblogHandler {
	return &DevblogHandler{svc: svc}
}

func (h *DevblogHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.GET("", optionalAuth, h.List)
	rg.GET("/:post_id", optionalAuth, h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:post_id", requireAuth, h.Update)
	rg.DELETE("/:post_id", requireAuth, h.Delete)
}

func (h *DevblogHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.List(ctx, middleware.CurrentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DevblogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.svc.Get(ctx, middleware.CurrentUser(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *DevblogHandler) Create(c *gin.Context) {
	var in dto.CreateDevblogPostRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.svc.Create(ctx, middleware.CurrentUser(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *DevblogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	var in dto.UpdateDevblogPostRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.svc.Update(ctx, middleware.CurrentUser(c), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *DevblogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "devblog post deleted"})
}
