package handler

import (
	"context"
	"net/http"

	"loreforge/internal/dto"
	"loreforge/internal/middleware"
	"loreforge/internal/service"

	"github.com/gin-gonic/gin"
)

type PlaceHandler struct {
	svc service.PlaceService
}

func NewPlaceHandler(svc service.PlaceService) *PlaceHandler {
	return &PlaceHandler{svc: svc}
}

func (h *PlaceHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:place_id", h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:place_id", requireAuth, h.Update)
	rg.DELETE("/:place_id", requireAuth, h.Delete)
}

func (h *PlaceHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "place_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	place, err := h.svc.Get(ctx, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var in dto.CreatePlaceRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	place, err := h.svc.Create(ctx, middleware.CurrentUser(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "place_id")
	if !ok {
		return
	}
	var in dto.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	place, err := h.svc.Update(ctx, middleware.CurrentUser(c), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "place_id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "place deleted"})
}
