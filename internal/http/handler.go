package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tpc/ocean/internal/config"
	"github.com/tpc/ocean/internal/http/middleware"
	"github.com/tpc/ocean/internal/service"
)

// ResourceHandler exposes one ResourceManager over HTTP.
type ResourceHandler[T any] struct {
	manager    *service.ResourceManager[T]
	exports    *service.ExportService
	pagination config.PaginationConfig
	log        zerolog.Logger
}

func NewResourceHandler[T any](manager *service.ResourceManager[T], exports *service.ExportService, pagination config.PaginationConfig, log zerolog.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		manager:    manager,
		exports:    exports,
		pagination: pagination,
		log:        log.With().Str("component", "handler").Str("kind", manager.Kind().Name).Logger(),
	}
}

func (h *ResourceHandler[T]) Register(router gin.IRouter) {
	group := router.Group(h.manager.Kind().BasePath())
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/export", h.export)
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.delete)
}

func (h *ResourceHandler[T]) list(c *gin.Context) {
	page, size, err := h.parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.manager.List(c.Request.Context(), page, size)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResourceHandler[T]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResourceHandler[T]) create(c *gin.Context) {
	var candidate T
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.manager.Create(c.Request.Context(), &candidate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Location", result.Self())
	c.JSON(http.StatusCreated, result)
}

func (h *ResourceHandler[T]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var replacement T
	if err := c.ShouldBindJSON(&replacement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.manager.Update(c.Request.Context(), id, &replacement)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResourceHandler[T]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.manager.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler[T]) export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.exports.Export(c.Request.Context(), h.manager, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *ResourceHandler[T]) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parsePage reads the zero-based page and the page size, defaulting and
// capping the size from configuration.
func (h *ResourceHandler[T]) parsePage(c *gin.Context) (int, int, error) {
	page := 0
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, errors.New("page must be a non-negative integer")
		}
		page = v
	}

	size := h.pagination.DefaultSize
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return 0, 0, errors.New("size must be a positive integer")
		}
		size = v
	}
	if h.pagination.MaxSize > 0 && size > h.pagination.MaxSize {
		size = h.pagination.MaxSize
	}
	return page, size, nil
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
