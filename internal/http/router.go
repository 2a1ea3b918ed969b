package http

import (
	"context"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tpc/ocean/internal/http/middleware"
)

// Registrar mounts the routes of one resource.
type Registrar interface {
	Register(router gin.IRouter)
}

type RouterConfig struct {
	Resources   []Registrar
	OpenAPI     *openapi3.T
	CORSOrigins []string
	// Ping reports store health for /health; nil means always healthy.
	Ping func(ctx context.Context) error
	Log  zerolog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	router.GET("/health", healthHandler(cfg.Ping))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.OpenAPI != nil {
		router.GET("/openapi.json", func(c *gin.Context) {
			c.JSON(http.StatusOK, cfg.OpenAPI)
		})
	}

	for _, resource := range cfg.Resources {
		resource.Register(router)
	}
	return router
}

func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
