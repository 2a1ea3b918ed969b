// Package app wires configuration, storage, cache and HTTP routing into a
// runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tpc/ocean/internal/cache"
	"github.com/tpc/ocean/internal/config"
	"github.com/tpc/ocean/internal/db"
	"github.com/tpc/ocean/internal/docs"
	"github.com/tpc/ocean/internal/excel"
	httpapi "github.com/tpc/ocean/internal/http"
	"github.com/tpc/ocean/internal/hypermedia"
	"github.com/tpc/ocean/internal/model"
	"github.com/tpc/ocean/internal/pdf"
	"github.com/tpc/ocean/internal/repository"
	"github.com/tpc/ocean/internal/resource"
	"github.com/tpc/ocean/internal/service"
)

type App struct {
	Router *gin.Engine

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	database, err := db.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a := &App{}
	a.closers = append(a.closers, func() error {
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	listings, closeCache, err := NewCache(ctx, cfg.Cache, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.closers = append(a.closers, closeCache)

	a.Router = NewRouter(cfg, database, listings, log)
	return a, nil
}

// Close releases the cache and database connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewCache builds the listing cache selected by CACHE_BACKEND. The returned
// closer is never nil.
func NewCache(ctx context.Context, cfg config.CacheConfig, log zerolog.Logger) (cache.Cache, func() error, error) {
	switch cfg.Backend {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis listing cache")
		return cache.NewRedis(client, cfg.Prefix), client.Close, nil
	default:
		log.Info().Msg("using in-memory listing cache")
		return cache.NewMemory(), func() error { return nil }, nil
	}
}

// NewRouter mounts every entity kind on one engine.
func NewRouter(cfg *config.Config, database *gorm.DB, listings cache.Cache, log zerolog.Logger) *gin.Engine {
	exports := service.NewExportService(excel.NewGenerator(), pdf.NewGenerator())
	w := wiring{cfg: cfg, db: database, cache: listings, exports: exports, log: log}

	return httpapi.NewRouter(httpapi.RouterConfig{
		Resources: []httpapi.Registrar{
			mount(w, model.CompanyKind),
			mount(w, model.InstitutionKind),
			mount(w, model.ContractKind),
			mount(w, model.ServiceKind),
			mount(w, model.TransactionKind),
			mount(w, model.ExhibitionKind),
			mount(w, model.UserKind),
			mount(w, model.CompanyProfileKind),
			mount(w, model.InstitutionProfileKind),
		},
		OpenAPI:     docs.Build(model.Specs()),
		CORSOrigins: cfg.CORSOrigins,
		Ping: func(ctx context.Context) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Log: log,
	})
}

type wiring struct {
	cfg     *config.Config
	db      *gorm.DB
	cache   cache.Cache
	exports *service.ExportService
	log     zerolog.Logger
}

func mount[T any](w wiring, kind resource.Kind[T]) httpapi.Registrar {
	manager := service.NewResourceManager[T](
		kind,
		repository.New(w.db, kind),
		w.cache,
		hypermedia.NewAssembler(w.cfg.HTTP.PublicURL, kind),
		w.log,
	)
	return httpapi.NewResourceHandler(manager, w.exports, w.cfg.Pagination, w.log)
}
