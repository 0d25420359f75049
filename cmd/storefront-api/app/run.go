package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Ki2008-vi/tokosigmablackboi/configs"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/adapter/cache"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/adapter/fakestore"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/adapter/http"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/logging"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/share"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, "./logs/app.log")
	log := logging.New("app")

	// init redis (catalog snapshot cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// session state: explicit stores, no ambient globals
	catalogStore := store.NewCatalogStore()
	cartStore := store.NewCartStore()
	pricer := entity.NewPricer(cfg.Currency.ConversionRate)

	// external collaborators
	src := fakestore.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.FetchTimeout)
	snapCache := cache.NewCatalogCache(rdb, cfg.Catalog.CacheTTL)

	refreshUC := usecase.NewRefreshCatalog(src, snapCache, catalogStore)
	cartOps := usecase.NewCartOps(catalogStore, cartStore, pricer)
	shareUC := usecase.NewShare(catalogStore, cartStore, pricer, share.Linker{BaseURL: cfg.Share.BaseURL})

	// initial fetch, like the storefront does on page load; a failure only
	// arms the error banner, it doesn't stop the service
	if cfg.Catalog.FetchOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if out, err := refreshUC.Execute(ctx); err != nil {
			log.Warn("initial catalog fetch failed", "err", err)
		} else {
			log.Info("catalog loaded", "products", out.Products, "categories", out.Categories, "source", out.Source)
		}
		cancel()
	}

	catalogHandler := http.NewCatalogHandler(refreshUC, catalogStore, pricer)
	cartHandler := http.NewCartHandler(cartOps)
	shareHandler := http.NewShareHandler(shareUC)
	router := http.NewRouter(catalogHandler, cartHandler, shareHandler)

	cleanup := func() {
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
