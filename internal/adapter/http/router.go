package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/adapter/http/middleware"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/logging"
)

func NewRouter(catalog *CatalogHandler, carts *CartHandler, shares *ShareHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/catalog/refresh", catalog.Refresh)
		v1.GET("/catalog/status", catalog.Status)
		v1.GET("/products", catalog.ListProducts)
		v1.GET("/products/:id", catalog.GetProduct)
		v1.POST("/products/:id/share", shares.ShareProduct)
		v1.GET("/categories", catalog.ListCategories)

		v1.POST("/carts", carts.Create)
		v1.GET("/carts/:id", carts.Get)
		v1.POST("/carts/:id/items", carts.AddItem)
		v1.DELETE("/carts/:id/items/:productId", carts.RemoveItem)
		v1.DELETE("/carts/:id/items/:productId/all", carts.RemoveItemAll)
		v1.DELETE("/carts/:id", carts.Clear)
		v1.POST("/carts/:id/share", shares.ShareCart)
	}

	return r
}
