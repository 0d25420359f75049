package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/logging"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type CatalogHandler struct {
	refresh *usecase.RefreshCatalog
	catalog *store.CatalogStore
	pricer  entity.Pricer
}

func NewCatalogHandler(refresh *usecase.RefreshCatalog, catalog *store.CatalogStore, pricer entity.Pricer) *CatalogHandler {
	return &CatalogHandler{refresh: refresh, catalog: catalog, pricer: pricer}
}

// Refresh runs the fetch pipeline. No automatic retry: a failure is
// reported here and stays visible via Status until the next call.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	out, err := h.refresh.Execute(ctx)
	if err != nil {
		logging.From(c).Error("catalog refresh failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog_fetch_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":   out.Products,
		"categories": out.Categories,
		"source":     out.Source,
	})
}

// Status is what the error banner reads.
func (h *CatalogHandler) Status(c *gin.Context) {
	st := h.catalog.Status()
	body := gin.H{"products": st.Size}
	if !st.FetchedAt.IsZero() {
		body["fetchedAt"] = st.FetchedAt
	}
	if st.Err != nil {
		body["error"] = "catalog_fetch_failed"
	}
	c.JSON(http.StatusOK, body)
}

// ListProducts serves the grid: optional ?category= filter and ?q= search.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if st := h.catalog.Status(); st.Size == 0 {
		if st.Err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog_fetch_failed"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog_not_ready"})
		return
	}

	products := h.catalog.Search(c.Query("category"), c.Query("q"))
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResp(p, h.pricer, false))
	}
	c.JSON(http.StatusOK, gin.H{"products": out, "count": len(out)})
}

// GetProduct serves the detail view, description included.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := entity.ParseProductID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_product_id"})
		return
	}
	p, ok := h.catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
		return
	}
	c.JSON(http.StatusOK, toProductResp(p, h.pricer, true))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}
