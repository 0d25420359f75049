package usecase

import (
	"context"
	"time"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
)

// CatalogSource is the external catalog fetch collaborator.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]entity.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

// CatalogSnapshot is the cacheable upstream payload.
type CatalogSnapshot struct {
	Products   []entity.Product `json:"products"`
	Categories []string         `json:"categories"`
	FetchedAt  time.Time        `json:"fetchedAt"`
}

// SnapshotCache keeps the last upstream payload warm between refreshes.
// Misses and cache errors fall through to the source; the cache is an
// optimization, never a correctness source.
type SnapshotCache interface {
	Recall(ctx context.Context) (*CatalogSnapshot, bool, error)
	Remember(ctx context.Context, snap *CatalogSnapshot) error
}
