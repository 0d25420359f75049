package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/logging"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
)

var ErrCatalogFetchFailed = errors.New("catalog fetch failed")

// RefreshCatalog runs the fetch pipeline: snapshot cache first, then the
// upstream API, then a wholesale store replace. There is no automatic
// retry; a failure stays visible in the store until the next attempt.
type RefreshCatalog struct {
	src   CatalogSource
	cache SnapshotCache
	store *store.CatalogStore
}

func NewRefreshCatalog(src CatalogSource, cache SnapshotCache, st *store.CatalogStore) *RefreshCatalog {
	return &RefreshCatalog{src: src, cache: cache, store: st}
}

type RefreshOutput struct {
	Products   int
	Categories int
	Source     string // "cache" | "upstream"
}

func (uc *RefreshCatalog) Execute(ctx context.Context) (RefreshOutput, error) {
	// Fast path: warm snapshot from cache
	if uc.cache != nil {
		if snap, ok, _ := uc.cache.Recall(ctx); ok {
			uc.store.Replace(snap.Products, snap.Categories)
			return RefreshOutput{
				Products:   len(snap.Products),
				Categories: len(snap.Categories),
				Source:     "cache",
			}, nil
		}
	}

	products, err := uc.src.FetchProducts(ctx)
	if err != nil {
		uc.store.SetError(err)
		return RefreshOutput{}, fmt.Errorf("%w: products: %v", ErrCatalogFetchFailed, err)
	}

	// Categories only drive the filter UI; a miss degrades, not fails.
	categories, err := uc.src.FetchCategories(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("category fetch failed", "err", err)
		categories = nil
	}

	uc.store.Replace(products, categories)

	if uc.cache != nil {
		_ = uc.cache.Remember(ctx, &CatalogSnapshot{
			Products:   products,
			Categories: categories,
			FetchedAt:  time.Now(),
		})
	}

	return RefreshOutput{
		Products:   len(products),
		Categories: len(categories),
		Source:     "upstream",
	}, nil
}
