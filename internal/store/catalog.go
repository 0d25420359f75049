package store

import (
	"strings"
	"sync"
	"time"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
)

// CatalogStore holds the last successfully fetched catalog snapshot. The
// snapshot is replaced wholesale on every successful refresh; a failed
// refresh records the error without touching the previous snapshot, which
// is what the storefront's error banner reads until the next attempt.
type CatalogStore struct {
	mu         sync.RWMutex
	byID       map[entity.ProductID]entity.Product
	order      []entity.ProductID
	categories []string
	fetchedAt  time.Time
	lastErr    error
}

// CatalogStatus is the banner-facing view of the store.
type CatalogStatus struct {
	Size      int
	FetchedAt time.Time
	Err       error
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{byID: make(map[entity.ProductID]entity.Product)}
}

// Replace swaps in a new snapshot and clears any recorded fetch error.
// Listing order follows the upstream payload order. Duplicate ids keep the
// first record seen, so Find and listing agree.
func (s *CatalogStore) Replace(products []entity.Product, categories []string) {
	byID := make(map[entity.ProductID]entity.Product, len(products))
	order := make([]entity.ProductID, 0, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; ok {
			continue
		}
		byID[p.ID] = p
		order = append(order, p.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.order = order
	s.categories = append([]string(nil), categories...)
	s.fetchedAt = time.Now()
	s.lastErr = nil
}

// SetError records a failed refresh. The previous snapshot stays serveable.
func (s *CatalogStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func (s *CatalogStore) Find(id entity.ProductID) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

func (s *CatalogStore) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Search filters the snapshot by category and free-text keyword. Empty
// category (or "all") matches everything; the keyword matches title,
// description, or category, case-insensitive.
func (s *CatalogStore) Search(category, keyword string) []entity.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	out := []entity.Product{}
	for _, p := range s.Products() {
		if category != "" && category != "all" && strings.ToLower(p.Category) != category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) &&
			!strings.Contains(strings.ToLower(p.Category), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

func (s *CatalogStore) Status() CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CatalogStatus{Size: len(s.order), FetchedAt: s.fetchedAt, Err: s.lastErr}
}
