package usecase

import (
	"errors"
	"fmt"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/share"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
)

var ErrCartNotFound = errors.New("cart not found")

const toastTitleLimit = 20

// CartOps owns every cart mutation. Each mutation recomputes the aggregated
// view before returning, so the caller can never render a counter or panel
// older than the mutation it just made.
type CartOps struct {
	catalog *store.CatalogStore
	carts   *store.CartStore
	pricer  entity.Pricer
}

func NewCartOps(catalog *store.CatalogStore, carts *store.CartStore, pricer entity.Pricer) *CartOps {
	return &CartOps{catalog: catalog, carts: carts, pricer: pricer}
}

// CartView is the full projection of one cart: panel rows plus totals.
// Summary.TotalItems doubles as the badge count.
type CartView struct {
	CartID  string
	Lines   []entity.AggregatedLine
	Summary entity.CartSummary
}

// MutationOutput carries the fresh view, the toast text the storefront
// shows, and the removed-unit count where the operation reports one.
type MutationOutput struct {
	View    CartView
	Message string
	Removed int
}

func (s *CartOps) project(cartID string, l entity.Ledger) CartView {
	return CartView{
		CartID:  cartID,
		Lines:   entity.Aggregate(l, s.pricer),
		Summary: entity.Summarize(l, s.pricer),
	}
}

func (s *CartOps) Create() CartView {
	cart := s.carts.Create()
	return s.project(cart.ID, nil)
}

func (s *CartOps) Get(cartID string) (CartView, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return CartView{}, ErrCartNotFound
	}
	return s.project(cart.ID, cart.Ledger()), nil
}

// AddUnit appends one unit of the product to the cart. Unknown product ids
// leave the cart untouched.
func (s *CartOps) AddUnit(cartID string, id entity.ProductID) (MutationOutput, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return MutationOutput{}, ErrCartNotFound
	}
	product, ok := s.catalog.Find(id)
	if !ok {
		return MutationOutput{View: s.project(cart.ID, cart.Ledger())}, entity.ErrItemNotFound
	}

	ledger := cart.Update(func(l *entity.Ledger) {
		l.Append(product.Snapshot())
	})
	return MutationOutput{
		View:    s.project(cart.ID, ledger),
		Message: fmt.Sprintf("%s... ditambahkan ke keranjang!", share.Truncate(product.Title, toastTitleLimit)),
	}, nil
}

// RemoveOneUnit drops the first matching unit. Absent ids are a no-op that
// still hands back a fresh view.
func (s *CartOps) RemoveOneUnit(cartID string, id entity.ProductID) (MutationOutput, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return MutationOutput{}, ErrCartNotFound
	}

	var removed entity.CartEntry
	var found bool
	ledger := cart.Update(func(l *entity.Ledger) {
		removed, found = l.RemoveFirst(id)
	})
	out := MutationOutput{View: s.project(cart.ID, ledger)}
	if !found {
		return out, entity.ErrItemNotInCart
	}
	out.Removed = 1
	out.Message = fmt.Sprintf("Dikurangi: %s...", share.Truncate(removed.Title, toastTitleLimit))
	return out, nil
}

// RemoveAllUnits drops every unit of the product and reports the count.
// Zero matches is a valid result, not an error.
func (s *CartOps) RemoveAllUnits(cartID string, id entity.ProductID) (MutationOutput, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return MutationOutput{}, ErrCartNotFound
	}

	var title string
	var removed int
	ledger := cart.Update(func(l *entity.Ledger) {
		if e, ok := l.RemoveFirst(id); ok {
			title = e.Title
			removed = 1 + l.RemoveAll(id)
		}
	})
	out := MutationOutput{View: s.project(cart.ID, ledger), Removed: removed}
	if removed > 0 {
		out.Message = fmt.Sprintf("Dihapus: %s... (%d item)", share.Truncate(title, toastTitleLimit), removed)
	}
	return out, nil
}

// Clear empties the cart unconditionally and reports the prior length.
func (s *CartOps) Clear(cartID string) (MutationOutput, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return MutationOutput{}, ErrCartNotFound
	}

	var removed int
	ledger := cart.Update(func(l *entity.Ledger) {
		removed = l.Clear()
	})
	out := MutationOutput{View: s.project(cart.ID, ledger), Removed: removed}
	if removed > 0 {
		out.Message = fmt.Sprintf("Keranjang dikosongkan (%d item dihapus)", removed)
	}
	return out, nil
}
