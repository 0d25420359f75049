package usecase

import (
	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/share"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
)

// Share turns a cart or a single product into a formatted WhatsApp inquiry
// plus a click-to-chat link. It never dispatches anything itself.
type Share struct {
	catalog *store.CatalogStore
	carts   *store.CartStore
	pricer  entity.Pricer
	linker  share.Linker
}

func NewShare(catalog *store.CatalogStore, carts *store.CartStore, pricer entity.Pricer, linker share.Linker) *Share {
	return &Share{catalog: catalog, carts: carts, pricer: pricer, linker: linker}
}

type ShareOutput struct {
	Message string
	Link    string
}

// Cart formats the current cart as a numbered summary. An empty cart still
// shares (the fixed empty-cart text), mirroring the storefront behavior.
func (s *Share) Cart(cartID, destination string) (ShareOutput, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return ShareOutput{}, ErrCartNotFound
	}

	ledger := cart.Ledger()
	msg := share.CartSummaryMessage(
		entity.Aggregate(ledger, s.pricer),
		entity.Summarize(ledger, s.pricer),
	)
	link, err := s.linker.Link(destination, msg)
	if err != nil {
		return ShareOutput{}, err
	}
	return ShareOutput{Message: msg, Link: link}, nil
}

// Product formats a single-product inquiry.
func (s *Share) Product(id entity.ProductID, destination string) (ShareOutput, error) {
	product, ok := s.catalog.Find(id)
	if !ok {
		return ShareOutput{}, entity.ErrItemNotFound
	}

	msg := share.ProductMessage(product, s.pricer.UnitPrice(product.Price))
	link, err := s.linker.Link(destination, msg)
	if err != nil {
		return ShareOutput{}, err
	}
	return ShareOutput{Message: msg, Link: link}, nil
}
