package entity

import (
	"errors"
	"strconv"
)

var ErrBadProductID = errors.New("bad product id")

// ProductID is the canonical catalog identifier. Upstream payloads carry ids
// as JSON numbers or strings; both forms are canonicalized to this type at
// the catalog boundary, so everything past it compares ids with ==.
type ProductID int64

// ParseProductID canonicalizes an id taken from a URL segment or an upstream
// string field.
func ParseProductID(s string) (ProductID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrBadProductID
	}
	return ProductID(n), nil
}

func (id ProductID) String() string { return strconv.FormatInt(int64(id), 10) }

// Product is one immutable catalog record. Price is in the upstream
// catalog's native currency; display prices come from Pricer.
type Product struct {
	ID          ProductID
	Title       string
	Category    string
	Price       float64
	Description string
	ImageURL    string
}

// Snapshot copies the fields a cart needs. Entries hold values, not catalog
// references, so a later catalog refresh never reprices carted units.
func (p Product) Snapshot() CartEntry {
	return CartEntry{
		ProductID:   p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
