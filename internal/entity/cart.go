package entity

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found in catalog")
	ErrItemNotInCart = errors.New("item not in cart")
)

// CartEntry is one unit in the cart, frozen at add time.
type CartEntry struct {
	ProductID   ProductID
	Title       string
	Category    string
	Price       float64
	Description string
	ImageURL    string
}

// Ledger is the ordered multiset of cart units. One entry is one unit; the
// same product may appear any number of times. Len is the badge count.
type Ledger []CartEntry

func (l Ledger) Len() int { return len(l) }

func (l Ledger) Clone() Ledger {
	if len(l) == 0 {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

func (l *Ledger) Append(e CartEntry) { *l = append(*l, e) }

// RemoveFirst drops the first entry matching id. Entries with the same id
// are interchangeable, so which unit goes is immaterial.
func (l *Ledger) RemoveFirst(id ProductID) (CartEntry, bool) {
	for i, e := range *l {
		if e.ProductID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return e, true
		}
	}
	return CartEntry{}, false
}

// RemoveAll drops every entry matching id and returns how many went.
func (l *Ledger) RemoveAll(id ProductID) int {
	kept := (*l)[:0]
	removed := 0
	for _, e := range *l {
		if e.ProductID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	*l = kept
	return removed
}

// Clear empties the ledger and returns the prior length.
func (l *Ledger) Clear() int {
	n := len(*l)
	*l = (*l)[:0]
	return n
}
