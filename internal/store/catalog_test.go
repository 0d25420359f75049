package store

import (
	"errors"
	"testing"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
)

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Title: "Tas Ransel", Category: "bags", Price: 109.95, Description: "Tas untuk harian"},
		{ID: 2, Title: "Kaos Polos", Category: "men's clothing", Price: 22.3, Description: "Bahan katun"},
		{ID: 3, Title: "Jaket Kulit", Category: "men's clothing", Price: 55.99, Description: "Jaket musim hujan"},
	}
}

func TestReplaceSwapsSnapshotWholesale(t *testing.T) {
	s := NewCatalogStore()
	s.Replace(fixtureProducts(), []string{"bags", "men's clothing"})

	if _, ok := s.Find(2); !ok {
		t.Fatal("expected product 2 in snapshot")
	}
	if got := len(s.Products()); got != 3 {
		t.Fatalf("products = %d, want 3", got)
	}

	// second fetch replaces everything, old ids are gone
	s.Replace([]entity.Product{{ID: 9, Title: "Baru", Price: 1}}, nil)
	if _, ok := s.Find(2); ok {
		t.Error("product 2 survived a wholesale replace")
	}
	if got := len(s.Products()); got != 1 {
		t.Errorf("products = %d, want 1", got)
	}
}

func TestReplaceKeepsFirstDuplicateID(t *testing.T) {
	s := NewCatalogStore()
	s.Replace([]entity.Product{
		{ID: 1, Title: "Pertama", Price: 1},
		{ID: 1, Title: "Kedua", Price: 2},
	}, nil)

	p, ok := s.Find(1)
	if !ok || p.Title != "Pertama" {
		t.Errorf("Find(1) = %+v, want first record", p)
	}
	if got := len(s.Products()); got != 1 {
		t.Errorf("products = %d, want 1", got)
	}
}

func TestSetErrorKeepsSnapshot(t *testing.T) {
	s := NewCatalogStore()
	s.Replace(fixtureProducts(), nil)

	fetchErr := errors.New("upstream down")
	s.SetError(fetchErr)

	st := s.Status()
	if st.Err == nil {
		t.Error("expected recorded error")
	}
	if st.Size != 3 {
		t.Errorf("size = %d, want previous snapshot intact", st.Size)
	}

	// next successful fetch clears the banner
	s.Replace(fixtureProducts(), nil)
	if st := s.Status(); st.Err != nil {
		t.Errorf("error survived a successful replace: %v", st.Err)
	}
}

func TestSearchByCategoryAndKeyword(t *testing.T) {
	s := NewCatalogStore()
	s.Replace(fixtureProducts(), nil)

	if got := s.Search("men's clothing", ""); len(got) != 2 {
		t.Errorf("category filter = %d products, want 2", len(got))
	}
	if got := s.Search("all", ""); len(got) != 3 {
		t.Errorf("category 'all' = %d products, want 3", len(got))
	}
	if got := s.Search("", "KATUN"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("keyword search = %v, want product 2", got)
	}
	if got := s.Search("men's clothing", "jaket"); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("combined search = %v, want product 3", got)
	}
	if got := s.Search("", "tidak ada"); len(got) != 0 {
		t.Errorf("no-match search = %v, want empty", got)
	}
}

func TestProductsKeepUpstreamOrder(t *testing.T) {
	s := NewCatalogStore()
	s.Replace([]entity.Product{{ID: 5}, {ID: 1}, {ID: 3}}, nil)

	got := s.Products()
	want := []entity.ProductID{5, 1, 3}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = %v, want %v at %d", got[i].ID, id, i)
		}
	}
}
