package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/share"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/store"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type stubSource struct {
	products   []entity.Product
	categories []string
}

func (s *stubSource) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func (s *stubSource) FetchCategories(ctx context.Context) ([]string, error) {
	return s.categories, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := store.NewCatalogStore()
	catalog.Replace([]entity.Product{
		{ID: 1, Title: "Tas Ransel", Category: "bags", Price: 10, Description: "Tas harian"},
		{ID: 2, Title: "Topi", Category: "accessories", Price: 5},
	}, []string{"bags", "accessories"})

	carts := store.NewCartStore()
	pricer := entity.NewPricer(15000)

	refresh := usecase.NewRefreshCatalog(&stubSource{}, nil, catalog)
	ops := usecase.NewCartOps(catalog, carts, pricer)
	shr := usecase.NewShare(catalog, carts, pricer, share.Linker{})

	return NewRouter(
		NewCatalogHandler(refresh, catalog, pricer),
		NewCartHandler(ops),
		NewShareHandler(shr),
	)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad JSON body %q: %v", w.Body.String(), err)
	}
	return m
}

func createCart(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/carts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create cart status = %d", w.Code)
	}
	id, _ := decode(t, w)["cartId"].(string)
	if id == "" {
		t.Fatal("missing cartId")
	}
	return id
}

func TestListProducts(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["count"].(float64) != 2 {
		t.Errorf("count = %v, want 2", body["count"])
	}

	w = do(t, r, http.MethodGet, "/v1/products?category=bags", "")
	if decode(t, w)["count"].(float64) != 1 {
		t.Error("category filter did not narrow the grid")
	}

	w = do(t, r, http.MethodGet, "/v1/products?q=harian", "")
	if decode(t, w)["count"].(float64) != 1 {
		t.Error("keyword search did not match description")
	}
}

func TestAddAndViewCart(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)

	for i := 0; i < 3; i++ {
		w := do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("add status = %d body=%s", w.Code, w.Body.String())
		}
	}
	w := do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/v1/carts/"+cartID, "")
	body := decode(t, w)
	if body["totalItems"].(float64) != 4 {
		t.Errorf("badge = %v, want 4", body["totalItems"])
	}
	if body["subtotal"].(float64) != 525000 {
		t.Errorf("subtotal = %v, want 525000", body["subtotal"])
	}
	lines := body["lines"].([]any)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	first := lines[0].(map[string]any)
	if first["quantity"].(float64) != 3 || first["lineTotal"].(float64) != 450000 {
		t.Errorf("first line = %v", first)
	}
	if first["lineTotalText"].(string) != "Rp 450.000" {
		t.Errorf("line total text = %v", first["lineTotalText"])
	}
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)

	w := do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":99}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if decode(t, w)["error"] != "item_not_found" {
		t.Errorf("body = %s", w.Body.String())
	}

	// the cart is untouched
	w = do(t, r, http.MethodGet, "/v1/carts/"+cartID, "")
	if decode(t, w)["totalItems"].(float64) != 0 {
		t.Error("failed add mutated the cart")
	}
}

func TestRemoveMissingItem(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":1}`)

	w := do(t, r, http.MethodDelete, "/v1/carts/"+cartID+"/items/99", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "item_not_in_cart" {
		t.Errorf("body = %s", w.Body.String())
	}
	if body["removed"].(float64) != 0 {
		t.Errorf("removed = %v, want 0", body["removed"])
	}
	// the cart view comes back unchanged
	cart := body["cart"].(map[string]any)
	if cart["totalItems"].(float64) != 1 {
		t.Errorf("totalItems = %v, want 1", cart["totalItems"])
	}
}

func TestRemoveAllAndClear(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	for i := 0; i < 3; i++ {
		do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":1}`)
	}
	do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":2}`)

	w := do(t, r, http.MethodDelete, "/v1/carts/"+cartID+"/items/1/all", "")
	body := decode(t, w)
	if body["removed"].(float64) != 3 {
		t.Errorf("removed = %v, want 3", body["removed"])
	}

	w = do(t, r, http.MethodDelete, "/v1/carts/"+cartID, "")
	body = decode(t, w)
	if body["cleared"].(float64) != 1 {
		t.Errorf("cleared = %v, want 1", body["cleared"])
	}
	cart := body["cart"].(map[string]any)
	if cart["totalItems"].(float64) != 0 {
		t.Errorf("badge after clear = %v, want 0", cart["totalItems"])
	}
}

func TestShareCart(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/items", `{"productId":1}`)

	w := do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/share", `{"destination":"6281234567890"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	link := body["link"].(string)
	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Errorf("link = %q", link)
	}
	if !strings.Contains(body["message"].(string), "Tas Ransel") {
		t.Errorf("message = %q", body["message"])
	}
}

func TestShareEmptyDestination(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)

	w := do(t, r, http.MethodPost, "/v1/carts/"+cartID+"/share", `{"destination":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if decode(t, w)["error"] != "empty_destination" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestShareProduct(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/products/1/share", `{"destination":"628111"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	msg := decode(t, w)["message"].(string)
	if !strings.Contains(msg, "🏷️ Tas Ransel") {
		t.Errorf("message = %q", msg)
	}
}
