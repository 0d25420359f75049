// Package fakestore is the HTTP client for a fakestore-compatible catalog
// API (GET /products, GET /products/categories).
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// flexibleID tolerates upstream ids sent as JSON numbers or strings.
// Canonical comparison happens after this single decode point.
type flexibleID int64

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("product id %q: %w", s, err)
	}
	*f = flexibleID(n)
	return nil
}

type productRecord struct {
	ID          flexibleID `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var recs []productRecord
	if err := c.getJSON(ctx, "/products", &recs); err != nil {
		return nil, err
	}

	out := make([]entity.Product, 0, len(recs))
	for _, r := range recs {
		out = append(out, entity.Product{
			ID:          entity.ProductID(r.ID),
			Title:       r.Title,
			Category:    r.Category,
			Price:       r.Price,
			Description: r.Description,
			ImageURL:    r.Image,
		})
	}
	return out, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.getJSON(ctx, "/products/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

var _ usecase.CatalogSource = (*Client)(nil)
