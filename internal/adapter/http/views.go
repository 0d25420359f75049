package http

import (
	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

// Wire shapes for the presentation collaborators: grid cards, cart-panel
// rows, and the badge counter. Every price is the converted unit price;
// the *Text fields carry the "Rp 450.000" rendering the UI shows.

type productResp struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	Price         float64 `json:"price"`
	UnitPrice     int64   `json:"unitPrice"`
	UnitPriceText string  `json:"unitPriceText"`
	Description   string  `json:"description,omitempty"`
}

type cartLineResp struct {
	ProductID     int64  `json:"productId"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	ImageURL      string `json:"imageUrl"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unitPrice"`
	UnitPriceText string `json:"unitPriceText"`
	LineTotal     int64  `json:"lineTotal"`
	LineTotalText string `json:"lineTotalText"`
}

type cartViewResp struct {
	CartID       string         `json:"cartId"`
	Lines        []cartLineResp `json:"lines"`
	TotalItems   int            `json:"totalItems"`
	Subtotal     int64          `json:"subtotal"`
	SubtotalText string         `json:"subtotalText"`
}

func toProductResp(p entity.Product, pr entity.Pricer, withDescription bool) productResp {
	unit := pr.UnitPrice(p.Price)
	out := productResp{
		ID:            int64(p.ID),
		Title:         p.Title,
		Category:      p.Category,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		UnitPrice:     unit,
		UnitPriceText: "Rp " + entity.FormatRupiah(unit),
	}
	if withDescription {
		out.Description = p.Description
	}
	return out
}

func toCartViewResp(v usecase.CartView) cartViewResp {
	lines := make([]cartLineResp, 0, len(v.Lines))
	for _, line := range v.Lines {
		lines = append(lines, cartLineResp{
			ProductID:     int64(line.Entry.ProductID),
			Title:         line.Entry.Title,
			Category:      line.Entry.Category,
			ImageURL:      line.Entry.ImageURL,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			UnitPriceText: "Rp " + entity.FormatRupiah(line.UnitPrice),
			LineTotal:     line.LineTotal,
			LineTotalText: "Rp " + entity.FormatRupiah(line.LineTotal),
		})
	}
	return cartViewResp{
		CartID:       v.CartID,
		Lines:        lines,
		TotalItems:   v.Summary.TotalItems,
		Subtotal:     v.Summary.Subtotal,
		SubtotalText: "Rp " + entity.FormatRupiah(v.Summary.Subtotal),
	}
}
