// Package share builds the outbound WhatsApp texts and deep links. All of
// it is pure string work; the actual hand-off to the messaging service
// happens on the client that receives the link.
package share

import (
	"fmt"
	"strings"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
)

const (
	titleLimit = 30
	descLimit  = 100
)

// EmptyCartMessage is the fixed text for a share request on an empty cart.
const EmptyCartMessage = "Halo! Keranjang belanja saya masih kosong."

// Truncate clamps s to at most n runes. Shorter strings pass through as-is.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// CartSummaryMessage renders the cart as a numbered inquiry: one entry per
// aggregated line with truncated title, unit price, and category, followed
// by the totals block.
func CartSummaryMessage(lines []entity.AggregatedLine, sum entity.CartSummary) string {
	if sum.TotalItems == 0 {
		return EmptyCartMessage
	}

	var b strings.Builder
	b.WriteString("Halo! Saya tertarik dengan produk-produk berikut:\n\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s...\n", i+1, Truncate(line.Entry.Title, titleLimit))
		fmt.Fprintf(&b, "   💰 Rp %s\n", entity.FormatRupiah(line.UnitPrice))
		fmt.Fprintf(&b, "   📦 %s\n\n", line.Entry.Category)
	}
	fmt.Fprintf(&b, "📊 Total: %d item\n", sum.TotalItems)
	fmt.Fprintf(&b, "💰 Total Harga: Rp %s\n\n", entity.FormatRupiah(sum.Subtotal))
	b.WriteString("Mohon info ketersediaan dan proses selanjutnya. Terima kasih!")
	return b.String()
}

// ProductMessage renders a single-product inquiry with the full title and a
// truncated description.
func ProductMessage(p entity.Product, unitPrice int64) string {
	var b strings.Builder
	b.WriteString("Halo! Saya tertarik dengan produk berikut:\n\n")
	fmt.Fprintf(&b, "🏷️ %s\n", p.Title)
	fmt.Fprintf(&b, "💰 Harga: Rp %s\n", entity.FormatRupiah(unitPrice))
	fmt.Fprintf(&b, "📦 Kategori: %s\n", p.Category)
	fmt.Fprintf(&b, "📝 Deskripsi: %s...\n\n", Truncate(p.Description, descLimit))
	b.WriteString("Apakah produk ini masih tersedia? Terima kasih!")
	return b.String()
}
