package entity

// AggregatedLine is one cart-panel row: every unit of a single product,
// with derived quantity and line total.
type AggregatedLine struct {
	Entry     CartEntry
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// CartSummary is always derived fresh from a ledger, never stored.
type CartSummary struct {
	TotalItems int
	Subtotal   int64
}

// Aggregate groups ledger entries by product id in first-seen order, so the
// cart panel shows products in the order they were first added. The output
// is recomputed from scratch on every call; nothing is cached and the
// ledger is never modified.
func Aggregate(l Ledger, pr Pricer) []AggregatedLine {
	lines := make([]AggregatedLine, 0, len(l))
	index := make(map[ProductID]int, len(l))
	for _, e := range l {
		if i, ok := index[e.ProductID]; ok {
			lines[i].Quantity++
			continue
		}
		index[e.ProductID] = len(lines)
		lines = append(lines, AggregatedLine{
			Entry:     e,
			Quantity:  1,
			UnitPrice: pr.UnitPrice(e.Price),
		})
	}
	for i := range lines {
		lines[i].LineTotal = int64(lines[i].Quantity) * lines[i].UnitPrice
	}
	return lines
}

// Summarize derives the cart-wide totals. TotalItems is the ledger length;
// Subtotal sums the rounded line totals, so it always matches the sum of
// the lines the user sees.
func Summarize(l Ledger, pr Pricer) CartSummary {
	sum := CartSummary{TotalItems: len(l)}
	for _, line := range Aggregate(l, pr) {
		sum.Subtotal += line.LineTotal
	}
	return sum
}
