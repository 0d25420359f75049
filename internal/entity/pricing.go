package entity

import (
	"math"
	"strconv"
	"strings"
)

// DefaultConversionRate converts upstream catalog prices to whole rupiah.
const DefaultConversionRate = 15000

// Pricer converts raw catalog prices into display prices. The unit price is
// rounded to the nearest whole rupiah once, and every total is a multiple of
// that rounded value: a displayed line total always equals quantity times
// the displayed unit price.
type Pricer struct {
	Rate float64
}

func NewPricer(rate float64) Pricer {
	if rate <= 0 {
		rate = DefaultConversionRate
	}
	return Pricer{Rate: rate}
}

// UnitPrice is the single rounding point for the whole system.
func (p Pricer) UnitPrice(rawPrice float64) int64 {
	return int64(math.Round(rawPrice * p.Rate))
}

// FormatRupiah renders n with id-ID thousands grouping: 525000 -> "525.000".
func FormatRupiah(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
