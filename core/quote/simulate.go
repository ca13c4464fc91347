package quote

import "github.com/shopspring/decimal"

// Simulator answers what-if questions about a price without changing it
type Simulator interface {
	// SimulateUrgency prices the quote as if it had another urgency level
	SimulateUrgency(urgency int) decimal.Decimal

	// SimulateDiscount applies a percentage discount to the final price
	SimulateDiscount(percent decimal.Decimal) decimal.Decimal
}

var _ Simulator = (*Quote)(nil)

// SimulateUrgency clamps urgency like New does and prices the quote with it.
func (q *Quote) SimulateUrgency(urgency int) decimal.Decimal {
	return q.priceAt(ClampLevel(urgency))
}

// SimulateDiscount returns FinalPrice * (1 - percent/100). The percentage is
// not range checked: negative values raise the price and values above 100
// yield a negative price.
func (q *Quote) SimulateDiscount(percent decimal.Decimal) decimal.Decimal {
	return q.FinalPrice().Mul(one.Sub(percent.Div(hundred)))
}
