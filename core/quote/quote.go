// Package quote prices professional services from hours, complexity,
// urgency and a base hourly rate.
//
// price = hourlyRate * hours * (1 + complexity*0.1) * (1 + urgency*0.05)
//
// Complexity and urgency are levels clamped into [MinLevel, MaxLevel] when a
// Quote is built. A Quote never changes afterwards, so simulations are plain
// reads and a Quote can be shared between goroutines.
package quote

import (
	"github.com/shopspring/decimal"

	"service-pricing/internal/errors"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

var (
	one              = decimal.NewFromInt(1)
	hundred          = decimal.NewFromInt(100)
	complexityWeight = decimal.RequireFromString("0.1")
	urgencyWeight    = decimal.RequireFromString("0.05")
)

// ClampLevel forces a raw level into [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	return min(MaxLevel, max(MinLevel, level))
}

// Quote is a priced request for a professional service
type Quote struct {
	kind        Kind
	description string
	hours       decimal.Decimal
	complexity  int
	urgency     int
	hourlyRate  decimal.Decimal
}

// New builds a quote. Complexity and urgency are clamped; hours and rate are
// taken as given (see Validate).
func New(kind Kind, description string, hours decimal.Decimal, complexity, urgency int, hourlyRate decimal.Decimal) *Quote {
	return &Quote{
		kind:        kind,
		description: description,
		hours:       hours,
		complexity:  ClampLevel(complexity),
		urgency:     ClampLevel(urgency),
		hourlyRate:  hourlyRate,
	}
}

func (q *Quote) Kind() Kind                  { return q.kind }
func (q *Quote) Description() string         { return q.description }
func (q *Quote) Hours() decimal.Decimal      { return q.hours }
func (q *Quote) Complexity() int             { return q.complexity }
func (q *Quote) Urgency() int                { return q.urgency }
func (q *Quote) HourlyRate() decimal.Decimal { return q.hourlyRate }

// ComplexityFactor returns 1 + complexity*0.1
func (q *Quote) ComplexityFactor() decimal.Decimal {
	return one.Add(decimal.NewFromInt(int64(q.complexity)).Mul(complexityWeight))
}

// UrgencyFactor returns 1 + urgency*0.05 for an arbitrary urgency value.
// The value is used as given.
func (q *Quote) UrgencyFactor(urgency int) decimal.Decimal {
	return one.Add(decimal.NewFromInt(int64(urgency)).Mul(urgencyWeight))
}

// FinalPrice is the unrounded price of the quote as stored
func (q *Quote) FinalPrice() decimal.Decimal {
	return q.priceAt(q.urgency)
}

func (q *Quote) priceAt(urgency int) decimal.Decimal {
	return q.hourlyRate.
		Mul(q.hours).
		Mul(q.ComplexityFactor()).
		Mul(q.UrgencyFactor(urgency))
}

// Validate rejects inputs that price nonsensically. Quotes are usable without
// it; callers opt in through the strict_inputs setting.
func (q *Quote) Validate() error {
	if !q.kind.IsKnown() {
		return errors.InvalidQuote("kind", "service kind must be one of %v", Kinds())
	}
	if q.hours.IsNegative() {
		return errors.InvalidQuote("estimated_hours", "estimated hours must not be negative, got %s", q.hours)
	}
	if !q.hourlyRate.IsPositive() {
		return errors.InvalidQuote("hourly_rate", "hourly rate must be positive, got %s", q.hourlyRate)
	}
	return nil
}

// Breakdown is the data behind a cost report
type Breakdown struct {
	Kind             Kind            `json:"kind"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	Hours            decimal.Decimal `json:"estimated_hours"`
	Complexity       int             `json:"complexity"`
	ComplexityFactor decimal.Decimal `json:"complexity_factor"`
	Urgency          int             `json:"urgency"`
	UrgencyFactor    decimal.Decimal `json:"urgency_factor"`
	FinalPrice       decimal.Decimal `json:"final_price"`
}

// Breakdown collects every figure shown in the cost report
func (q *Quote) Breakdown() Breakdown {
	return Breakdown{
		Kind:             q.kind,
		Title:            q.kind.Title(),
		Description:      q.description,
		HourlyRate:       q.hourlyRate,
		Hours:            q.hours,
		Complexity:       q.complexity,
		ComplexityFactor: q.ComplexityFactor(),
		Urgency:          q.urgency,
		UrgencyFactor:    q.UrgencyFactor(q.urgency),
		FinalPrice:       q.FinalPrice(),
	}
}
