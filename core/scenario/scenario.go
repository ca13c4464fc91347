// Package scenario evaluates quotes together with the what-if questions
// asked about them.
package scenario

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"service-pricing/core/quote"
	"service-pricing/internal/logging"
)

// Scenario is a quote plus the simulations to run against it
type Scenario struct {
	// Name labels the scenario, e.g. the block name in a quotes file
	Name string

	// Quote is the quote being priced
	Quote *quote.Quote

	// Discounts are percentages passed to SimulateDiscount
	Discounts []decimal.Decimal

	// Urgencies are raw levels passed to SimulateUrgency
	Urgencies []int
}

// DiscountResult is one discount simulation
type DiscountResult struct {
	Percent decimal.Decimal `json:"percent"`
	Price   decimal.Decimal `json:"price"`
}

// UrgencyResult is one urgency simulation
type UrgencyResult struct {
	// Requested is the level asked for
	Requested int `json:"requested"`

	// Applied is Requested after clamping
	Applied int `json:"applied"`

	Price decimal.Decimal `json:"price"`
}

// Result is an evaluated scenario
type Result struct {
	Name      string           `json:"name,omitempty"`
	Breakdown quote.Breakdown  `json:"breakdown"`
	Discounts []DiscountResult `json:"discounts,omitempty"`
	Urgencies []UrgencyResult  `json:"urgencies,omitempty"`
}

// Evaluate prices the quote and runs every simulation in order
func Evaluate(s Scenario) *Result {
	q := s.Quote
	result := &Result{
		Name:      s.Name,
		Breakdown: q.Breakdown(),
	}

	for _, pct := range s.Discounts {
		result.Discounts = append(result.Discounts, DiscountResult{
			Percent: pct,
			Price:   q.SimulateDiscount(pct),
		})
	}

	for _, u := range s.Urgencies {
		result.Urgencies = append(result.Urgencies, UrgencyResult{
			Requested: u,
			Applied:   quote.ClampLevel(u),
			Price:     q.SimulateUrgency(u),
		})
	}

	logging.Debug("scenario evaluated",
		zap.String("name", s.Name),
		zap.Stringer("kind", q.Kind()),
		zap.String("final_price", result.Breakdown.FinalPrice.String()),
		zap.Int("discounts", len(result.Discounts)),
		zap.Int("urgencies", len(result.Urgencies)),
	)

	return result
}

// EvaluateAll evaluates scenarios in order, stopping if ctx is cancelled
func EvaluateAll(ctx context.Context, scenarios []Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, Evaluate(s))
	}
	return results, nil
}

// Validate runs Quote.Validate on every scenario
func Validate(scenarios []Scenario) error {
	for _, s := range scenarios {
		if err := s.Quote.Validate(); err != nil {
			return err
		}
	}
	return nil
}
