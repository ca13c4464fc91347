package scenario

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"service-pricing/core/quote"
	"service-pricing/internal/errors"
)

func TestSamplesMatchReferencePrices(t *testing.T) {
	want := []struct {
		kind     quote.Kind
		final    string
		discount string
		urgency  string
	}{
		{quote.KindEngineeringProject, "12880", "11592", "14000"},
		{quote.KindTechnologyAnalysis, "21600", "20520", "19800"},
		{quote.KindLegalConsulting, "12187.5", "10359.375", "10237.5"},
	}

	results, err := EvaluateAll(context.Background(), Samples())
	if err != nil {
		t.Fatalf("EvaluateAll failed: %v", err)
	}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}

	for i, r := range results {
		w := want[i]
		if r.Breakdown.Kind != w.kind {
			t.Errorf("%s: expected kind %s, got %s", r.Name, w.kind, r.Breakdown.Kind)
		}
		if !r.Breakdown.FinalPrice.Equal(decimal.RequireFromString(w.final)) {
			t.Errorf("%s: expected final %s, got %s", r.Name, w.final, r.Breakdown.FinalPrice)
		}
		if len(r.Discounts) != 1 || !r.Discounts[0].Price.Equal(decimal.RequireFromString(w.discount)) {
			t.Errorf("%s: unexpected discount results %+v", r.Name, r.Discounts)
		}
		if len(r.Urgencies) != 1 || !r.Urgencies[0].Price.Equal(decimal.RequireFromString(w.urgency)) {
			t.Errorf("%s: unexpected urgency results %+v", r.Name, r.Urgencies)
		}
	}
}

func TestEvaluateRecordsClampedUrgency(t *testing.T) {
	s := Scenario{
		Quote:     quote.New(quote.KindEngineeringProject, "clamp", decimal.NewFromInt(40), 4, 3, decimal.NewFromInt(200)),
		Urgencies: []int{0, 9},
	}

	r := Evaluate(s)
	if r.Urgencies[0].Requested != 0 || r.Urgencies[0].Applied != 1 {
		t.Errorf("Expected 0 applied as 1, got %+v", r.Urgencies[0])
	}
	if r.Urgencies[1].Applied != 5 || !r.Urgencies[1].Price.Equal(decimal.NewFromInt(14000)) {
		t.Errorf("Expected 9 applied as 5 at 14000, got %+v", r.Urgencies[1])
	}
	if s.Quote.Urgency() != 3 {
		t.Errorf("Evaluate changed the quote urgency to %d", s.Quote.Urgency())
	}
}

func TestEvaluateAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := EvaluateAll(ctx, Samples()); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Samples()); err != nil {
		t.Errorf("Samples should validate, got %v", err)
	}

	bad := append(Samples(), Scenario{
		Quote: quote.New(quote.KindLegalConsulting, "bad", decimal.NewFromInt(-5), 1, 1, decimal.NewFromInt(10)),
	})
	if err := Validate(bad); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR, got %v", err)
	}
}
