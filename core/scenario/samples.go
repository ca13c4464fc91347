package scenario

import (
	"github.com/shopspring/decimal"

	"service-pricing/core/quote"
)

// Samples returns one reference scenario per service kind
func Samples() []Scenario {
	return []Scenario{
		{
			Name: "structural_design",
			Quote: quote.New(quote.KindEngineeringProject, "Building structural design",
				decimal.NewFromInt(40), 4, 3, decimal.NewFromInt(200)),
			Discounts: []decimal.Decimal{decimal.NewFromInt(10)},
			Urgencies: []int{5},
		},
		{
			Name: "network_security",
			Quote: quote.New(quote.KindTechnologyAnalysis, "Network security analysis",
				decimal.NewFromInt(80), 5, 4, decimal.NewFromInt(150)),
			Discounts: []decimal.Decimal{decimal.NewFromInt(5)},
			Urgencies: []int{2},
		},
		{
			Name: "partnership_agreement",
			Quote: quote.New(quote.KindLegalConsulting, "Partnership agreement drafting",
				decimal.NewFromInt(25), 3, 5, decimal.NewFromInt(300)),
			Discounts: []decimal.Decimal{decimal.NewFromInt(15)},
			Urgencies: []int{1},
		},
	}
}
