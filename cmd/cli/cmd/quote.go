// Package cmd - quote command
package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"service-pricing/core/quote"
	"service-pricing/core/scenario"
	"service-pricing/internal/config"
)

var (
	quoteKind        string
	quoteDescription string
	quoteHours       decimal.Decimal
	quoteComplexity  int
	quoteUrgency     int
	quoteRate        decimal.Decimal
	quoteDiscounts   []decimal.Decimal
	quoteUrgencies   []int
)

// quoteCmd prices a single quote given on the command line
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a single quote",
	Long: `Price one quote and run the requested simulations.

Complexity and urgency are clamped into 1..5. Discounts are percentages and
are applied as given.

Examples:
  service-pricing quote --kind engineering_project --hours 40 --complexity 4 --urgency 3 --rate 200
  service-pricing quote --kind technology_analysis --hours 80 --complexity 5 --urgency 4 --rate 150 --discount 5 --simulate-urgency 2`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteKind, "kind", "k", "", "service kind (engineering_project, technology_analysis, legal_consulting)")
	quoteCmd.Flags().StringVar(&quoteDescription, "description", "", "description of the service")
	quoteCmd.Flags().Var(decimalValue{&quoteHours}, "hours", "estimated hours")
	quoteCmd.Flags().IntVar(&quoteComplexity, "complexity", quote.MinLevel, "complexity level (1-5)")
	quoteCmd.Flags().IntVar(&quoteUrgency, "urgency", quote.MinLevel, "urgency level (1-5)")
	quoteCmd.Flags().Var(decimalValue{&quoteRate}, "rate", "base hourly rate")
	quoteCmd.Flags().Var(decimalSliceValue{&quoteDiscounts}, "discount", "discount percentage to simulate (repeatable)")
	quoteCmd.Flags().IntSliceVar(&quoteUrgencies, "simulate-urgency", nil, "urgency level to simulate (repeatable)")

	_ = quoteCmd.MarkFlagRequired("kind")
	_ = quoteCmd.MarkFlagRequired("hours")
	_ = quoteCmd.MarkFlagRequired("rate")
}

func runQuote(cmd *cobra.Command, args []string) error {
	kind, err := quote.ParseKind(quoteKind)
	if err != nil {
		return err
	}

	q := quote.New(kind, quoteDescription, quoteHours, quoteComplexity, quoteUrgency, quoteRate)
	if config.Get().Pricing.StrictInputs {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	return render(cmd, "cli", []scenario.Scenario{{
		Quote:     q,
		Discounts: quoteDiscounts,
		Urgencies: quoteUrgencies,
	}})
}
