package output

import (
	"bufio"
	"fmt"
	"io"

	"service-pricing/core/scenario"
	"service-pricing/core/types"
)

// CLIFormatter prints each scenario's price and simulations, optionally
// followed by its cost report
type CLIFormatter struct {
	ShowReport bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes every scenario, separated by a blank line
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	bw := bufio.NewWriter(w)
	for i, s := range result.Scenarios {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		f.renderScenario(bw, s, result.Currency)
		if f.ShowReport {
			if err := RenderReport(bw, s.Breakdown, result.Currency); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func (f *CLIFormatter) renderScenario(w io.Writer, s *scenario.Result, currency types.Currency) {
	if s.Breakdown.Description == "" {
		fmt.Fprintf(w, "--- %s ---\n", s.Breakdown.Title)
	} else {
		fmt.Fprintf(w, "--- %s: %s ---\n", s.Breakdown.Title, s.Breakdown.Description)
	}
	fmt.Fprintf(w, "Final Price: %s\n", currency.FormatAmount(s.Breakdown.FinalPrice))

	for _, d := range s.Discounts {
		fmt.Fprintf(w, "Price with %s%% discount: %s\n", d.Percent.String(), currency.FormatAmount(d.Price))
	}

	for _, u := range s.Urgencies {
		if u.Requested != u.Applied {
			fmt.Fprintf(w, "Price with urgency %d (applied as %d): %s\n", u.Requested, u.Applied, currency.FormatAmount(u.Price))
			continue
		}
		fmt.Fprintf(w, "Price with urgency %d: %s\n", u.Applied, currency.FormatAmount(u.Price))
	}
}
