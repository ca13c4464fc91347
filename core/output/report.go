package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"service-pricing/core/quote"
	"service-pricing/core/types"
)

// RenderReport writes the framed cost report for one quote. The closing rule
// is as wide as the title line.
func RenderReport(w io.Writer, b quote.Breakdown, currency types.Currency) error {
	title := fmt.Sprintf("===== Cost Breakdown - %s =====", b.Title)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, title)
	fmt.Fprintf(bw, "Description: %s\n", b.Description)
	fmt.Fprintf(bw, "Base Hourly Rate: %s\n", currency.FormatAmount(b.HourlyRate))
	fmt.Fprintf(bw, "Estimated Hours: %s\n", types.FormatFixed(b.Hours))
	fmt.Fprintf(bw, "Complexity: %d (Factor: %s)\n", b.Complexity, types.FormatFixed(b.ComplexityFactor))
	fmt.Fprintf(bw, "Urgency: %d (Factor: %s)\n", b.Urgency, types.FormatFixed(b.UrgencyFactor))
	fmt.Fprintf(bw, "Final Price: %s\n", currency.FormatAmount(b.FinalPrice))
	fmt.Fprintln(bw, strings.Repeat("=", utf8.RuneCountInString(title)))
	return bw.Flush()
}

// Report returns the framed cost report as a string
func Report(b quote.Breakdown, currency types.Currency) string {
	var sb strings.Builder
	_ = RenderReport(&sb, b, currency)
	return sb.String()
}
