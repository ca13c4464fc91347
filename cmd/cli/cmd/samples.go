// Package cmd - samples command
package cmd

import (
	"github.com/spf13/cobra"

	"service-pricing/core/scenario"
)

// samplesCmd prints the reference scenarios, one per service kind
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Price the built-in sample quotes",
	Long: `Price one sample quote per service kind, with a discount and an urgency
simulation each, followed by the cost report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, "samples", scenario.Samples())
	},
}
