// Package cmd - run command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"service-pricing/adapters/hcl"
	"service-pricing/internal/config"
	"service-pricing/internal/logging"
)

var runStrict bool

// runCmd prices every quote in an HCL quotes file
var runCmd = &cobra.Command{
	Use:   "run <quotes.hcl>",
	Short: "Price every quote in a quotes file",
	Long: `Load quotes from an HCL file and price them in order.

Each quote is a block labelled with its service kind and a name:

  quote "legal_consulting" "partnership_agreement" {
    description     = "Partnership agreement drafting"
    estimated_hours = 25
    complexity      = 3
    urgency         = 5
    hourly_rate     = 300
    discounts       = [15]
    urgencies       = [1]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runQuotesFile,
}

func init() {
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "reject negative hours and non-positive rates")
}

func runQuotesFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	strict := runStrict || config.Get().Pricing.StrictInputs

	logging.Sugar.Debugf("loading quotes from %s (strict=%t)", path, strict)
	scenarios, err := hcl.NewLoader(strict).Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		logging.Warn("quotes file has no quote blocks", zap.String("file", path))
		fmt.Fprintln(cmd.OutOrStdout(), "No quotes found in", path)
		return nil
	}

	return render(cmd, path, scenarios)
}
