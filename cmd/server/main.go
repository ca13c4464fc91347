// Package main - Entry point for the service-pricing HTTP API
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"service-pricing/api"
	"service-pricing/internal/config"
	"service-pricing/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	addr    string
)

var serverCmd = &cobra.Command{
	Use:           "service-pricing-server",
	Short:         "Serve quotes over HTTP",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			return err
		}
		defer logging.Sync()

		server := api.NewServer(version, cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "service-pricing server v%s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "   API: http://localhost%s/quotes\n", cfg.Server.Addr)
		logging.Info("server starting",
			zap.String("addr", cfg.Server.Addr),
			zap.String("currency", cfg.Pricing.Currency.String()),
			zap.Bool("strict_inputs", cfg.Pricing.StrictInputs),
		)
		if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
			logging.Error("server stopped", zap.String("addr", cfg.Server.Addr), zap.Error(err))
			return err
		}
		return nil
	},
}

func main() {
	serverCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.service-pricing.json)")
	serverCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	if err := serverCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
