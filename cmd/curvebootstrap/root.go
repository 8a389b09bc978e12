package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/discountcurve/internal/config"
)

// app holds the dependencies shared across every subcommand.
type app struct {
	Config *config.Config
	Logger zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "curvebootstrap",
		Short:         "Bootstrap zero-coupon discount curves from swap, futures, and bond quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/curvebootstrap)")
	rootCmd.PersistentFlags().String("currency", "", "currency of the quoted instruments (default: from config)")
	rootCmd.PersistentFlags().String("method", "", "bootstrapping method (default: from config)")
	rootCmd.PersistentFlags().String("in", "-", "input JSON file, or - for stdin")
	rootCmd.PersistentFlags().String("out", "-", "output file, or - for stdout")
	rootCmd.PersistentFlags().String("format", "", "output format: csv or json (default: from config)")

	rootCmd.AddCommand(newBootstrapCmd(a))
	rootCmd.AddCommand(newBootstrapBondsCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "curvebootstrap 0.1.0")
			return err
		},
	}
}

// resolveString returns flagVal if set, else def.
func resolveString(flagVal, def string) string {
	if flagVal != "" {
		return flagVal
	}
	return def
}
