package main

import (
	"github.com/spf13/cobra"

	"github.com/meenmo/discountcurve/bootstrap"
	"github.com/meenmo/discountcurve/internal/logging"
)

func newBootstrapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap a discount curve from swap and/or futures quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd.Flag("in").Value.String())
			if err != nil {
				return err
			}

			currency := resolveRequest(a, cmd, in)
			method, methodLiteral := resolveMethod(a, cmd, in)

			result := bootstrap.Bootstrap(
				toRawPoints(in.Swaps, bootstrap.SourceSwap),
				toRawPoints(in.Futures, bootstrap.SourceFutures),
				method,
				currency,
			)
			reportFallbacks(a, currency, methodLiteral, result)

			format := resolveString(cmd.Flag("format").Value.String(), a.Config.Output.Format)
			dst, err := writeResult(result, format, cmd.Flag("out").Value.String())
			if err != nil {
				return err
			}
			logRunSummary(a, "bootstrap complete", result, dst)
			return nil
		},
	}
}

func newBootstrapBondsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap-bonds",
		Short: "Bootstrap a discount curve from bond yields",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd.Flag("in").Value.String())
			if err != nil {
				return err
			}

			currency := resolveRequest(a, cmd, in)
			method, methodLiteral := resolveMethod(a, cmd, in)

			result := bootstrap.BootstrapBonds(toRawPoints(in.Bonds, bootstrap.SourceBond), method, currency)
			reportFallbacks(a, currency, methodLiteral, result)

			format := resolveString(cmd.Flag("format").Value.String(), a.Config.Output.Format)
			dst, err := writeResult(result, format, cmd.Flag("out").Value.String())
			if err != nil {
				return err
			}
			logRunSummary(a, "bond bootstrap complete", result, dst)
			return nil
		},
	}
}

func resolveRequest(a *app, cmd *cobra.Command, in inputFile) string {
	currency := resolveString(cmd.Flag("currency").Value.String(), in.Currency)
	return resolveString(currency, a.Config.Defaults.Currency)
}

func resolveMethod(a *app, cmd *cobra.Command, in inputFile) (bootstrap.Method, string) {
	literal := resolveString(cmd.Flag("method").Value.String(), in.Method)
	literal = resolveString(literal, a.Config.Defaults.Method)
	return bootstrap.ParseMethod(literal), literal
}

// reportFallbacks logs the two silent fallbacks the core can apply
// (unknown method -> linear, unknown currency -> USD convention), which
// the core itself never logs.
func reportFallbacks(a *app, requestedCurrency, requestedMethod string, result bootstrap.BootstrapResult) {
	if result.Method.String() != requestedMethod {
		logging.LogFallback(a.Logger, "method", requestedMethod, result.Method.String())
	}
	if result.BasisConvention.Currency != requestedCurrency {
		logging.LogFallback(a.Logger, "currency", requestedCurrency, result.BasisConvention.Currency)
	}
}

func logRunSummary(a *app, msg string, result bootstrap.BootstrapResult, dst string) {
	a.Logger.Info().
		Str("run_id", result.RunID.String()).
		Str("currency", result.Currency).
		Str("method", result.Method.String()).
		Int("grid_points", len(result.DiscountFactors)).
		Str("wrote", dst).
		Msg(msg)
}
