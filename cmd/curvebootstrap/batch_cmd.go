package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/discountcurve/bootstrap"
)

// batchRequest bootstraps one currency out of a multi-currency batch file.
type batchRequest struct {
	Currency string        `json:"currency"`
	Method   string        `json:"method"`
	Swaps    []rawPointDTO `json:"swaps"`
	Futures  []rawPointDTO `json:"futures"`
}

type batchFile struct {
	Currencies []batchRequest `json:"currencies"`
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Bootstrap curves for multiple currencies from one input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, err := cmd.Flags().GetString("out-dir")
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.Config.Output.Dir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			batch, err := readBatchFile(cmd.Flag("in").Value.String())
			if err != nil {
				return err
			}

			format := resolveString(cmd.Flag("format").Value.String(), a.Config.Output.Format)

			// Each request bootstraps an independent currency against
			// independent input: the core allows concurrent calls with no
			// coordination, so an errgroup fans them out.
			g := new(errgroup.Group)
			for _, req := range batch.Currencies {
				req := req
				g.Go(func() error {
					method := bootstrap.ParseMethod(resolveString(req.Method, a.Config.Defaults.Method))
					result := bootstrap.Bootstrap(
						toRawPoints(req.Swaps, bootstrap.SourceSwap),
						toRawPoints(req.Futures, bootstrap.SourceFutures),
						method,
						req.Currency,
					)
					reportFallbacks(a, req.Currency, method.String(), result)

					ext := "csv"
					if format == "json" {
						ext = "json"
					}
					dst := filepath.Join(outDir, fmt.Sprintf("%s.%s", req.Currency, ext))
					wrote, err := writeResult(result, format, dst)
					if err != nil {
						return fmt.Errorf("currency %s: %w", req.Currency, err)
					}
					logRunSummary(a, "batch currency complete", result, wrote)
					return nil
				})
			}

			return g.Wait()
		},
	}
	cmd.Flags().String("out-dir", "", "output directory for per-currency files (default: from config)")
	return cmd
}

func readBatchFile(path string) (batchFile, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return batchFile{}, fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var batch batchFile
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return batchFile{}, fmt.Errorf("decoding batch JSON: %w", err)
	}
	return batch, nil
}
