package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meenmo/discountcurve/bootstrap"
)

// writeResult renders result as CSV or JSON to dst ("-" / "" means stdout),
// returning the path actually written (dst, or "stdout").
func writeResult(result bootstrap.BootstrapResult, format, dst string) (string, error) {
	var body []byte
	var err error

	switch format {
	case "json":
		body, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshalling result: %w", err)
		}
		body = append(body, '\n')
	default:
		body = []byte(bootstrap.ExportCSV(result))
	}

	if dst == "" || dst == "-" {
		if _, err := os.Stdout.Write(body); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "stdout", nil
	}

	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}
	return dst, nil
}
