package main

import (
	"fmt"
	"os"

	"github.com/meenmo/discountcurve/internal/config"
	"github.com/meenmo/discountcurve/internal/logging"
)

func main() {
	configDir := ""
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configDir = os.Args[i+1]
		}
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curvebootstrap: loading config: %v\n", err)
		cfg = config.Default()
	}

	logger := logging.NewLoggerWithConfig(logging.LogConfig{
		Level:   cfg.Logging.Level,
		Console: true,
	})

	a := &app{Config: cfg, Logger: logger}

	if err := newRootCmd(a).Execute(); err != nil {
		logger.Error().Err(err).Msg("curvebootstrap failed")
		fmt.Fprintf(os.Stderr, "curvebootstrap: %v\n", err)
		os.Exit(1)
	}
}
