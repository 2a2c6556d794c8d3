package main

import (
	"io"

	"github.com/spf13/cobra"
	"web2one-api/core/interfaces"
	"web2one-api/pkg/app"
	"web2one-api/pkg/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "web2one",
		Short: "Web2One: clone public websites into page builder HTML",
		Long: `Web2One fetches a public web page through a chain of relays, asks a
generative model to rebuild it as a single static HTML document and wraps it
for embedding in a page builder.

Configuration is read from the environment (GENERATION_API_KEY, FETCH_RELAYS, ...).

Usage:
  web2one convert <url> [flags]
  web2one serve [flags]`,
		SilenceUsage: true,
	}

	root.AddCommand(newConvertCmd(), newServeCmd())
	return root
}

// loadConfig reads the environment, applies overrides and validates the result
func loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) interfaces.Logger {
	return app.NewLogger(cfg.Log, out)
}
