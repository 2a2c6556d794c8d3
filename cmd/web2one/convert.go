package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"web2one-api/core/domain"
	"web2one-api/pkg/app"
	"web2one-api/pkg/config"
)

// localEmail owns every project created from the command line
const localEmail = "local@web2one.cli"

type convertOptions struct {
	brandName   string
	logoURL     string
	websiteLink string
	out         string
	dbPath      string
	verbose     bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <url>",
		Short: "Clone a URL into embeddable HTML",
		Long: `Convert runs the full pipeline for one URL: fetch through the relay chain,
reconstruct with the configured model and wrap the result for the page builder.
Step progress is printed to stderr; the HTML goes to --out or stdout.

Examples:
  web2one convert https://example.com --out example.html
  web2one convert https://example.com --brand-name "Acme" --website-link https://acme.test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runConvert(ctx, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.brandName, "brand-name", "", "Replace the source brand name")
	cmd.Flags().StringVar(&opts.logoURL, "logo-url", "", "Replace the source logo")
	cmd.Flags().StringVar(&opts.websiteLink, "website-link", "", "Point buttons, nav and footer links here")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite database path (default $DATABASE_PATH)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline details to stderr")
	return cmd
}

func runConvert(ctx context.Context, rawURL string, opts *convertOptions, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if opts.dbPath != "" {
			c.Storage.DatabasePath = opts.dbPath
		}
		if !opts.verbose {
			c.Log.Level = "error"
		}
	})
	if err != nil {
		return err
	}

	a, err := app.New(cfg, newLogger(cfg, stderr))
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := localUser(ctx, a)
	if err != nil {
		return fmt.Errorf("preparing local user: %w", err)
	}

	req := domain.ConversionRequest{
		SourceURL: rawURL,
		Rebrand:   rebrandFromOptions(opts),
	}

	events := make(chan domain.StepEvent, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			fmt.Fprintln(stderr, formatEvent(ev))
		}
	}()

	outcome, err := a.Conversions.Convert(ctx, user.ID, req, events)
	close(events)
	<-done
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(stdout, outcome.HTML+"\n")
		return err
	}
	if err := os.WriteFile(opts.out, []byte(outcome.HTML), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Fprintf(stderr, "Wrote %s (project %s)\n", opts.out, outcome.ProjectID)
	return nil
}

// localUser returns the command line user, moving it to an unlimited plan on first use
func localUser(ctx context.Context, a *app.App) (*domain.User, error) {
	user, err := a.Accounts.Login(ctx, localEmail, "Local", "")
	if err != nil {
		return nil, err
	}
	if user.Credits == domain.UnlimitedCredits {
		return user, nil
	}
	return a.Credits.ChangePlan(ctx, user.ID, domain.PlanAgency)
}

func rebrandFromOptions(opts *convertOptions) *domain.RebrandInfo {
	info := &domain.RebrandInfo{
		LogoURL:     strings.TrimSpace(opts.logoURL),
		BrandName:   strings.TrimSpace(opts.brandName),
		WebsiteLink: strings.TrimSpace(opts.websiteLink),
	}
	if info.IsEmpty() {
		return nil
	}
	return info
}

var stepLabels = func() map[domain.StepID]string {
	labels := make(map[domain.StepID]string)
	for _, s := range domain.NewConversionSteps() {
		labels[s.ID] = s.Label
	}
	return labels
}()

func formatEvent(ev domain.StepEvent) string {
	line := fmt.Sprintf("[%-8s] %-26s %s", ev.Step, stepLabels[ev.Step], ev.Status)
	if ev.Err != "" {
		line += ": " + ev.Err
	}
	return line
}
