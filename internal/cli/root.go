// Package cli implements the cmsctl operator commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/config"
	"github.com/whitemassif/website/internal/migrate"
)

// Execute runs cmsctl and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "cmsctl",
		Short:        "Provision and migrate White Massif CMS content",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every CMS request")

	cmd.AddCommand(
		provisionCmd(),
		migrateCmd(),
		fixPostsCmd(),
		landingMetaCmd(),
		verifyCmd(),
		integrityCmd(),
		smokeFormsCmd(),
		keygenCmd(),
	)
	return cmd
}

func newCMS() (*cms.Client, error) {
	cfg, err := config.LoadCMS()
	if err != nil {
		return nil, fmt.Errorf("loading cms configuration: %w", err)
	}
	return cms.New(cfg.URL, cfg.Token, cms.WithTimeout(cfg.Timeout)), nil
}

func newMigrator() (*migrate.Migrator, error) {
	c, err := newCMS()
	if err != nil {
		return nil, err
	}
	return migrate.New(c), nil
}

func printReports(w io.Writer, reports ...*migrate.Report) error {
	failed := 0
	for _, r := range reports {
		fmt.Fprintf(w, "%-14s created=%d updated=%d deleted=%d skipped=%d failed=%d\n",
			r.Name, r.Created, r.Updated, r.Deleted, r.Skipped, len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  - %s: %v\n", f.Item, f.Err)
		}
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d step(s) had failures", failed)
	}
	return nil
}
