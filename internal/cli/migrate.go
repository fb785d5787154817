package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whitemassif/website/internal/migrate"
)

func provisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Create form collections and missing content fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			schemas, err := migrate.LoadSchemas()
			if err != nil {
				return err
			}
			if err := m.CheckConnection(cmd.Context()); err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), m.Provision(cmd.Context(), schemas))
		},
	}
}

func migrateCmd() *cobra.Command {
	var opts migrate.Options

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Load blog posts, services, team members and sample landing pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			reports, err := m.Migrate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			total := 0
			for _, r := range reports {
				total += r.Created
			}
			if err := printReports(cmd.OutOrStdout(), reports...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total items created: %d\n", total)
			return nil
		},
	}

	c.Flags().StringVarP(&opts.DataDir, "data", "d", "data", "Directory holding the JSON fixtures")
	c.Flags().BoolVar(&opts.Reset, "reset", false, "Delete existing rows of each collection before loading")
	return c
}

func fixPostsCmd() *cobra.Command {
	var dataDir string

	c := &cobra.Command{
		Use:   "fix-posts",
		Short: "Replace every blog post with the posts listed in index.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			r, err := m.FixPosts(cmd.Context(), dataDir)
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), r)
		},
	}

	c.Flags().StringVarP(&dataDir, "data", "d", "data", "Directory holding index.json")
	return c
}

func landingMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "populate-landing-meta",
		Short: "Derive meta_title and meta_description for every landing page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			r, err := m.PopulateLandingMeta(cmd.Context())
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), r)
		},
	}
}
