package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whitemassif/website/internal/migrate"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check content collections have the fields the site reads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			checks := m.Verify(cmd.Context())

			w := cmd.OutOrStdout()
			failed := 0
			for _, c := range checks {
				printCheck(w, c)
				if !c.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d collection(s) need attention", failed)
			}
			fmt.Fprintln(w, "all collections verified")
			return nil
		},
	}
}

func printCheck(w io.Writer, c migrate.CollectionCheck) {
	status := "ok"
	if !c.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "[%s] %s\n", status, c.Collection)
	if !c.Exists {
		fmt.Fprintln(w, "  collection does not exist")
	}
	if len(c.MissingFields) > 0 {
		fmt.Fprintf(w, "  missing fields: %s\n", strings.Join(c.MissingFields, ", "))
	}
	if len(c.ExtraFields) > 0 {
		fmt.Fprintf(w, "  extra fields: %s\n", strings.Join(c.ExtraFields, ", "))
	}
	for _, issue := range c.Issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	if c.Exists {
		fmt.Fprintf(w, "  items: %d\n", c.ItemCount)
	}
	for _, s := range c.Samples {
		fmt.Fprintf(w, "  sample: %s\n", preview(s))
	}
}

// preview renders up to three fields of an item, values cut to 30 characters.
func preview(item map[string]any) string {
	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 3 {
		keys = keys[:3]
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := []rune(fmt.Sprint(item[k]))
		if len(v) > 30 {
			v = append(v[:30], []rune("...")...)
		}
		parts = append(parts, k+": "+string(v))
	}
	return strings.Join(parts, ", ")
}

func integrityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrity",
		Short: "Check required fields, unique slugs and SEO fields of content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			results := m.Integrity(cmd.Context())

			w := cmd.OutOrStdout()
			issues, items := 0, 0
			for _, r := range results {
				fmt.Fprintf(w, "%s: %d items, %d checks, %d issues\n", r.Collection, r.ItemCount, r.ChecksRun, len(r.Issues))
				for _, issue := range r.Issues {
					fmt.Fprintf(w, "  - %s\n", issue)
				}
				issues += len(r.Issues)
				items += r.ItemCount
			}
			fmt.Fprintf(w, "collections checked: %d, items: %d, issues: %d\n", len(results), items, issues)
			if issues > 0 {
				return fmt.Errorf("%d integrity issue(s) found", issues)
			}
			return nil
		},
	}
}
