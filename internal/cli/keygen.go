package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whitemassif/website/internal/auth"
)

func keygenCmd() *cobra.Command {
	var (
		name string
		cost int
	)

	c := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an operator API key and its bcrypt hash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, hash, err := auth.NewService(nil, cost).GenerateKey()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "key:  %s\n", key)
			fmt.Fprintf(w, "hash: %s\n", hash)
			fmt.Fprintf(w, "OPERATOR_KEYS=%s:%s\n", name, hash)
			return nil
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "operator", "Operator name for the OPERATOR_KEYS entry")
	c.Flags().IntVar(&cost, "cost", 12, "bcrypt cost")
	return c
}
