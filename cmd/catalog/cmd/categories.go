package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			if resp.Error != "" {
				fmt.Fprintln(out, resp.Error)
				return nil
			}
			if len(resp.Categories) == 0 {
				fmt.Fprintln(out, "No categories found.")
				return nil
			}
			return printCategoriesTable(out, resp.Categories)
		},
	}
}
