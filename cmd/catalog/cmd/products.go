package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/catalog-browser/internal/api/client"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Browse products",
		Long:  "List, search and inspect products served by catalogd.",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	var (
		category string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list [search text...]",
		Short: "List products with optional search and category filters",
		Long: "List one page of products. Search text matches the start of any\n" +
			"word in the title, ignoring case.",
		Example: `  # First page of all products
  catalog products list

  # Search within a category
  catalog products list --category smartphones iph

  # Second page of 10 as JSON
  catalog products list --page 2 --page-size 10 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().ListProducts(cmd.Context(), &apiclient.ListProductsParams{
				Query:    strings.Join(args, " "),
				Category: category,
				Page:     page,
				PageSize: pageSize,
			})
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
			if len(resp.Items) == 0 {
				fmt.Fprintln(out, "No products found.")
				return nil
			}

			fmt.Fprintf(out, "Page %d of %d (%d products)\n\n",
				resp.Page, pageCount(resp.Total, resp.PageSize), resp.Total)
			return printProductsTable(out, resp.Items)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category slug or numeric id")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (server default when 0)")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GetProduct(cmd.Context(), args[0])
			if errors.Is(err, apiclient.ErrNotFound) {
				return fmt.Errorf("product %q not found", args[0])
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductDetail(cmd.OutOrStdout(), p)
		},
	}
}

func pageCount(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
