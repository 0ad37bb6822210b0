package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

func queryCmd() *cobra.Command {
	var (
		category string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Run one list query against the upstream",
		Long: "Run the query engine once, without the API server, and print the\n" +
			"resulting list state as JSON.",
		Example: `  # First page of everything
  catalogd query

  # Word-prefix search inside a category
  catalogd query --category smartphones iph

  # Third page of 10
  catalogd query --page 3 --page-size 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, newLogger(cfg))
			if err != nil {
				return err
			}

			state := engine.List(cmd.Context(), domain.QuerySpec{
				Text:     strings.Join(args, " "),
				Category: category,
				Page:     page,
				PageSize: pageSize,
			})
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category slug or numeric id")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (0 uses the configured default)")

	return cmd
}

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Fetch one product from the upstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), engine.Product(cmd.Context(), args[0]))
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the normalized upstream categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), engine.Categories(cmd.Context()))
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
