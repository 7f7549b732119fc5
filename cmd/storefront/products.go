package main

import (
	"github.com/spf13/cobra"

	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
	"github.com/LokeshReddy2201/FUTURE-FS-03/session"
)

func newProductsCmd(a *app) *cobra.Command {
	var query, category, sortName string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := catalog.FilterState{Query: query, Category: category, Sort: a.sort}
			if cmd.Flags().Changed("sort") {
				if err := fs.SetSort(sortName); err != nil {
					return err
				}
			}
			s := session.New(session.Config{Catalog: a.catalog, DefaultSort: fs.Sort, Logger: a.logger, Out: cmd.OutOrStdout()})
			s.Filter = fs
			return s.Execute("list")
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text matched against name and category")
	cmd.Flags().StringVarP(&category, "category", "c", "", "exact category name")
	cmd.Flags().StringVarP(&sortName, "sort", "s", "", "one of featured, price-ascending, price-descending, rating-descending, discount-descending")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := session.New(session.Config{Catalog: a.catalog, Logger: a.logger, Out: cmd.OutOrStdout()})
			return s.Execute("categories")
		},
	}
}
