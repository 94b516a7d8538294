package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mealplanr/aisle/internal/cli"
	"github.com/mealplanr/aisle/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect the grocery-aisle category registry",
		Long:  `List the fixed aisle categories or look one up by id.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(showCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories in aisle order",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("#"),
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Icon"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 3),
				strings.Repeat("-", 14),
				strings.Repeat("-", 18),
				strings.Repeat("-", 4))

			for _, category := range model.AllCategories() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					category.SortOrder, category.ID, category.Name, category.Icon)
			}

			return nil
		},
	}
}

func showCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			category, ok := model.CategoryByID(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s", category.Icon, category.Name)))
			fmt.Printf("  id: %s\n  aisle order: %d\n", category.ID, category.SortOrder)
			return nil
		},
	}
}
