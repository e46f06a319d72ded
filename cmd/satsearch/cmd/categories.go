package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

func categoriesCmd(a *app) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Long: "List the product categories of the SatSearch catalog, sorted by name.\n" +
			"With --tree the categories are printed as a hierarchy.",
		Example: `  satsearch categories
  satsearch categories --tree`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			categories, err := a.svc.Categories(cmd.Context(), creds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree {
				roots := satsearch.BuildCategoryTree(categories)
				if a.jsonOutput() {
					return outputJSON(out, categoryNodes(roots))
				}
				return printCategoryTree(out, roots)
			}

			if a.jsonOutput() {
				return outputJSON(out, categories)
			}
			if len(categories) == 0 {
				fmt.Fprintln(out, "No categories found.")
				return nil
			}
			return printCategoriesTable(out, categories)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print categories as a hierarchy")

	return cmd
}

// categoryNode is the JSON shape of a category tree; Category.Children is
// not serialized.
type categoryNode struct {
	satsearch.Thing
	Children []categoryNode `json:"children,omitempty"`
}

func categoryNodes(cats []*satsearch.Category) []categoryNode {
	nodes := make([]categoryNode, 0, len(cats))
	for _, c := range cats {
		nodes = append(nodes, categoryNode{
			Thing:    c.Thing,
			Children: categoryNodes(c.Children),
		})
	}
	return nodes
}
