package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

func productsCmd(a *app) *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Search and inspect products",
	}

	productsRoot.AddCommand(
		productsSearchCmd(a),
		productsGetCmd(a),
	)

	return productsRoot
}

type searchFlags struct {
	categories []string
	suppliers  []string
	name       string
	page       int
	pageSize   int
	all        bool
}

func productsSearchCmd(a *app) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by category, supplier and name",
		Long: "Search the SatSearch product catalog. Categories and suppliers are\n" +
			"given by UUID and may be repeated. Without --all one page is returned.",
		Example: `  # Reaction wheels from one supplier
  satsearch products search \
    --category fdc836a2-7a0e-5bce-ac48-8225ddb73a83 \
    --supplier 6d706383-2b27-5942-9c55-385f4e425ff6

  # Every product whose name matches, across all pages
  satsearch products search --name "star tracker" --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			param, err := f.parameter(cmd)
			if err != nil {
				return err
			}

			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.all {
				products, err := a.svc.SearchAll(cmd.Context(), creds, param)
				if err != nil {
					return err
				}
				if a.jsonOutput() {
					return outputJSON(out, products)
				}
				if len(products) == 0 {
					fmt.Fprintln(out, "No products found.")
					return nil
				}
				return printProductsTable(out, products)
			}

			res, err := a.svc.Search(cmd.Context(), creds, param)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Data) == 0 {
				fmt.Fprintln(out, "No products found.")
				return nil
			}

			fmt.Fprintf(out, "Page %d of %d (%d products)\n\n", res.Page, res.LastPage, res.Total)
			return printProductsTable(out, res.Data)
		},
	}
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "category UUID (repeatable)")
	cmd.Flags().StringSliceVar(&f.suppliers, "supplier", nil, "supplier UUID (repeatable)")
	cmd.Flags().StringVar(&f.name, "name", "", "product name filter")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "results per page (service default when unset)")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch every result page")

	return cmd
}

// parameter builds the search parameter. Page and page size are only sent
// when given on the command line.
func (f *searchFlags) parameter(cmd *cobra.Command) (*satsearch.SearchParameter, error) {
	param := &satsearch.SearchParameter{Product: f.name}

	for _, s := range f.categories {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid category uuid %q: %w", s, err)
		}
		param.Categories = append(param.Categories, satsearch.Category{Thing: satsearch.Thing{UUID: id}})
	}
	for _, s := range f.suppliers {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid supplier uuid %q: %w", s, err)
		}
		param.Suppliers = append(param.Suppliers, satsearch.Supplier{Thing: satsearch.Thing{UUID: id}})
	}

	if cmd.Flags().Changed("page") {
		page := f.page
		param.Page = &page
	}
	if cmd.Flags().Changed("page-size") {
		if f.pageSize < 1 {
			return nil, fmt.Errorf("--page-size must be at least 1 (got %d)", f.pageSize)
		}
		size := f.pageSize
		param.PageSize = &size
	}

	return param, nil
}

func productsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get <uuid>",
		Short:   "Show product details and attributes",
		Example: `  satsearch products get 1b9d6bcd-bbfd-5b2d-9b5d-ab8dfbbd4bed`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid product uuid %q: %w", args[0], err)
			}

			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			p, err := a.svc.Product(cmd.Context(), creds, id)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductDetail(cmd.OutOrStdout(), p)
		},
	}
}
