package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func suppliersCmd(a *app) *cobra.Command {
	suppliersRoot := &cobra.Command{
		Use:   "suppliers",
		Short: "Query suppliers",
		Long:  "List and inspect the suppliers registered in the SatSearch catalog.",
	}

	suppliersRoot.AddCommand(
		suppliersListCmd(a),
		suppliersAllCmd(a),
		suppliersGetCmd(a),
	)

	return suppliersRoot
}

func suppliersListCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of suppliers",
		Example: `  # First page
  satsearch suppliers list

  # Third page as JSON
  satsearch suppliers list --page 3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			res, err := a.svc.SupplierResult(cmd.Context(), creds, page)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, res)
			}

			if len(res.Data) == 0 {
				fmt.Fprintln(out, "No suppliers found.")
				return nil
			}

			fmt.Fprintf(out, "Page %d of %d (%d suppliers)\n\n", res.Page, res.LastPage, res.Total)
			return printSuppliersTable(out, res.Data)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")

	return cmd
}

func suppliersAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every supplier, fetching all pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			suppliers, err := a.svc.Suppliers(cmd.Context(), creds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, suppliers)
			}

			if len(suppliers) == 0 {
				fmt.Fprintln(out, "No suppliers found.")
				return nil
			}
			return printSuppliersTable(out, suppliers)
		},
	}
}

func suppliersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get <uuid>",
		Short:   "Show supplier details",
		Example: `  satsearch suppliers get 6d706383-2b27-5942-9c55-385f4e425ff6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid supplier uuid %q: %w", args[0], err)
			}

			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			s, err := a.svc.Supplier(cmd.Context(), creds, id)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printSupplierDetail(cmd.OutOrStdout(), s)
		},
	}
}
