package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func attributesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attributes",
		Short: "List product attribute types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.credentials("")
			if err != nil {
				return err
			}

			types, err := a.svc.AttributeTypes(cmd.Context(), creds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, types)
			}
			if len(types) == 0 {
				fmt.Fprintln(out, "No attribute types found.")
				return nil
			}
			return printAttributeTypesTable(out, types)
		},
	}
}
