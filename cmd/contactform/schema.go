package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the form model as JSON",
	Long: `Print the form model derived from the OpenAPI document as JSON. The
embedded document is used unless the configuration names another one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := loadForm(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(form)
	},
}
