package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions selects the list a command works on.
type CategoryOptions struct {
	Category string
	All      bool
}

// AddCategoryArgs registers the list selection flag.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "list", "l", "",
		"List id or name. Defaults to the active list.")
}

// AddAllCategoriesArg registers a flag that selects every list.
func AddAllCategoriesArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show all lists.")
}
