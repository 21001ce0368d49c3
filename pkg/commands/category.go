package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/commands/options"
	"tableflip.dev/listplan/pkg/runner/lists"
)

func addCategory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "list", "lists"},
		Short:   "Manage lists.",
		Example: `
listplan category list
listplan category create Shop
listplan category rename Shop Groceries
listplan category use Groceries
listplan category delete Groceries
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Overview()
			})
		},
	}
	options.AddShowIDArgs(cmd, io)

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show every list with its open and done counts.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Overview()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"new", "add"},
		Short:   "Create a list and make it active.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Create(strings.Join(args, " "))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <list> <new name>",
		Short: "Rename a list.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a list and a new name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Rename(args[0], strings.Join(args[1:], " "))
			})
		},
		ValidArgsFunction: categoryCompletions,
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "delete <list>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a list and its items.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Delete(args[0])
			})
		},
		ValidArgsFunction: categoryCompletions,
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "use <list>",
		Aliases: []string{"select"},
		Short:   "Make a list active.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Use(args[0])
			})
		},
		ValidArgsFunction: categoryCompletions,
	})

	for _, sub := range cmd.Commands() {
		options.AddShowIDArgs(sub, io)
	}

	topLevel.AddCommand(cmd)
}

func withLists(cmd *cobra.Command, io *options.IDOptions, fn func(*lists.Lists) error) error {
	e, err := loadEnv()
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.Close()

	l := &lists.Lists{
		ShowID:  io.ShowID,
		JSON:    oo.JSON,
		Service: e.Service,
		Out:     cmd.OutOrStdout(),
	}
	return oo.HandleError(fn(l))
}
