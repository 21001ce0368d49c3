package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/listplan/pkg/commands/options"
	"tableflip.dev/listplan/pkg/runner/lists"
)

func addItem(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Change the items of a list.",
		Long: base.Wrap80("Change the items of a list. Items are named by id " +
			"(see --show-id) or by their position, starting at 1."),
		Example: `
listplan item add buy milk
listplan item toggle 2
listplan item top 3 --list Shop
listplan item delete 1
listplan item clear
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add an item to the top of a list.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires item text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Add(co.Category, strings.Join(args, " "))
			})
		},
	})

	for _, sub := range []struct {
		use     string
		aliases []string
		short   string
		run     func(l *lists.Lists, list, item string) error
	}{
		{"toggle <item>", []string{"done", "check"}, "Mark an item done or open.", (*lists.Lists).Toggle},
		{"delete <item>", []string{"rm", "remove"}, "Delete an item.", (*lists.Lists).Remove},
		{"top <item>", []string{"first"}, "Move an item to the top of its list.", (*lists.Lists).Top},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:     sub.use,
			Aliases: sub.aliases,
			Short:   sub.short,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLists(cmd, io, func(l *lists.Lists) error {
					return sub.run(l, co.Category, args[0])
				})
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the done items of a list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLists(cmd, io, func(l *lists.Lists) error {
				return l.Clear(co.Category)
			})
		},
	})

	for _, sub := range cmd.Commands() {
		options.AddShowIDArgs(sub, io)
		options.AddCategoryArgs(sub, co)
		_ = sub.RegisterFlagCompletionFunc("list", categoryCompletions)
	}

	topLevel.AddCommand(cmd)
}
